package icon

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
)

// RoundedMask rasterizes a rounded square covering the whole dim×dim area.
// Inside is 255, outside 0; edge pixels carry anti-aliased coverage.
func RoundedMask(dim int, radius float64) *image.Alpha {
	if dim <= 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	mask := image.NewAlpha(image.Rect(0, 0, dim, dim))
	if radius <= 0 {
		draw.Draw(mask, mask.Bounds(), image.Opaque, image.Point{}, draw.Src)
		return mask
	}

	scanner := rasterx.NewScannerGV(dim, dim, mask, mask.Bounds())
	filler := rasterx.NewFiller(dim, dim, scanner)
	filler.SetColor(color.Alpha{A: 0xff})
	rasterx.AddRoundRect(0, 0, float64(dim), float64(dim), radius, radius, 0, rasterx.RoundGap, filler)
	filler.Draw()
	return mask
}

// ApplyMask scales each pixel's alpha by the mask value at the same point.
// Color channels are left as they are, so a later Flatten brings the
// gradient colors back under the transparent corners.
func ApplyMask(img *image.NRGBA, mask *image.Alpha) {
	b := img.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		pi := img.PixOffset(b.Min.X, y)
		mi := mask.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			a := uint32(img.Pix[pi+3]) * uint32(mask.Pix[mi]) / 0xff
			img.Pix[pi+3] = uint8(a)
			pi += 4
			mi++
		}
	}
}

// Flatten returns a copy of img with every pixel made fully opaque.
// The stored color channels are kept as-is; alpha is simply dropped.
func Flatten(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	rowLen := 4 * b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):]
		copy(out.Pix[out.PixOffset(b.Min.X, y):], src[:rowLen])
	}
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

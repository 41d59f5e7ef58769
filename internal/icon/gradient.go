package icon

import (
	"image"
	"image/color"
)

// Gradient returns a dim×dim opaque image shaded diagonally from start
// (top-left) to end (bottom-right). Pixel (x, y) takes the per-channel
// linear interpolation at t = (x+y) / (2*dim), truncated toward zero.
//
// Every pixel on one anti-diagonal shares a color, so the 2*dim-1 distinct
// colors are computed once and each row is a single copy out of that strip.
func Gradient(dim int, start, end color.NRGBA) *image.NRGBA {
	if dim <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	img := image.NewNRGBA(image.Rect(0, 0, dim, dim))

	strip := make([]byte, 4*(2*dim-1))
	denom := float64(2 * dim)
	for k := 0; k < 2*dim-1; k++ {
		t := float64(k) / denom
		i := 4 * k
		strip[i+0] = lerp(start.R, end.R, t)
		strip[i+1] = lerp(start.G, end.G, t)
		strip[i+2] = lerp(start.B, end.B, t)
		strip[i+3] = 0xff
	}

	rowLen := 4 * dim
	for y := 0; y < dim; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		copy(row, strip[4*y:4*y+rowLen])
	}
	return img
}

// lerp interpolates a single channel. The float→int conversion truncates,
// and t < 1 keeps the result inside [0,255] for any endpoints.
func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

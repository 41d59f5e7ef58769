// Package export resamples the base icon to every asset-catalog size and
// writes the PNG files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/Mavwarf/appicon/internal/paths"
	"golang.org/x/image/draw"
)

// Size is one exported resolution.
type Size struct {
	Pixels int    `json:"pixels"`
	Label  string `json:"label"`
}

var defaultSizes = []Size{
	{20, "20"},
	{29, "29"},
	{40, "40"},
	{58, "58"},
	{60, "60"},
	{76, "76"},
	{80, "80"},
	{87, "87"},
	{120, "120"},
	{152, "152"},
	{167, "167"},
	{180, "180"},
	{1024, "1024"},
}

// DefaultSizes returns the 13 iOS app icon sizes in export order.
func DefaultSizes() []Size {
	out := make([]Size, len(defaultSizes))
	copy(out, defaultSizes)
	return out
}

// ValidateSizes rejects non-positive dimensions and empty or duplicate labels.
func ValidateSizes(sizes []Size) error {
	if len(sizes) == 0 {
		return fmt.Errorf("no sizes to export")
	}
	seen := make(map[string]bool, len(sizes))
	for _, s := range sizes {
		if s.Pixels <= 0 {
			return fmt.Errorf("size %q: pixels must be positive, got %d", s.Label, s.Pixels)
		}
		if s.Label == "" {
			return fmt.Errorf("size %d: empty label", s.Pixels)
		}
		if seen[s.Label] {
			return fmt.Errorf("duplicate size label %q", s.Label)
		}
		seen[s.Label] = true
	}
	return nil
}

// Resize returns src scaled to px×px with a Catmull-Rom kernel. A request
// for the source's own size returns an exact copy.
func Resize(src image.Image, px int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, px, px))
	sb := src.Bounds()
	if sb.Dx() == px && sb.Dy() == px {
		if n, ok := src.(*image.NRGBA); ok {
			for y := 0; y < px; y++ {
				copy(dst.Pix[y*dst.Stride:], n.Pix[n.PixOffset(sb.Min.X, sb.Min.Y+y):][:4*px])
			}
			return dst
		}
	}
	draw.CatmullRom.Scale(dst, dst.Rect, src, sb, draw.Src, nil)
	return dst
}

// Exporter writes resized icons into Dir.
type Exporter struct {
	Dir string

	// WriteContents also emits an Xcode Contents.json describing the files.
	WriteContents bool

	// OnWrite, if set, is called after each file is written.
	OnWrite func(path string, s Size)
}

// Export creates Dir and writes one PNG per size, each resampled from src.
// It stops at the first failure; files already written are left in place.
// The returned paths are those written before returning.
func (e Exporter) Export(ctx context.Context, src image.Image, sizes []Size) ([]string, error) {
	if err := ValidateSizes(sizes); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(e.Dir, paths.DirPerm); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	var written []string
	for _, s := range sizes {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		p := filepath.Join(e.Dir, paths.IconFileName(s.Label))
		if err := writePNG(p, Resize(src, s.Pixels)); err != nil {
			return written, fmt.Errorf("writing %s: %w", p, err)
		}
		written = append(written, p)
		if e.OnWrite != nil {
			e.OnWrite(p, s)
		}
	}

	if e.WriteContents {
		p := filepath.Join(e.Dir, ContentsFileName)
		data, err := Contents(sizes)
		if err != nil {
			return written, err
		}
		if err := paths.AtomicWrite(p, data); err != nil {
			return written, fmt.Errorf("writing %s: %w", p, err)
		}
		written = append(written, p)
	}
	return written, nil
}

func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return paths.AtomicWrite(path, buf.Bytes())
}

// Package icon draws the app icon: a diagonal gradient square with rounded
// corners and a white line-art face.
package icon

import (
	"image"
	"image/color"
)

// Defaults of the shipped icon.
const (
	DefaultSize          = 1024
	DefaultCornerRadius  = 180
	DefaultCenterOffsetY = 20

	// MinSize is the smallest canvas that holds the face, whose features
	// are laid out in absolute pixels.
	MinSize = 600
)

var (
	DefaultStart  = color.NRGBA{R: 0x6B, G: 0x46, B: 0xC1, A: 0xff} // purple
	DefaultEnd    = color.NRGBA{R: 0x06, G: 0xB6, B: 0xD4, A: 0xff} // teal
	DefaultStroke = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Options controls Render.
type Options struct {
	Size          int
	Start, End    color.NRGBA
	Stroke        color.NRGBA
	CornerRadius  float64
	CenterOffsetY int  // face center sits this far below the canvas middle
	Transparent   bool // keep the rounded-corner alpha instead of flattening
}

// DefaultOptions returns the options that reproduce the shipped icon.
func DefaultOptions() Options {
	return Options{
		Size:          DefaultSize,
		Start:         DefaultStart,
		End:           DefaultEnd,
		Stroke:        DefaultStroke,
		CornerRadius:  DefaultCornerRadius,
		CenterOffsetY: DefaultCenterOffsetY,
	}
}

// Render builds the base icon: gradient, rounded-corner mask, then the face
// overlay. Unless opts.Transparent is set the masked canvas is flattened
// before the face is drawn, since compositing onto alpha-0 pixels loses
// their color.
//
// Flattening drops alpha without blending, so the corners show the
// gradient again and the result is a full square. That is what iOS
// expects of an app icon; the system applies its own mask.
func Render(opts Options) *image.NRGBA {
	img := Gradient(opts.Size, opts.Start, opts.End)
	if opts.Size <= 0 {
		return img
	}
	ApplyMask(img, RoundedMask(opts.Size, opts.CornerRadius))

	if !opts.Transparent {
		img = Flatten(img)
	}
	g := NewFaceGeometry(opts.Size/2, opts.Size/2+opts.CenterOffsetY)
	DrawFace(img, g, opts.Stroke)
	return img
}

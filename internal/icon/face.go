package icon

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Face proportions, in pixels of the 1024 base canvas.
const (
	FaceWidth   = 280
	FaceHeight  = 350
	StrokeWidth = 12

	earWidth   = 30
	earHeight  = 60
	earOffsetY = -20

	browOffsetY = -60
	browWidth   = 60
	browSpacing = 80
	browTilt    = -10

	noseTop    = -10
	noseBottom = 30

	lipOffsetY = 80
	lipWidth   = 40
	lipDip     = 8
)

// hairOffsets are relative to the face's left-bottom corner; the right
// strand mirrors them around the right-bottom corner.
var hairOffsets = [4]image.Point{{-20, -80}, {-60, 20}, {-40, 60}, {-10, 40}}

// Segment is a straight stroke from A to B.
type Segment struct {
	A, B image.Point
}

// FaceGeometry is the full set of draw instructions for the face overlay.
type FaceGeometry struct {
	Center    image.Point
	Face      image.Rectangle
	HairLeft  [4]image.Point
	HairRight [4]image.Point
	EarLeft   image.Rectangle
	EarRight  image.Rectangle
	BrowLeft  Segment
	BrowRight Segment
	Nose      Segment
	LipLeft   Segment
	LipRight  Segment
}

// NewFaceGeometry derives every feature position from the face center.
// Halves use integer division, matching the pixel layout of the shipped icon.
func NewFaceGeometry(cx, cy int) FaceGeometry {
	g := FaceGeometry{Center: image.Pt(cx, cy)}
	left, right := cx-FaceWidth/2, cx+FaceWidth/2
	top, bottom := cy-FaceHeight/2, cy+FaceHeight/2
	g.Face = image.Rect(left, top, right, bottom)

	for i, off := range hairOffsets {
		g.HairLeft[i] = image.Pt(left+off.X, bottom+off.Y)
		g.HairRight[i] = image.Pt(right-off.X, bottom+off.Y)
	}

	earTop := cy + earOffsetY - earHeight/2
	earBottom := cy + earOffsetY + earHeight/2
	g.EarLeft = image.Rect(left-earWidth/2, earTop, left+earWidth/2, earBottom)
	g.EarRight = image.Rect(right-earWidth/2, earTop, right+earWidth/2, earBottom)

	by := cy + browOffsetY
	g.BrowLeft = Segment{image.Pt(cx-browSpacing, by), image.Pt(cx-browSpacing+browWidth, by+browTilt)}
	g.BrowRight = Segment{image.Pt(cx+browSpacing, by), image.Pt(cx+browSpacing-browWidth, by+browTilt)}

	g.Nose = Segment{image.Pt(cx, cy+noseTop), image.Pt(cx, cy+noseBottom)}

	ly := cy + lipOffsetY
	lipMid := image.Pt(cx, ly+lipDip)
	g.LipLeft = Segment{image.Pt(cx-lipWidth/2, ly), lipMid}
	g.LipRight = Segment{lipMid, image.Pt(cx+lipWidth/2, ly)}
	return g
}

// Segments returns every straight stroke in draw order: hair strands
// (each polyline split into its pieces), then brows, nose and lips.
func (g FaceGeometry) Segments() []Segment {
	var segs []Segment
	for _, strand := range [][4]image.Point{g.HairLeft, g.HairRight} {
		for i := 0; i < len(strand)-1; i++ {
			segs = append(segs, Segment{strand[i], strand[i+1]})
		}
	}
	return append(segs, g.BrowLeft, g.BrowRight, g.Nose, g.LipLeft, g.LipRight)
}

// DrawFace strokes the face outline onto dst.
func DrawFace(dst draw.Image, g FaceGeometry, stroke color.Color) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, b)
	s := rasterx.NewStroker(w, h, scanner)
	s.SetStroke(fixed.I(StrokeWidth), fixed.I(4), rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter)
	s.SetColor(stroke)

	// Order: face, hair, ears, brows, nose, lips.
	strokeEllipse(s, g.Face)
	segs := g.Segments()
	for _, seg := range segs[:6] {
		strokeLine(s, seg)
	}
	strokeEllipse(s, g.EarLeft)
	strokeEllipse(s, g.EarRight)
	for _, seg := range segs[6:] {
		strokeLine(s, seg)
	}
}

// strokeEllipse outlines the ellipse inscribed in r, with r treated as an
// inclusive pixel box: the stroke's outer edge covers pixels Min..Max.
func strokeEllipse(s *rasterx.Stroker, r image.Rectangle) {
	half := float64(StrokeWidth) / 2
	cx := float64(r.Min.X+r.Max.X)/2 + 0.5
	cy := float64(r.Min.Y+r.Max.Y)/2 + 0.5
	rx := float64(r.Dx()+1)/2 - half
	ry := float64(r.Dy()+1)/2 - half
	s.Clear()
	rasterx.AddEllipse(cx, cy, rx, ry, 0, s)
	s.Draw()
}

// strokeLine draws one segment between pixel centers.
func strokeLine(s *rasterx.Stroker, seg Segment) {
	s.Clear()
	s.Start(rasterx.ToFixedP(float64(seg.A.X)+0.5, float64(seg.A.Y)+0.5))
	s.Line(rasterx.ToFixedP(float64(seg.B.X)+0.5, float64(seg.B.Y)+0.5))
	s.Stop(false)
	s.Draw()
}

// Package xraster is a reference rasterization backend for the iconvg
// decoder: it implements iconvg.Canvas and fills the paths the decoder
// describes onto a raster image, the way a real consumer (an icon viewer,
// a glyph cache, an image converter) would. The decoder itself never
// rasterizes; it only emits events, per iconvg.Canvas.
//
// Geometry is accumulated with golang.org/x/image/vector.Rasterizer, the
// same scanline rasterizer the original golang.org/x/exp/shiny/iconvg
// package used, and gradient fills are evaluated with this package's
// internal/gradient, adapted from the same source.
package xraster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/Hixie/iconvg/iconvg"
	"github.com/Hixie/iconvg/xraster/internal/gradient"
)

// Rasterizer implements iconvg.Canvas, filling the graphic's paths onto a
// destination image.
//
// The zero value is usable: with no destination image set, Decode still
// validates the graphic's bytecode but draws nothing. Call SetDst before or
// between calls to iconvg.Decode to actually produce pixels.
type Rasterizer struct {
	dst    draw.Image
	r      image.Rectangle
	drawOp draw.Op

	z vector.Rasterizer

	dstRect iconvg.Rectangle
	viewbox iconvg.Rectangle

	pathOpen bool

	flatColor   color.RGBA
	flatUniform image.Uniform
}

// New returns a Rasterizer that draws onto dst, within r, using drawOp.
func New(dst draw.Image, r image.Rectangle, drawOp draw.Op) *Rasterizer {
	z := &Rasterizer{}
	z.SetDst(dst, r, drawOp)
	return z
}

// SetDst changes the destination image, region and compositing operator.
// It may be called between decodes to reuse a single Rasterizer.
func (z *Rasterizer) SetDst(dst draw.Image, r image.Rectangle, drawOp draw.Op) {
	if r.Empty() {
		r = image.Rectangle{}
	}
	z.dst = dst
	z.r = r
	z.drawOp = drawOp
}

var _ iconvg.Canvas = (*Rasterizer)(nil)

// BeginDecode records the destination rectangle in the graphic's own
// coordinate convention, needed to map gradient paints (expressed in
// graphic space) into pixel space.
func (z *Rasterizer) BeginDecode(dstRect iconvg.Rectangle) error {
	z.dstRect = dstRect
	return nil
}

// EndDecode passes the decode's outcome straight through.
func (z *Rasterizer) EndDecode(err error, numBytesConsumed, numBytesRemaining int) error {
	logger().Debug("iconvg decode finished", "err", err, "consumed", numBytesConsumed, "remaining", numBytesRemaining)
	return err
}

func (z *Rasterizer) OnMetadataViewBox(viewbox iconvg.Rectangle) error {
	z.viewbox = viewbox
	return nil
}

func (z *Rasterizer) OnMetadataSuggestedPalette(*iconvg.Palette) error { return nil }

func (z *Rasterizer) BeginDrawing() error { return nil }

// EndDrawing fills the paths accumulated since the first BeginPath after the
// previous EndDrawing with p and, if a destination image is set, composites
// them.
func (z *Rasterizer) EndDrawing(p *iconvg.Paint) error {
	if !z.pathOpen {
		return nil
	}
	z.pathOpen = false
	fill := z.resolveFill(p)
	if fill != nil && z.dst != nil {
		z.z.Draw(z.dst, z.r, fill, image.Point{})
	}
	return nil
}

func (z *Rasterizer) BeginPath(x0, y0 float32) error {
	if !z.pathOpen {
		z.z.Reset(z.r.Dx(), z.r.Dy())
		z.z.DrawOp = z.drawOp
		z.pathOpen = true
	}
	z.z.MoveTo(x0, y0)
	return nil
}

func (z *Rasterizer) EndPath() error {
	z.z.ClosePath()
	return nil
}

func (z *Rasterizer) PathLineTo(x1, y1 float32) error {
	z.z.LineTo(x1, y1)
	return nil
}

func (z *Rasterizer) PathQuadTo(x1, y1, x2, y2 float32) error {
	z.z.QuadTo(x1, y1, x2, y2)
	return nil
}

func (z *Rasterizer) PathCubeTo(x1, y1, x2, y2, x3, y3 float32) error {
	z.z.CubeTo(x1, y1, x2, y2, x3, y3)
	return nil
}

// resolveFill turns a decoded Paint into the image.Image that
// vector.Rasterizer.Draw should use as its fill source, or nil if nothing
// should be drawn (an invalid or empty gradient).
func (z *Rasterizer) resolveFill(p *iconvg.Paint) image.Image {
	switch p.Type {
	case iconvg.PaintTypeFlatColor:
		c := p.FlatColor
		z.flatColor = color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
		z.flatUniform.C = &z.flatColor
		return &z.flatUniform
	case iconvg.PaintTypeLinearGradient, iconvg.PaintTypeRadialGradient:
		return z.buildGradient(p)
	default:
		return nil
	}
}

// buildGradient converts p's Gradient, expressed as an affine transform
// from graphic space to gradient space, into a gradient.Gradient expecting
// an affine transform from this Rasterizer's pixel space to gradient
// space, by composing it with the inverse of the graphic-to-pixel
// transform implied by the graphic's ViewBox and destination rectangle.
func (z *Rasterizer) buildGradient(p *iconvg.Paint) image.Image {
	stops := make([]gradient.Stop, len(p.Gradient.Stops))
	for i, s := range p.Gradient.Stops {
		pm := s.Color.Premul()
		stops[i] = gradient.Stop{
			Offset: float64(s.Offset),
			RGBA64: color.RGBA64{
				R: uint16(pm.R) * 0x101,
				G: uint16(pm.G) * 0x101,
				B: uint16(pm.B) * 0x101,
				A: uint16(pm.A) * 0x101,
			},
		}
	}
	if len(stops) == 0 {
		return nil
	}

	g := &gradient.Gradient{
		Spread: gradient.Spread(p.Gradient.Spread),
		Ranges: gradient.AppendRanges(nil, stops),
		First:  stops[0].RGBA64,
		Last:   stops[len(stops)-1].RGBA64,
	}
	if p.Type == iconvg.PaintTypeRadialGradient {
		g.Shape = gradient.ShapeRadial
	} else {
		g.Shape = gradient.ShapeLinear
	}
	g.Pix2Grad = z.pixelToGradient(p.Gradient.Transform)
	return g
}

// pixelToGradient composes graphicToGradient (graphic space to gradient
// space, as decoded from the bytecode) with this Rasterizer's own
// pixel-to-graphic transform, derived from the same ViewBox/destination
// rectangle pairing that iconvg.Decode uses internally.
func (z *Rasterizer) pixelToGradient(graphicToGradient [2][3]float64) f64.Aff3 {
	sx, bx, sy, by := 1.0, 0.0, 1.0, 0.0
	vw, vh := z.viewbox.Width(), z.viewbox.Height()
	rw, rh := z.dstRect.Width(), z.dstRect.Height()
	if vw > 0 && vh > 0 && rw > 0 && rh > 0 {
		sx = rw / vw
		bx = float64(z.dstRect.Min[0]) - float64(z.viewbox.Min[0])*sx
		sy = rh / vh
		by = float64(z.dstRect.Min[1]) - float64(z.viewbox.Min[1])*sy
	}
	a, b, c := graphicToGradient[0][0], graphicToGradient[0][1], graphicToGradient[0][2]
	d, e, f := graphicToGradient[1][0], graphicToGradient[1][1], graphicToGradient[1][2]
	return f64.Aff3{
		a / sx, b / sy, c - a*bx/sx - b*by/sy,
		d / sx, e / sy, f - d*bx/sx - e*by/sy,
	}
}

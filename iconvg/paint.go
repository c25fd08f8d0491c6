// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

// PaintType categorizes a Paint value.
type PaintType uint8

const (
	// PaintTypeInvalid means that the four paint_rgba bytes (as consumed by
	// a styling-to-drawing-mode transition opcode) do not hold a valid
	// alpha-premultiplied color and are not a recognized gradient encoding
	// either.
	PaintTypeInvalid PaintType = iota
	// PaintTypeFlatColor means that Paint.FlatColor holds the fill.
	PaintTypeFlatColor
	// PaintTypeLinearGradient means that Paint.Gradient holds a linear
	// gradient's parameters.
	PaintTypeLinearGradient
	// PaintTypeRadialGradient means that Paint.Gradient holds a radial
	// gradient's parameters.
	PaintTypeRadialGradient
)

// GradientSpread says how a gradient should be extended past its nominal
// bounds (where the gradient's implicit offset ranges over [0, 1]).
type GradientSpread uint8

const (
	// GradientSpreadNone means that offsets outside of [0, 1] map to
	// transparent black.
	GradientSpreadNone GradientSpread = iota
	// GradientSpreadPad means that offsets below 0 and above 1 map to the
	// colors that 0 and 1 would map to.
	GradientSpreadPad
	// GradientSpreadReflect means that the offset mapping is reflected
	// start-to-end, end-to-start, start-to-end, etc.
	GradientSpreadReflect
	// GradientSpreadRepeat means that the offset mapping is repeated
	// start-to-end, start-to-end, start-to-end, etc.
	GradientSpreadRepeat
)

// GradientStop is an offset and a non-premultiplied color, one entry of a
// gradient's stop list.
type GradientStop struct {
	Offset float32
	Color  NonPremulColor
}

// Gradient holds the parameters shared by linear and radial gradients: its
// spread rule, its stops (read from the CREG and NREG banks, starting at
// CBASE and NBASE respectively) and the affine matrix that maps (x, y)
// coordinates, in the graphic's own coordinate space, to gradient space. In
// gradient space, a linear gradient ranges from x == 0 to x == 1 and a
// radial gradient is centered on (0, 0) with radius 1:
//
//	dx = Transform[0][0]*px + Transform[0][1]*py + Transform[0][2]
//	dy = Transform[1][0]*px + Transform[1][1]*py + Transform[1][2]
type Gradient struct {
	Spread GradientSpread
	Stops  []GradientStop

	Transform [2][3]float64
}

// Paint is a tagged union of the ways a path can be filled: a flat color, or
// a linear or radial gradient. It corresponds to the opaque iconvg_paint
// type of the reference implementation, resolved against the register banks
// in effect when the fill was selected.
type Paint struct {
	Type      PaintType
	FlatColor PremulColor
	Gradient  Gradient
}

// rawPaint holds the 4 paint_rgba bytes set by a styling-to-drawing-mode
// transition opcode (0xC0-0xC6): a verbatim copy of a CREG slot.
type rawPaint [4]byte

// isValidPremulColor mirrors iconvg_paint__is_flat_color: a color is a
// sensible alpha-premultiplied color only if none of its RGB channels
// exceeds its alpha channel.
func (p rawPaint) isValidPremulColor() bool {
	return p[0] <= p[3] && p[1] <= p[3] && p[2] <= p[3]
}

// isGradient reports whether p's bit pattern is the virtual machine's
// repurposing of a nonsensical flat color into a gradient descriptor: alpha
// is zero but blue is at least 128.
func (p rawPaint) isGradient() bool {
	return p[3] == 0 && p[2] >= 128
}

// classifyPaint resolves a rawPaint against the given register banks into a
// fully realized Paint, or PaintTypeInvalid if it is neither a sensible
// flat color nor a recognized gradient encoding.
func classifyPaint(p rawPaint, creg *Palette, nreg *[64]float32) Paint {
	if p.isValidPremulColor() {
		return Paint{Type: PaintTypeFlatColor, FlatColor: p.asPremulColor()}
	}
	if !p.isGradient() {
		return Paint{Type: PaintTypeInvalid}
	}

	nStops := int(p[0] & 0x3F)
	cBase := int(p[1] & 0x3F)
	spread := GradientSpread(p[1] >> 6)
	nBase := int(p[2] & 0x3F)
	radial := p[2]&0x40 != 0

	g := Gradient{Spread: spread}
	g.Stops = make([]GradientStop, nStops)
	for i := 0; i < nStops; i++ {
		g.Stops[i] = GradientStop{
			Offset: nreg[(nBase+i)&0x3F],
			Color:  creg[(cBase+i)&0x3F].AsNonPremul(),
		}
	}
	g.Transform = [2][3]float64{
		{
			float64(nreg[(nBase-6)&0x3F]),
			float64(nreg[(nBase-5)&0x3F]),
			float64(nreg[(nBase-4)&0x3F]),
		},
		{
			float64(nreg[(nBase-3)&0x3F]),
			float64(nreg[(nBase-2)&0x3F]),
			float64(nreg[(nBase-1)&0x3F]),
		},
	}

	paintType := PaintTypeLinearGradient
	if radial {
		paintType = PaintTypeRadialGradient
	}
	return Paint{Type: paintType, Gradient: g}
}

// asPremulColor reinterprets p as a flat, alpha-premultiplied color.
func (p rawPaint) asPremulColor() PremulColor {
	return PremulColor{p[0], p[1], p[2], p[3]}
}

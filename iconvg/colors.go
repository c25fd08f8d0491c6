// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

// NonPremulColor is a non-alpha-premultiplied RGBA color, 8 bits per channel.
//
// It is a distinct type from PremulColor so that the two cannot be mixed up
// at API boundaries: only PremulColor ever flows through register banks or
// the canvas contract.
type NonPremulColor struct {
	R, G, B, A uint8
}

// PremulColor is an alpha-premultiplied RGBA color, 8 bits per channel. All
// color arithmetic inside the decoder uses this representation.
type PremulColor struct {
	R, G, B, A uint8
}

// Opaque reports whether c's alpha channel is 0xFF.
func (c PremulColor) Opaque() bool { return c.A == 0xFF }

// AsNonPremul converts c to its non-premultiplied form. A fully transparent
// color converts to the zero NonPremulColor.
func (c PremulColor) AsNonPremul() NonPremulColor {
	switch c.A {
	case 0x00:
		return NonPremulColor{}
	case 0xFF:
		return NonPremulColor{c.R, c.G, c.B, c.A}
	}
	a := uint32(c.A)
	return NonPremulColor{
		R: uint8(uint32(c.R) * 0xFF / a),
		G: uint8(uint32(c.G) * 0xFF / a),
		B: uint8(uint32(c.B) * 0xFF / a),
		A: c.A,
	}
}

// Premul converts a non-premultiplied color to its premultiplied form.
func (c NonPremulColor) Premul() PremulColor {
	if c.A == 0xFF {
		return PremulColor{c.R, c.G, c.B, c.A}
	}
	a := uint32(c.A)
	return PremulColor{
		R: uint8((uint32(c.R)*a + 127) / 0xFF),
		G: uint8((uint32(c.G)*a + 127) / 0xFF),
		B: uint8((uint32(c.B)*a + 127) / 0xFF),
		A: c.A,
	}
}

// opaqueBlack is the fully opaque black premultiplied color, used as the
// default fill for every slot of the default palette and for out-of-range
// suggested-palette entries.
var opaqueBlack = PremulColor{0x00, 0x00, 0x00, 0xFF}

// Palette is an ordered sequence of exactly 64 premultiplied colors.
type Palette [64]PremulColor

// DefaultPalette consists entirely of opaque black, "as black is always
// fashionable".
var DefaultPalette = func() Palette {
	var p Palette
	for i := range p {
		p[i] = opaqueBlack
	}
	return p
}()

// oneByteColors is the built-in table used to resolve one-byte color
// payloads in the range [0x00, 0x80). Byte values in [0, 125) encode the
// RGBA color whose red, green and blue values come from the base-5 encoding
// of that byte value, where the digits 0, 1, 2, 3 and 4 map to 0x00, 0x40,
// 0x80, 0xc0 and 0xff; alpha is always 0xff. Byte values 125, 126 and 127
// are the three translucent grays 0xc0c0c0c0, 0x80808080 and 0x00000000
// (already premultiplied, hence the matching R=G=B=A).
var oneByteColors = func() [128]PremulColor {
	var table [128]PremulColor
	levels := [5]uint8{0x00, 0x40, 0x80, 0xc0, 0xff}
	for u := 0; u < 125; u++ {
		r := levels[(u/25)%5]
		g := levels[(u/5)%5]
		b := levels[u%5]
		table[u] = PremulColor{r, g, b, 0xff}
	}
	table[125] = PremulColor{0xc0, 0xc0, 0xc0, 0xc0}
	table[126] = PremulColor{0x80, 0x80, 0x80, 0x80}
	table[127] = PremulColor{0x00, 0x00, 0x00, 0x00}
	return table
}()

// resolveOneByteColor decodes a one-byte color payload u against the given
// custom palette and color register bank.
//
// Byte values below 0x80 index the built-in table. Values in [0x80, 0xC0)
// index the custom palette (low 6 bits). Values in [0xC0, 0x100) index a
// color register (low 6 bits). This is the split used by the published
// format; it differs from an earlier, incompatible experimental encoding
// that packed a 6-bit direct RGB color into the [0x80, 0xC0) range.
func resolveOneByteColor(u uint8, customPalette, creg *Palette) PremulColor {
	switch {
	case u < 0x80:
		return oneByteColors[u]
	case u < 0xC0:
		return customPalette[u&0x3F]
	default:
		return creg[u&0x3F]
	}
}

// blendOneByteColors implements the indirect 3-byte color encoding: a blend
// of two one-byte colors p and q, weighted by t in [0, 255].
func blendOneByteColors(t uint8, p, q PremulColor) PremulColor {
	qBlend := uint32(t)
	pBlend := 255 - qBlend
	mix := func(pc, qc uint8) uint8 {
		return uint8((pBlend*uint32(pc) + qBlend*uint32(qc) + 128) / 255)
	}
	return PremulColor{
		R: mix(p.R, q.R),
		G: mix(p.G, q.G),
		B: mix(p.B, q.B),
		A: mix(p.A, q.A),
	}
}

// decodeColor2 expands a 2-byte nibble-packed RGBA color: each nibble x maps
// to the byte 0x11*x.
func decodeColor2(b0, b1 byte) PremulColor {
	return PremulColor{
		R: 0x11 * (b0 >> 4),
		G: 0x11 * (b0 & 0x0F),
		B: 0x11 * (b1 >> 4),
		A: 0x11 * (b1 & 0x0F),
	}
}

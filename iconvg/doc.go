// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package iconvg decodes IconVG, a compact binary format for simple vector
graphics: icons, logos, glyphs and emoji.

This package is a decoder only: Decode and DecodeViewBox turn a byte slice
into calls on a Canvas. There is no encoder here; producing IconVG bytes, or
any other output format such as SVG or rasterized pixels, is someone else's
job. A Canvas implementation such as the sibling xraster package is what
turns the callbacks this package makes into actual pixels.

It is similar in concept to SVG but much simpler: no text, multimedia,
interactivity, scripting or animation, and no grouping of paths into higher
level objects. It is a presentation format, not an authoring format - the
anticipated workflow is that artists work in SVG or some other authoring
tool and export an IconVG version of the result, the same way they would
export a PNG.

It is not a pixel-exact format. Different rasterizers may render the same
graphic slightly differently, due to implementation-specific rounding in
the floating point math. At ordinary icon sizes (up to a few thousand
pixels per side) such differences should not be visible.

# Structure

An IconVG graphic is a magic identifier, a sequence of metadata chunks, then
bytecode for a small virtual machine with two modes: a styling mode, where
color and number registers are set, and a drawing mode, where a path's
geometry is emitted. Decode runs that virtual machine, starting in styling
mode, until the input is exhausted.

In both modes, each instruction is a one-byte opcode followed by a variable
number of data bytes; the meaning of an opcode byte depends on which mode
the machine is currently in.

# Level of detail

The machine state includes two level-of-detail registers, LOD0 and LOD1,
initialized to 0 and +Inf. A drawing region is actually painted onto the
caller's Canvas only if height-in-pixels H (from DecodeOptions, or derived
from the destination rectangle) satisfies LOD0 <= H < LOD1; otherwise its
opcodes are still consumed (so decoding stays in sync) but routed to a
no-op sink. This lets one graphic bundle a simplified rendering for small
sizes alongside a more detailed one for large sizes.

# Registers

The machine state includes 64 color registers CREG[0..63] and 64 number
registers NREG[0..63] (Go types Palette and [64]float32 respectively),
indexed modulo 64 - CREG[70] is CREG[6], CREG[-1] is CREG[63]. CREG starts
out holding the custom palette (see below); NREG starts out all zero. Two
selector registers, CSEL and NSEL, index into CREG and NREG and also start
at zero.

# Colors and gradients

Colors are 32-bit alpha-premultiplied RGBA (PremulColor): c00000c0 is a
75%-opaque, fully saturated red. Some RGBA bit patterns are nonsensical as
premultiplied color (a channel exceeding alpha) and the virtual machine
repurposes those to describe a gradient instead: a register whose alpha
byte is zero but whose blue byte is at least 128 is a gradient, not a flat
color - see classifyPaint and the Gradient type. Its remaining bits pack:

  - low 6 bits of red: NSTOPS, the number of color/offset stops.
  - low 6 bits of green: CBASE, the CREG index of the first stop's color.
  - high 2 bits of green: the spread mode (GradientSpread) for offsets
    outside [0, 1]: none, pad, reflect or repeat.
  - low 6 bits of blue: NBASE, the NREG index of the first stop's offset.
  - the 0x40 bit of blue: 0 for a linear gradient, 1 for radial.

Stop i has color CREG[CBASE+i] and offset NREG[NBASE+i]. The six numbers at
NREG[NBASE-6 .. NBASE-1] are an affine matrix [a b c; d e f] mapping a
graphic-space coordinate (px, py) to gradient space (dx, dy):

	dx = a*px + b*py + c
	dy = d*px + e*py + f

In gradient space a linear gradient ranges from x=0 to x=1; a radial
gradient is centered on (0, 0) with radius 1. xraster/internal/gradient
evaluates this matrix per pixel; it can also derive one for two-point
linear and circular gradients (InitLinear, InitCircular), but has no
constructor for elliptical gradients.

# Color encodings

A CREG write opcode is followed by a color encoded in 1, 2, 3 or 4 bytes,
depending on the opcode. A 1-byte color in [0, 125) is the base-5 encoding
of its red, green and blue (digits 0..4 map to 0x00, 0x40, 0x80, 0xc0, 0xff;
alpha is 0xff) - e.g. 40ffc0ff encodes as 0x30, since 48 = 1*25 + 4*5 + 3.
Values 125, 126 and 127 mean the translucent grays c0c0c0c0, 80808080 and
00000000. Values in [128, 192) index the custom palette; values in
[192, 256) index a CREG register - both by the low 6 bits.

A 2-byte color packs four 4-bit channels; a 3-byte "direct" color is 8-bit
RGB with implicit alpha 0xff; a 4-byte color is 8-bit RGBA. A 3-byte
"indirect" color blends two 1-byte colors C0 and C1 by a weight T, per
channel: round(((255-T)*C0 + T*C1) / 255).

# Palettes

A 64-entry custom palette (Palette) lets one graphic render several ways,
e.g. an emoji with swappable skin and hair colors. Decode resolves it from,
in order of preference, DecodeOptions.Palette, the graphic's own MID 1
suggested palette, or DefaultPalette (all opaque black). A caller-supplied
palette entry that is nonsensical as premultiplied color resolves to opaque
black rather than being reinterpreted as a gradient.

# Numbers

Numbers (natural, real, coordinate and zero-to-one) share a length prefix:
the low bit of the first byte is 0 for a 1-byte encoding, otherwise the
next bit selects 2 or 4 bytes. A natural number is a plain non-negative
integer. A real number's bits, for 1 and 2-byte encodings, equal the
natural number; for 4 bytes, the stored uint32 (low 2 bits cleared) is
reinterpreted as an IEEE 754 float32. A coordinate number rescales and
offsets that same real encoding (1 byte: integers in [-64, 64); 2 bytes:
1/64 granularity in [-128, 128); 4 bytes: the real number unchanged). A
zero-to-one number divides the real encoding by 120 (1 byte) or 15120
(2 bytes) - angles, for instance, are zero-to-one numbers expressing a
fraction of a full turn.

# Metadata

The metadata section starts with a natural number of chunks, each prefixed
by its own length and starting with a natural-number metadata ID (MID);
MIDs must strictly increase and each is optional. MID 0 (ViewBox) holds
four coordinates, the graphic's bounding rectangle; absent, it defaults to
(-32, -32, 32, 32) (DefaultViewBox). MID 1 (Suggested Palette) holds a
spec byte (low 6 bits: N-1 colors; high 2 bits: 1/2/3/4 bytes per color)
followed by N colors in that width; palette entries beyond N default to
opaque black.

# Styling opcodes

Many styling opcodes use an adjustment ADJ, the low 3 bits of the opcode
(0..6 in practice; no ADJ-using opcode has all three low bits set).
Opcodes 0x00-0x3f set CSEL to the opcode's low 6 bits; 0x40-0x7f set NSEL
likewise. Opcodes 0x80-0xa6 (in 5 sub-ranges by color width) set
CREG[CSEL-ADJ] to the color that follows; the 5 sub-range-final opcodes
0x87/0x8f/0x97/0x9f/0xa7 instead set CREG[CSEL] and then increment CSEL.
Opcodes 0xa8-0xbe similarly set NREG[NSEL-ADJ] to a real, coordinate or
zero-to-one number (0xaf/0xb7/0xbf increment NSEL instead). Opcodes
0xc0-0xc6 switch to drawing mode: CREG[CSEL-ADJ] becomes the fill (a flat
color or a gradient), and the two coordinates that follow become an
implicit starting BeginPath. Opcode 0xc7 sets LOD0 and LOD1 from the two
real numbers that follow. All other opcodes in this mode are rejected with
ErrBadStylingOpcode.

# Drawing opcodes

Drawing mode reuses SVG's one-letter path mnemonics (M, Z, L, H, V, C, S,
Q, T, A; lower case means relative coordinates), with one difference: SVG
treats a second, unbroken moveto as a lineto, but IconVG always treats
consecutive movetos as movetos.

Opcodes in [0x00, 0xdf] come in contiguous runs of 16 or 32, one drawing
command repeated a number of times (RC) encoded by the opcode's position
within its run - e.g. 0x68 is 9 consecutive Q (absolute quadratic Bézier)
commands. The T/S commands' implicit "smooth" control point is the
reflection of the previous curve's last control point through the current
endpoint, tracked across calls the way the decoder's currX/currY/x1/y1
locals do.

An A or a (opcodes 0xc0-0xdf) reads, per repetition: two coordinates (the
ellipse's radii), one zero-to-one number (the x-axis rotation, a fraction
of a full turn), one natural number (flags: bit 0 large-arc, bit 1 sweep)
and two more coordinates (the endpoint), then forwards the arc to pathArcTo
to be split into cubic Bézier segments.

Opcode 0xe1 (z) ends the current path and fill. Opcodes 0xe2/0xe3 end the
path and begin a new one at an absolute/relative point. Opcodes
0xe6-0xe9 are single horizontal/vertical line-to variants (H/h/V/v). Any
other opcode in drawing mode is rejected with ErrBadDrawingOpcode; running
out of input mid-path is ErrBadPathUnfinished.

These descriptions all assume the level-of-detail gate (above) is
satisfied; if not, the same bytes are still consumed, just not forwarded
to the caller's Canvas.
*/
package iconvg

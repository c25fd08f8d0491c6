// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import "math"

// maxHeightInPixels bounds the height (in pixels) used to gate
// level-of-detail opcodes. The limit is arbitrary but keeps the value well
// within the lossless range of both int64 and float64.
const maxHeightInPixels = 1 << 20

// adjustments are the ADJ values from the register-selector opcodes: the
// low 3 bits of such an opcode name an offset from CSEL or NSEL, except
// that the 0x07 case means "use CSEL/NSEL as-is, then increment it".
var adjustments = [8]uint32{0, 1, 2, 3, 4, 5, 6, 0}

// DecodeOptions holds the optional arguments to Decode.
type DecodeOptions struct {
	// Palette, if non-nil, is the custom palette used for rendering. If
	// nil, the graphic's own suggested palette is used instead.
	Palette *Palette

	// HeightInPixels, if non-nil, overrides the height (in pixels) used to
	// gate level-of-detail opcodes. If nil, it is derived from dstRect's
	// height, capped at 1<<20.
	HeightInPixels *int64
}

// decoderState is the mutable state threaded through bytecode execution; it
// corresponds to the reference implementation's (misleadingly named, for
// historical reasons) iconvg_paint struct.
type decoderState struct {
	viewbox        Rectangle
	heightInPixels int64
	paintRGBA      rawPaint
	customPalette  Palette
	creg           Palette
	nreg           [64]float32
}

// Decode interprets the IconVG graphic src, calling canvas's methods to
// paint it into dstRect. A nil canvas behaves as BrokenCanvas(nil): every
// call is a no-op success, so Decode merely validates src.
//
// The call sequence always begins with exactly one BeginDecode call and
// ends with exactly one EndDecode call. If src holds a well-formed graphic
// and no Canvas method returns an error, EndDecode's err argument is nil.
// Otherwise, decoding stops as soon as a non-nil error is encountered,
// whether a file format error or a Canvas error, and that error becomes
// EndDecode's err argument and Decode's own return value.
func Decode(canvas Canvas, dstRect Rectangle, src []byte, opts *DecodeOptions) error {
	if canvas == nil {
		canvas = BrokenCanvas(nil)
	}

	err := canvas.BeginDecode(dstRect)
	numBytesConsumed, numBytesRemaining := 0, len(src)
	if err == nil {
		numBytesConsumed, numBytesRemaining, err = decode(canvas, dstRect, src, opts)
	}
	return canvas.EndDecode(err, numBytesConsumed, numBytesRemaining)
}

func decode(canvas Canvas, dstRect Rectangle, src []byte, opts *DecodeOptions) (numBytesConsumed, numBytesRemaining int, err error) {
	b := buffer(src)

	var state decoderState
	state.viewbox = DefaultViewBox
	if opts != nil && opts.HeightInPixels != nil {
		state.heightInPixels = *opts.HeightInPixels
	} else if h := dstRect.Height(); h <= maxHeightInPixels {
		state.heightInPixels = int64(h)
	} else {
		state.heightInPixels = maxHeightInPixels
	}
	state.customPalette = DefaultPalette

	m, parseErr := parseMetadataChunks(&b, false)
	if parseErr != nil {
		return len(src) - len(b), len(b), parseErr
	}
	if m.haveViewBox {
		state.viewbox = m.viewbox
	}
	if m.havePalette {
		state.customPalette = m.palette
	}

	if err := canvas.OnMetadataViewBox(state.viewbox); err != nil {
		return len(src) - len(b), len(b), err
	}
	if err := canvas.OnMetadataSuggestedPalette(&state.customPalette); err != nil {
		return len(src) - len(b), len(b), err
	}

	if opts != nil && opts.Palette != nil {
		state.customPalette = *opts.Palette
		for i, c := range state.customPalette {
			if c.R > c.A || c.G > c.A || c.B > c.A {
				state.customPalette[i] = opaqueBlack
			}
		}
	}
	state.creg = state.customPalette

	err = executeBytecode(canvas, dstRect, &b, &state)
	return len(src) - len(b), len(b), err
}

func executeBytecode(canvasArg Canvas, dstRect Rectangle, b *buffer, state *decoderState) error {
	noOpCanvas := BrokenCanvas(nil)
	canvas := noOpCanvas

	var currX, currY, x1, y1, x2, y2, x3, y3 float32

	t := makeTransform2D(dstRect, state.viewbox)

	var sel [2]uint32
	lod := [2]float64{0, math.Inf(+1)}
	inDrawingMode := false

	for {
		if len(*b) == 0 {
			if inDrawingMode {
				return ErrBadPathUnfinished
			}
			return nil
		}
		opcode := (*b)[0]
		*b = (*b)[1:]

		if !inDrawingMode {
			switch {
			case opcode < 0x80:
				sel[opcode>>6] = uint32(opcode & 0x3F)
				continue

			case opcode < 0x88: // Set CREG[etc]; 1 byte color.
				if len(*b) < 1 {
					return ErrBadColor
				}
				idx := (sel[0] - adjustments[opcode&0x07]) & 0x3F
				state.creg[idx] = resolveOneByteColor((*b)[0], &state.customPalette, &state.creg)
				*b = (*b)[1:]
				if opcode&0x07 == 0x07 {
					sel[0]++
				}
				continue

			case opcode < 0x90: // Set CREG[etc]; 2 byte color.
				if len(*b) < 2 {
					return ErrBadColor
				}
				idx := (sel[0] - adjustments[opcode&0x07]) & 0x3F
				state.creg[idx] = decodeColor2((*b)[0], (*b)[1])
				*b = (*b)[2:]
				if opcode&0x07 == 0x07 {
					sel[0]++
				}
				continue

			case opcode < 0x98: // Set CREG[etc]; 3 byte (direct) color.
				if len(*b) < 3 {
					return ErrBadColor
				}
				idx := (sel[0] - adjustments[opcode&0x07]) & 0x3F
				state.creg[idx] = PremulColor{(*b)[0], (*b)[1], (*b)[2], 0xFF}
				*b = (*b)[3:]
				if opcode&0x07 == 0x07 {
					sel[0]++
				}
				continue

			case opcode < 0xA0: // Set CREG[etc]; 4 byte color.
				if len(*b) < 4 {
					return ErrBadColor
				}
				idx := (sel[0] - adjustments[opcode&0x07]) & 0x3F
				state.creg[idx] = PremulColor{(*b)[0], (*b)[1], (*b)[2], (*b)[3]}
				*b = (*b)[4:]
				if opcode&0x07 == 0x07 {
					sel[0]++
				}
				continue

			case opcode < 0xA8: // Set CREG[etc]; 3 byte (indirect) color.
				if len(*b) < 3 {
					return ErrBadColor
				}
				idx := (sel[0] - adjustments[opcode&0x07]) & 0x3F
				p := resolveOneByteColor((*b)[1], &state.customPalette, &state.creg)
				q := resolveOneByteColor((*b)[2], &state.customPalette, &state.creg)
				state.creg[idx] = blendOneByteColors((*b)[0], p, q)
				*b = (*b)[3:]
				if opcode&0x07 == 0x07 {
					sel[0]++
				}
				continue

			case opcode < 0xB0: // Set NREG[etc]; real number.
				idx := (sel[1] - adjustments[opcode&0x07]) & 0x3F
				num, ok := b.decodeReal()
				if !ok {
					return ErrBadNumber
				}
				state.nreg[idx] = num
				if opcode&0x07 == 0x07 {
					sel[1]++
				}
				continue

			case opcode < 0xB8: // Set NREG[etc]; coordinate number.
				idx := (sel[1] - adjustments[opcode&0x07]) & 0x3F
				num, ok := b.decodeCoordinate()
				if !ok {
					return ErrBadCoordinate
				}
				state.nreg[idx] = num
				if opcode&0x07 == 0x07 {
					sel[1]++
				}
				continue

			case opcode < 0xC0: // Set NREG[etc]; zero-to-one number.
				idx := (sel[1] - adjustments[opcode&0x07]) & 0x3F
				num, ok := b.decodeZeroToOne()
				if !ok {
					return ErrBadNumber
				}
				state.nreg[idx] = num
				if opcode&0x07 == 0x07 {
					sel[1]++
				}
				continue

			case opcode < 0xC7: // Switch to the drawing mode.
				idx := (sel[0] - adjustments[opcode&0x07]) & 0x3F
				c := state.creg[idx]
				state.paintRGBA = rawPaint{c.R, c.G, c.B, c.A}
				paint := classifyPaint(state.paintRGBA, &state.creg, &state.nreg)
				if paint.Type == PaintTypeInvalid {
					return ErrInvalidPaintType
				}
				var ok bool
				if currX, ok = b.decodeCoordinate(); !ok {
					return ErrBadCoordinate
				}
				if currY, ok = b.decodeCoordinate(); !ok {
					return ErrBadCoordinate
				}
				h := float64(state.heightInPixels)
				if lod[0] <= h && h < lod[1] {
					canvas = canvasArg
				} else {
					canvas = noOpCanvas
				}
				if err := canvas.BeginDrawing(); err != nil {
					return err
				}
				dx, dy := t.point(currX, currY)
				if err := canvas.BeginPath(dx, dy); err != nil {
					return err
				}
				x1, y1 = currX, currY
				inDrawingMode = true
				continue

			case opcode < 0xC8: // Set level-of-detail bounds.
				lod0, ok0 := b.decodeReal()
				lod1, ok1 := b.decodeReal()
				if !ok0 || !ok1 {
					return ErrBadNumber
				}
				lod[0] = float64(lod0)
				lod[1] = float64(lod1)
				continue
			}

			return ErrBadStylingOpcode
		}

		switch opcode >> 4 {
		case 0x00, 0x01: // 'L': absolute line_to.
			for reps := int(opcode & 0x1F); reps >= 0; reps-- {
				var ok bool
				if currX, ok = b.decodeCoordinate(); !ok {
					return ErrBadCoordinate
				}
				if currY, ok = b.decodeCoordinate(); !ok {
					return ErrBadCoordinate
				}
				dx, dy := t.point(currX, currY)
				if err := canvas.PathLineTo(dx, dy); err != nil {
					return err
				}
				x1, y1 = currX, currY
			}
			continue

		case 0x02, 0x03: // 'l': relative line_to.
			for reps := int(opcode & 0x1F); reps >= 0; reps-- {
				var ok bool
				if x1, ok = b.decodeCoordinate(); !ok {
					return ErrBadCoordinate
				}
				if y1, ok = b.decodeCoordinate(); !ok {
					return ErrBadCoordinate
				}
				currX += x1
				currY += y1
				dx, dy := t.point(currX, currY)
				if err := canvas.PathLineTo(dx, dy); err != nil {
					return err
				}
				x1, y1 = currX, currY
			}
			continue

		case 0x04: // 'T': absolute smooth quad_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				var ok bool
				if x2, ok = b.decodeCoordinate(); !ok {
					return ErrBadCoordinate
				}
				if y2, ok = b.decodeCoordinate(); !ok {
					return ErrBadCoordinate
				}
				if err := pathQuadTo(canvas, t, x1, y1, x2, y2); err != nil {
					return err
				}
				currX, currY = x2, y2
				x1 = (2 * currX) - x1
				y1 = (2 * currY) - y1
			}
			continue

		case 0x05: // 't': relative smooth quad_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				var ok bool
				if x2, ok = b.decodeCoordinate(); !ok {
					return ErrBadCoordinate
				}
				if y2, ok = b.decodeCoordinate(); !ok {
					return ErrBadCoordinate
				}
				x2 += currX
				y2 += currY
				if err := pathQuadTo(canvas, t, x1, y1, x2, y2); err != nil {
					return err
				}
				currX, currY = x2, y2
				x1 = (2 * currX) - x1
				y1 = (2 * currY) - y1
			}
			continue

		case 0x06: // 'Q': absolute quad_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				if !decodeCoords(b, &x1, &y1, &x2, &y2) {
					return ErrBadCoordinate
				}
				if err := pathQuadTo(canvas, t, x1, y1, x2, y2); err != nil {
					return err
				}
				currX, currY = x2, y2
				x1 = (2 * currX) - x1
				y1 = (2 * currY) - y1
			}
			continue

		case 0x07: // 'q': relative quad_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				if !decodeCoords(b, &x1, &y1, &x2, &y2) {
					return ErrBadCoordinate
				}
				x1 += currX
				y1 += currY
				x2 += currX
				y2 += currY
				if err := pathQuadTo(canvas, t, x1, y1, x2, y2); err != nil {
					return err
				}
				currX, currY = x2, y2
				x1 = (2 * currX) - x1
				y1 = (2 * currY) - y1
			}
			continue

		case 0x08: // 'S': absolute smooth cube_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				if !decodeCoords(b, &x2, &y2, &x3, &y3) {
					return ErrBadCoordinate
				}
				if err := pathCubeTo(canvas, t, x1, y1, x2, y2, x3, y3); err != nil {
					return err
				}
				currX, currY = x3, y3
				x1 = (2 * currX) - x2
				y1 = (2 * currY) - y2
			}
			continue

		case 0x09: // 's': relative smooth cube_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				if !decodeCoords(b, &x2, &y2, &x3, &y3) {
					return ErrBadCoordinate
				}
				x2 += currX
				y2 += currY
				x3 += currX
				y3 += currY
				if err := pathCubeTo(canvas, t, x1, y1, x2, y2, x3, y3); err != nil {
					return err
				}
				currX, currY = x3, y3
				x1 = (2 * currX) - x2
				y1 = (2 * currY) - y2
			}
			continue

		case 0x0A: // 'C': absolute cube_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				if !decodeCoords6(b, &x1, &y1, &x2, &y2, &x3, &y3) {
					return ErrBadCoordinate
				}
				if err := pathCubeTo(canvas, t, x1, y1, x2, y2, x3, y3); err != nil {
					return err
				}
				currX, currY = x3, y3
				x1 = (2 * currX) - x2
				y1 = (2 * currY) - y2
			}
			continue

		case 0x0B: // 'c': relative cube_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				if !decodeCoords6(b, &x1, &y1, &x2, &y2, &x3, &y3) {
					return ErrBadCoordinate
				}
				x1 += currX
				y1 += currY
				x2 += currX
				y2 += currY
				x3 += currX
				y3 += currY
				if err := pathCubeTo(canvas, t, x1, y1, x2, y2, x3, y3); err != nil {
					return err
				}
				currX, currY = x3, y3
				x1 = (2 * currX) - x2
				y1 = (2 * currY) - y2
			}
			continue

		case 0x0C: // 'A': absolute arc_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				rx, ry, rot, largeArc, sweep, fx, fy, ok := decodeArcArgs(b)
				if !ok {
					return ErrBadCoordinate
				}
				if err := pathArcTo(canvas, t, currX, currY, rx, ry, rot, largeArc, sweep, fx, fy); err != nil {
					return err
				}
				currX, currY = fx, fy
				x1, y1 = currX, currY
			}
			continue

		case 0x0D: // 'a': relative arc_to.
			for reps := int(opcode & 0x0F); reps >= 0; reps-- {
				rx, ry, rot, largeArc, sweep, fx, fy, ok := decodeArcArgs(b)
				if !ok {
					return ErrBadCoordinate
				}
				fx += currX
				fy += currY
				if err := pathArcTo(canvas, t, currX, currY, rx, ry, rot, largeArc, sweep, fx, fy); err != nil {
					return err
				}
				currX, currY = fx, fy
				x1, y1 = currX, currY
			}
			continue
		}

		switch opcode {
		case 0xE1: // 'z': close_path.
			if err := canvas.EndPath(); err != nil {
				return err
			}
			paint := classifyPaint(state.paintRGBA, &state.creg, &state.nreg)
			if err := canvas.EndDrawing(&paint); err != nil {
				return err
			}
			inDrawingMode = false
			continue

		case 0xE2: // 'z; M': close_path; absolute move_to.
			if err := canvas.EndPath(); err != nil {
				return err
			}
			var ok bool
			if currX, ok = b.decodeCoordinate(); !ok {
				return ErrBadCoordinate
			}
			if currY, ok = b.decodeCoordinate(); !ok {
				return ErrBadCoordinate
			}
			dx, dy := t.point(currX, currY)
			if err := canvas.BeginPath(dx, dy); err != nil {
				return err
			}
			x1, y1 = currX, currY
			continue

		case 0xE3: // 'z; m': close_path; relative move_to.
			if err := canvas.EndPath(); err != nil {
				return err
			}
			var ok bool
			if x1, ok = b.decodeCoordinate(); !ok {
				return ErrBadCoordinate
			}
			if y1, ok = b.decodeCoordinate(); !ok {
				return ErrBadCoordinate
			}
			currX += x1
			currY += y1
			dx, dy := t.point(currX, currY)
			if err := canvas.BeginPath(dx, dy); err != nil {
				return err
			}
			x1, y1 = currX, currY
			continue

		case 0xE6: // 'H': absolute horizontal line_to.
			var ok bool
			if currX, ok = b.decodeCoordinate(); !ok {
				return ErrBadCoordinate
			}
			dx, dy := t.point(currX, currY)
			if err := canvas.PathLineTo(dx, dy); err != nil {
				return err
			}
			x1, y1 = currX, currY
			continue

		case 0xE7: // 'h': relative horizontal line_to.
			var ok bool
			if x1, ok = b.decodeCoordinate(); !ok {
				return ErrBadCoordinate
			}
			currX += x1
			dx, dy := t.point(currX, currY)
			if err := canvas.PathLineTo(dx, dy); err != nil {
				return err
			}
			x1, y1 = currX, currY
			continue

		case 0xE8: // 'V': absolute vertical line_to.
			var ok bool
			if currY, ok = b.decodeCoordinate(); !ok {
				return ErrBadCoordinate
			}
			dx, dy := t.point(currX, currY)
			if err := canvas.PathLineTo(dx, dy); err != nil {
				return err
			}
			x1, y1 = currX, currY
			continue

		case 0xE9: // 'v': relative vertical line_to.
			var ok bool
			if y1, ok = b.decodeCoordinate(); !ok {
				return ErrBadCoordinate
			}
			currY += y1
			dx, dy := t.point(currX, currY)
			if err := canvas.PathLineTo(dx, dy); err != nil {
				return err
			}
			x1, y1 = currX, currY
			continue
		}

		return ErrBadDrawingOpcode
	}
}

func decodeCoords(b *buffer, a, c, d, e *float32) bool {
	var ok bool
	if *a, ok = b.decodeCoordinate(); !ok {
		return false
	}
	if *c, ok = b.decodeCoordinate(); !ok {
		return false
	}
	if *d, ok = b.decodeCoordinate(); !ok {
		return false
	}
	if *e, ok = b.decodeCoordinate(); !ok {
		return false
	}
	return true
}

func decodeCoords6(b *buffer, a, c, d, e, f, g *float32) bool {
	return decodeCoords(b, a, c, d, e) && readCoordinate(b, f) && readCoordinate(b, g)
}

func readCoordinate(b *buffer, out *float32) bool {
	v, ok := b.decodeCoordinate()
	if !ok {
		return false
	}
	*out = v
	return true
}

// decodeArcArgs reads an arc_to opcode's six arguments: the ellipse's two
// radii (coordinate numbers), its x-axis rotation as a fraction of a full
// turn (a zero-to-one number), a natural-number flags field whose low two
// bits hold the large-arc and sweep flags, and the arc's final point
// (coordinate numbers).
func decodeArcArgs(b *buffer) (rx, ry, rot float32, largeArc, sweep bool, fx, fy float32, ok bool) {
	if rx, ok = b.decodeCoordinate(); !ok {
		return
	}
	if ry, ok = b.decodeCoordinate(); !ok {
		return
	}
	if rot, ok = b.decodeZeroToOne(); !ok {
		return
	}
	flags, ok := b.decodeNatural()
	if !ok {
		return
	}
	largeArc = flags&0x01 != 0
	sweep = flags&0x02 != 0
	if fx, ok = b.decodeCoordinate(); !ok {
		return
	}
	if fy, ok = b.decodeCoordinate(); !ok {
		return
	}
	ok = true
	return
}

func pathQuadTo(canvas Canvas, t transform2D, x1, y1, x2, y2 float32) error {
	dx1, dy1 := t.point(x1, y1)
	dx2, dy2 := t.point(x2, y2)
	return canvas.PathQuadTo(dx1, dy1, dx2, dy2)
}

func pathCubeTo(canvas Canvas, t transform2D, x1, y1, x2, y2, x3, y3 float32) error {
	dx1, dy1 := t.point(x1, y1)
	dx2, dy2 := t.point(x2, y2)
	dx3, dy3 := t.point(x3, y3)
	return canvas.PathCubeTo(dx1, dy1, dx2, dy2, dx3, dy3)
}

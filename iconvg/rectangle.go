// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import "math"

// Rectangle is an axis-aligned rectangle with float32 coordinates.
//
// The zero value of Rectangle is the canonical empty rectangle: all four
// fields are positive zero.
type Rectangle struct {
	Min, Max [2]float32
}

// MakeRectangle returns the Rectangle (minX, minY)-(maxX, maxY).
func MakeRectangle(minX, minY, maxX, maxY float32) Rectangle {
	return Rectangle{
		Min: [2]float32{minX, minY},
		Max: [2]float32{maxX, maxY},
	}
}

// DefaultViewBox is the viewBox used when a graphic's metadata contains no
// explicit MID 0 (ViewBox) chunk.
var DefaultViewBox = MakeRectangle(-32, -32, +32, +32)

// IsFiniteAndNotEmpty reports whether r has finite coordinates and strictly
// positive width and height. A NaN coordinate, or a min that is not strictly
// less than the corresponding max, makes r empty.
func (r Rectangle) IsFiniteAndNotEmpty() bool {
	return (math.Inf(-1) < float64(r.Min[0])) &&
		(r.Min[0] < r.Max[0]) &&
		(float64(r.Max[0]) < math.Inf(+1)) &&
		(math.Inf(-1) < float64(r.Min[1])) &&
		(r.Min[1] < r.Max[1]) &&
		(float64(r.Max[1]) < math.Inf(+1))
}

// Width returns max(0, r.Max[0]-r.Min[0]).
func (r Rectangle) Width() float64 {
	if r.Max[0] > r.Min[0] {
		return float64(r.Max[0]) - float64(r.Min[0])
	}
	return 0
}

// Height returns max(0, r.Max[1]-r.Min[1]).
func (r Rectangle) Height() float64 {
	if r.Max[1] > r.Min[1] {
		return float64(r.Max[1]) - float64(r.Min[1])
	}
	return 0
}

// AspectRatio returns r's width and height, suitable for preserving aspect
// ratio when choosing a destination rectangle's dimensions.
func (r Rectangle) AspectRatio() (dx, dy float32) {
	return float32(r.Width()), float32(r.Height())
}

// transform2D holds the affine parameters (separate per axis) that map
// graphic space to destination space, and its inverse.
type transform2D struct {
	s2dScaleX, s2dBiasX float64
	s2dScaleY, s2dBiasY float64
	d2sScaleX, d2sBiasX float64
	d2sScaleY, d2sBiasY float64
}

// makeTransform2D computes the source-to-destination transform (and its
// inverse) that maps viewbox onto dst. Per the format, when either rectangle
// has a non-positive extent on either axis, both axes use the identity
// transform instead.
func makeTransform2D(dst Rectangle, viewbox Rectangle) transform2D {
	t := transform2D{
		s2dScaleX: 1, s2dScaleY: 1,
		d2sScaleX: 1, d2sScaleY: 1,
	}
	rw, rh := dst.Width(), dst.Height()
	vw, vh := viewbox.Width(), viewbox.Height()
	if rw > 0 && rh > 0 && vw > 0 && vh > 0 {
		t.s2dScaleX = rw / vw
		t.s2dScaleY = rh / vh
		t.s2dBiasX = float64(dst.Min[0]) - float64(viewbox.Min[0])*t.s2dScaleX
		t.s2dBiasY = float64(dst.Min[1]) - float64(viewbox.Min[1])*t.s2dScaleY
	}
	t.d2sScaleX = 1 / t.s2dScaleX
	t.d2sBiasX = -t.s2dBiasX * t.d2sScaleX
	t.d2sScaleY = 1 / t.s2dScaleY
	t.d2sBiasY = -t.s2dBiasY * t.d2sScaleY
	return t
}

func (t transform2D) point(x, y float32) (dx, dy float32) {
	return float32(float64(x)*t.s2dScaleX + t.s2dBiasX), float32(float64(y)*t.s2dScaleY + t.s2dBiasY)
}

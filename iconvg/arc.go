// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import "math"

// angleBetween returns the signed angle between two vectors u and v.
func angleBetween(ux, uy, vx, vy float64) float64 {
	uNorm := math.Sqrt(ux*ux + uy*uy)
	vNorm := math.Sqrt(vx*vx + vy*vy)
	cosine := (ux*vx + uy*vy) / (uNorm * vNorm)
	var ret float64
	switch {
	case cosine <= -1:
		ret = math.Pi
	case cosine >= +1:
		ret = 0
	default:
		ret = math.Acos(cosine)
	}
	if ux*vy < uy*vx {
		return -ret
	}
	return ret
}

// pathArcSegmentTo emits one cubic Bézier approximation of the elliptical
// arc segment from theta1 to theta2, on the ellipse centered at (cx, cy)
// with semi-axes (rx, ry) rotated by the angle whose cosine and sine are
// cosPhi and sinPhi.
func pathArcSegmentTo(canvas Canvas, t transform2D, cx, cy, theta1, theta2, rx, ry, cosPhi, sinPhi float64) error {
	halfDeltaTheta := (theta2 - theta1) * 0.5
	q := math.Sin(halfDeltaTheta * 0.5)
	k := (8 * q * q) / (3 * math.Sin(halfDeltaTheta))
	cos1, sin1 := math.Cos(theta1), math.Sin(theta1)
	cos2, sin2 := math.Cos(theta2), math.Sin(theta2)

	ix1 := rx * (+cos1 - (k * sin1))
	iy1 := ry * (+sin1 + (k * cos1))
	ix2 := rx * (+cos2 + (k * sin2))
	iy2 := ry * (+sin2 - (k * cos2))
	ix3 := rx * +cos2
	iy3 := ry * +sin2

	jx1 := cx + (cosPhi * ix1) - (sinPhi * iy1)
	jy1 := cy + (sinPhi * ix1) + (cosPhi * iy1)
	jx2 := cx + (cosPhi * ix2) - (sinPhi * iy2)
	jy2 := cy + (sinPhi * ix2) + (cosPhi * iy2)
	jx3 := cx + (cosPhi * ix3) - (sinPhi * iy3)
	jy3 := cy + (sinPhi * ix3) + (cosPhi * iy3)

	x1, y1 := t.point(float32(jx1), float32(jy1))
	x2, y2 := t.point(float32(jx2), float32(jy2))
	x3, y3 := t.point(float32(jx3), float32(jy3))
	return canvas.PathCubeTo(x1, y1, x2, y2, x3, y3)
}

// pathArcTo appends the SVG-style elliptical arc from (initialX, initialY)
// to (finalX, finalY) with the given radii, x-axis rotation (as a fraction
// of a full turn) and large-arc/sweep flags, by decomposing it into one or
// more cubic Bézier path_cube_to calls. It follows the W3C "conversion from
// endpoint to center parameterization", with the same two corrections that
// real-world implementations apply (absolute-valued radii; radii scaled up
// when too small for the given endpoints) rather than the literal spec text.
func pathArcTo(canvas Canvas, t transform2D, initialX, initialY, radiusX, radiusY, xAxisRotation float32, largeArc, sweep bool, finalX, finalY float32) error {
	rx := math.Abs(float64(radiusX))
	ry := math.Abs(float64(radiusY))
	if !(rx > 0) || !(ry > 0) {
		x, y := t.point(finalX, finalY)
		return canvas.PathLineTo(x, y)
	}

	x1, y1 := float64(initialX), float64(initialY)
	x2, y2 := float64(finalX), float64(finalY)
	phi := 2 * math.Pi * float64(xAxisRotation)

	halfDx := (x1 - x2) / 2
	halfDy := (y1 - y2) / 2
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	x1p := +(cosPhi * halfDx) + (sinPhi * halfDy)
	y1p := -(sinPhi * halfDx) + (cosPhi * halfDy)

	rxSq, rySq := rx*rx, ry*ry
	x1pSq, y1pSq := x1p*x1p, y1p*y1p

	radiiCheck := (x1pSq / rxSq) + (y1pSq / rySq)
	if radiiCheck > 1 {
		s := math.Sqrt(radiiCheck)
		rx *= s
		ry *= s
		rxSq, rySq = rx*rx, ry*ry
	}

	denom := (rxSq * y1pSq) + (rySq * x1pSq)
	step2 := 0.0
	if a := ((rxSq * rySq) / denom) - 1; a > 0 {
		step2 = math.Sqrt(a)
	}
	if largeArc == sweep {
		step2 = -step2
	}
	cxp := +(step2 * rx * y1p) / ry
	cyp := -(step2 * ry * x1p) / rx

	cx := +(cosPhi * cxp) - (sinPhi * cyp) + ((x1 + x2) / 2)
	cy := +(sinPhi * cxp) + (cosPhi * cyp) + ((y1 + y2) / 2)

	ax := (+x1p - cxp) / rx
	ay := (+y1p - cyp) / ry
	bx := (-x1p - cxp) / rx
	by := (-y1p - cyp) / ry
	theta1 := angleBetween(1, 0, ax, ay)
	deltaTheta := angleBetween(ax, ay, bx, by)
	if sweep {
		if deltaTheta < 0 {
			deltaTheta += 2 * math.Pi
		}
	} else {
		if deltaTheta > 0 {
			deltaTheta -= 2 * math.Pi
		}
	}

	n := int(math.Ceil(math.Abs(deltaTheta) / (math.Pi/2 + 0.001)))
	invN := 1 / float64(n)
	for i := 0; i < n; i++ {
		if err := pathArcSegmentTo(canvas, t, cx, cy,
			theta1+(deltaTheta*float64(i+0)*invN),
			theta1+(deltaTheta*float64(i+1)*invN),
			rx, ry, cosPhi, sinPhi); err != nil {
			return err
		}
	}
	return nil
}

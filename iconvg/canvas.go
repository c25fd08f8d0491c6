// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"fmt"
	"io"
)

// Canvas is the callback sink that Decode drives as it interprets an
// IconVG graphic. Implementations are conceptually a "virtual sub-class",
// analogous to a C vtable or a Cairo/Skia backend: this package depends
// only on the interface, never on a concrete rendering library.
//
// The call sequence Decode makes to a Canvas always starts with exactly one
// BeginDecode call and ends with exactly one EndDecode call. Within that,
// zero or more paths are drawn, each bracketed by BeginPath/EndPath (itself
// nested within a BeginDrawing/EndDrawing pair per fill).
//
// If any method returns a non-nil error, Decode stops interpreting the
// graphic as soon as possible and that error becomes the err argument to
// the final EndDecode call (and Decode's own return value).
type Canvas interface {
	// BeginDecode is called once, before any other method, with the
	// destination rectangle that the graphic should be painted into.
	BeginDecode(dstRect Rectangle) error

	// EndDecode is called exactly once, after every other method. err is
	// the first error encountered while decoding (from a malformed graphic
	// or from an earlier Canvas call), or nil on success.
	EndDecode(err error, numBytesConsumed, numBytesRemaining int) error

	// BeginDrawing is called once per fill, before the first BeginPath
	// call that uses that fill.
	BeginDrawing() error

	// EndDrawing is called once per fill, after the last EndPath call that
	// uses that fill, with the Paint that the just-drawn path(s) should be
	// filled with.
	EndDrawing(p *Paint) error

	// BeginPath starts a new path at (x0, y0), in destination coordinates.
	BeginPath(x0, y0 float32) error

	// EndPath closes the most recently begun path.
	EndPath() error

	// PathLineTo appends a straight line segment to the most recently
	// begun (and not yet ended) path, ending at (x1, y1).
	PathLineTo(x1, y1 float32) error

	// PathQuadTo appends a quadratic Bézier segment, with control point
	// (x1, y1) and ending at (x2, y2).
	PathQuadTo(x1, y1, x2, y2 float32) error

	// PathCubeTo appends a cubic Bézier segment, with control points
	// (x1, y1) and (x2, y2) and ending at (x3, y3).
	PathCubeTo(x1, y1, x2, y2, x3, y3 float32) error

	// OnMetadataViewBox is called once, during BeginDecode's logical
	// follow-up, with the graphic's ViewBox (either explicit, from a MID 0
	// metadata chunk, or the default).
	OnMetadataViewBox(viewbox Rectangle) error

	// OnMetadataSuggestedPalette is called once with the graphic's own
	// suggested palette (from a MID 1 chunk, or DefaultPalette). A caller's
	// DecodeOptions.Palette override, if any, replaces that palette for
	// subsequent color resolution but is not what this method receives.
	OnMetadataSuggestedPalette(suggestedPalette *Palette) error
}

// brokenCanvas is a Canvas whose methods all do nothing but return a fixed
// error. It mirrors iconvg_make_broken_canvas: useful both as the LOD-gated
// stand-in for drawing opcodes that fall outside the requested level of
// detail, and as a sentinel users can compose with to short-circuit a
// decode early (for instance to merely validate a graphic's syntax).
type brokenCanvas struct {
	err error
}

// BrokenCanvas returns a Canvas all of whose methods are no-ops that return
// err, except that EndDecode returns its own err argument instead when that
// argument is non-nil. A nil err means every method succeeds silently.
func BrokenCanvas(err error) Canvas { return brokenCanvas{err: err} }

func (b brokenCanvas) BeginDecode(Rectangle) error { return b.err }
func (b brokenCanvas) EndDecode(err error, numBytesConsumed, numBytesRemaining int) error {
	if err != nil {
		return err
	}
	return b.err
}
func (b brokenCanvas) BeginDrawing() error                      { return b.err }
func (b brokenCanvas) EndDrawing(*Paint) error                  { return b.err }
func (b brokenCanvas) BeginPath(x0, y0 float32) error           { return b.err }
func (b brokenCanvas) EndPath() error                           { return b.err }
func (b brokenCanvas) PathLineTo(x1, y1 float32) error          { return b.err }
func (b brokenCanvas) PathQuadTo(x1, y1, x2, y2 float32) error  { return b.err }
func (b brokenCanvas) PathCubeTo(x1, y1, x2, y2, x3, y3 float32) error {
	return b.err
}
func (b brokenCanvas) OnMetadataViewBox(Rectangle) error         { return b.err }
func (b brokenCanvas) OnMetadataSuggestedPalette(*Palette) error { return b.err }

// debugCanvas wraps another Canvas, logging every call (prefixed by
// messagePrefix) to w before forwarding it on, mirroring
// iconvg_make_debug_canvas. A nil w means nothing is logged. A nil wrapped
// Canvas means every call silently succeeds, except that EndDecode still
// returns its own err argument unchanged.
type debugCanvas struct {
	w             io.Writer
	messagePrefix string
	wrapped       Canvas
}

// DebugCanvas returns a Canvas that logs vtable-style calls to w, prefixed
// by messagePrefix, before forwarding them on to wrapped. w may be nil, in
// which case nothing is logged. wrapped may be nil, in which case every
// call is a no-op success except EndDecode, which returns its own err
// argument unchanged.
func DebugCanvas(w io.Writer, messagePrefix string, wrapped Canvas) Canvas {
	return debugCanvas{w: w, messagePrefix: messagePrefix, wrapped: wrapped}
}

func (d debugCanvas) logf(format string, args ...any) {
	if d.w == nil {
		return
	}
	fmt.Fprintf(d.w, d.messagePrefix+format+"\n", args...)
}

func (d debugCanvas) BeginDecode(dstRect Rectangle) error {
	d.logf("begin_decode(%v)", dstRect)
	if d.wrapped == nil {
		return nil
	}
	return d.wrapped.BeginDecode(dstRect)
}

func (d debugCanvas) EndDecode(err error, numBytesConsumed, numBytesRemaining int) error {
	d.logf("end_decode(%v, %d, %d)", err, numBytesConsumed, numBytesRemaining)
	if d.wrapped == nil {
		return err
	}
	return d.wrapped.EndDecode(err, numBytesConsumed, numBytesRemaining)
}

func (d debugCanvas) BeginDrawing() error {
	d.logf("begin_drawing()")
	if d.wrapped == nil {
		return nil
	}
	return d.wrapped.BeginDrawing()
}

func (d debugCanvas) EndDrawing(p *Paint) error {
	d.logf("end_drawing(%v)", p)
	if d.wrapped == nil {
		return nil
	}
	return d.wrapped.EndDrawing(p)
}

func (d debugCanvas) BeginPath(x0, y0 float32) error {
	d.logf("begin_path(%g, %g)", x0, y0)
	if d.wrapped == nil {
		return nil
	}
	return d.wrapped.BeginPath(x0, y0)
}

func (d debugCanvas) EndPath() error {
	d.logf("end_path()")
	if d.wrapped == nil {
		return nil
	}
	return d.wrapped.EndPath()
}

func (d debugCanvas) PathLineTo(x1, y1 float32) error {
	d.logf("path_line_to(%g, %g)", x1, y1)
	if d.wrapped == nil {
		return nil
	}
	return d.wrapped.PathLineTo(x1, y1)
}

func (d debugCanvas) PathQuadTo(x1, y1, x2, y2 float32) error {
	d.logf("path_quad_to(%g, %g, %g, %g)", x1, y1, x2, y2)
	if d.wrapped == nil {
		return nil
	}
	return d.wrapped.PathQuadTo(x1, y1, x2, y2)
}

func (d debugCanvas) PathCubeTo(x1, y1, x2, y2, x3, y3 float32) error {
	d.logf("path_cube_to(%g, %g, %g, %g, %g, %g)", x1, y1, x2, y2, x3, y3)
	if d.wrapped == nil {
		return nil
	}
	return d.wrapped.PathCubeTo(x1, y1, x2, y2, x3, y3)
}

func (d debugCanvas) OnMetadataViewBox(viewbox Rectangle) error {
	d.logf("on_metadata_viewbox(%v)", viewbox)
	if d.wrapped == nil {
		return nil
	}
	return d.wrapped.OnMetadataViewBox(viewbox)
}

func (d debugCanvas) OnMetadataSuggestedPalette(suggestedPalette *Palette) error {
	d.logf("on_metadata_suggested_palette(%v)", suggestedPalette)
	if d.wrapped == nil {
		return nil
	}
	return d.wrapped.OnMetadataSuggestedPalette(suggestedPalette)
}

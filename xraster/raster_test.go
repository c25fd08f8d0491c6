package xraster

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"golang.org/x/image/math/f64"

	"github.com/Hixie/iconvg/iconvg"
)

func TestResolveFillFlatColor(t *testing.T) {
	z := New(image.NewRGBA(image.Rect(0, 0, 4, 4)), image.Rect(0, 0, 4, 4), draw.Over)
	p := &iconvg.Paint{
		Type:      iconvg.PaintTypeFlatColor,
		FlatColor: iconvg.PremulColor{R: 0x11, G: 0x22, B: 0x33, A: 0xFF},
	}
	fill := z.resolveFill(p)
	u, ok := fill.(*image.Uniform)
	if !ok {
		t.Fatalf("resolveFill returned %T, want *image.Uniform", fill)
	}
	got := u.C.(*color.RGBA)
	if *got != (color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}) {
		t.Errorf("fill color = %v, want {0x11 0x22 0x33 0xff}", *got)
	}
}

func TestResolveFillInvalid(t *testing.T) {
	z := New(nil, image.Rectangle{}, draw.Over)
	fill := z.resolveFill(&iconvg.Paint{Type: iconvg.PaintTypeInvalid})
	if fill != nil {
		t.Errorf("resolveFill(invalid) = %v, want nil", fill)
	}
}

func TestBuildGradientEmptyStopsIsNil(t *testing.T) {
	z := New(nil, image.Rectangle{}, draw.Over)
	fill := z.buildGradient(&iconvg.Paint{Type: iconvg.PaintTypeLinearGradient})
	if fill != nil {
		t.Errorf("buildGradient with no stops = %v, want nil", fill)
	}
}

func TestPixelToGradientIdentity(t *testing.T) {
	z := &Rasterizer{
		viewbox: iconvg.MakeRectangle(0, 0, 10, 10),
		dstRect: iconvg.MakeRectangle(0, 0, 10, 10),
	}
	got := z.pixelToGradient([2][3]float64{{1, 0, 0}, {0, 1, 0}})
	want := f64.Aff3{1, 0, 0, 0, 1, 0}
	if got != want {
		t.Errorf("pixelToGradient = %v, want %v", got, want)
	}
}

func TestPixelToGradientScalesWithViewBox(t *testing.T) {
	// A viewbox twice as large as the destination rectangle means pixel
	// space must be scaled up by 2 to reach graphic space.
	z := &Rasterizer{
		viewbox: iconvg.MakeRectangle(0, 0, 20, 20),
		dstRect: iconvg.MakeRectangle(0, 0, 10, 10),
	}
	got := z.pixelToGradient([2][3]float64{{1, 0, 0}, {0, 1, 0}})
	if got[0] != 2 || got[4] != 2 {
		t.Errorf("pixelToGradient scale = (%v, %v), want (2, 2)", got[0], got[4])
	}
}

func TestBeginPathWithoutDstDoesNotPanic(t *testing.T) {
	z := New(nil, image.Rectangle{}, draw.Over)
	if err := z.BeginPath(0, 0); err != nil {
		t.Fatalf("BeginPath: %v", err)
	}
	if err := z.PathLineTo(1, 1); err != nil {
		t.Fatalf("PathLineTo: %v", err)
	}
	if err := z.EndPath(); err != nil {
		t.Fatalf("EndPath: %v", err)
	}
	if err := z.EndDrawing(&iconvg.Paint{Type: iconvg.PaintTypeFlatColor}); err != nil {
		t.Fatalf("EndDrawing: %v", err)
	}
}

func TestEndDrawingWithoutOpenPathIsNoop(t *testing.T) {
	z := New(image.NewRGBA(image.Rect(0, 0, 2, 2)), image.Rect(0, 0, 2, 2), draw.Over)
	if err := z.EndDrawing(&iconvg.Paint{Type: iconvg.PaintTypeFlatColor}); err != nil {
		t.Fatalf("EndDrawing: %v", err)
	}
}

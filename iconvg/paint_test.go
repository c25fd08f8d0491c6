package iconvg

import "testing"

func TestClassifyPaintFlatColor(t *testing.T) {
	var creg Palette
	var nreg [64]float32
	p := rawPaint{0x40, 0x80, 0xc0, 0xff}
	got := classifyPaint(p, &creg, &nreg)
	if got.Type != PaintTypeFlatColor {
		t.Fatalf("Type = %v, want PaintTypeFlatColor", got.Type)
	}
	if want := (PremulColor{0x40, 0x80, 0xc0, 0xff}); got.FlatColor != want {
		t.Errorf("FlatColor = %v, want %v", got.FlatColor, want)
	}
}

func TestClassifyPaintInvalid(t *testing.T) {
	var creg Palette
	var nreg [64]float32
	// Alpha is nonzero (not a gradient signature) yet a channel exceeds it
	// (not a valid premultiplied color either).
	p := rawPaint{0xff, 0x00, 0x00, 0x10}
	got := classifyPaint(p, &creg, &nreg)
	if got.Type != PaintTypeInvalid {
		t.Errorf("Type = %v, want PaintTypeInvalid", got.Type)
	}
}

func TestClassifyPaintLinearGradient(t *testing.T) {
	var creg Palette
	creg[10] = PremulColor{0xff, 0x00, 0x00, 0xff}
	creg[11] = PremulColor{0x00, 0xff, 0x00, 0xff}

	// nBase=22: the transform lives at nreg[nBase-6 .. nBase-1], i.e.
	// nreg[16..21]; the stop offsets live at nreg[nBase], nreg[nBase+1].
	var nreg [64]float32
	nreg[16], nreg[17], nreg[18] = 1, 0, 0
	nreg[19], nreg[20], nreg[21] = 0, 1, 0
	nreg[22] = 0.0
	nreg[23] = 1.0

	// nStops=2, cBase=10, spread=GradientSpreadPad(1), nBase=22, not
	// radial, and a gradient signature (alpha zero, blue at least 128).
	p := rawPaint{
		0x02,            // nStops = 2
		byte(10) | 1<<6, // cBase=10, spread=1 (Pad)
		0x80 | 22,       // radial bit clear, nBase=22, blue >= 128
		0x00,            // alpha = 0
	}

	got := classifyPaint(p, &creg, &nreg)
	if got.Type != PaintTypeLinearGradient {
		t.Fatalf("Type = %v, want PaintTypeLinearGradient", got.Type)
	}
	if len(got.Gradient.Stops) != 2 {
		t.Fatalf("len(Stops) = %d, want 2", len(got.Gradient.Stops))
	}
	if got.Gradient.Spread != GradientSpreadPad {
		t.Errorf("Spread = %v, want GradientSpreadPad", got.Gradient.Spread)
	}
	if got.Gradient.Stops[0].Offset != 0 || got.Gradient.Stops[1].Offset != 1 {
		t.Errorf("Stops offsets = %v, %v, want 0, 1", got.Gradient.Stops[0].Offset, got.Gradient.Stops[1].Offset)
	}
	wantTransform := [2][3]float64{{1, 0, 0}, {0, 1, 0}}
	if got.Gradient.Transform != wantTransform {
		t.Errorf("Transform = %v, want %v", got.Gradient.Transform, wantTransform)
	}
}

func TestClassifyPaintRadialGradient(t *testing.T) {
	var creg Palette
	var nreg [64]float32
	p := rawPaint{0x00, 0x00, 0x80 | 0x40, 0x00} // nStops=0, cBase=0, nBase radial bit set
	got := classifyPaint(p, &creg, &nreg)
	if got.Type != PaintTypeRadialGradient {
		t.Errorf("Type = %v, want PaintTypeRadialGradient", got.Type)
	}
}

func TestIsValidPremulColor(t *testing.T) {
	testCases := []struct {
		p    rawPaint
		want bool
	}{
		{rawPaint{0, 0, 0, 0}, true},
		{rawPaint{0xff, 0xff, 0xff, 0xff}, true},
		{rawPaint{0x01, 0, 0, 0}, false},
		{rawPaint{0, 0x01, 0, 0}, false},
		{rawPaint{0, 0, 0x01, 0}, false},
	}
	for _, tc := range testCases {
		if got := tc.p.isValidPremulColor(); got != tc.want {
			t.Errorf("isValidPremulColor(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestIsGradient(t *testing.T) {
	testCases := []struct {
		p    rawPaint
		want bool
	}{
		{rawPaint{0, 0, 0x80, 0}, true},
		{rawPaint{0, 0, 0x7f, 0}, false},
		{rawPaint{0, 0, 0x80, 0x01}, false},
	}
	for _, tc := range testCases {
		if got := tc.p.isGradient(); got != tc.want {
			t.Errorf("isGradient(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

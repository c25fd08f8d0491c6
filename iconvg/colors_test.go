package iconvg

import "testing"

func TestPremulNonPremulRoundTrip(t *testing.T) {
	testCases := []NonPremulColor{
		{0x00, 0x00, 0x00, 0x00},
		{0xff, 0xff, 0xff, 0xff},
		{0x80, 0x40, 0xc0, 0xff},
	}
	for _, c := range testCases {
		got := c.Premul().AsNonPremul()
		if got != c {
			t.Errorf("Premul().AsNonPremul() of %v = %v, want %v", c, got, c)
		}
	}
}

func TestAsNonPremulZeroAlpha(t *testing.T) {
	c := PremulColor{R: 0x12, G: 0x34, B: 0x56, A: 0x00}
	if got, want := c.AsNonPremul(), (NonPremulColor{}); got != want {
		t.Errorf("AsNonPremul of a transparent color = %v, want %v", got, want)
	}
}

func TestOpaque(t *testing.T) {
	if !(PremulColor{A: 0xff}).Opaque() {
		t.Errorf("Opaque() of alpha 0xff = false, want true")
	}
	if (PremulColor{A: 0xfe}).Opaque() {
		t.Errorf("Opaque() of alpha 0xfe = true, want false")
	}
}

func TestOneByteColorsTable(t *testing.T) {
	if got, want := oneByteColors[0], (PremulColor{0x00, 0x00, 0x00, 0xff}); got != want {
		t.Errorf("oneByteColors[0] = %v, want %v", got, want)
	}
	if got, want := oneByteColors[124], (PremulColor{0xff, 0xff, 0xff, 0xff}); got != want {
		t.Errorf("oneByteColors[124] = %v, want %v", got, want)
	}
	if got, want := oneByteColors[125], (PremulColor{0xc0, 0xc0, 0xc0, 0xc0}); got != want {
		t.Errorf("oneByteColors[125] = %v, want %v", got, want)
	}
	if got, want := oneByteColors[126], (PremulColor{0x80, 0x80, 0x80, 0x80}); got != want {
		t.Errorf("oneByteColors[126] = %v, want %v", got, want)
	}
	if got, want := oneByteColors[127], (PremulColor{0x00, 0x00, 0x00, 0x00}); got != want {
		t.Errorf("oneByteColors[127] = %v, want %v", got, want)
	}
}

func TestResolveOneByteColorRanges(t *testing.T) {
	var custom, creg Palette
	custom[0x10] = PremulColor{1, 2, 3, 4}
	creg[0x05] = PremulColor{5, 6, 7, 8}

	if got, want := resolveOneByteColor(0x00, &custom, &creg), oneByteColors[0]; got != want {
		t.Errorf("resolveOneByteColor(0x00) = %v, want %v", got, want)
	}
	if got, want := resolveOneByteColor(0x90, &custom, &creg), custom[0x10]; got != want {
		t.Errorf("resolveOneByteColor(0x90) = %v, want custom palette entry %v", got, want)
	}
	if got, want := resolveOneByteColor(0xC5, &custom, &creg), creg[0x05]; got != want {
		t.Errorf("resolveOneByteColor(0xC5) = %v, want creg entry %v", got, want)
	}
}

func TestBlendOneByteColorsEndpoints(t *testing.T) {
	p := PremulColor{0x00, 0x40, 0x80, 0xff}
	q := PremulColor{0xff, 0xc0, 0x20, 0x00}
	if got := blendOneByteColors(0, p, q); got != p {
		t.Errorf("blendOneByteColors(0, p, q) = %v, want p = %v", got, p)
	}
	if got := blendOneByteColors(0xff, p, q); got != q {
		t.Errorf("blendOneByteColors(255, p, q) = %v, want q = %v", got, q)
	}
}

func TestDecodeColor2Expansion(t *testing.T) {
	got := decodeColor2(0xA3, 0xF0)
	want := PremulColor{R: 0x11 * 0xA, G: 0x11 * 0x3, B: 0x11 * 0xF, A: 0x11 * 0x0}
	if got != want {
		t.Errorf("decodeColor2(0xA3, 0xF0) = %v, want %v", got, want)
	}
}

func TestDefaultPaletteIsOpaqueBlack(t *testing.T) {
	for i, c := range DefaultPalette {
		if c != opaqueBlack {
			t.Errorf("DefaultPalette[%d] = %v, want opaque black", i, c)
		}
	}
}

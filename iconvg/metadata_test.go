package iconvg

import "testing"

// emptyMetadata is magic followed by a zero chunk count.
var emptyMetadata = []byte{0x89, 0x49, 0x56, 0x47, 0x00}

// viewBox00to32Chunk is a single MID 0 chunk declaring the rectangle
// (0, 0)-(32, 32), preceded by its length and the numChunks=1 header.
var viewBox00to32Chunk = []byte{
	0x02,                   // numChunks = 1
	0x0a,                   // chunkLength = 5
	0x00,                   // id = 0 (ViewBox)
	0x80, 0x80, 0xc0, 0xc0, // minX=0, minY=0, maxX=32, maxY=32
}

func withMagic(rest ...byte) []byte {
	return append([]byte{0x89, 0x49, 0x56, 0x47}, rest...)
}

func TestDecodeViewBoxDefault(t *testing.T) {
	r, err := DecodeViewBox(emptyMetadata)
	if err != nil {
		t.Fatalf("DecodeViewBox: %v", err)
	}
	if r != DefaultViewBox {
		t.Errorf("DecodeViewBox = %v, want DefaultViewBox %v", r, DefaultViewBox)
	}
}

func TestDecodeViewBoxExplicit(t *testing.T) {
	src := withMagic(viewBox00to32Chunk...)
	r, err := DecodeViewBox(src)
	if err != nil {
		t.Fatalf("DecodeViewBox: %v", err)
	}
	want := MakeRectangle(0, 0, 32, 32)
	if r != want {
		t.Errorf("DecodeViewBox = %v, want %v", r, want)
	}
}

func TestDecodeViewBoxBadMagic(t *testing.T) {
	src := []byte{0x00, 0x49, 0x56, 0x47, 0x00}
	if _, err := DecodeViewBox(src); err != ErrBadMagicIdentifier {
		t.Errorf("DecodeViewBox = %v, want ErrBadMagicIdentifier", err)
	}
}

func TestDecodeViewBoxTooShort(t *testing.T) {
	if _, err := DecodeViewBox([]byte{0x89, 0x49, 0x56}); err != ErrBadMagicIdentifier {
		t.Errorf("DecodeViewBox = %v, want ErrBadMagicIdentifier", err)
	}
}

func TestDecodeMetadataDefaults(t *testing.T) {
	m, err := DecodeMetadata(emptyMetadata)
	if err != nil {
		t.Fatalf("DecodeMetadata: %v", err)
	}
	if m.ViewBox != DefaultViewBox {
		t.Errorf("ViewBox = %v, want %v", m.ViewBox, DefaultViewBox)
	}
	if m.SuggestedPalette != DefaultPalette {
		t.Errorf("SuggestedPalette differs from DefaultPalette")
	}
}

func TestDecodeMetadataStrictIDOrder(t *testing.T) {
	// Two MID 0 chunks in a row: the second violates strict ascending order.
	src := withMagic(
		0x04, // numChunks = 2
		0x0a, 0x00, 0x80, 0x80, 0xc0, 0xc0,
		0x0a, 0x00, 0x80, 0x80, 0xc0, 0xc0,
	)
	if _, err := DecodeMetadata(src); err != ErrBadMetadataIDOrder {
		t.Errorf("DecodeMetadata = %v, want ErrBadMetadataIDOrder", err)
	}
}

func TestDecodeMetadataChunkLengthOverrun(t *testing.T) {
	// chunkLength (natural 40, byte 0x50) claims more bytes than remain.
	src := withMagic(0x02, 0x50, 0x00)
	if _, err := DecodeMetadata(src); err != ErrBadMetadata {
		t.Errorf("DecodeMetadata = %v, want ErrBadMetadata", err)
	}
}

func TestDecodeMetadataUnknownMIDIgnoredByOnlyViewBox(t *testing.T) {
	// A MID 2 chunk is rejected by DecodeMetadata's strict pass but skipped
	// by the more permissive viewbox-only pass that DecodeViewBox uses.
	src := withMagic(
		0x02,       // numChunks = 1
		0x06,       // chunkLength = 3
		0x04,       // id = 2
		0x01, 0x02, // two bytes of opaque payload
	)
	if _, err := DecodeMetadata(src); err != ErrBadMetadata {
		t.Errorf("DecodeMetadata = %v, want ErrBadMetadata", err)
	}
	if r, err := DecodeViewBox(src); err != nil || r != DefaultViewBox {
		t.Errorf("DecodeViewBox = (%v, %v), want (DefaultViewBox, nil)", r, err)
	}
}

func TestDecodeMetadataSuggestedPaletteOneByte(t *testing.T) {
	// spec byte 0x00: n=1 entry, 1 byte per entry; payload byte 0x00 selects
	// oneByteColors[0], which is opaque black.
	src := withMagic(
		0x02, // numChunks = 1
		0x06, // chunkLength = 3
		0x02, // id = 1 (SuggestedPalette)
		0x00, // spec: n=1, bytesPerElem=1
		0x00, // payload
	)
	m, err := DecodeMetadata(src)
	if err != nil {
		t.Fatalf("DecodeMetadata: %v", err)
	}
	if m.SuggestedPalette[0] != oneByteColors[0] {
		t.Errorf("SuggestedPalette[0] = %v, want %v", m.SuggestedPalette[0], oneByteColors[0])
	}
	for i := 1; i < len(m.SuggestedPalette); i++ {
		if m.SuggestedPalette[i] != DefaultPalette[i] {
			t.Errorf("SuggestedPalette[%d] = %v, want untouched default %v", i, m.SuggestedPalette[i], DefaultPalette[i])
		}
	}
}

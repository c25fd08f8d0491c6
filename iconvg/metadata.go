// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

// magic is the four-byte identifier every IconVG graphic begins with.
var magic = [4]byte{0x89, 0x49, 0x56, 0x47}

// Metadata holds the information carried by an IconVG graphic's metadata
// chunks, resolved to their effective defaults when a chunk is absent.
type Metadata struct {
	ViewBox          Rectangle
	SuggestedPalette Palette
}

func decodeMagicIdentifier(b *buffer) bool {
	if len(*b) < 4 || (*b)[0] != magic[0] || (*b)[1] != magic[1] || (*b)[2] != magic[2] || (*b)[3] != magic[3] {
		return false
	}
	*b = (*b)[4:]
	return true
}

func decodeMetadataViewBox(b *buffer) (Rectangle, bool) {
	minX, ok := b.decodeCoordinate()
	if !ok {
		return Rectangle{}, false
	}
	minY, ok := b.decodeCoordinate()
	if !ok {
		return Rectangle{}, false
	}
	maxX, ok := b.decodeCoordinate()
	if !ok {
		return Rectangle{}, false
	}
	maxY, ok := b.decodeCoordinate()
	if !ok {
		return Rectangle{}, false
	}
	r := MakeRectangle(minX, minY, maxX, maxY)
	if !r.IsFiniteAndNotEmpty() {
		return Rectangle{}, false
	}
	return r, true
}

func decodeMetadataSuggestedPalette(b *buffer) (Palette, bool) {
	if len(*b) == 0 {
		return Palette{}, false
	}
	spec := (*b)[0]
	*b = (*b)[1:]

	n := int(1 + (spec & 0x3F))
	bytesPerElem := int(1 + (spec >> 6))
	if len(*b) != n*bytesPerElem {
		return Palette{}, false
	}
	p := DefaultPalette
	data := *b
	*b = (*b)[len(*b):]

	switch bytesPerElem {
	case 1:
		for i := 0; i < n; i++ {
			u := data[i]
			if u < 0x80 {
				p[i] = oneByteColors[u]
			} else {
				p[i] = opaqueBlack
			}
		}
	case 2:
		for i := 0; i < n; i++ {
			p[i] = decodeColor2(data[2*i], data[2*i+1])
		}
	case 3:
		for i := 0; i < n; i++ {
			p[i] = PremulColor{data[3*i], data[3*i+1], data[3*i+2], 0xFF}
		}
	case 4:
		for i := 0; i < n; i++ {
			p[i] = PremulColor{data[4*i], data[4*i+1], data[4*i+2], data[4*i+3]}
		}
	}
	return p, true
}

// parsedMetadata is the result of walking a graphic's metadata chunk list.
type parsedMetadata struct {
	haveViewBox bool
	viewbox     Rectangle

	havePalette bool
	palette     Palette
}

// parseMetadataChunks walks the metadata chunk list at the front of b,
// advancing b past it. It enforces strictly increasing metadata IDs and
// dispatches MID 0 (ViewBox) and MID 1 (Suggested Palette); any other MID
// is rejected with ErrBadMetadata when onlyViewBox is false, and accepted
// (its chunk is merely skipped, as is a MID 1 chunk) when onlyViewBox is
// true, mirroring iconvg_decode_viewbox's more permissive pass versus
// iconvg_decode's strict pass.
func parseMetadataChunks(b *buffer, onlyViewBox bool) (parsedMetadata, error) {
	var out parsedMetadata
	if !decodeMagicIdentifier(b) {
		return out, ErrBadMagicIdentifier
	}
	numChunks, ok := b.decodeNatural()
	if !ok {
		return out, ErrBadMetadata
	}

	previousID := int64(-1)
	for ; numChunks > 0; numChunks-- {
		chunkLength, ok := b.decodeNatural()
		if !ok || chunkLength > uint32(len(*b)) {
			return out, ErrBadMetadata
		}
		chunk := buffer(*b).limit(chunkLength)
		id, ok := chunk.decodeNatural()
		if !ok {
			return out, ErrBadMetadata
		} else if previousID >= int64(id) {
			return out, ErrBadMetadataIDOrder
		}

		switch id {
		case 0:
			r, ok := decodeMetadataViewBox(&chunk)
			if !ok || len(chunk) != 0 {
				return out, ErrBadMetadataViewBox
			}
			out.haveViewBox = true
			out.viewbox = r
		case 1:
			if onlyViewBox {
				break
			}
			p, ok := decodeMetadataSuggestedPalette(&chunk)
			if !ok || len(chunk) != 0 {
				return out, ErrBadMetadataSuggestedPalette
			}
			out.havePalette = true
			out.palette = p
		default:
			if onlyViewBox {
				break
			}
			return out, ErrBadMetadata
		}

		*b = (*b)[chunkLength:]
		previousID = int64(id)
	}
	return out, nil
}

// DecodeViewBox returns the ViewBox declared by src's metadata, or
// DefaultViewBox if src declares none. It validates src's metadata chunk
// structure but does not otherwise interpret the graphic.
func DecodeViewBox(src []byte) (Rectangle, error) {
	b := buffer(src)
	m, err := parseMetadataChunks(&b, true)
	if err != nil {
		return Rectangle{}, err
	}
	if !m.haveViewBox {
		return DefaultViewBox, nil
	}
	return m.viewbox, nil
}

// DecodeMetadata returns src's metadata, resolved to their effective
// defaults when a chunk is absent.
func DecodeMetadata(src []byte) (Metadata, error) {
	b := buffer(src)
	m, err := parseMetadataChunks(&b, false)
	if err != nil {
		return Metadata{}, err
	}
	out := Metadata{ViewBox: DefaultViewBox, SuggestedPalette: DefaultPalette}
	if m.haveViewBox {
		out.ViewBox = m.viewbox
	}
	if m.havePalette {
		out.SuggestedPalette = m.palette
	}
	return out, nil
}

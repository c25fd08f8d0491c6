// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import "math"

// buffer is a cursor over a byte slice, used to decode the variable-length
// number encodings that IconVG bytecode is built from. Every decode method
// reports whether it succeeded; on failure the buffer is left unspecified
// and the caller should abandon decoding.
//
// All four number families (natural, real, coordinate, zero-to-one) share
// the same length-prefix convention: the low two bits of the first byte
// select a 1, 2 or 4 byte encoding.
type buffer []byte

func (b *buffer) decodeNatural() (value uint32, ok bool) {
	if len(*b) == 0 {
		return 0, false
	}
	v := (*b)[0]
	switch {
	case v&0x01 == 0:
		value = uint32(v) >> 1
		*b = (*b)[1:]
	case v&0x02 == 0:
		if len(*b) < 2 {
			return 0, false
		}
		value = (uint32((*b)[0]) | uint32((*b)[1])<<8) >> 2
		*b = (*b)[2:]
	default:
		if len(*b) < 4 {
			return 0, false
		}
		value = peekU32LE(*b) >> 2
		*b = (*b)[4:]
	}
	return value, true
}

func (b *buffer) decodeReal() (value float32, ok bool) {
	if len(*b) == 0 {
		return 0, false
	}
	v := (*b)[0]
	switch {
	case v&0x01 == 0:
		value = float32(v >> 1)
		*b = (*b)[1:]
	case v&0x02 == 0:
		if len(*b) < 2 {
			return 0, false
		}
		value = float32((uint32((*b)[0]) | uint32((*b)[1])<<8) >> 2)
		*b = (*b)[2:]
	default:
		if len(*b) < 4 {
			return 0, false
		}
		value = math.Float32frombits(0xFFFFFFFC & peekU32LE(*b))
		*b = (*b)[4:]
	}
	return value, true
}

func (b *buffer) decodeCoordinate() (value float32, ok bool) {
	if len(*b) == 0 {
		return 0, false
	}
	v := (*b)[0]
	switch {
	case v&0x01 == 0:
		i := int32(v >> 1)
		value = float32(i - 64)
		*b = (*b)[1:]
	case v&0x02 == 0:
		if len(*b) < 2 {
			return 0, false
		}
		i := int32((uint32((*b)[0]) | uint32((*b)[1])<<8) >> 2)
		value = float32(i-(128*64)) / 64
		*b = (*b)[2:]
	default:
		if len(*b) < 4 {
			return 0, false
		}
		value = math.Float32frombits(0xFFFFFFFC & peekU32LE(*b))
		*b = (*b)[4:]
	}
	return value, true
}

func (b *buffer) decodeZeroToOne() (value float32, ok bool) {
	if len(*b) == 0 {
		return 0, false
	}
	v := (*b)[0]
	switch {
	case v&0x01 == 0:
		value = float32(float64(v>>1) / 120)
		*b = (*b)[1:]
	case v&0x02 == 0:
		if len(*b) < 2 {
			return 0, false
		}
		i := (uint32((*b)[0]) | uint32((*b)[1])<<8) >> 2
		value = float32(float64(i) / 15120)
		*b = (*b)[2:]
	default:
		if len(*b) < 4 {
			return 0, false
		}
		value = math.Float32frombits(0xFFFFFFFC & peekU32LE(*b))
		*b = (*b)[4:]
	}
	return value, true
}

func peekU32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// limit returns the prefix of b of at most n bytes, leaving b itself
// unmodified. It backs a sub-decoder scoped to a single metadata chunk.
func (b buffer) limit(n uint32) buffer {
	if uint32(len(b)) < n {
		return b
	}
	return b[:n]
}

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Shape tags recorded in the serialized shape_and_offset word.
const (
	shapeArrayTag    uint32 = 0
	shapeBitmapTag   uint32 = 1
	shapeInvertedTag uint32 = 2

	shapeShift  = 30
	offsetMask  = 1<<shapeShift - 1
	headerField = 4 // bytes per u32 header field
)

func ctypeToShapeTag(t ctype) uint32 {
	switch t {
	case typeBitmap:
		return shapeBitmapTag
	case typeInverted:
		return shapeInvertedTag
	default:
		return shapeArrayTag
	}
}

func shapeTagToCtype(tag uint32) (ctype, bool) {
	switch tag {
	case shapeArrayTag:
		return typeArray, true
	case shapeBitmapTag:
		return typeBitmap, true
	case shapeInvertedTag:
		return typeInverted, true
	default:
		return 0, false
	}
}

// payloadSize returns the byte length of a container's payload given its
// shape and true (1-based) cardinality.
func payloadSize(shape ctype, cardinality uint32) int {
	switch shape {
	case typeBitmap:
		return bitmapWords * 2
	case typeInverted:
		return (maxValue - int(cardinality)) * 2
	default: // typeArray
		return int(cardinality) * 2
	}
}

// Freeze serializes the bitmap into the spec's byte-exact layout: a header
// of n_keys/keys/cardinalities/shape_and_offset, little-endian and 4-byte
// aligned, followed by the payload region with BITMAP payloads 8-byte
// aligned for word access.
func (rb *Bitmap) Freeze() []byte {
	n := len(rb.containers)
	headerSize := headerField + 3*headerField*n
	buf := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(n))

	keysOff := headerField
	cardOff := keysOff + headerField*n
	shapeOff := cardOff + headerField*n

	payload := make([]byte, 0, headerSize)
	for i := range rb.containers {
		c := &rb.containers[i]
		binary.LittleEndian.PutUint32(buf[keysOff+headerField*i:], uint32(rb.index[i]))
		binary.LittleEndian.PutUint32(buf[cardOff+headerField*i:], c.Size-1)

		shape := ctypeToShapeTag(c.Type)
		align := 4
		if shape == shapeBitmapTag {
			align = 8
		}
		for (headerSize+len(payload))%align != 0 {
			payload = append(payload, 0)
		}

		off := uint32(len(payload))
		binary.LittleEndian.PutUint32(buf[shapeOff+headerField*i:], shape<<shapeShift|(off&offsetMask))
		payload = append(payload, u16AsBytes(c.Data)...)
	}

	return append(buf, payload...)
}

// Open decodes a serialized buffer into a read-only ImmutableRoaringBitmap.
// No container payload is copied: each is aliased directly out of buf.
func Open(buf []byte) (*Immutable, error) {
	if len(buf) < headerField {
		return nil, errors.Wrap(ErrInvalidBuffer, "truncated header")
	}

	n := int(binary.LittleEndian.Uint32(buf[0:4]))
	headerSize := headerField + 3*headerField*n
	if n < 0 || headerSize < 0 || len(buf) < headerSize {
		return nil, errors.Wrap(ErrInvalidBuffer, "truncated key/cardinality/offset table")
	}

	keysOff := headerField
	cardOff := keysOff + headerField*n
	shapeOff := cardOff + headerField*n

	keys := make([]uint16, n)
	cards := make([]uint32, n)
	shapes := make([]ctype, n)
	offsets := make([]uint32, n)

	var prevKey int64 = -1
	for i := 0; i < n; i++ {
		key := binary.LittleEndian.Uint32(buf[keysOff+headerField*i:])
		if key > 0xFFFF || int64(key) <= prevKey {
			return nil, errors.Wrap(ErrInvalidBuffer, "keys not strictly ascending")
		}
		prevKey = int64(key)
		keys[i] = uint16(key)

		cards[i] = binary.LittleEndian.Uint32(buf[cardOff+headerField*i:]) + 1

		word := binary.LittleEndian.Uint32(buf[shapeOff+headerField*i:])
		shape, ok := shapeTagToCtype(word >> shapeShift)
		if !ok {
			return nil, errors.Wrap(ErrInvalidBuffer, "unknown shape tag")
		}
		shapes[i] = shape
		offsets[i] = word & offsetMask
	}

	for i := 0; i < n; i++ {
		size := payloadSize(shapes[i], cards[i])
		start := headerSize + int(offsets[i])
		if start < headerSize || start+size > len(buf) {
			return nil, errors.Wrap(ErrInvalidBuffer, "payload out of bounds")
		}
	}

	return &Immutable{
		buf:        buf,
		headerSize: headerSize,
		keys:       keys,
		cards:      cards,
		shapes:     shapes,
		offsets:    offsets,
	}, nil
}

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"sync"
	"unsafe"

	"github.com/kelindar/bitmap"
)

// bitmapWords is the number of uint16 cells backing a BITMAP container:
// 65536 bits / 16 bits-per-cell = 4096 cells (8192 bytes).
const bitmapWords = 4096

var pool = sync.Pool{
	New: func() any {
		return make([]uint16, 0, bitmapWords)
	},
}

func borrowArray() []uint16 {
	return pool.Get().([]uint16)
}

// borrowBitmap returns a zeroed BITMAP-shaped payload, reusing pooled memory
// when possible.
func borrowBitmap() bitmap.Bitmap {
	arr := borrowArray()
	if cap(arr) < bitmapWords {
		arr = make([]uint16, bitmapWords)
	}

	// Clear the memory to ensure a clean bitmap
	out := asBitmap(arr[:bitmapWords])
	for i := range out {
		out[i] = 0
	}
	return out
}

func release(v any) {
	switch v := v.(type) {
	case []uint16:
		pool.Put(v[:0])
	case bitmap.Bitmap:
		pool.Put(asUint16s(v[:0]))
	}
}

// asBitmap reinterprets a BITMAP container's []uint16 payload as a
// github.com/kelindar/bitmap.Bitmap ([]uint64) without copying.
func asBitmap(data []uint16) bitmap.Bitmap {
	if len(data) == 0 {
		return nil
	}

	return bitmap.Bitmap(unsafe.Slice((*uint64)(unsafe.Pointer(&data[0])), len(data)/4))
}

// asUint16s is the inverse of asBitmap.
func asUint16s(data bitmap.Bitmap) []uint16 {
	if len(data) == 0 {
		return nil
	}

	return unsafe.Slice((*uint16)(unsafe.Pointer(&data[0])), len(data)*4)
}

// asWords reinterprets a BITMAP container's []uint16 payload as raw []uint64
// words for the bit-primitive scans in bits.go.
func asWords(data []uint16) []uint64 {
	if len(data) == 0 {
		return nil
	}

	return unsafe.Slice((*uint64)(unsafe.Pointer(&data[0])), len(data)/4)
}

// u16AsBytes reinterprets a container payload as its raw little-endian byte
// representation for serialization, without copying.
func u16AsBytes(data []uint16) []byte {
	if len(data) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*2)
}

// bytesAsU16 is the inverse of u16AsBytes: it aliases a byte region of a
// serialized buffer as a container payload without copying, the same
// zero-copy idiom ImmutableRoaringBitmap uses to read container data
// directly out of a memory-mapped file.
func bytesAsU16(data []byte) []uint16 {
	if len(data) == 0 {
		return nil
	}

	return unsafe.Slice((*uint16)(unsafe.Pointer(&data[0])), len(data)/2)
}

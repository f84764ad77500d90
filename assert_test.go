// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "math/rand/v2"

func bitmapWith(c *container) (*Bitmap, []uint16) {
	v := New()
	v.ctrAdd(0, 0, c)
	return v, valuesOf(v)
}

func valuesOf(v *Bitmap) []uint16 {
	out := []uint16{}
	v.Range(func(x uint32) bool {
		out = append(out, uint16(x))
		return true
	})
	return out
}

func newArr(data ...uint32) *container {
	return newContainer(typeArray, data...)
}

func newInv(data ...uint32) *container {
	return newContainer(typeInverted, data...)
}

func newBmp(data ...uint32) *container {
	return newContainer(typeBitmap, data...)
}

// newBmpPermutations creates a bitmap container with all 16 4-bit permutations.
func newBmpPermutations() *container {
	c := newBmp()
	for perm := 0; perm < 16; perm++ {
		offset := perm * 4
		for bit := 0; bit < 4; bit++ {
			if (perm>>bit)&1 == 1 {
				c.bmpSet(uint16(offset + bit))
			}
		}
	}
	return c
}

// newContainer builds a container of the given shape directly (bypassing
// normalize), so tests can exercise a specific kernel pair regardless of
// what threshold the data would otherwise trigger. For typeInverted, data
// lists the *present* values; the absence list is filled with every value
// in [0, maxValue) that data does not list.
func newContainer(typ ctype, data ...uint32) *container {
	var backing []uint16
	switch typ {
	case typeBitmap:
		backing = make([]uint16, bitmapWords)
	case typeInverted:
		backing = make([]uint16, 0, maxValue-len(data))
	default:
		backing = make([]uint16, 0, len(data))
	}

	c := &container{Type: typ, Data: backing}

	switch typ {
	case typeInverted:
		present := make(map[uint16]bool, len(data))
		for _, v := range data {
			present[uint16(v)] = true
		}
		for v := 0; v < maxValue; v++ {
			if !present[uint16(v)] {
				c.Data = append(c.Data, uint16(v))
			}
		}
		c.Size = uint32(len(data))
	default:
		for _, v := range data {
			switch typ {
			case typeArray:
				c.arrSet(uint16(v))
			case typeBitmap:
				c.bmpSet(uint16(v))
			}
		}
	}
	return c
}

// testPair creates both our bitmap and a reference set (a map) holding the
// same data, for differential testing.
func testPair(data []uint32) (*Bitmap, map[uint32]bool) {
	our := New()
	ref := make(map[uint32]bool, len(data))
	for _, v := range data {
		our.Set(v)
		ref[v] = true
	}
	return our, ref
}

// changeType builds a bitmap whose single container is forced into the
// named shape by choosing data of the right cardinality.
func changeType(ctype ctype) (*Bitmap, []uint32) {
	our := New()
	var values []uint32

	switch ctype {
	case typeArray:
		values = []uint32{1, 5, 10, 100, 500, 1000}
		for _, v := range values {
			our.Set(v)
		}
	case typeBitmap:
		for i := 0; i < 5000; i++ {
			v := uint32(i * 3) // Sparse, stays within one container's key
			our.Set(v)
			values = append(values, v)
		}
	case typeInverted:
		for i := 0; i < 65500; i++ {
			v := uint32(i)
			our.Set(v)
			values = append(values, v)
		}
	}
	return our, values
}

type dataGen = func() ([]uint32, string)

// genSeq creates consecutive integers starting from offset.
func genSeq(size int, offset uint32) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = offset + uint32(i)
		}
		return data, "seq"
	}
}

// genRand creates random integers within a range.
func genRand(size int, maxVal uint32) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(rand.IntN(int(maxVal)))
		}
		return data, "rnd"
	}
}

// genSparse creates sparse integers with large gaps.
func genSparse(size int) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(i * 1000)
		}
		return data, "sps"
	}
}

// genDense creates dense integers in a small range.
func genDense(size int) dataGen {
	return func() ([]uint32, string) {
		data := make([]uint32, size)
		for i := 0; i < size; i++ {
			data[i] = uint32(rand.IntN(size / 10))
		}
		return data, "dns"
	}
}

// genBoundary creates boundary/edge case values.
func genBoundary() dataGen {
	return func() ([]uint32, string) {
		data := []uint32{0, 65535, 65536, 131071, 131072, 4294967295}
		return data, "bnd"
	}
}

// genMixed creates values spread across multiple containers and shapes.
func genMixed() dataGen {
	return func() ([]uint32, string) {
		var data []uint32
		data = append(data, 1, 5, 10, 100, 500, 1000) // container 0: array
		for i := 0; i < 5000; i++ {
			data = append(data, uint32(65536+i*3)) // container 1: bitmap
		}
		for i := 131072; i < 131072+65500; i++ {
			data = append(data, uint32(i)) // container 2: inverted
		}
		return data, "mix"
	}
}

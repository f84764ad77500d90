// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "github.com/kelindar/bitmap"

// bmp returns the container's payload reinterpreted as a dense bitmap,
// delegating the heavy set algebra to github.com/kelindar/bitmap.
func (c *container) bmp() bitmap.Bitmap {
	return asBitmap(c.Data)
}

// words returns the raw 64-bit words backing a BITMAP container, for the
// bit-primitive scans (min/max/select) in bits.go that the kelindar/bitmap
// API does not expose directly.
func (c *container) words() []uint64 {
	return asWords(c.Data)
}

// bmpSet sets a value in a bitmap container.
func (c *container) bmpSet(value uint16) bool {
	bm := c.bmp()
	if bm.Contains(uint32(value)) {
		return false
	}
	bm.Set(uint32(value))
	c.Size++
	return true
}

// bmpDel removes a value from a bitmap container.
func (c *container) bmpDel(value uint16) bool {
	bm := c.bmp()
	if !bm.Contains(uint32(value)) {
		return false
	}
	bm.Remove(uint32(value))
	c.Size--
	return true
}

// bmpHas checks if a value exists in a bitmap container.
func (c *container) bmpHas(value uint16) bool {
	return c.bmp().Contains(uint32(value))
}

// bmpMin returns the smallest set bit using the nextset forward scan.
func (c *container) bmpMin() (uint16, bool) {
	pos, ok := nextset(c.words(), 0, bitmapWords/4)
	return uint16(pos), ok
}

// bmpMax returns the largest set bit.
func (c *container) bmpMax() (uint16, bool) {
	cur := newReverseSetCursor(c.words(), bitmapWords/4)
	pos, ok := cur.next()
	return uint16(pos), ok
}

// bmpSelect returns the k-th set bit (0-indexed) by accumulating popcount
// word by word and using selectBit on the word containing the target.
func (c *container) bmpSelect(k int) (uint16, bool) {
	words := c.words()
	remaining := k
	for i, w := range words {
		pc := popcount(w)
		if remaining < pc {
			bit, ok := selectBit(w, remaining)
			return uint16(i*64 + bit), ok
		}
		remaining -= pc
	}
	return 0, false
}

// bmpIterate calls fn ascending for each set bit using word-at-a-time
// scanning with ctz to skip directly to each set bit.
func (c *container) bmpIterate(fn func(v uint16) bool) {
	words := c.words()
	for blkAt, blk := range words {
		if blk == 0 {
			continue
		}
		offset := uint32(blkAt << 6)
		cur := blk
		for cur != 0 {
			bit := ctz(cur)
			cur &= cur - 1
			if !fn(uint16(offset + uint32(bit))) {
				return
			}
		}
	}
}

// bmpToArray demotes a bitmap container back to an array, returning the
// bitmap-sized payload to the shared pool for reuse by the next promotion.
func (c *container) bmpToArray() {
	bm := c.bmp()
	arr := make([]uint16, 0, c.Size)
	bm.Range(func(v uint32) {
		arr = append(arr, uint16(v))
	})
	release(c.Data)
	c.Data = arr
	c.Type = typeArray
}

// bmpToInverted promotes a bitmap container to the inverted (absence-list)
// representation once cardinality reaches tInverted.
func (c *container) bmpToInverted() {
	bm := c.bmp()
	absent := make([]uint16, 0, maxValue-int(c.Size))
	for v := 0; v < maxValue; v++ {
		if !bm.Contains(uint32(v)) {
			absent = append(absent, uint16(v))
		}
	}
	c.Data = absent
	c.Type = typeInverted
}

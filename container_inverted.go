// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// The INVERTED container stores the sorted, strictly-increasing list of
// 16-bit values *absent* from the set (its complement), the same
// sorted-segment idiom the array container uses for its present values.
// It is used once cardinality reaches tInverted, where most of the 65536
// possible values are present and it is cheaper to record the few that
// are missing.

// invFind locates value in the absence list, mirroring find16.
func (c *container) invFind(value uint16) (int, bool) {
	return find16(c.Data, value)
}

// invSet marks value present by removing it from the absence list.
func (c *container) invSet(value uint16) bool {
	idx, absent := c.invFind(value)
	if !absent {
		return false // already present
	}

	copy(c.Data[idx:], c.Data[idx+1:])
	c.Data = c.Data[:len(c.Data)-1]
	c.Size++
	return true
}

// invDel marks value absent by inserting it into the absence list.
func (c *container) invDel(value uint16) bool {
	idx, absent := c.invFind(value)
	if absent {
		return false // already absent
	}

	oldLen := len(c.Data)
	c.Data = append(c.Data, 0)
	if idx < oldLen {
		copy(c.Data[idx+1:], c.Data[idx:])
	}
	c.Data[idx] = value
	c.Size--
	return true
}

// invHas reports whether value is present, i.e. not listed in the absence list.
func (c *container) invHas(value uint16) bool {
	_, absent := c.invFind(value)
	return !absent
}

// invMin returns the smallest present value: the first gap in the absence
// list, since the absence list is exactly what firstGap was written for.
func (c *container) invMin() (uint16, bool) {
	return firstGap(c.Data)
}

// invMax returns the largest present value, the mirror of invMin.
func (c *container) invMax() (uint16, bool) {
	return lastGap(c.Data)
}

// invSelect maps k through the complement: it finds the k-th integer in
// [0, 65536) not listed in the absence array, via binary search on the
// monotonic "present count up to v" function.
func (c *container) invSelect(k int) (uint16, bool) {
	if k < 0 || k >= int(c.Size) {
		return 0, false
	}

	presentUpTo := func(v int) int {
		idx, found := find16(c.Data, uint16(v))
		countAbsentLE := idx
		if found {
			countAbsentLE = idx + 1
		}
		return (v + 1) - countAbsentLE
	}

	lo, hi := 0, maxValue-1
	for lo < hi {
		mid := (lo + hi) / 2
		if presentUpTo(mid) >= k+1 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return uint16(lo), true
}

// invIterate walks [0, 65536) skipping the absent values in lockstep.
func (c *container) invIterate(fn func(v uint16) bool) {
	j := 0
	for v := 0; v < maxValue; v++ {
		if j < len(c.Data) && int(c.Data[j]) == v {
			j++
			continue
		}
		if !fn(uint16(v)) {
			return
		}
	}
}

// invToBmp demotes an inverted container to a bitmap once cardinality drops
// below tInverted, borrowing the new payload from the shared pool and
// returning the old one.
func (c *container) invToBmp() {
	absent := c.Data
	dst := borrowBitmap()
	c.Data = asUint16s(dst)
	c.Type = typeBitmap

	j := 0
	for v := 0; v < maxValue; v++ {
		if j < len(absent) && int(absent[j]) == v {
			j++
			continue
		}
		dst.Set(uint32(v))
	}
	release(absent)
}

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// arrSet sets a value in an array container.
func (c *container) arrSet(value uint16) bool {
	idx, exists := find16(c.Data, value)
	if exists {
		return false
	}

	oldLen := len(c.Data)
	c.Data = append(c.Data, 0)
	if idx < oldLen {
		copy(c.Data[idx+1:], c.Data[idx:])
	}

	c.Data[idx] = value
	c.Size++
	return true
}

// arrDel removes a value from an array container.
func (c *container) arrDel(value uint16) bool {
	idx, exists := find16(c.Data, value)
	if !exists {
		return false
	}

	copy(c.Data[idx:], c.Data[idx+1:])
	c.Data = c.Data[:len(c.Data)-1]
	c.Size--
	return true
}

// arrHas checks if a value exists in an array container.
func (c *container) arrHas(value uint16) bool {
	_, exists := find16(c.Data, value)
	return exists
}

// arrMin returns the smallest value in an array container.
func (c *container) arrMin() (uint16, bool) {
	if len(c.Data) == 0 {
		return 0, false
	}
	return c.Data[0], true
}

// arrMax returns the largest value in an array container.
func (c *container) arrMax() (uint16, bool) {
	if len(c.Data) == 0 {
		return 0, false
	}
	return c.Data[len(c.Data)-1], true
}

// arrToBmp converts this container from array to bitmap representation,
// borrowing the new payload from the shared pool and returning the old one.
func (c *container) arrToBmp() {
	src := c.Data
	dst := borrowBitmap()
	c.Data = asUint16s(dst)
	c.Type = typeBitmap

	for _, value := range src {
		dst.Set(uint32(value))
	}
	release(src)
}

// firstGap returns the smallest value in [0, maxValue) that is absent from
// the strictly-increasing sorted slice. Used by invMin: INVERTED stores the
// absence set, so its smallest present value is the first value missing
// from that sorted list.
func firstGap(sorted []uint16) (uint16, bool) {
	switch {
	case len(sorted) == 0:
		return 0, true
	case sorted[0] != 0:
		return 0, true
	}

	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i+1] != sorted[i]+1 {
			return sorted[i] + 1, true
		}
	}

	if last := sorted[len(sorted)-1]; last < 0xFFFF {
		return last + 1, true
	}
	return 0, false
}

// lastGap returns the largest value in [0, maxValue) that is absent from the
// strictly-increasing sorted slice. Used by invMax, the mirror of firstGap.
func lastGap(sorted []uint16) (uint16, bool) {
	switch {
	case len(sorted) == 0:
		return 0xFFFF, true
	case sorted[len(sorted)-1] != 0xFFFF:
		return 0xFFFF, true
	}

	for i := len(sorted) - 1; i > 0; i-- {
		if sorted[i-1] != sorted[i]-1 {
			return sorted[i] - 1, true
		}
	}

	if first := sorted[0]; first > 0 {
		return first - 1, true
	}
	return 0, false
}

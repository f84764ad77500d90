// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// andNot performs AND NOT with a single bitmap efficiently
func (rb *Bitmap) andNot(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		return // No change needed - A AND NOT ∅ = A
	case len(rb.containers) == 0:
		return // Empty bitmap AND NOT anything = empty
	}

	// Remove elements that are in other bitmap
	var empty []int
	for i := range rb.containers {
		c1 := &rb.containers[i]
		idx, exists := find16(other.index, rb.index[i])
		switch {
		case !exists:
			// Container not in other bitmap - keep as is
			continue
		case !rb.ctrAndNot(c1, &other.containers[idx]):
			// Container became empty - mark for removal
			empty = append(empty, i)
		}
	}

	// Batch remove empty containers (in reverse order to maintain indices)
	for i := len(empty) - 1; i >= 0; i-- {
		rb.ctrDel(empty[i])
	}
}

// ctrAndNot dispatches AND NOT across the 3x3 representation matrix.
func (rb *Bitmap) ctrAndNot(c1, c2 *container) bool {
	c1.fork()
	var ok bool
	switch {
	case c1.Type == typeArray && c2.Type == typeArray:
		ok = rb.arrAndNotArr(c1, c2)
	case c1.Type == typeArray && c2.Type == typeBitmap:
		ok = rb.arrAndNotBmp(c1, c2)
	case c1.Type == typeBitmap && c2.Type == typeArray:
		ok = rb.bmpAndNotArr(c1, c2)
	case c1.Type == typeBitmap && c2.Type == typeBitmap:
		ok = rb.bmpAndNotBmp(c1, c2)
	default:
		return rb.genericAndNot(c1, c2)
	}
	if ok {
		c1.normalize()
	}
	return ok
}

// arrAndNotArr performs AND NOT between two array containers
func (rb *Bitmap) arrAndNotArr(c1, c2 *container) bool {
	a, b := c1.Data, c2.Data
	out := a[:0]
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		av, bv := a[i], b[j]
		switch {
		case av == bv:
			// Element in both - exclude from result
			i++
			j++
		case av < bv:
			// Only in first array - keep it
			out = append(out, av)
			i++
		default: // av > bv
			// Only in second array - skip it
			j++
		}
	}

	// Add remaining elements from first array
	for i < len(a) {
		out = append(out, a[i])
		i++
	}

	c1.Data = out
	c1.Size = uint32(len(out))
	return c1.Size > 0
}

// arrAndNotBmp performs AND NOT between array and bitmap containers
func (rb *Bitmap) arrAndNotBmp(c1, c2 *container) bool {
	a, b := c1.Data, c2.bmp()
	out := a[:0]

	for _, val := range a {
		if !b.Contains(uint32(val)) {
			out = append(out, val)
		}
	}

	c1.Data = out
	c1.Size = uint32(len(out))
	return c1.Size > 0
}

// bmpAndNotArr performs AND NOT between bitmap and array containers
func (rb *Bitmap) bmpAndNotArr(c1, c2 *container) bool {
	bmp := c1.bmp()
	for _, val := range c2.Data {
		if bmp.Contains(uint32(val)) {
			bmp.Remove(uint32(val))
			c1.Size--
		}
	}
	return c1.Size > 0
}

// bmpAndNotBmp performs AND NOT between two bitmap containers
func (rb *Bitmap) bmpAndNotBmp(c1, c2 *container) bool {
	a, b := c1.bmp(), c2.bmp()
	if b == nil {
		return c1.Size > 0
	}

	a.AndNot(b)
	c1.Size = uint32(a.Count())
	return c1.Size > 0
}

// genericAndNot subtracts any pair touching an INVERTED container by
// merging their materialized ascending value lists.
func (rb *Bitmap) genericAndNot(c1, c2 *container) bool {
	a, b := c1.values(), c2.values()
	out := rb.scratch[:0]
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			j++
		}
	}
	for i < len(a) {
		out = append(out, a[i])
		i++
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Type = typeArray
	c1.Size = uint32(len(out))
	rb.scratch = out
	c1.normalize()
	return c1.Size > 0
}

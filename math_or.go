// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// or performs OR with a single bitmap efficiently
func (rb *Bitmap) or(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		return // No change needed
	case len(rb.containers) == 0:
		// Copy all containers from other
		rb.containers = make([]container, len(other.containers))
		rb.index = make([]uint16, len(other.index))
		for i := range other.containers {
			other.containers[i].Shared = true
		}
		copy(rb.containers, other.containers)
		copy(rb.index, other.index)
		return
	}

	// Merge containers from both bitmaps
	i, j := 0, 0
	var newContainers []container
	var newIndex []uint16

	for i < len(rb.containers) && j < len(other.containers) {
		hi1, hi2 := rb.index[i], other.index[j]
		switch {
		case hi1 < hi2:
			// Only in left bitmap
			newContainers = append(newContainers, rb.containers[i])
			newIndex = append(newIndex, hi1)
			i++
		case hi1 > hi2:
			// Only in right bitmap
			other.containers[j].Shared = true
			newContainers = append(newContainers, other.containers[j])
			newIndex = append(newIndex, hi2)
			j++
		default:
			// In both bitmaps - merge them
			c1 := &rb.containers[i]
			c2 := &other.containers[j]
			rb.ctrOr(c1, c2)
			newContainers = append(newContainers, *c1)
			newIndex = append(newIndex, hi1)
			i++
			j++
		}
	}

	// Add remaining containers from left
	for i < len(rb.containers) {
		newContainers = append(newContainers, rb.containers[i])
		newIndex = append(newIndex, rb.index[i])
		i++
	}

	// Add remaining containers from right
	for j < len(other.containers) {
		other.containers[j].Shared = true
		newContainers = append(newContainers, other.containers[j])
		newIndex = append(newIndex, other.index[j])
		j++
	}

	rb.containers = newContainers
	rb.index = newIndex
}

// ctrOr dispatches OR across the 3x3 representation matrix, normalizing
// c1's shape afterward since a union only ever grows cardinality.
func (rb *Bitmap) ctrOr(c1, c2 *container) {
	c1.fork()
	switch {
	case c1.Type == typeArray && c2.Type == typeArray:
		rb.arrOrArr(c1, c2)
	case c1.Type == typeArray && c2.Type == typeBitmap:
		rb.arrOrBmp(c1, c2)
	case c1.Type == typeBitmap && c2.Type == typeArray:
		rb.bmpOrArr(c1, c2)
	case c1.Type == typeBitmap && c2.Type == typeBitmap:
		rb.bmpOrBmp(c1, c2)
	default:
		rb.genericOr(c1, c2)
	}
	c1.normalize()
}

// arrOrArr performs OR between two array containers
func (rb *Bitmap) arrOrArr(c1, c2 *container) {
	a, b := c1.Data, c2.Data
	out := rb.scratch[:0]
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		av, bv := a[i], b[j]
		switch {
		case av == bv:
			out = append(out, av)
			i++
			j++
		case av < bv:
			out = append(out, av)
			i++
		default: // av > bv
			out = append(out, bv)
			j++
		}
	}

	// Add remaining elements
	for i < len(a) {
		out = append(out, a[i])
		i++
	}
	for j < len(b) {
		out = append(out, b[j])
		j++
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = uint32(len(c1.Data))
	rb.scratch = out
}

// arrOrBmp performs OR between array and bitmap containers
func (rb *Bitmap) arrOrBmp(c1, c2 *container) {
	// Convert to bitmap for efficient OR
	c1.arrToBmp()
	rb.bmpOrBmp(c1, c2)
}

// bmpOrArr performs OR between bitmap and array containers
func (rb *Bitmap) bmpOrArr(c1, c2 *container) {
	bmp := c1.bmp()
	for _, val := range c2.Data {
		if !bmp.Contains(uint32(val)) {
			bmp.Set(uint32(val))
			c1.Size++
		}
	}
}

// bmpOrBmp performs OR between two bitmap containers
func (rb *Bitmap) bmpOrBmp(c1, c2 *container) {
	a, b := c1.bmp(), c2.bmp()
	if b == nil {
		return
	}

	a.Or(b)
	c1.Size = uint32(a.Count())
}

// genericOr unions any pair touching an INVERTED container by merging their
// materialized ascending value lists, landing the result as an ARRAY shape
// before normalize promotes it if the union grew past tArray.
func (rb *Bitmap) genericOr(c1, c2 *container) {
	a, b := c1.values(), c2.values()
	out := rb.scratch[:0]
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	for i < len(a) {
		out = append(out, a[i])
		i++
	}
	for j < len(b) {
		out = append(out, b[j])
		j++
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Type = typeArray
	c1.Size = uint32(len(out))
	rb.scratch = out
}

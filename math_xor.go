// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// xor performs XOR with a single bitmap efficiently
func (rb *Bitmap) xor(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		return // No change needed
	case len(rb.containers) == 0:
		// Copy all containers from other since A XOR B = B when A is empty
		rb.containers = make([]container, len(other.containers))
		rb.index = make([]uint16, len(other.index))
		for i := range other.containers {
			other.containers[i].Shared = true
		}
		copy(rb.containers, other.containers)
		copy(rb.index, other.index)
		return
	}

	// Merge containers from both bitmaps using XOR logic
	i, j := 0, 0
	var newContainers []container
	var newIndex []uint16

	for i < len(rb.containers) && j < len(other.containers) {
		hi1, hi2 := rb.index[i], other.index[j]
		switch {
		case hi1 < hi2:
			// Only in left bitmap - keep as is
			newContainers = append(newContainers, rb.containers[i])
			newIndex = append(newIndex, hi1)
			i++
		case hi1 > hi2:
			// Only in right bitmap - copy it
			other.containers[j].Shared = true
			newContainers = append(newContainers, other.containers[j])
			newIndex = append(newIndex, hi2)
			j++
		default:
			// In both bitmaps - XOR them
			c1 := &rb.containers[i]
			c2 := &other.containers[j]
			if rb.ctrXor(c1, c2) {
				// Only add if result is non-empty
				newContainers = append(newContainers, *c1)
				newIndex = append(newIndex, hi1)
			}
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

// ctrXor dispatches XOR across the 3x3 representation matrix.
func (rb *Bitmap) ctrXor(c1, c2 *container) bool {
	c1.fork()
	var ok bool
	switch {
	case c1.Type == typeArray && c2.Type == typeArray:
		ok = rb.arrXorArr(c1, c2)
	case c1.Type == typeArray && c2.Type == typeBitmap:
		ok = rb.arrXorBmp(c1, c2)
	case c1.Type == typeBitmap && c2.Type == typeArray:
		ok = rb.bmpXorArr(c1, c2)
	case c1.Type == typeBitmap && c2.Type == typeBitmap:
		ok = rb.bmpXorBmp(c1, c2)
	default:
		return rb.genericXor(c1, c2)
	}
	if ok {
		c1.normalize()
	}
	return ok
}

// arrXorArr performs XOR between two array containers
func (rb *Bitmap) arrXorArr(c1, c2 *container) bool {
	a, b := c1.Data, c2.Data
	out := rb.scratch[:0]
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		av, bv := a[i], b[j]
		switch {
		case av == bv:
			// Same element in both - exclude from XOR
			i++
			j++
		case av < bv:
			// Only in first array
			out = append(out, av)
			i++
		default: // av > bv
			// Only in second array
			out = append(out, bv)
			j++
		}
	}

	// Add remaining elements from first array
	for i < len(a) {
		out = append(out, a[i])
		i++
	}
	// Add remaining elements from second array
	for j < len(b) {
		out = append(out, b[j])
		j++
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = uint32(len(c1.Data))
	rb.scratch = out
	return c1.Size > 0
}

// arrXorBmp performs XOR between array and bitmap containers
func (rb *Bitmap) arrXorBmp(c1, c2 *container) bool {
	// Convert to bitmap for efficient XOR
	c1.arrToBmp()
	return rb.bmpXorBmp(c1, c2)
}

// bmpXorArr performs XOR between bitmap and array containers
func (rb *Bitmap) bmpXorArr(c1, c2 *container) bool {
	bmp := c1.bmp()
	for _, val := range c2.Data {
		if bmp.Contains(uint32(val)) {
			bmp.Remove(uint32(val))
			c1.Size--
		} else {
			bmp.Set(uint32(val))
			c1.Size++
		}
	}
	return c1.Size > 0
}

// bmpXorBmp performs XOR between two bitmap containers
func (rb *Bitmap) bmpXorBmp(c1, c2 *container) bool {
	a, b := c1.bmp(), c2.bmp()
	if b == nil {
		return c1.Size > 0
	}

	a.Xor(b)
	c1.Size = uint32(a.Count())
	return c1.Size > 0
}

// genericXor computes the symmetric difference of any pair touching an
// INVERTED container by merging their materialized ascending value lists.
func (rb *Bitmap) genericXor(c1, c2 *container) bool {
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
	c1.normalize()
	return c1.Size > 0
}

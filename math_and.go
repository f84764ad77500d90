// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// and performs AND with a single bitmap efficiently
func (rb *Bitmap) and(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		rb.Clear()
		return
	case len(rb.containers) == 0:
		return
	}

	// Iterate through all containers in this bitmap
	var empty []int
	for i := range rb.containers {
		c1 := &rb.containers[i]
		idx, exists := find16(other.index, rb.index[i])
		switch {
		case !exists:
			empty = append(empty, i)
		case !rb.ctrAnd(c1, &other.containers[idx]):
			empty = append(empty, i)
		}
	}

	// Batch remove empty containers (in reverse order to maintain indices)
	for i := len(empty) - 1; i >= 0; i-- {
		rb.ctrDel(empty[i])
	}
}

// ctrAnd dispatches AND across the 3x3 representation matrix. BITMAP-BITMAP
// delegates to github.com/kelindar/bitmap; any pair touching INVERTED routes
// through the generic sorted merge over both sides' materialized ascending
// values (see DESIGN.md).
func (rb *Bitmap) ctrAnd(c1, c2 *container) bool {
	c1.fork()
	var ok bool
	switch {
	case c1.Type == typeArray && c2.Type == typeArray:
		ok = rb.arrAndArr(c1, c2)
	case c1.Type == typeArray && c2.Type == typeBitmap:
		ok = rb.arrAndBmp(c1, c2)
	case c1.Type == typeBitmap && c2.Type == typeArray:
		ok = rb.bmpAndArr(c1, c2)
	case c1.Type == typeBitmap && c2.Type == typeBitmap:
		ok = rb.bmpAndBmp(c1, c2)
	default:
		return rb.genericAnd(c1, c2)
	}
	if ok {
		c1.normalize()
	}
	return ok
}

// arrAndArr performs AND between two array containers
func (rb *Bitmap) arrAndArr(c1, c2 *container) bool {
	a, b := c1.Data, c2.Data
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		av, bv := a[i], b[j]
		switch {
		case av == bv:
			a[k] = av
			k++
			i++
			j++
		case av < bv:
			i++
		default: // av > bv
			j++
		}
	}

	c1.Data = a[:k]
	c1.Size = uint32(len(c1.Data))
	return c1.Size > 0
}

// arrAndBmp performs AND between array and bitmap containers
func (rb *Bitmap) arrAndBmp(c1, c2 *container) bool {
	a, b := c1.Data, c2.bmp()
	out := a[:0]

	for _, val := range a {
		if b.Contains(uint32(val)) {
			out = append(out, val)
		}
	}

	c1.Data = out
	c1.Size = uint32(len(out))
	return c1.Size > 0
}

// bmpAndArr performs AND between bitmap and array containers
func (rb *Bitmap) bmpAndArr(c1, c2 *container) bool {
	a, b := c1.bmp(), c2.Data
	out := rb.scratch[:0]

	for _, val := range b {
		if a.Contains(uint32(val)) {
			out = append(out, val)
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Size = uint32(len(c1.Data))
	c1.Type = typeArray
	rb.scratch = out
	return c1.Size > 0
}

// bmpAndBmp performs AND between two bitmap containers
func (rb *Bitmap) bmpAndBmp(c1, c2 *container) bool {
	a, b := c1.bmp(), c2.bmp()
	if a == nil || b == nil {
		return false
	}

	a.And(b)
	c1.Size = uint32(a.Count())
	return c1.Size > 0
}

// genericAnd intersects any pair touching an INVERTED container by merging
// their materialized ascending value lists. The result always lands back as
// an ARRAY shape and is normalized, since intersection only ever shrinks
// cardinality relative to the smaller operand.
func (rb *Bitmap) genericAnd(c1, c2 *container) bool {
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
			i++
		default:
			j++
		}
	}

	c1.Data = append(c1.Data[:0], out...)
	c1.Type = typeArray
	c1.Size = uint32(len(out))
	rb.scratch = out
	c1.normalize()
	return c1.Size > 0
}

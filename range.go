// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Range calls fn for every member of the bitmap in ascending order, stopping
// early if fn returns false.
func (rb *Bitmap) Range(fn func(x uint32) bool) {
	for i := range rb.containers {
		c := &rb.containers[i]
		base := uint32(rb.index[i]) << 16

		stop := false
		c.iterate(func(v uint16) bool {
			if !fn(base | uint32(v)) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}

// ToSlice materializes every member of the bitmap in ascending order.
func (rb *Bitmap) ToSlice() []uint32 {
	out := make([]uint32, 0, rb.Count())
	rb.Range(func(x uint32) bool {
		out = append(out, x)
		return true
	})
	return out
}

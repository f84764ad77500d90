// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"fmt"

	"github.com/pkg/errors"
)

// countLE returns the number of elements of the strictly-increasing sorted
// slice that are <= v.
func countLE(sorted []uint16, v uint16) int {
	idx, found := find16(sorted, v)
	if found {
		return idx + 1
	}
	return idx
}

// countLE returns the number of members of the container that are <= v.
func (c *container) countLE(v uint16) int {
	switch c.Type {
	case typeArray:
		return countLE(c.Data, v)
	case typeInverted:
		return int(v) + 1 - countLE(c.Data, v)
	case typeBitmap:
		words := c.words()
		full := (int(v) + 1) / 64
		total := bitcount(words, full)
		if rem := (int(v) + 1) % 64; rem > 0 && full < len(words) {
			mask := uint64(1)<<uint(rem) - 1
			total += popcount(words[full] & mask)
		}
		return total
	}
	return 0
}

// Rank returns the number of members <= x.
func (rb *Bitmap) Rank(x uint32) int {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	total := 0
	for i := range rb.containers {
		switch {
		case rb.index[i] < hi:
			total += int(rb.containers[i].Size)
		case rb.index[i] == hi:
			total += rb.containers[i].countLE(lo)
			return total
		default:
			return total
		}
	}
	return total
}

// Select returns the k-th smallest member (0-indexed).
func (rb *Bitmap) Select(k int) (uint32, bool) {
	if k < 0 {
		return 0, false
	}
	for i := range rb.containers {
		size := int(rb.containers[i].Size)
		if k < size {
			v, ok := rb.containers[i].selectAt(k)
			return uint32(rb.index[i])<<16 | uint32(v), ok
		}
		k -= size
	}
	return 0, false
}

// SelectErr is Select with ErrSelectOutOfRange surfaced instead of ok=false,
// for callers that want the error taxonomy rather than a boolean check.
func (rb *Bitmap) SelectErr(k int) (uint32, error) {
	v, ok := rb.Select(k)
	if !ok {
		return 0, errors.Wrap(ErrSelectOutOfRange, fmt.Sprintf("select(%d) on cardinality %d", k, rb.Count()))
	}
	return v, nil
}

// isSubsetOf reports whether every member of c1 is also a member of c2.
func (c1 *container) isSubsetOf(c2 *container) bool {
	if c1.Size > c2.Size {
		return false
	}
	if c1.Type == typeBitmap && c2.Type == typeBitmap {
		return subset(c1.words(), c2.words())
	}

	ok := true
	c1.iterate(func(v uint16) bool {
		if !c2.contains(v) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// isDisjointFrom reports whether c1 and c2 share no members.
func (c1 *container) isDisjointFrom(c2 *container) bool {
	small, big := c1, c2
	if big.Size < small.Size {
		small, big = big, small
	}

	disjoint := true
	small.iterate(func(v uint16) bool {
		if big.contains(v) {
			disjoint = false
			return false
		}
		return true
	})
	return disjoint
}

// equalsContainer reports whether c1 and c2 hold the same set of values.
func (c1 *container) equalsContainer(c2 *container) bool {
	return c1.Size == c2.Size && c1.isSubsetOf(c2)
}

// IsSubset reports whether every member of rb is also a member of other:
// for every key of rb there must be a key in other whose container is a
// superset.
func (rb *Bitmap) IsSubset(other *Bitmap) bool {
	for i := range rb.containers {
		idx, exists := find16(other.index, rb.index[i])
		if !exists {
			return false
		}
		if !rb.containers[i].isSubsetOf(&other.containers[idx]) {
			return false
		}
	}
	return true
}

// IsDisjoint reports whether rb and other share no members.
func (rb *Bitmap) IsDisjoint(other *Bitmap) bool {
	i, j := 0, 0
	for i < len(rb.containers) && j < len(other.containers) {
		switch {
		case rb.index[i] < other.index[j]:
			i++
		case rb.index[i] > other.index[j]:
			j++
		default:
			if !rb.containers[i].isDisjointFrom(&other.containers[j]) {
				return false
			}
			i++
			j++
		}
	}
	return true
}

// Equals reports whether rb and other hold the same set of values: same key
// sequence, containerwise equal.
func (rb *Bitmap) Equals(other *Bitmap) bool {
	if len(rb.index) != len(other.index) {
		return false
	}
	for i := range rb.index {
		if rb.index[i] != other.index[i] {
			return false
		}
		if !rb.containers[i].equalsContainer(&other.containers[i]) {
			return false
		}
	}
	return true
}

// Clamp returns a new bitmap holding the members of rb in [start, stop).
func (rb *Bitmap) Clamp(start, stop uint32) *Bitmap {
	out := New()
	if stop <= start {
		return out
	}
	rb.Range(func(x uint32) bool {
		if x >= stop {
			return false
		}
		if x >= start {
			out.Set(x)
		}
		return true
	})
	return out
}

// AddRange adds every value in the half-open range [lo, hi) to the bitmap,
// touching only the containers whose key intersects the range.
func (rb *Bitmap) AddRange(lo, hi uint32) {
	rb.mutateRange(lo, hi, true)
}

// RemoveRange removes every value in the half-open range [lo, hi) from the
// bitmap, touching only the containers whose key intersects the range.
func (rb *Bitmap) RemoveRange(lo, hi uint32) {
	rb.mutateRange(lo, hi, false)
}

func (rb *Bitmap) mutateRange(lo, hi uint32, add bool) {
	if hi <= lo {
		return
	}

	last := uint64(hi) - 1
	startKey := uint16(lo >> 16)
	endKey := uint16(last >> 16)

	for key := int(startKey); key <= int(endKey); key++ {
		k := uint16(key)
		loLocal, hiLocal := uint16(0), uint16(0xFFFF)
		if k == startKey {
			loLocal = uint16(lo & 0xFFFF)
		}
		if k == endKey {
			hiLocal = uint16(last & 0xFFFF)
		}

		if add {
			rb.addRangeContainer(k, loLocal, hiLocal)
		} else {
			rb.removeRangeContainer(k, loLocal, hiLocal)
		}
	}
}

func (rb *Bitmap) addRangeContainer(key, lo, hi uint16) {
	idx, exists := find16(rb.index, key)
	if !exists {
		rb.ctrAdd(key, idx, &container{Type: typeArray, Data: make([]uint16, 0, 64)})
	}

	c := &rb.containers[idx]
	c.fork()
	if lo == 0 && hi == 0xFFFF {
		c.Data = nil
		c.Type = typeInverted
		c.Size = maxValue
		return
	}

	for v := int(lo); v <= int(hi); v++ {
		c.set(uint16(v))
	}
}

func (rb *Bitmap) removeRangeContainer(key, lo, hi uint16) {
	idx, exists := find16(rb.index, key)
	if !exists {
		return
	}

	c := &rb.containers[idx]
	if lo == 0 && hi == 0xFFFF {
		rb.ctrDel(idx)
		return
	}

	c.fork()
	for v := int(lo); v <= int(hi); v++ {
		c.remove(uint16(v))
	}
	if c.isEmpty() {
		rb.ctrDel(idx)
	}
}

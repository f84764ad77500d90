// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Immutable is a read-only view over a serialized bitmap buffer (mmap,
// in-memory bytes, or a slice of a MultiRoaringBitmap payload region).
// Every read decodes directly from the backing buffer: no container
// payload is ever copied. Any attempt to route a read through a mutating
// container kernel forks first (Shared is always true here), so the
// backing buffer is never written.
type Immutable struct {
	buf        []byte
	headerSize int
	keys       []uint16
	cards      []uint32
	shapes     []ctype
	offsets    []uint32
}

// containerAt builds a read-only container view aliasing payload i directly
// out of the backing buffer.
func (im *Immutable) containerAt(i int) container {
	size := payloadSize(im.shapes[i], im.cards[i])
	start := im.headerSize + int(im.offsets[i])
	return container{
		Type:   im.shapes[i],
		Shared: true,
		Size:   im.cards[i],
		Data:   bytesAsU16(im.buf[start : start+size]),
	}
}

// Len returns the number of containers (keys) held by the view.
func (im *Immutable) Len() int { return len(im.keys) }

// Count returns the total cardinality of the bitmap.
func (im *Immutable) Count() int {
	total := 0
	for _, c := range im.cards {
		total += int(c)
	}
	return total
}

// IsEmpty reports whether the view has no members.
func (im *Immutable) IsEmpty() bool { return len(im.keys) == 0 }

// Contains checks whether x is a member of the bitmap.
func (im *Immutable) Contains(x uint32) bool {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	idx, exists := find16(im.keys, hi)
	if !exists {
		return false
	}
	c := im.containerAt(idx)
	return c.contains(lo)
}

// Min returns the smallest member.
func (im *Immutable) Min() (uint32, bool) {
	for i := range im.keys {
		c := im.containerAt(i)
		if v, ok := c.min(); ok {
			return uint32(im.keys[i])<<16 | uint32(v), true
		}
	}
	return 0, false
}

// Max returns the largest member.
func (im *Immutable) Max() (uint32, bool) {
	for i := len(im.keys) - 1; i >= 0; i-- {
		c := im.containerAt(i)
		if v, ok := c.max(); ok {
			return uint32(im.keys[i])<<16 | uint32(v), true
		}
	}
	return 0, false
}

// Select returns the k-th smallest member (0-indexed).
func (im *Immutable) Select(k int) (uint32, bool) {
	if k < 0 {
		return 0, false
	}
	for i := range im.keys {
		size := int(im.cards[i])
		if k < size {
			c := im.containerAt(i)
			v, ok := c.selectAt(k)
			return uint32(im.keys[i])<<16 | uint32(v), ok
		}
		k -= size
	}
	return 0, false
}

// Rank returns the number of members <= x.
func (im *Immutable) Rank(x uint32) int {
	hi, lo := uint16(x>>16), uint16(x&0xFFFF)
	total := 0
	for i := range im.keys {
		switch {
		case im.keys[i] < hi:
			total += int(im.cards[i])
		case im.keys[i] == hi:
			c := im.containerAt(i)
			total += c.countLE(lo)
			return total
		default:
			return total
		}
	}
	return total
}

// Range calls fn for every member in ascending order, stopping early if fn
// returns false.
func (im *Immutable) Range(fn func(x uint32) bool) {
	for i := range im.keys {
		base := uint32(im.keys[i]) << 16
		c := im.containerAt(i)

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

// ToSlice materializes every member in ascending order.
func (im *Immutable) ToSlice() []uint32 {
	out := make([]uint32, 0, im.Count())
	im.Range(func(x uint32) bool {
		out = append(out, x)
		return true
	})
	return out
}

// ToBitmap materializes an independent, owned mutable copy of the view:
// the only way to get a writable bitmap back out of an immutable one, per
// the no-in-place-mutation invariant.
func (im *Immutable) ToBitmap() *Bitmap {
	out := New()
	out.containers = make([]container, len(im.keys))
	out.index = make([]uint16, len(im.keys))
	copy(out.index, im.keys)

	for i := range im.keys {
		out.containers[i] = im.containerAt(i).clone()
	}
	return out
}

// Union returns a new mutable bitmap holding every member of im or other.
func (im *Immutable) Union(other *Immutable) *Bitmap {
	out := im.ToBitmap()
	out.Or(other.ToBitmap())
	return out
}

// Intersection returns a new mutable bitmap holding every member present in
// both im and other.
func (im *Immutable) Intersection(other *Immutable) *Bitmap {
	out := im.ToBitmap()
	out.And(other.ToBitmap())
	return out
}

// Difference returns a new mutable bitmap holding every member of im absent
// from other.
func (im *Immutable) Difference(other *Immutable) *Bitmap {
	out := im.ToBitmap()
	out.AndNot(other.ToBitmap())
	return out
}

// SymmetricDifference returns a new mutable bitmap holding every member
// present in exactly one of im or other.
func (im *Immutable) SymmetricDifference(other *Immutable) *Bitmap {
	out := im.ToBitmap()
	out.Xor(other.ToBitmap())
	return out
}

// Jaccard returns the Jaccard distance 1 - |A ∩ B| / |A ∪ B| between im and
// other. Two empty sets are conventionally distance 1 apart, per spec.
func (im *Immutable) Jaccard(other *Immutable) float64 {
	return jaccardDist(im, other)
}

// jaccardIterable is the minimal surface jaccardDist needs, satisfied by
// both *Immutable and *Bitmap.
type jaccardIterable interface {
	Count() int
	Range(func(uint32) bool)
}

func jaccardDist(a, b jaccardIterable) float64 {
	if a.Count() == 0 && b.Count() == 0 {
		return 1
	}

	inter := 0
	small, big := a, b
	if b.Count() < a.Count() {
		small, big = b, a
	}

	bitmap := New()
	big.Range(func(x uint32) bool {
		bitmap.Set(x)
		return true
	})

	union := bitmap.Count()
	small.Range(func(x uint32) bool {
		if bitmap.Contains(x) {
			inter++
		} else {
			union++
		}
		return true
	})

	if union == 0 {
		return 0
	}
	return 1 - float64(inter)/float64(union)
}

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func openedFrom(values []uint32) *Immutable {
	rb := FromValues(values)
	im, err := Open(rb.Freeze())
	if err != nil {
		panic(err)
	}
	return im
}

func TestImmutableBasics(t *testing.T) {
	values := []uint32{1, 5, 1 << 16, 2<<16 + 7}
	im := openedFrom(values)

	assert.Equal(t, len(values), im.Count())
	assert.False(t, im.IsEmpty())
	assert.Equal(t, values, im.ToSlice())

	for _, v := range values {
		assert.True(t, im.Contains(v))
	}
	assert.False(t, im.Contains(999))

	min, ok := im.Min()
	assert.True(t, ok)
	assert.Equal(t, uint32(1), min)

	max, ok := im.Max()
	assert.True(t, ok)
	assert.Equal(t, uint32(2<<16+7), max)
}

func TestImmutableEmpty(t *testing.T) {
	im := openedFrom(nil)
	assert.True(t, im.IsEmpty())
	_, ok := im.Min()
	assert.False(t, ok)
	_, ok = im.Max()
	assert.False(t, ok)
}

func TestImmutableSelectAndRank(t *testing.T) {
	values := []uint32{1, 5, 10, 1 << 16}
	im := openedFrom(values)

	for k, want := range values {
		v, ok := im.Select(k)
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok := im.Select(len(values))
	assert.False(t, ok)

	assert.Equal(t, 3, im.Rank(10))
	assert.Equal(t, 4, im.Rank(1<<16))
}

func TestImmutableToBitmapIsIndependent(t *testing.T) {
	im := openedFrom([]uint32{1, 2, 3})
	rb := im.ToBitmap()
	rb.Set(4)
	assert.False(t, im.Contains(4))
	assert.True(t, rb.Contains(4))
}

func TestImmutableSetAlgebra(t *testing.T) {
	a := openedFrom([]uint32{1, 2, 3})
	b := openedFrom([]uint32{2, 3, 4})

	assert.Equal(t, []uint32{1, 2, 3, 4}, a.Union(b).ToSlice())
	assert.Equal(t, []uint32{2, 3}, a.Intersection(b).ToSlice())
	assert.Equal(t, []uint32{1}, a.Difference(b).ToSlice())
	assert.Equal(t, []uint32{1, 4}, a.SymmetricDifference(b).ToSlice())
}

func TestImmutableJaccard(t *testing.T) {
	a := openedFrom([]uint32{1, 2, 3, 4})
	b := openedFrom([]uint32{3, 4, 5, 6})
	// |A∩B| = 2, |A∪B| = 6 -> distance = 1 - 2/6
	assert.InDelta(t, 1-2.0/6.0, a.Jaccard(b), 1e-9)

	same := openedFrom([]uint32{1, 2})
	assert.Equal(t, 0.0, same.Jaccard(same))

	empty := openedFrom(nil)
	assert.Equal(t, 1.0, empty.Jaccard(empty))
}

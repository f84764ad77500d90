// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerSetRemoveContains(t *testing.T) {
	for _, typ := range []ctype{typeArray, typeBitmap} {
		t.Run(shapeName(typ), func(t *testing.T) {
			c := newContainer(typ)

			assert.True(t, c.set(42))
			assert.True(t, c.contains(42))
			assert.False(t, c.set(42)) // already present

			assert.True(t, c.remove(42))
			assert.False(t, c.contains(42))
			assert.False(t, c.remove(42)) // already absent
		})
	}
}

// TestContainerInvertedSetRemoveContains builds a near-full container (only
// value 100 absent) so mutating an unrelated value stays well clear of the
// tInverted demotion threshold and actually exercises invSet/invDel.
func TestContainerInvertedSetRemoveContains(t *testing.T) {
	present := make([]uint32, 0, maxValue-1)
	for v := 0; v < maxValue; v++ {
		if v != 100 {
			present = append(present, uint32(v))
		}
	}
	c := newInv(present...)
	assert.Equal(t, typeInverted, c.Type)

	assert.False(t, c.contains(100))
	assert.True(t, c.set(100))
	assert.Equal(t, typeInverted, c.Type)
	assert.True(t, c.contains(100))

	assert.True(t, c.remove(100))
	assert.Equal(t, typeInverted, c.Type)
	assert.False(t, c.contains(100))
	assert.False(t, c.remove(100))
}

func TestContainerMinMax(t *testing.T) {
	tc := []struct {
		name     string
		c        *container
		min, max uint16
	}{
		{"array", newArr(5, 1, 9, 3), 1, 9},
		{"bitmap", newBmp(5, 1, 9, 3), 1, 9},
		{"inverted", newInv(5, 1, 9, 3), 1, 9},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			min, ok := tt.c.min()
			assert.True(t, ok)
			assert.Equal(t, tt.min, min)

			max, ok := tt.c.max()
			assert.True(t, ok)
			assert.Equal(t, tt.max, max)
		})
	}
}

func TestContainerEmptyMinMax(t *testing.T) {
	c := newArr()
	_, ok := c.min()
	assert.False(t, ok)
	_, ok = c.max()
	assert.False(t, ok)
}

func TestContainerSelect(t *testing.T) {
	values := []uint32{5, 10, 15, 20, 25}
	tc := []struct {
		name string
		c    *container
	}{
		{"array", newArr(values...)},
		{"bitmap", newBmp(values...)},
		{"inverted", newInv(values...)},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			for k, want := range values {
				v, ok := tt.c.selectAt(k)
				assert.True(t, ok)
				assert.Equal(t, uint16(want), v)
			}
			_, ok := tt.c.selectAt(len(values))
			assert.False(t, ok)
			_, ok = tt.c.selectAt(-1)
			assert.False(t, ok)
		})
	}
}

func TestContainerIterateOrder(t *testing.T) {
	values := []uint32{50, 10, 30, 20, 40}
	want := []uint16{10, 20, 30, 40, 50}

	tc := []*container{newArr(values...), newBmp(values...), newInv(values...)}
	for _, c := range tc {
		var got []uint16
		c.iterate(func(v uint16) bool {
			got = append(got, v)
			return true
		})
		assert.Equal(t, want, got)
	}
}

func TestContainerIterateStopsEarly(t *testing.T) {
	c := newArr(1, 2, 3, 4, 5)
	var got []uint16
	c.iterate(func(v uint16) bool {
		got = append(got, v)
		return v < 3
	})
	assert.Equal(t, []uint16{1, 2, 3}, got)
}

func TestContainerNormalizePromotesAndDemotes(t *testing.T) {
	c := &container{Type: typeArray, Data: make([]uint16, 0, tArray+1)}
	for i := 0; i <= tArray; i++ {
		c.set(uint16(i))
	}
	assert.Equal(t, typeBitmap, c.Type)

	for i := tArray; i > tArray-10; i-- {
		c.remove(uint16(i))
	}
	assert.Equal(t, typeArray, c.Type)
}

// TestContainerNormalizeCrossesInvertedThreshold mirrors
// TestContainerNormalizePromotesAndDemotes but drives a bitmap container
// across tInverted, exercising BITMAP->INVERTED promotion and the
// INVERTED->BITMAP demotion back across the same boundary.
func TestContainerNormalizeCrossesInvertedThreshold(t *testing.T) {
	c := newBmp()

	for i := 0; i < tInverted-1; i++ {
		c.set(uint16(i))
	}
	assert.Equal(t, typeBitmap, c.Type)
	assert.Equal(t, tInverted-1, int(c.Size))

	c.set(uint16(tInverted - 1))
	assert.Equal(t, typeInverted, c.Type)
	assert.Equal(t, tInverted, int(c.Size))
	for i := 0; i < tInverted; i++ {
		assert.True(t, c.contains(uint16(i)))
	}

	for i := tInverted - 1; i >= tInverted-11; i-- {
		c.remove(uint16(i))
	}
	assert.Equal(t, typeBitmap, c.Type)
	assert.Equal(t, tInverted-11, int(c.Size))
	assert.False(t, c.contains(uint16(tInverted-1)))
	assert.False(t, c.contains(uint16(tInverted-11)))
	assert.True(t, c.contains(uint16(tInverted-12)))
}

func TestContainerCloneIsIndependent(t *testing.T) {
	c := newArr(1, 2, 3)
	clone := c.clone()
	clone.set(4)
	assert.False(t, c.contains(4))
	assert.True(t, clone.contains(4))
}

func TestContainerForkOnSharedData(t *testing.T) {
	c := newArr(1, 2, 3)
	shared := *c
	shared.Shared = true
	shared.set(4)
	assert.True(t, shared.contains(4))
	assert.False(t, c.contains(4)) // original untouched since fork cloned Data
}

func shapeName(t ctype) string {
	switch t {
	case typeArray:
		return "array"
	case typeBitmap:
		return "bitmap"
	case typeInverted:
		return "inverted"
	default:
		return "unknown"
	}
}

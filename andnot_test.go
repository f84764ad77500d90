// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAndNot(t *testing.T) {
	tc := []struct {
		name   string
		c1     *container
		c2     *container
		result []uint16
	}{
		{"empty", newArr(), newArr(), []uint16{}},
		{"arr ∖ arr", newArr(1, 2, 3), newArr(2, 3), []uint16{1}},
		{"arr ∖ bmp", newArr(1, 2, 3), newBmp(2, 3), []uint16{1}},
		{"arr ∖ inv", newArr(1, 2, 3), newInv(2, 3, 4), []uint16{1}},
		{"bmp ∖ arr", newBmp(1, 2, 3), newArr(2, 3), []uint16{1}},
		{"bmp ∖ bmp", newBmp(1, 2, 3), newBmp(2, 3), []uint16{1}},
		{"bmp ∖ inv", newBmp(1, 2, 3), newInv(2, 3, 4), []uint16{1}},
		{"inv ∖ arr", newInv(1, 2, 3), newArr(2, 3), []uint16{1}},
		{"inv ∖ bmp", newInv(1, 2, 3), newBmp(2, 3), []uint16{1}},
		{"inv ∖ inv", newInv(1, 2, 3), newInv(2, 3, 4), []uint16{1}},
		{"no overlap", newArr(1, 2, 3), newArr(4, 5, 6), []uint16{1, 2, 3}},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := bitmapWith(tt.c1)
			b, _ := bitmapWith(tt.c2)
			a.AndNot(b)
			assert.Equal(t, tt.result, valuesOf(a))
		})
	}
}

func TestAndNotEmptyOther(t *testing.T) {
	a := FromValues([]uint32{1, 2, 3})
	a.AndNot(New())
	assert.Equal(t, []uint32{1, 2, 3}, a.ToSlice())
}

func TestAndNotEmptySelf(t *testing.T) {
	a := New()
	a.AndNot(FromValues([]uint32{1, 2, 3}))
	assert.True(t, a.IsEmpty())
}

func TestDifferencePure(t *testing.T) {
	a := FromValues([]uint32{1, 2, 3})
	b := FromValues([]uint32{2, 3})
	out := Difference(a, b)
	assert.Equal(t, []uint32{1}, out.ToSlice())
	assert.Equal(t, []uint32{1, 2, 3}, a.ToSlice()) // a untouched
}

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

const multiHeaderAlign = 32

// Multi is a MultiRoaringBitmap: a sequence of immutable bitmaps packed
// back-to-back in one buffer with a header of offsets/sizes, suitable for
// memory mapping as a whole.
type Multi struct {
	buf     []byte
	offsets []uint32
	sizes   []uint32
}

// Pack serializes bitmaps into one contiguous MultiRoaringBitmap buffer. A
// nil entry in bitmaps is packed as an absent (zero-size) slot.
func Pack(bitmaps []*Bitmap) []byte {
	n := len(bitmaps)
	headerSize := 4 + 4*n + 4*n
	headerSize = alignUp(headerSize, multiHeaderAlign)

	frozen := make([][]byte, n)
	for i, b := range bitmaps {
		if b == nil {
			continue
		}
		frozen[i] = b.Freeze()
	}

	offsets := make([]uint32, n)
	sizes := make([]uint32, n)
	payload := make([]byte, 0, headerSize)

	cursor := headerSize
	for i, buf := range frozen {
		if len(buf) == 0 {
			sizes[i] = 0
			offsets[i] = uint32(cursor)
			continue
		}

		for cursor%8 != 0 {
			payload = append(payload, 0)
			cursor++
		}

		offsets[i] = uint32(cursor)
		sizes[i] = uint32(len(buf))
		payload = append(payload, buf...)
		cursor += len(buf)
	}

	out := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(out[0:4], uint32(n))
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(out[4+4*i:], offsets[i])
		binary.LittleEndian.PutUint32(out[4+4*n+4*i:], sizes[i])
	}
	return append(out, payload...)
}

// OpenMulti decodes a packed MultiRoaringBitmap buffer.
func OpenMulti(buf []byte) (*Multi, error) {
	if len(buf) < 4 {
		return nil, errors.Wrap(ErrInvalidBuffer, "truncated multi header")
	}

	n := int(binary.LittleEndian.Uint32(buf[0:4]))
	headerSize := alignUp(4+4*n+4*n, multiHeaderAlign)
	if n < 0 || len(buf) < headerSize {
		return nil, errors.Wrap(ErrInvalidBuffer, "truncated multi offset/size table")
	}

	offsets := make([]uint32, n)
	sizes := make([]uint32, n)
	prev := uint32(0)
	for i := 0; i < n; i++ {
		off := binary.LittleEndian.Uint32(buf[4+4*i:])
		size := binary.LittleEndian.Uint32(buf[4+4*n+4*i:])
		if off < prev || int(off)+int(size) > len(buf) {
			return nil, errors.Wrap(ErrInvalidBuffer, "multi offsets out of range")
		}
		offsets[i] = off
		sizes[i] = size
		prev = off
	}

	return &Multi{buf: buf, offsets: offsets, sizes: sizes}, nil
}

// Len returns N, the number of slots in the multi-bitmap.
func (m *Multi) Len() int { return len(m.offsets) }

// BufSize returns offsets[N-1] + sizes[N-1], the logical end of the last
// payload.
func (m *Multi) BufSize() int {
	n := len(m.offsets)
	if n == 0 {
		return 0
	}
	return int(m.offsets[n-1] + m.sizes[n-1])
}

// Get returns an immutable view over slot i, or ok=false if i is
// out-of-range or the slot is absent/empty.
func (m *Multi) Get(i int) (im *Immutable, ok bool) {
	if i < 0 || i >= len(m.offsets) || m.sizes[i] == 0 {
		return nil, false
	}

	start := int(m.offsets[i])
	end := start + int(m.sizes[i])
	im, err := Open(m.buf[start:end])
	if err != nil {
		return nil, false
	}
	return im, true
}

// GetErr is Get with ErrOutOfDomain surfaced instead of ok=false when i is
// outside [0, N), for callers that want the error taxonomy rather than a
// boolean check. An absent (zero-size) slot returns a nil *Immutable with a
// nil error, matching spec.md's "absent" convention rather than an
// out-of-domain condition.
func (m *Multi) GetErr(i int) (*Immutable, error) {
	if i < 0 || i >= len(m.offsets) {
		return nil, errors.Wrap(ErrOutOfDomain, fmt.Sprintf("index %d outside [0, %d)", i, len(m.offsets)))
	}
	im, _ := m.Get(i)
	return im, nil
}

// Intersection computes the multi-way intersection of the entries named by
// indices, restricted to [start, stop) if stop > start (pass start==stop==0
// for no clamp). Entries are merged smallest-first to minimize intermediate
// size, short-circuiting as soon as the accumulator empties. ok is false if
// any index is out of range or names an absent entry.
func (m *Multi) Intersection(indices []int, start, stop uint32) (*Bitmap, bool) {
	type entry struct {
		im   *Immutable
		size int
	}

	entries := make([]entry, 0, len(indices))
	for _, j := range indices {
		if j < 0 || j >= len(m.offsets) {
			return nil, false
		}
		im, ok := m.Get(j)
		if !ok {
			return nil, false
		}
		entries = append(entries, entry{im: im, size: im.Count()})
	}
	if len(entries) == 0 {
		return New(), true
	}

	sort.Slice(entries, func(a, b int) bool { return entries[a].size < entries[b].size })

	acc := entries[0].im.ToBitmap()
	if stop > start {
		acc = acc.Clamp(start, stop)
	}

	for _, e := range entries[1:] {
		if acc.IsEmpty() {
			break
		}
		acc.And(e.im.ToBitmap())
	}
	return acc, true
}

// JaccardDist returns the pairwise Jaccard distance d(a[i], b[i]) for each
// i, with an absent entry on either side yielding distance 1.
func (m *Multi) JaccardDist(a, b []int) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		ai, aok := m.Get(a[i])
		bi, bok := m.Get(b[i])
		if !aok || !bok {
			out[i] = 1
			continue
		}
		out[i] = jaccardDist(ai, bi)
	}
	return out
}

func alignUp(v, align int) int {
	if r := v % align; r != 0 {
		v += align - r
	}
	return v
}

// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

//go:build unix

package roaring

import (
	"os"

	"golang.org/x/sys/unix"
)

// OpenMappedFile memory-maps path read-only and decodes it as a serialized
// bitmap. The returned close function unmaps the file; the Immutable must
// not be used after calling it.
func OpenMappedFile(path string) (*Immutable, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, wrapIO(err, "opening file for mmap")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, wrapIO(err, "stat mmap file")
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, wrapIO(err, "mmap")
	}

	im, err := Open(data)
	if err != nil {
		_ = unix.Munmap(data)
		return nil, nil, err
	}

	return im, func() error { return unix.Munmap(data) }, nil
}

// FreezeToFile serializes the bitmap and writes it to path through a
// read-write mapping, flushing with Msync before the mapping is released.
func (rb *Bitmap) FreezeToFile(path string) error {
	return writeBufToFile(path, rb.Freeze())
}

// writeBufToFile truncates path to len(buf), maps it read-write, copies buf
// in, and Msyncs before unmapping. Shared by Bitmap.FreezeToFile and
// Multi packing so both flush through the same path.
func writeBufToFile(path string, buf []byte) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return wrapIO(err, "opening file for freeze")
	}
	defer f.Close()

	if err := f.Truncate(int64(len(buf))); err != nil {
		return wrapIO(err, "truncating file")
	}
	if len(buf) == 0 {
		return nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, len(buf), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return wrapIO(err, "mmap for write")
	}
	defer unix.Munmap(data)

	copy(data, buf)
	if err := unix.Msync(data, unix.MS_SYNC); err != nil {
		return wrapIO(err, "msync")
	}
	return nil
}

// OpenMultiMappedFile memory-maps path read-only and decodes it as a packed
// MultiRoaringBitmap, the bulk counterpart of the single-bitmap
// OpenMappedFile (a MultiRoaringBitmap is explicitly meant to be read this
// way: its whole point is one contiguous, memory-mappable buffer).
func OpenMultiMappedFile(path string) (*Multi, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, wrapIO(err, "opening file for mmap")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, wrapIO(err, "stat mmap file")
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, wrapIO(err, "mmap")
	}

	m, err := OpenMulti(data)
	if err != nil {
		_ = unix.Munmap(data)
		return nil, nil, err
	}

	return m, func() error { return unix.Munmap(data) }, nil
}

// PackToFile packs bitmaps and writes the result to path through a
// read-write mapping, flushing with Msync before the mapping is released.
func PackToFile(path string, bitmaps []*Bitmap) error {
	return writeBufToFile(path, Pack(bitmaps))
}

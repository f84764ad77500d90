// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel error kinds. Kernels on the hot path (container ops reachable
// only from already-validated public API) never allocate errors; only
// buffer validation, file I/O, and out-of-domain argument checks return
// one of these, wrapped with errors.Wrap/errors.WithStack for a trace.
var (
	// ErrOutOfDomain is returned by Multi.GetErr when the slot index falls
	// outside [0, N).
	ErrOutOfDomain = errors.New("roaring: value out of domain")

	// ErrSelectOutOfRange is returned by SelectErr when k is negative or
	// >= cardinality.
	ErrSelectOutOfRange = errors.New("roaring: select index out of range")

	// ErrInvalidBuffer is returned when a serialized buffer fails a
	// structural check (truncated header, offsets out of order, bad shape
	// tag, size mismatch).
	ErrInvalidBuffer = errors.New("roaring: invalid serialized buffer")

	// ErrIOFailure wraps an underlying file or mmap syscall failure.
	ErrIOFailure = errors.New("roaring: I/O failure")
)

// wrapIO wraps a file/mmap syscall error as ErrIOFailure, keeping both the
// sentinel (for errors.Is) and the underlying error's text.
func wrapIO(err error, msg string) error {
	return errors.Wrap(ErrIOFailure, fmt.Sprintf("%s: %v", msg, err))
}

// Package csr: sentinel error set. This file defines ONLY package-level
// sentinel errors used across the csr package, following the same
// priority-documented, errors.Is-friendly convention as lvlath/matrix.
//
// ERROR PRIORITY (the order in which FromArrays checks):
// empty indptr -> non-monotonic indptr -> indptr/indices total mismatch
// -> out-of-range id.
package csr

import "errors"

var (
	// ErrOutOfRangeID indicates that indices contains a stored neighbor id
	// that is >= the declared row count nv.
	ErrOutOfRangeID = errors.New("csr: stored id out of range")

	// ErrNonMonotonicIndptr indicates that indptr is not non-decreasing, or
	// that indptr[0] != 0.
	ErrNonMonotonicIndptr = errors.New("csr: indptr is not monotonic")

	// ErrIndptrLength indicates indptr does not have exactly nv+1 entries.
	ErrIndptrLength = errors.New("csr: indptr has wrong length")

	// ErrIndptrTotalMismatch indicates indptr[nv] does not equal len(indices).
	ErrIndptrTotalMismatch = errors.New("csr: indptr[nv] does not match len(indices)")
)

// SPDX-License-Identifier: MIT

// Package matrix provides a generic, row-major dense matrix and the
// in-place pivot kernel shared by path-algebra closures.
//
// What:
//
//   - Dense[T]: r×c matrix stored in one flat slice; bounds-checked At/Set
//     return ErrOutOfRange instead of panicking.
//   - Cell/SetCell: unchecked accessors for hot loops whose indices are
//     already validated by the caller.
//   - Pivot: one round of the k → i → j closure (Floyd–Warshall shape,
//     generalized to any semiring-like update supplied by the caller).
//
// Why generic:
//
//	The same table holds regular-expression fragments during state
//	elimination and plain float64 size estimates during projection.
//
// Determinism:
//
//	Pivot visits rows and then columns in ascending index order, so the
//	sequence of updates is fixed for a given matrix and mask.
//
// Complexity: Pivot is O(n²) per round; a full closure is O(n³).
package matrix

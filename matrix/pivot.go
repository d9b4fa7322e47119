// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One in-place round of the k → i → j closure over a square Dense[T].
//   - Shared by state elimination (regex cells) and size projection (float64).
//
// Contract:
//   - Cells for which absent reports true are "no path" and are skipped on
//     both the i→k and k→j side, so relax sees only live candidates.
//   - Row and column k are never written; callers detach k afterwards.

package matrix

import "fmt"

// Operation name constant for unified error wrapping.
const opPivot = "Pivot"

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// RelaxFunc computes the new value of cell (i, j) from its current value and
// the i→k and k→j cells of the pivot. A non-nil error aborts the round.
type RelaxFunc[T any] func(i, j int, ij, ik, kj T) (T, error)

// Pivot routes every path i → k → j through pivot k, for all active i, j
// distinct from k. It returns the number of cells rewritten.
//
// Stage 1 (Validate): square matrix, mask length, pivot in range.
// Stage 2 (Execute): fixed i → j order, skipping absent i→k and k→j cells.
//
// Complexity: O(n²) relax calls in the worst case, no allocations.
func Pivot[T any](m *Dense[T], k int, active []bool, absent func(T) bool, relax RelaxFunc[T]) (int, error) {
	if err := ValidateMask(m, active); err != nil {
		return 0, matrixErrorf(opPivot, err)
	}
	n := m.r
	if k < 0 || k >= n {
		return 0, matrixErrorf(opPivot, denseErrorf("Cell", k, k, ErrOutOfRange))
	}

	var (
		i, j         int
		ik, kj, v    T
		err          error
		updates      int
		baseK, baseI = k * n, 0
	)
	data := m.data
	for i = 0; i < n; i++ {
		if !active[i] || i == k {
			continue
		}
		ik = data[i*n+k]
		if absent(ik) {
			continue // i cannot reach k
		}
		baseI = i * n
		for j = 0; j < n; j++ {
			if !active[j] || j == k {
				continue
			}
			kj = data[baseK+j]
			if absent(kj) {
				continue
			}
			if v, err = relax(i, j, data[baseI+j], ik, kj); err != nil {
				return updates, matrixErrorf(opPivot, err)
			}
			data[baseI+j] = v
			updates++
		}
	}

	return updates, nil
}

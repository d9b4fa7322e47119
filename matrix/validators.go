// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape and argument checks.
//  - Return wrapped sentinels so call sites can match with errors.Is.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Square → Mask).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil[T any](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and has Rows() == Cols().
// Complexity: O(1).
func ValidateSquare[T any](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateMask ensures an activity mask covers every row of a square m.
func ValidateMask[T any](m *Dense[T], mask []bool) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if len(mask) != m.r {
		return validatorErrorf("ValidateMask", fmt.Errorf("len %d, order %d: %w", len(mask), m.r, ErrMaskLength))
	}

	return nil
}

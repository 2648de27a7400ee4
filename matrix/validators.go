package matrix

import "fmt"

// Validators centralize the guard checks shared by callers so kernels stay
// minimal. All checks are pure and allocate nothing.

// ValidateNotNil ensures m is non-nil. Returns ErrNilMatrix otherwise.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return fmt.Errorf("ValidateNotNil: %w", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square (Rows == Cols).
// Returns ErrNilMatrix or ErrNonSquare. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

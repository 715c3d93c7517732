// SPDX-License-Identifier: MIT

// Package solver: the public Solver abstraction plus shared system plumbing.
// This file intentionally contains ONLY the strategy interface and the
// helpers every strategy needs (validation, copy-in, copy-out); the concrete
// algorithms live in lu.go and givens.go.
package solver

import (
	"fmt"

	"github.com/katalvlaran/polyfit/matrix"
)

// Solver solves the square linear system A·X = B for one or more right-hand
// side columns. Implementations must not mutate a or b and must return a
// freshly allocated X of shape (a.Rows × b.Cols).
//
// Errors: matrix.ErrNilMatrix / matrix.ErrDimensionMismatch on structural
// violations, ErrSingular when the system has no unique solution. A non-nil
// error means no solution was produced.
type Solver interface {
	Solve(a, b matrix.Matrix) (matrix.Matrix, error)
}

// solverErrorf wraps err with a strategy tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSystem checks the structural contract shared by every strategy:
// a and b non-nil, a square, and a.Rows == b.Rows.
// Returns plain wrapped sentinels; O(1), allocation-free.
func validateSystem(a, b matrix.Matrix) error {
	// A must be present and square.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return err
	}
	// B must be present.
	if err := matrix.ValidateNotNil(b); err != nil {
		return err
	}
	// Row counts must line up for A·X = B to be well-posed.
	if a.Rows() != b.Rows() {
		return fmt.Errorf("validateSystem: %w", matrix.ErrDimensionMismatch)
	}

	return nil
}

// flatten copies m into a fresh row-major flat slice.
// Assumes m passed validation; At errors cannot occur after a shape check.
// Complexity: O(r*c) time and memory.
func flatten(m matrix.Matrix) []float64 {
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var i, j int
	var v float64
	for i = 0; i < rows; i++ { // fixed i→j order
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // bounds-safe after validation
			out[i*cols+j] = v
		}
	}

	return out
}

// unflatten writes a row-major flat slice of shape rows×cols into a fresh
// Dense. Complexity: O(r*c).
func unflatten(data []float64, rows, cols int) (*matrix.Dense, error) {
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			_ = out.Set(i, j, data[i*cols+j]) // Set is bounds-safe here
		}
	}

	return out, nil
}

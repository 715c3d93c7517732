// SPDX-License-Identifier: MIT

package fit

import (
	"github.com/katalvlaran/polyfit/matrix"
	"github.com/katalvlaran/polyfit/solver"
)

// Vandermonde builds the N×(degree+1) design matrix V with V[i][j] = x[i]^j,
// using running products instead of repeated exponentiation.
// Fails with matrix.ErrInvalidDimensions when x is empty or degree < 0.
// Complexity: O(N·d).
func Vandermonde(x []float64, degree int) (*matrix.Dense, error) {
	// The constructor rejects len(x) == 0 and degree+1 <= 0 for us.
	v, err := matrix.NewDense(len(x), degree+1)
	if err != nil {
		return nil, err
	}
	var row, col int
	var val float64
	for row = 0; row < len(x); row++ {
		val = 1.0 // x^0
		for col = 0; col <= degree; col++ {
			_ = v.Set(row, col, val) // bounds-safe by construction
			val *= x[row]            // power up for the next column
		}
	}

	return v, nil
}

// FitWith fits a polynomial of the given degree to the samples (x, y) in a
// least-squares sense, delegating the square solve to the supplied strategy.
// A nil strategy defaults to pivoted LU.
//
// Pipeline: Vandermonde design → normal equations (Vᵀ·V)·c = Vᵀ·y → s.Solve.
// Returns degree+1 coefficients ordered from the constant term upward.
//
// Errors:
//   - ErrLengthMismatch when len(x) != len(y); nothing is computed.
//   - matrix.ErrInvalidDimensions for empty samples or negative degree.
//   - solver.ErrSingular when the normal equations have no unique solution
//     (e.g. all x identical, or fewer distinct x values than degree+1).
//
// Complexity: O(N·d²) to form the normal equations, O(d³) to solve.
func FitWith(x, y []float64, degree int, s solver.Solver) ([]float64, error) {
	// Fail fast before any allocation.
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if s == nil {
		s = solver.LU{}
	}

	// Design matrix and right-hand side column.
	v, err := Vandermonde(x, degree)
	if err != nil {
		return nil, err
	}
	rhs, err := column(y)
	if err != nil {
		return nil, err
	}

	// Normal equations: (Vᵀ·V)·c = Vᵀ·y.
	vt, err := matrix.Transpose(v)
	if err != nil {
		return nil, err
	}
	vtv, err := matrix.Mul(vt, v)
	if err != nil {
		return nil, err
	}
	vty, err := matrix.Mul(vt, rhs)
	if err != nil {
		return nil, err
	}

	// Delegate the square solve to the strategy.
	c, err := s.Solve(vtv, vty)
	if err != nil {
		return nil, err
	}

	return firstColumn(c), nil
}

// Fit fits a polynomial of the given degree to (x, y) using Gaussian
// elimination with partial pivoting on the normal equations.
// See FitWith for the contract.
func Fit(x, y []float64, degree int) ([]float64, error) {
	return FitWith(x, y, degree, solver.LU{})
}

// FitQR fits a polynomial of the given degree to (x, y) using the Givens QR
// solver — the numerically safer path for high degrees or wide x-ranges,
// where the Vandermonde normal equations become ill-conditioned.
// See FitWith for the contract.
func FitQR(x, y []float64, degree int) ([]float64, error) {
	return FitWith(x, y, degree, solver.GivensQR{})
}

// Evaluate computes the fitted polynomial at every query point in x.
// coeffs is ordered from the constant term upward, so its length implicitly
// defines the degree; powers accumulate iteratively — no exponentiation.
// The only shape requirement is non-empty coeffs semantics: an empty slice
// yields all zeros. Complexity: O(len(x)·len(coeffs)).
func Evaluate(coeffs, x []float64) []float64 {
	out := make([]float64, len(x))
	var i, j int
	var acc, pow float64
	for i = 0; i < len(x); i++ {
		acc = 0
		pow = 1 // x^0
		for j = 0; j < len(coeffs); j++ {
			acc += coeffs[j] * pow // add coefficient · current power
			pow *= x[i]            // power up the x
		}
		out[i] = acc
	}

	return out
}

// column copies a sample slice into a fresh len(v)×1 Dense.
func column(v []float64) (*matrix.Dense, error) {
	m, err := matrix.NewDense(len(v), 1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(v); i++ {
		_ = m.Set(i, 0, v[i]) // bounds-safe by construction
	}

	return m, nil
}

// firstColumn extracts column 0 of m into a flat slice.
// Assumes m is a freshly solved coefficient column (shape validated upstream).
func firstColumn(m matrix.Matrix) []float64 {
	out := make([]float64, m.Rows())
	var v float64
	for i := 0; i < m.Rows(); i++ {
		v, _ = m.At(i, 0) // bounds-safe: column matrices always have col 0
		out[i] = v
	}

	return out
}

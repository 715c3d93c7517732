// SPDX-License-Identifier: MIT

package fit

import (
	"github.com/katalvlaran/polyfit/matrix"
	"github.com/katalvlaran/polyfit/solver"
)

// SurfaceTerms is the number of basis functions in the fixed quadratic
// surface basis [1, x, y, x·y, x², y²], and therefore the length of every
// surface coefficient vector.
const SurfaceTerms = 6

// Recenter returns copies of x and y translated so that the first sample
// becomes the local origin: out[i] = in[i] - in[0]. The inputs are never
// mutated. Recentering is the required preprocessing stage of Fit3D; it
// improves the conditioning of the surface normal equations.
// Empty inputs yield empty outputs. Complexity: O(N).
func Recenter(x, y []float64) ([]float64, []float64) {
	tx := make([]float64, len(x))
	ty := make([]float64, len(y))
	if len(x) > 0 {
		x0 := x[0]
		for i := range x {
			tx[i] = x[i] - x0
		}
	}
	if len(y) > 0 {
		y0 := y[0]
		for i := range y {
			ty[i] = y[i] - y0
		}
	}

	return tx, ty
}

// SurfaceDesign builds the N×6 design matrix whose row i holds the quadratic
// basis [1, x[i], y[i], x[i]·y[i], x[i]², y[i]²].
// Fails with ErrLengthMismatch when len(x) != len(y) and with
// matrix.ErrInvalidDimensions when the inputs are empty.
// Complexity: O(N).
func SurfaceDesign(x, y []float64) (*matrix.Dense, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	d, err := matrix.NewDense(len(x), SurfaceTerms)
	if err != nil {
		return nil, err
	}
	var xi, yi float64
	for i := 0; i < len(x); i++ {
		xi, yi = x[i], y[i]
		// Fixed basis order: constant, linear, cross, square terms.
		_ = d.Set(i, 0, 1)
		_ = d.Set(i, 1, xi)
		_ = d.Set(i, 2, yi)
		_ = d.Set(i, 3, xi*yi)
		_ = d.Set(i, 4, xi*xi)
		_ = d.Set(i, 5, yi*yi)
	}

	return d, nil
}

// Fit3D fits the quadratic surface z ≈ c0 + c1·x + c2·y + c3·x·y + c4·x² +
// c5·y² to the samples in a least-squares sense.
//
// Stages:
//  1. Recenter x and y so the first sample is the local origin (fresh
//     slices; the caller's data stays untouched).
//  2. Build the N×6 design matrix from the translated samples.
//  3. Form the normal equations and solve them with Givens QR — the LU path
//     is deliberately not offered for surfaces.
//
// Returns the 6-element coefficient vector together with the fitted z values
// at the translated inputs (design · coeffs), one per sample.
//
// Errors: ErrLengthMismatch when the three slices differ in length,
// matrix.ErrInvalidDimensions for empty inputs, solver.ErrSingular for
// degenerate sample layouts (e.g. all points collinear).
//
// Complexity: O(N) design construction, O(N·6²) normal equations, O(6³) solve.
func Fit3D(x, y, z []float64) (coeffs, fitted []float64, err error) {
	// All three sample slices must line up before anything is computed.
	if len(x) != len(y) || len(x) != len(z) {
		return nil, nil, ErrLengthMismatch
	}

	// Stage 1: translate to the local origin.
	tx, ty := Recenter(x, y)

	// Stage 2: quadratic design matrix over the translated samples.
	design, err := SurfaceDesign(tx, ty)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := column(z)
	if err != nil {
		return nil, nil, err
	}

	// Stage 3: normal equations solved via the orthogonal path only.
	dt, err := matrix.Transpose(design)
	if err != nil {
		return nil, nil, err
	}
	dtd, err := matrix.Mul(dt, design)
	if err != nil {
		return nil, nil, err
	}
	dtz, err := matrix.Mul(dt, rhs)
	if err != nil {
		return nil, nil, err
	}
	c, err := solver.GivensQR{}.Solve(dtd, dtz)
	if err != nil {
		return nil, nil, err
	}
	coeffs = firstColumn(c)

	// Side product: fitted z at the translated inputs, design · coeffs.
	fitted, err = matrix.MatVec(design, coeffs)
	if err != nil {
		return nil, nil, err
	}

	return coeffs, fitted, nil
}

// Evaluate3D computes one fitted value per row of the design matrix: the dot
// product of the row against the coefficient vector.
//
// The design matrix must have len(coeffs) columns (matrix.ErrDimensionMismatch
// otherwise); build it with SurfaceDesign over recentred samples to evaluate
// at the same basis Fit3D used.
//
// A *matrix.Dense design reuses the Row + Mul operators against a coefficient
// column; any other Matrix implementation falls back to matrix.MatVec.
// Complexity: O(rows·len(coeffs)).
func Evaluate3D(coeffs []float64, design matrix.Matrix) ([]float64, error) {
	// Structural checks via the canonical validators.
	if err := matrix.ValidateNotNil(design); err != nil {
		return nil, err
	}
	if err := matrix.ValidateVecLen(coeffs, design.Cols()); err != nil {
		return nil, err
	}

	// Fast-path: Dense rows against a coefficient column.
	if d, ok := design.(*matrix.Dense); ok {
		cm, err := column(coeffs)
		if err != nil {
			return nil, err
		}
		out := make([]float64, d.Rows())
		var row *matrix.Dense
		var prod matrix.Matrix
		for i := 0; i < d.Rows(); i++ {
			row, err = d.Row(i) // 1×terms copy of row i
			if err != nil {
				return nil, err
			}
			prod, err = matrix.Mul(row, cm) // 1×1 dot product
			if err != nil {
				return nil, err
			}
			out[i], _ = prod.At(0, 0) // bounds-safe on a 1×1 result
		}

		return out, nil
	}

	// Fallback: generic matrix-vector product.
	return matrix.MatVec(design, coeffs)
}

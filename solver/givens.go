// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/polyfit/matrix"
)

// opQR tags errors produced by the Givens strategy.
const opQR = "GivensQR"

// GivensQR solves A·X = B through an orthogonal decomposition A = Q·R built
// from planar (Givens) rotations. Each rotation zeroes one sub-diagonal entry
// while its action is simultaneously accumulated onto B, so Qᵀ·B is produced
// incrementally and Q itself is never materialized.
//
// Orthogonal elimination does not amplify rounding error the way pivoted
// elimination can, which makes this strategy the safer choice for the
// ill-conditioned normal equations of high-degree Vandermonde systems.
// The zero value is ready to use and safe for concurrent callers.
type GivensQR struct{}

// Solve decomposes a private copy of A and back-substitutes against the
// rotated right-hand side.
//
// Implementation:
//   - Stage 1: Validate (a, b non-nil, a square, a.Rows == b.Rows); copy both
//     operands into flat working slices r and qtb.
//   - Stage 2: Process columns left to right; for each row i > k with
//     r[i,k] ≠ 0, form the rotation (c, s) that zeroes r[i,k] by combining
//     rows k and i, apply it to columns k..n-1 of r and to every column of
//     qtb. After the sweep r holds R and qtb holds Qᵀ·B.
//   - Stage 3: Check the diagonal of R for exact zeros, then back-substitute
//     R·x = Qᵗ·b per RHS column.
//
// Behavior highlights:
//   - Rotation parameters via math.Hypot(r[k,k], r[i,k]) for overflow-safe
//     magnitudes; the eliminated entry is set to exactly zero.
//   - Inputs are never mutated; one Dense allocation for X.
//
// Inputs:
//   - a: square coefficient matrix (n×n).
//   - b: right-hand side matrix (n×m), one system per column.
//
// Returns:
//   - matrix.Matrix: fresh Dense X (n×m) with A·X = B.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch (structural, Stage 1).
//   - ErrSingular when a diagonal entry of R is exactly zero after the
//     decomposition (rank-deficient system, Stage 3); no partial result.
//
// Determinism:
//   - Fixed k→i sweep order and fixed column ranges per rotation.
//
// Complexity:
//   - Time O(n³ + n²·m), Space O(n² + n·m) for the private copies.
func (GivensQR) Solve(a, b matrix.Matrix) (matrix.Matrix, error) {
	// Stage 1: structural validation.
	if err := validateSystem(a, b); err != nil {
		return nil, solverErrorf(opQR, err)
	}

	// Private working copies; callers' matrices stay untouched.
	n := a.Rows()
	m := b.Cols()
	r := flatten(a)   // becomes R, row-major n×n
	qtb := flatten(b) // becomes Qᵀ·B, row-major n×m

	// Stage 2: rotation sweep, columns left to right.
	var (
		k, i, j    int     // loop iterators
		rkk, rik   float64 // the pair (r[k,k], r[i,k]) defining the rotation
		hyp, c, s  float64 // rotation magnitude, cosine, sine
		rowK, rowI int     // flat base offsets of rows k and i
		tk, ti     float64 // rotated temporaries
	)
	for k = 0; k < n; k++ {
		rowK = k * n
		for i = k + 1; i < n; i++ {
			rowI = i * n
			rik = r[rowI+k]
			if rik == 0 {
				continue // already eliminated
			}
			rkk = r[rowK+k]
			// Rotation zeroing r[i,k]: c = rkk/h, s = rik/h with h = √(rkk²+rik²).
			hyp = math.Hypot(rkk, rik) // > 0 because rik ≠ 0
			c = rkk / hyp
			s = rik / hyp
			// Apply to r rows k and i over the active column range.
			for j = k; j < n; j++ {
				tk = c*r[rowK+j] + s*r[rowI+j]
				ti = -s*r[rowK+j] + c*r[rowI+j]
				r[rowK+j], r[rowI+j] = tk, ti
			}
			r[rowI+k] = 0 // exact zero, not a rounding residue
			// Accumulate the same rotation onto the right-hand side (Qᵀ·B).
			for j = 0; j < m; j++ {
				tk = c*qtb[k*m+j] + s*qtb[i*m+j]
				ti = -s*qtb[k*m+j] + c*qtb[i*m+j]
				qtb[k*m+j], qtb[i*m+j] = tk, ti
			}
		}
	}

	// Stage 3: rank check on the diagonal of R.
	for i = 0; i < n; i++ {
		if r[i*n+i] == 0 {
			return nil, solverErrorf(opQR, ErrSingular)
		}
	}

	// Back substitution R·x = Qᵀ·b, one RHS column at a time.
	x := make([]float64, n*m) // solution, row-major n×m
	var col int
	var sum float64
	for col = 0; col < m; col++ {
		for i = n - 1; i >= 0; i-- {
			sum = qtb[i*m+col]
			for j = i + 1; j < n; j++ {
				sum -= r[i*n+j] * x[j*m+col]
			}
			x[i*m+col] = sum / r[i*n+i]
		}
	}

	// Materialize X as a fresh Dense.
	out, err := unflatten(x, n, m)
	if err != nil {
		return nil, solverErrorf(opQR, err)
	}

	return out, nil
}

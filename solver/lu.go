// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/polyfit/matrix"
)

// opLU tags errors produced by the LU strategy.
const opLU = "LU"

// LU solves A·X = B by Gaussian elimination with partial pivoting.
// The zero value is ready to use; the type carries no state, so a single
// LU value may serve concurrent callers.
type LU struct{}

// Solve factorizes a private copy of A with partial pivoting and applies
// forward/back substitution to every column of B.
//
// Implementation:
//   - Stage 1: Validate (a, b non-nil, a square, a.Rows == b.Rows); copy both
//     operands into flat working slices; init the permutation index slice.
//   - Stage 2: For each pivot column k, pick the largest-|·| candidate among
//     rows ≥ k, swap it into position k (recording the swap in perm), then
//     eliminate below the pivot, storing multipliers in place of the zeroed
//     entries (combined L/U storage).
//   - Stage 3: For each RHS column, forward-substitute L·y = Pb (permutation
//     applied through perm), then back-substitute U·x = y.
//
// Behavior highlights:
//   - Partial pivoting: deterministic scan, first maximal row wins ties.
//   - Permutation kept as an explicit []int, not a permutation matrix.
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
//   - ErrSingular when the best pivot candidate is exactly zero (Stage 2);
//     no partial result is returned.
//
// Determinism:
//   - Fixed k→i→j elimination order; fixed column order over B.
//
// Complexity:
//   - Time O(n³ + n²·m), Space O(n² + n·m) for the private copies.
//
// Notes:
//   - Singularity detection is exact-zero only. For ill-conditioned systems
//     prefer GivensQR; do not rely on ErrSingular for near-singular inputs.
func (LU) Solve(a, b matrix.Matrix) (matrix.Matrix, error) {
	// Stage 1: structural validation.
	if err := validateSystem(a, b); err != nil {
		return nil, solverErrorf(opLU, err)
	}

	// Private working copies; callers' matrices stay untouched.
	n := a.Rows()
	m := b.Cols()
	lu := flatten(a)  // combined L/U storage, row-major n×n
	rhs := flatten(b) // row-major n×m

	// Permutation as an explicit index slice: row i of the permuted system
	// lives at physical row perm[i] of rhs.
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		perm[i] = i
	}

	// Stage 2: elimination with partial pivoting.
	var (
		k, i, j  int     // loop iterators
		p        int     // pivot row candidate
		mag, top float64 // candidate magnitude and current best
		mult     float64 // elimination multiplier
	)
	for k = 0; k < n; k++ {
		// Select the largest-magnitude entry in column k among rows ≥ k.
		p, top = k, math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			mag = math.Abs(lu[i*n+k])
			if mag > top {
				p, top = i, mag
			}
		}
		// Exact-zero best candidate ⇒ no unique solution.
		if top == 0 {
			return nil, solverErrorf(opLU, ErrSingular)
		}
		// Swap row p into pivot position k, recording the interchange.
		if p != k {
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[p*n+j] = lu[p*n+j], lu[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		// Eliminate below the pivot; keep the multiplier in the zeroed slot.
		for i = k + 1; i < n; i++ {
			mult = lu[i*n+k] / lu[k*n+k]
			lu[i*n+k] = mult // combined L/U storage
			for j = k + 1; j < n; j++ {
				lu[i*n+j] -= mult * lu[k*n+j]
			}
		}
	}

	// Stage 3: substitution, one RHS column at a time.
	x := make([]float64, n*m) // solution, row-major n×m
	y := make([]float64, n)   // forward-substitution workspace
	var col int
	var sum float64
	for col = 0; col < m; col++ {
		// Forward: L·y = P·b (unit diagonal on L, permutation via perm).
		for i = 0; i < n; i++ {
			sum = rhs[perm[i]*m+col]
			for j = 0; j < i; j++ {
				sum -= lu[i*n+j] * y[j]
			}
			y[i] = sum
		}
		// Backward: U·x = y (diagonal nonzero after pivoted elimination).
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for j = i + 1; j < n; j++ {
				sum -= lu[i*n+j] * x[j*m+col]
			}
			x[i*m+col] = sum / lu[i*n+i]
		}
	}

	// Materialize X as a fresh Dense.
	out, err := unflatten(x, n, m)
	if err != nil {
		return nil, solverErrorf(opLU, err)
	}

	return out, nil
}

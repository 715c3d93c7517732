// SPDX-License-Identifier: MIT

// Package solver solves square dense linear systems A·X = B.
//
// Two interchangeable strategies implement the Solver interface:
//
//   - LU — Gaussian elimination with partial pivoting plus forward/back
//     substitution. Fast and fine for well-conditioned systems.
//   - GivensQR — orthogonal decomposition via planar (Givens) rotations,
//     accumulating Qᵀ·B incrementally, then back substitution. Slower per
//     flop but numerically safer for ill-conditioned systems such as the
//     normal equations of high-degree Vandermonde design matrices.
//
// Both strategies share one contract: given square A (n×n) and conformable
// B (n×m), Solve returns a fresh n×m X or an error. A rank-deficient system
// yields ErrSingular — never a spurious result, never a panic. Neither
// strategy mutates its arguments; all elimination happens on private copies.
//
// Singularity is detected by exact-zero pivot/diagonal tests only. Callers
// working near the edge of floating-point conditioning should prefer GivensQR
// and must not rely on ErrSingular for "almost singular" inputs.
package solver

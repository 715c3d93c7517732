// SPDX-License-Identifier: MIT

// Package fit performs least-squares fitting of polynomial curves and
// quadratic surfaces to scattered data.
//
// Curve fitting (1-D):
//
//  1. Build the N×(d+1) Vandermonde design matrix V, V[i][j] = x[i]^j.
//  2. Form the normal equations (Vᵀ·V)·c = Vᵀ·y.
//  3. Solve the square system with a solver strategy:
//     Fit uses pivoted LU, FitQR uses Givens QR, FitWith takes any
//     solver.Solver.
//  4. Evaluate reconstructs fitted values via iterative power accumulation.
//
// Surface fitting (2-D, fixed quadratic basis):
//
//  1. Recenter translates the samples so the first point becomes the local
//     origin — a required preprocessing stage that improves conditioning;
//     caller slices are never mutated.
//  2. SurfaceDesign builds the N×6 design with columns [1, x, y, x·y, x², y²].
//  3. Fit3D forms the normal equations and solves via Givens QR only,
//     returning the 6 coefficients plus the fitted values at the translated
//     inputs; Evaluate3D evaluates a coefficient vector against any
//     conformable design matrix row by row.
//
// Errors: unequal input lengths yield ErrLengthMismatch; degenerate data
// (for example all x identical) drives the normal-equation matrix singular
// and surfaces as solver.ErrSingular. A failed fit returns no coefficients.
//
// Every function is a pure computation over its inputs, so concurrent calls
// with independent buffers are safe.
package fit

// SPDX-License-Identifier: MIT

// Package matrix offers dense float64 matrices for least-squares machinery.
//
// The matrix package provides:
//
//   - A minimal Matrix interface (Rows/Cols/At/Set/Clone) so kernels stay
//     storage-agnostic.
//   - Dense, a row-major flat-slice implementation with O(1) indexing and a
//     Row accessor that copies a single row into a fresh 1×c matrix.
//   - Kernels Mul, Transpose and MatVec, each with a *Dense fast-path and a
//     generic At/Set fallback, allocating fresh results and never mutating
//     operands.
//   - Centralized validators returning package sentinels (ErrNilMatrix,
//     ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch) matched via
//     errors.Is.
//
// The surface is deliberately small: only the operations the fit engines and
// solvers actually use are exported. This is not a general matrix library.
package matrix

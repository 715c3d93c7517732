// SPDX-License-Identifier: MIT
// Package solver: sentinel error set.
// All solver strategies MUST return these sentinels and tests MUST check them
// via errors.Is. Shape and nil violations reuse the matrix package sentinels
// (matrix.ErrNilMatrix, matrix.ErrDimensionMismatch) through the validators.

package solver

import "errors"

// ErrSingular is returned when a system has no unique solution: a zero pivot
// during LU elimination, or a zero diagonal entry of R after a Givens
// decomposition. Detection is exact-zero only; near-singular systems are the
// caller's responsibility.
var ErrSingular = errors.New("solver: singular matrix")

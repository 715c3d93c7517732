package solver_test

import (
	"testing"

	"github.com/katalvlaran/polyfit/matrix"
	"github.com/katalvlaran/polyfit/solver"
)

// benchSystem builds a diagonally dominant n×n system (always solvable) with
// a single right-hand side column.
func benchSystem(b *testing.B, n int) (*matrix.Dense, *matrix.Dense) {
	b.Helper()
	a, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	rhs, err := matrix.NewDense(n, 1)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 1.0
			if i == j {
				v = float64(n) + 1 // dominance keeps every pivot nonzero
			}
			_ = a.Set(i, j, v)
		}
		_ = rhs.Set(i, 0, float64(i+1))
	}
	return a, rhs
}

// benchmarkSolve runs the given strategy against an n×n system.
func benchmarkSolve(b *testing.B, s solver.Solver, n int) {
	a, rhs := benchSystem(b, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(a, rhs); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkLUSolve16 measures pivoted elimination on a small system.
func BenchmarkLUSolve16(b *testing.B) { benchmarkSolve(b, solver.LU{}, 16) }

// BenchmarkLUSolve64 measures pivoted elimination on a mid-size system.
func BenchmarkLUSolve64(b *testing.B) { benchmarkSolve(b, solver.LU{}, 64) }

// BenchmarkGivensQRSolve16 measures rotation elimination on a small system.
func BenchmarkGivensQRSolve16(b *testing.B) { benchmarkSolve(b, solver.GivensQR{}, 16) }

// BenchmarkGivensQRSolve64 measures rotation elimination on a mid-size system.
func BenchmarkGivensQRSolve64(b *testing.B) { benchmarkSolve(b, solver.GivensQR{}, 64) }

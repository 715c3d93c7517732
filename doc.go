// Package polyfit is a small, pure-Go toolkit for least-squares fitting of
// low-order polynomial curves (1-D) and quadratic surfaces (2-D) to scattered
// data, together with the dense linear-algebra machinery that makes the fits
// work.
//
// 🚀 What is polyfit?
//
//	A focused, dependency-light library that brings together:
//		• Dense matrices: construction, indexing, transpose, multiply
//		• LU solving: Gaussian elimination with partial pivoting
//		• Givens QR: orthogonal rotation-based decomposition & solve
//		• Curve fitting: Vandermonde design → normal equations → solve
//		• Surface fitting: 6-term quadratic basis {1, x, y, xy, x², y²}
//
// ✨ Why choose polyfit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest failures – singular systems report errors, never guesses
//   - Pure Go – no cgo, no hidden deps
//   - Two solvers – pivoted LU for speed, Givens QR for ill-conditioned fits
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — dense Matrix interface + row-major Dense, transpose & multiply
//	solver/ — the Solver strategy interface with LU and GivensQR behind it
//	fit/    — Fit/FitQR/Evaluate for curves, Fit3D/Evaluate3D for surfaces
//
// Quick example:
//
//	x := []float64{0, 1, 2, 3, 4}
//	y := []float64{1, 3, 7, 13, 21} // 1 + x + x²
//	coeffs, err := fit.Fit(x, y, 2)
//	if err != nil {
//	    // fit not performed; inspect with errors.Is
//	}
//	fitted := fit.Evaluate(coeffs, x)
//
// Every call is a pure function of its inputs: no shared scratch space, no
// state across calls, safe for concurrent use with independent buffers.
//
// See each subpackage's doc.go for algorithms, error contracts and examples.
//
//	go get github.com/katalvlaran/polyfit
package polyfit

// Package fit_test: unit tests for the quadratic surface fit engine —
// recentering, design construction, plane recovery, evaluation, and the
// degenerate-input error contracts.
package fit_test

import (
	"testing"

	"github.com/katalvlaran/polyfit/fit"
	"github.com/katalvlaran/polyfit/matrix"
	"github.com/katalvlaran/polyfit/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// surfaceTol bounds fitted-value error for the small, well-posed surface
// systems used below.
const surfaceTol = 1e-8

// planeNodes returns sample coordinates that make the 6-term quadratic basis
// uniquely solvable (the degree-2 triangular lattice plus one extra point for
// over-determination), shifted by (dx, dy), with z on the plane
// z = 1 + 2x + 3y over the shifted coordinates.
func planeNodes(dx, dy float64) (x, y, z []float64) {
	base := [][2]float64{{0, 0}, {1, 0}, {0, 1}, {2, 0}, {1, 1}, {0, 2}, {2, 2}}
	for _, p := range base {
		px, py := p[0]+dx, p[1]+dy
		x = append(x, px)
		y = append(y, py)
		z = append(z, 1+2*px+3*py)
	}
	return x, y, z
}

// TestRecenterTranslatesToOrigin checks the preprocessing stage: the first
// sample becomes (0,0), every point shifts by the same offset, and the
// caller's slices are untouched.
func TestRecenterTranslatesToOrigin(t *testing.T) {
	x := []float64{5, 6, 7}
	y := []float64{-2, 0, 2}

	tx, ty := fit.Recenter(x, y)

	assert.Equal(t, []float64{0, 1, 2}, tx) // shifted by -x[0]
	assert.Equal(t, []float64{0, 2, 4}, ty) // shifted by -y[0]

	// inputs must remain exactly as supplied
	assert.Equal(t, []float64{5, 6, 7}, x)
	assert.Equal(t, []float64{-2, 0, 2}, y)
}

// TestRecenterEmptyInputs ensures empty slices pass through as empty.
func TestRecenterEmptyInputs(t *testing.T) {
	tx, ty := fit.Recenter(nil, nil)
	assert.Empty(t, tx)
	assert.Empty(t, ty)
}

// TestSurfaceDesignBasisOrder verifies the fixed column order
// [1, x, y, x·y, x², y²] of the design matrix.
func TestSurfaceDesignBasisOrder(t *testing.T) {
	d, err := fit.SurfaceDesign([]float64{2}, []float64{3})
	require.NoError(t, err)
	require.Equal(t, 1, d.Rows())
	require.Equal(t, fit.SurfaceTerms, d.Cols())

	want := []float64{1, 2, 3, 6, 4, 9}
	for j, w := range want {
		got, err := d.At(0, j)
		require.NoError(t, err)
		assert.Equal(t, w, got, "basis column %d", j)
	}
}

// TestSurfaceDesignErrors covers the length and emptiness contracts.
func TestSurfaceDesignErrors(t *testing.T) {
	_, err := fit.SurfaceDesign([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, fit.ErrLengthMismatch)

	_, err = fit.SurfaceDesign(nil, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFit3DRecoversPlane fits the quadratic basis to noise-free samples of a
// plane and expects the fitted values to reproduce z exactly (the plane lies
// inside the basis span) with vanishing second-order terms.
func TestFit3DRecoversPlane(t *testing.T) {
	x, y, z := planeNodes(0, 0) // first sample already at the origin

	coeffs, fitted, err := fit.Fit3D(x, y, z)
	require.NoError(t, err)
	require.Len(t, coeffs, fit.SurfaceTerms)
	require.Len(t, fitted, len(z))

	// plane coefficients survive, quadratic terms collapse to ~0
	assert.InDelta(t, 1.0, coeffs[0], surfaceTol, "constant term")
	assert.InDelta(t, 2.0, coeffs[1], surfaceTol, "x term")
	assert.InDelta(t, 3.0, coeffs[2], surfaceTol, "y term")
	for j := 3; j < fit.SurfaceTerms; j++ {
		assert.InDelta(t, 0.0, coeffs[j], surfaceTol, "higher term %d", j)
	}

	for i := range z {
		assert.InDelta(t, z[i], fitted[i], surfaceTol, "fitted z[%d]", i)
	}
}

// TestFit3DTranslationObservable fits samples whose first point is far from
// the origin: the recentering stage must leave the fit exact and the caller's
// slices unmodified.
func TestFit3DTranslationObservable(t *testing.T) {
	x, y, z := planeNodes(10, 20)
	xOrig := append([]float64(nil), x...)
	yOrig := append([]float64(nil), y...)

	// the named preprocessing stage puts the first sample at the origin
	tx, ty := fit.Recenter(x, y)
	assert.Equal(t, 0.0, tx[0])
	assert.Equal(t, 0.0, ty[0])

	_, fitted, err := fit.Fit3D(x, y, z)
	require.NoError(t, err)
	for i := range z {
		assert.InDelta(t, z[i], fitted[i], surfaceTol, "fitted z[%d]", i)
	}

	// caller data untouched despite the internal translation
	assert.Equal(t, xOrig, x)
	assert.Equal(t, yOrig, y)
}

// TestFit3DLengthMismatch ensures any unequal slice pair fails fast.
func TestFit3DLengthMismatch(t *testing.T) {
	two := []float64{1, 2}
	three := []float64{1, 2, 3}

	_, _, err := fit.Fit3D(two, three, three)
	require.ErrorIs(t, err, fit.ErrLengthMismatch)

	_, _, err = fit.Fit3D(three, three, two)
	require.ErrorIs(t, err, fit.ErrLengthMismatch)
}

// TestFit3DUnderdeterminedSamples documents the honest failure mode for
// fewer samples than basis terms: with three points the 6×6 normal equations
// are rank-deficient, so the solve reports ErrSingular instead of inventing
// coefficients.
func TestFit3DUnderdeterminedSamples(t *testing.T) {
	x := []float64{0, 1, 0}
	y := []float64{0, 0, 1}
	z := []float64{0, 1, 1}

	coeffs, fitted, err := fit.Fit3D(x, y, z)
	require.ErrorIs(t, err, solver.ErrSingular)
	require.Nil(t, coeffs)
	require.Nil(t, fitted)
}

// TestEvaluate3DMatchesFittedValues evaluates the fitted coefficients
// against a design built over the recentred samples and expects the same
// values Fit3D reported.
func TestEvaluate3DMatchesFittedValues(t *testing.T) {
	x, y, z := planeNodes(4, -3)

	coeffs, fitted, err := fit.Fit3D(x, y, z)
	require.NoError(t, err)

	tx, ty := fit.Recenter(x, y)
	design, err := fit.SurfaceDesign(tx, ty)
	require.NoError(t, err)

	got, err := fit.Evaluate3D(coeffs, design)
	require.NoError(t, err)
	require.Len(t, got, len(z))
	for i := range fitted {
		assert.InDelta(t, fitted[i], got[i], surfaceTol, "row %d", i)
	}
}

// opaqueDesign hides *Dense behind the interface to force Evaluate3D onto
// its generic fallback.
type opaqueDesign struct{ matrix.Matrix }

// TestEvaluate3DFallbackMatchesFastPath cross-checks the Row+Mul fast-path
// against the MatVec fallback.
func TestEvaluate3DFallbackMatchesFastPath(t *testing.T) {
	design, err := fit.SurfaceDesign([]float64{0, 1, 2}, []float64{0, 2, 1})
	require.NoError(t, err)
	coeffs := []float64{1, 2, 3, 4, 5, 6}

	fast, err := fit.Evaluate3D(coeffs, design)
	require.NoError(t, err)
	slow, err := fit.Evaluate3D(coeffs, opaqueDesign{design})
	require.NoError(t, err)

	assert.Equal(t, fast, slow)
}

// TestEvaluate3DStructuralErrors covers nil and shape violations.
func TestEvaluate3DStructuralErrors(t *testing.T) {
	design, err := fit.SurfaceDesign([]float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)

	_, err = fit.Evaluate3D([]float64{1, 2, 3}, design) // wrong coefficient count
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = fit.Evaluate3D([]float64{1, 2, 3, 4, 5, 6}, nil) // nil design
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

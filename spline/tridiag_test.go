package spline

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// residual of row i: a[i]*p[i-1] + b[i]*p[i] + c[i]*p[i+1] - r[i]
func residual(a, b, c, r, p []float64, i int) float64 {
	m := len(b)
	res := b[i]*p[i] - r[i]
	if i > 0 {
		res += a[i] * p[i-1]
	}
	if i < m-1 {
		res += c[i] * p[i+1]
	}
	return res
}

func TestFactorConvergence(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := 50
	a, b, c := coefficients(m, false)
	f, err := factorTridiag(a, b, c)
	assert.NoError(t, err)
	// the interior recurrence bb[i] = 4 - 1/bb[i-1] converges to 2+sqrt(3)
	limit := 2 + math.Sqrt(3)
	assert.InDelta(t, limit, f.bb[m-2], 1e-12)
	for i := 1; i < m-1; i++ {
		assert.InDelta(t, 4-1/f.bb[i-1], f.bb[i], 1e-12)
	}
}

func TestSolveSmallSystem(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := []float64{0, 1, 2}
	b := []float64{2, 4, 7}
	c := []float64{1, 1, 0}
	r := []float64{5, -3, 11}
	f, err := factorTridiag(a, b, c)
	assert.NoError(t, err)
	p := f.solve(r)
	for i := range p {
		assert.InDelta(t, 0.0, residual(a, b, c, r, p, i), 1e-12)
	}
}

func TestSolveAgainstDenseReference(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rng := rand.New(rand.NewSource(42))
	m := 12
	a := make([]float64, m)
	b := make([]float64, m)
	c := make([]float64, m)
	r := make([]float64, m)
	for i := 0; i < m; i++ {
		a[i] = rng.Float64() - 0.5
		c[i] = rng.Float64() - 0.5
		b[i] = 3 + rng.Float64() // diagonally dominant
		r[i] = 10 * (rng.Float64() - 0.5)
	}
	f, err := factorTridiag(a, b, c)
	assert.NoError(t, err)
	p := f.solve(r)

	dense := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		dense.Set(i, i, b[i])
		if i > 0 {
			dense.Set(i, i-1, a[i])
		}
		if i < m-1 {
			dense.Set(i, i+1, c[i])
		}
	}
	var want mat.VecDense
	if err := want.SolveVec(dense, mat.NewVecDense(m, r)); err != nil {
		t.Fatalf("dense reference solve failed: %v", err)
	}
	for i := 0; i < m; i++ {
		assert.InDelta(t, want.AtVec(i), p[i], 1e-9)
	}
}

func TestSharedFactorAcrossRightHandSides(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := 8
	a, b, c := coefficients(m, true)
	f, err := factorTridiag(a, b, c)
	assert.NoError(t, err)
	r1 := make([]float64, m)
	r2 := make([]float64, m)
	for i := 0; i < m; i++ {
		r1[i] = float64(i + 1)
		r2[i] = float64(m - i)
	}
	p1 := f.solve(r1)
	p2 := f.solve(r2)
	for i := 0; i < m; i++ {
		assert.InDelta(t, 0.0, residual(a, b, c, r1, p1, i), 1e-12)
		assert.InDelta(t, 0.0, residual(a, b, c, r2, p2, i), 1e-12)
	}
}

func TestSingularSystemRejected(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := []float64{0, 1}
	b := []float64{0, 4}
	c := []float64{1, 0}
	_, err := factorTridiag(a, b, c)
	if !errors.Is(err, ErrSingularSystem) {
		t.Fatalf("expected ErrSingularSystem, got %v", err)
	}
}

// The Sherman-Morrison correction makes the plain tridiagonal solution
// satisfy the full cyclic system, including the corner terms.
func TestCyclicCorrection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := squarePath()
	m := path.SegmentCount()
	px, py, err := solveControls(path, m)
	assert.NoError(t, err)
	rx, ry := rightHandSides(path, m)
	for i := 0; i < m; i++ {
		// cyclic row i: p[i-1] + 4*p[i] + p[i+1] = r[i], indices mod m,
		// with b[0] = b[m-1] = 4 in the uncorrected cyclic matrix
		gotX := px[(i+m-1)%m] + 4*px[i] + px[(i+1)%m]
		gotY := py[(i+m-1)%m] + 4*py[i] + py[(i+1)%m]
		assert.InDelta(t, rx[i], gotX, 1e-9)
		assert.InDelta(t, ry[i], gotY, 1e-9)
	}
}

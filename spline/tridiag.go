package spline

import (
	"errors"
	"math"
)

// ErrSingularSystem indicates that forward elimination hit a (near) zero
// pivot. This cannot happen for the diagonally dominant coefficient
// patterns produced by the control-point builder, but the solver guards
// against it anyway since it accepts arbitrary coefficients.
var ErrSingularSystem = errors.New("tridiagonal system is singular")

// triFactor is the result of the forward-elimination pass of the Thomas
// algorithm over a tridiagonal matrix: the eliminated diagonal bb together
// with the original off-diagonals. Factoring once allows solving the same
// matrix against several right-hand sides, which the spline build exploits
// (x-axis, y-axis and, for cycles, the Sherman-Morrison helper vector).
type triFactor struct {
	a  []float64 // sub-diagonal, a[0] unused
	c  []float64 // super-diagonal, c[len-1] unused
	bb []float64 // eliminated diagonal: bb[i] = b[i] - a[i]*c[i-1]/bb[i-1]
}

// factorTridiag runs forward elimination on the coefficient sequences of a
// tridiagonal matrix. All slices must have equal length >= 1.
//
// For the spline coefficient patterns the interior rows have a=1, b=4, c=1,
// so bb follows the recurrence bb[i] = 4 - 1/bb[i-1], which converges
// rapidly towards 2+sqrt(3); no lookup table is needed in floating point.
func factorTridiag(a, b, c []float64) (*triFactor, error) {
	m := len(b)
	f := &triFactor{
		a:  a,
		c:  c,
		bb: make([]float64, m),
	}
	f.bb[0] = b[0]
	for i := 1; i < m; i++ {
		if math.Abs(f.bb[i-1]) <= _epsilon {
			return nil, ErrSingularSystem
		}
		f.bb[i] = b[i] - a[i]*c[i-1]/f.bb[i-1]
		tracer().Debugf("bb.%d = %.6g", i, f.bb[i])
	}
	if math.Abs(f.bb[m-1]) <= _epsilon {
		return nil, ErrSingularSystem
	}
	return f, nil
}

// solve performs the elimination pass on a right-hand side r and the
// subsequent back substitution, returning the solution vector p with
// a[i]*p[i-1] + b[i]*p[i] + c[i]*p[i+1] = r[i] (out-of-range terms absent).
// r is left unchanged.
func (f *triFactor) solve(r []float64) []float64 {
	m := len(f.bb)
	y := make([]float64, m)
	y[0] = r[0]
	for i := 1; i < m; i++ {
		y[i] = r[i] - f.a[i]*y[i-1]/f.bb[i-1]
	}
	p := make([]float64, m)
	p[m-1] = y[m-1] / f.bb[m-1]
	for i := m - 2; i >= 0; i-- {
		p[i] = (y[i] - f.c[i]*p[i+1]) / f.bb[i]
	}
	return p
}

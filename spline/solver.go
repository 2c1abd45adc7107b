package spline

import (
	"github.com/npillmayer/smooth"
)

// BuildSpline computes the control points of a smooth piecewise-cubic
// Bezier curve passing through all knots of a path. This is the central
// API function of this package.
//
// For open paths the curve carries natural boundary conditions (zero
// second derivative at both ends); for cyclic paths the curve is smooth
// across the wrap as well. In both cases the resulting curve is C2 at
// every knot.
//
// The function validates the path and returns an error for degenerate or
// invalid geometry; no partial result is produced.
//
// BuildSpline(...) will trace the solved spline using log-level INFO.
func BuildSpline(path *Path) (*Spline, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	m := path.SegmentCount()
	var px, py []float64
	var err error
	if !path.cycle && m == 1 {
		px, py = twoKnotControls(path)
	} else if px, py, err = solveControls(path, m); err != nil {
		return nil, err
	}
	sp := &Spline{
		knots:     append([]smooth.Pair(nil), path.knots...),
		cycle:     path.cycle,
		segments:  deriveSegments(path, px, py),
		tStart:    0,
		tEnd:      1,
		fromShape: path.fromShape,
		toShape:   path.toShape,
	}
	tracer().Infof("solved spline = %s", AsString(sp))
	return sp, nil
}

// MustBuildSpline is a convenience helper which panics on validation errors.
func MustBuildSpline(path *Path) *Spline {
	sp, err := BuildSpline(path)
	if err != nil {
		panic(err)
	}
	return sp
}

// Solve the continuity constraint system for the first control point P[i]
// of every segment, one coordinate axis at a time. The matrix is factored
// once and shared between both axes; for cyclic paths the plain tridiagonal
// solution is then corrected for the cyclic corner terms.
func solveControls(path *Path, m int) (px, py []float64, err error) {
	a, b, c := coefficients(m, path.cycle)
	f, err := factorTridiag(a, b, c)
	if err != nil {
		return nil, nil, err
	}
	rx, ry := rightHandSides(path, m)
	px = f.solve(rx)
	py = f.solve(ry)
	if path.cycle {
		cyclicCorrection(f, px, py)
	}
	for i := 0; i < m; i++ {
		tracer().Debugf("P.%d = (%.6g,%.6g)", i, px[i], py[i])
	}
	return px, py, nil
}

// Coefficient patterns of the constraint matrix. Open case:
//
//	b[0] = 2, interior a=1, b=4, c=1, last row a=2, b=7.
//
// Cyclic case (corner terms handled separately by cyclicCorrection):
//
//	b[0] = b[m-1] = 3, interior b = 4, all a = c = 1.
func coefficients(m int, cycle bool) (a, b, c []float64) {
	a = make([]float64, m)
	b = make([]float64, m)
	c = make([]float64, m)
	for i := 0; i < m; i++ {
		a[i], b[i], c[i] = 1, 4, 1
	}
	if cycle {
		b[0], b[m-1] = 3, 3
	} else {
		b[0] = 2
		a[m-1], b[m-1] = 2, 7
	}
	return a, b, c
}

// Right-hand sides of the constraint system, per coordinate axis.
func rightHandSides(path *Path, m int) (rx, ry []float64) {
	rx = make([]float64, m)
	ry = make([]float64, m)
	if path.cycle {
		for i := 0; i < m; i++ {
			k, k1 := path.Z(i), path.Z(i+1)
			rx[i] = 4*k.X() + 2*k1.X()
			ry[i] = 4*k.Y() + 2*k1.Y()
		}
		return rx, ry
	}
	rx[0] = path.Z(0).X() + 2*path.Z(1).X()
	ry[0] = path.Z(0).Y() + 2*path.Z(1).Y()
	for i := 1; i < m-1; i++ {
		k, k1 := path.Z(i), path.Z(i+1)
		rx[i] = 4*k.X() + 2*k1.X()
		ry[i] = 4*k.Y() + 2*k1.Y()
	}
	rx[m-1] = 8*path.Z(m-1).X() + path.Z(m).X()
	ry[m-1] = 8*path.Z(m-1).Y() + path.Z(m).Y()
	return rx, ry
}

// cyclicCorrection turns the plain tridiagonal solution into the exact
// solution of the cyclic system via the Sherman-Morrison identity. The
// helper vector z depends only on the matrix and is shared between axes;
// the scalar correction factor is computed per axis.
func cyclicCorrection(f *triFactor, px, py []float64) {
	m := len(px)
	u := make([]float64, m)
	u[0], u[m-1] = 1, 1
	z := f.solve(u)
	d := 1 + z[0] + z[m-1]
	fx := (px[0] + px[m-1]) / d
	fy := (py[0] + py[m-1]) / d
	tracer().Debugf("cyclic correction: fx = %.6g, fy = %.6g", fx, fy)
	for i := 0; i < m; i++ {
		px[i] -= fx * z[i]
		py[i] -= fy * z[i]
	}
}

// An open path with exactly two knots yields a 1x1 "system" where the
// first- and last-row patterns collide. The natural boundary conditions
// reduce it to the straight line between the knots:
//
//	P = (2*K0 + K1) / 3,  Q = (K0 + 2*K1) / 3.
func twoKnotControls(path *Path) (px, py []float64) {
	k0, k1 := path.Z(0), path.Z(1)
	return []float64{(2*k0.X() + k1.X()) / 3}, []float64{(2*k0.Y() + k1.Y()) / 3}
}

// deriveSegments computes the second control point Q[i] of every segment
// algebraically from the solved P and assembles the segment sequence.
// Open case: Q[i] = 2*K[i+1] - P[i+1], except for the last segment, where
// Q[m-1] = (K[m] + P[m-1]) / 2. Cyclic case: Q[i] = 2*K[i+1] - P[i+1] with
// indices mod m.
func deriveSegments(path *Path, px, py []float64) []Segment {
	m := len(px)
	segments := make([]Segment, m)
	for i := 0; i < m; i++ {
		var q smooth.Pair
		if path.cycle || i < m-1 {
			j := (i + 1) % m
			q = path.Z(i+1).Scaled(2) - smooth.P(px[j], py[j])
		} else {
			q = (path.Z(m) + smooth.P(px[i], py[i])).Scaled(0.5)
		}
		segments[i] = Segment{
			from:  path.Z(i),
			postc: smooth.P(px[i], py[i]),
			prec:  q,
			to:    path.Z(i + 1),
		}
	}
	return segments
}

package spline

import (
	"github.com/npillmayer/smooth"
)

// From returns the start knot of a segment.
func (seg Segment) From() smooth.Pair {
	return seg.from
}

// To returns the end knot of a segment.
func (seg Segment) To() smooth.Pair {
	return seg.to
}

// PostControl returns the control point following the start knot.
func (seg Segment) PostControl() smooth.Pair {
	return seg.postc
}

// PreControl returns the control point preceding the end knot.
func (seg Segment) PreControl() smooth.Pair {
	return seg.prec
}

// Point evaluates the segment's cubic Bezier at local parameter t in [0,1]:
//
//	C(t) = (1-t)³·K0 + 3(1-t)²t·P + 3(1-t)t²·Q + t³·K1
func (seg Segment) Point(t float64) smooth.Pair {
	s := 1 - t
	return seg.from.Scaled(s*s*s) +
		seg.postc.Scaled(3*s*s*t) +
		seg.prec.Scaled(3*s*t*t) +
		seg.to.Scaled(t*t*t)
}

// Tangent evaluates the derivative C'(t) of the segment's cubic Bezier.
// The result is a direction vector, not normalized.
func (seg Segment) Tangent(t float64) smooth.Pair {
	s := 1 - t
	return (seg.postc - seg.from).Scaled(3*s*s) +
		(seg.prec - seg.postc).Scaled(6*s*t) +
		(seg.to - seg.prec).Scaled(3*t*t)
}

// SecondDeriv evaluates the second derivative C''(t) of the segment's
// cubic Bezier.
func (seg Segment) SecondDeriv(t float64) smooth.Pair {
	return (seg.prec - seg.postc.Scaled(2) + seg.from).Scaled(6 * (1 - t)) +
		(seg.to - seg.prec.Scaled(2) + seg.postc).Scaled(6 * t)
}

// === Spline accessors ======================================================

// IsCycle is a predicate: is this spline a closed loop?
func (sp *Spline) IsCycle() bool {
	return sp.cycle
}

// N returns the knot count of the spline.
func (sp *Spline) N() int {
	return len(sp.knots)
}

// Z returns the knot at position (i mod N).
func (sp *Spline) Z(i int) smooth.Pair {
	if i < 0 || i >= len(sp.knots) {
		i = ((i % len(sp.knots)) + len(sp.knots)) % len(sp.knots)
	}
	return sp.knots[i]
}

// SegmentCount returns the number of cubic segments.
func (sp *Spline) SegmentCount() int {
	return len(sp.segments)
}

// Segment returns cubic segment i, spanning knots K[i] and K[i+1].
func (sp *Spline) Segment(i int) Segment {
	return sp.segments[i]
}

// Transformed returns a new spline built over the affine-transformed knots
// of sp. Control points are re-solved, not transformed; for the affine
// transforms of package smooth both routes agree, but re-solving keeps the
// spline's invariants in one place. Trims are not carried over.
func (sp *Spline) Transformed(m smooth.AT) (*Spline, error) {
	path := NullPath()
	for _, z := range sp.knots {
		path.Knot(m.Transform(z))
	}
	if sp.cycle {
		path.Cycle()
	}
	return BuildSpline(path)
}

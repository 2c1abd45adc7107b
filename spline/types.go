package spline

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smooth"
)

// tracer writes to trace with key 'spline'
func tracer() tracing.Trace {
	return tracing.Select("spline")
}

const _epsilon = 0.0000001

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrDegenerateSpline indicates path knot count is insufficient for solving.
	ErrDegenerateSpline = errors.New("spline has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("path has invalid knot coordinate")
	// ErrCycleHasDuplicateTerminalKnot indicates a cyclic path redundantly repeats
	// its first knot as last knot.
	ErrCycleHasDuplicateTerminalKnot = errors.New("cycle path must not repeat first knot as terminal knot")
	// ErrInvalidTrim indicates a trim interval outside [0,1] or of negative length.
	ErrInvalidTrim = errors.New("trim parameters must satisfy 0 <= start < 1 and 0 < end <= 1")
)

// Path is a skeleton for a spline: an ordered sequence of knots the curve
// will pass through, plus a cycle flag. To construct a path, start with
// NullPath(), which creates an empty path, and then extend it.
//
// A path knows nothing about control points; it is the input to BuildSpline.
type Path struct {
	knots     []smooth.Pair // knot i, i.e. K[i]
	cycle     bool          // is this path cyclic ?
	fromShape string        // shape association of the first knot, may be empty
	toShape   string        // shape association of the last knot, may be empty
}

// Segment is one cubic Bezier piece of a spline, spanning two consecutive
// knots. Segments are immutable value types.
type Segment struct {
	from  smooth.Pair // start knot K[i]
	postc smooth.Pair // control point following K[i]
	prec  smooth.Pair // control point preceding K[i+1]
	to    smooth.Pair // end knot K[i+1]
}

// Spline is a solved smooth curve: the knot sequence together with the
// derived cubic Bezier segments. Splines are created by BuildSpline and
// never mutated afterwards, except for setting a trim interval.
type Spline struct {
	knots     []smooth.Pair
	cycle     bool
	segments  []Segment
	tStart    float64 // usable local parameter range starts here on segment 0
	tEnd      float64 // and ends here on the last segment
	fromShape string  // endpoint shape associations, see ClipEnds
	toShape   string
}

// A Border is the boundary of an external shape. Given a candidate cubic
// Bezier segment, it reports the local parameters in [0,1] at which the
// segment crosses the boundary, in ascending order. An empty result means
// "no intersection" and is not an error.
//
// Package shape provides a polygon-backed implementation.
type Border interface {
	IntersectCubic(seg Segment) []float64
}

// CurveSink consumes the segments of a solved spline in drawing order, as
// "curve to" operations appending to an existing path. Implementations
// bridge to a concrete graphics backend.
type CurveSink interface {
	MoveTo(p smooth.Pair)
	CurveTo(c1, c2, p smooth.Pair)
	Close()
}

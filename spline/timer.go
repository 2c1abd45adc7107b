package spline

import (
	"fmt"
	"math"

	"github.com/npillmayer/smooth"
)

// Trim restricts the usable parameter range of the spline: the visible
// curve begins at local parameter tStart on segment 0 and ends at local
// parameter tEnd on the last segment. Stored control points are not
// altered; only the global-parameter mapping (Locate, At) is affected.
//
// tStart must lie in [0,1), tEnd in (0,1].
func (sp *Spline) Trim(tStart, tEnd float64) error {
	if tStart < 0 || tStart >= 1 || tEnd <= 0 || tEnd > 1 {
		return fmt.Errorf("%w: start=%g, end=%g", ErrInvalidTrim, tStart, tEnd)
	}
	sp.tStart, sp.tEnd = tStart, tEnd
	return nil
}

// TrimInterval returns the current trim parameters (defaults 0 and 1).
func (sp *Spline) TrimInterval() (tStart, tEnd float64) {
	return sp.tStart, sp.tEnd
}

// Locate maps a global parameter s in [0,1] to a (segment index, local
// parameter) pair. Each of the m segments occupies an equal 1/m share of s;
// within segment 0 the local parameter sweeps from the trim start to 1, and
// within the last segment from 0 to the trim end. The mapping is continuous
// and monotonic in s, but not arc-length-uniform: equal steps of s do not
// travel equal distances along the curve.
//
// s is clamped to [0,1].
func (sp *Spline) Locate(s float64) (segment int, t float64) {
	m := len(sp.segments)
	if s < 0 {
		s = 0
	} else if s > 1 {
		s = 1
	}
	i := int(math.Floor(s * float64(m)))
	if i > m-1 {
		i = m - 1
	}
	frac := s*float64(m) - float64(i)
	lo, hi := 0.0, 1.0
	if i == 0 {
		lo = sp.tStart
	}
	if i == m-1 {
		hi = sp.tEnd
	}
	return i, lo + frac*(hi-lo)
}

// At evaluates the spline at global parameter s in [0,1], honoring the
// trim interval.
func (sp *Spline) At(s float64) smooth.Pair {
	i, t := sp.Locate(s)
	return sp.segments[i].Point(t)
}

// TangentAt evaluates the tangent direction at global parameter s.
func (sp *Spline) TangentAt(s float64) smooth.Pair {
	i, t := sp.Locate(s)
	return sp.segments[i].Tangent(t)
}

// ClipEnds computes the trim interval from the borders of the shapes
// associated with the path's endpoints (see Path.FromShape / Path.ToShape).
// borders maps shape identifiers to their Border; identifiers without an
// entry are ignored.
//
// If the first segment crosses the start shape's border, the visible curve
// begins at the first crossing; if the last segment crosses the end shape's
// border, it ends at the last crossing. A segment not crossing its shape's
// border leaves the respective trim parameter at its default, i.e. the knot
// itself is the visible endpoint.
//
// Cyclic splines have no endpoints and are left untouched.
func (sp *Spline) ClipEnds(borders map[string]Border) {
	if sp.cycle {
		return
	}
	m := len(sp.segments)
	tStart, tEnd := 0.0, 1.0
	if border, ok := borders[sp.fromShape]; ok && sp.fromShape != "" {
		if ts := border.IntersectCubic(sp.segments[0]); len(ts) > 0 {
			tStart = ts[0]
		}
	}
	if border, ok := borders[sp.toShape]; ok && sp.toShape != "" {
		if ts := border.IntersectCubic(sp.segments[m-1]); len(ts) > 0 {
			tEnd = ts[len(ts)-1]
		}
	}
	if m == 1 && tEnd <= tStart {
		tracer().Errorf("clip interval on single-segment spline is empty, ignoring")
		return
	}
	if tStart < 1 && tEnd > 0 {
		sp.tStart, sp.tEnd = tStart, tEnd
		tracer().Infof("clipped spline ends to [%.4g, %.4g]", tStart, tEnd)
	}
}

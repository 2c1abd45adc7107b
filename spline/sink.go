package spline

import (
	"fmt"

	"github.com/npillmayer/smooth"
)

// DrawTo hands the solved spline to a curve sink, segment by segment in
// drawing order: one MoveTo for the first knot, then a CurveTo per segment
// with its two control points and end knot. Cyclic splines are closed with
// a final Close(). Trimming does not affect the emitted segments; sinks
// needing the visible sub-curve should query At/Locate instead.
func (sp *Spline) DrawTo(sink CurveSink) {
	sink.MoveTo(sp.Z(0))
	for _, seg := range sp.segments {
		sink.CurveTo(seg.postc, seg.prec, seg.to)
	}
	if sp.cycle {
		sink.Close()
	}
}

// AsString returns a spline in a MetaFont-like notation, for debugging:
//
//	(0,0) .. controls (0.3333,0.5) and (0.6667,1)
//	  .. (1,1) .. controls (1.3333,1) and (1.6667,0.5)
//	  .. (2,0)
//
// Cyclic splines end in ".. cycle".
func AsString(sp *Spline) string {
	var s string
	for i, seg := range sp.segments {
		if i > 0 {
			s += fmt.Sprintf(" and %s\n  .. ", ptstring(sp.segments[i-1].prec, true))
		}
		s += fmt.Sprintf("%s .. controls %s", ptstring(seg.from, false), ptstring(seg.postc, true))
	}
	m := len(sp.segments)
	last := sp.segments[m-1]
	s += fmt.Sprintf(" and %s\n  .. ", ptstring(last.prec, true))
	if sp.cycle {
		s += "cycle"
	} else {
		s += ptstring(last.to, false)
	}
	return s
}

func ptstring(p smooth.Pair, iscontrol bool) string {
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}

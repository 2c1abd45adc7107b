/*
Package shape provides polygon shapes acting as clipping borders for
spline ends. Polygons are built with a builder pattern, may be combined
with boolean operations, and implement the spline.Border collaborator
interface by intersecting candidate cubic segments with their outline.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package shape

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smooth"
	"github.com/npillmayer/smooth/spline"
)

// L traces to a global logger with key 'shape'.
func L() tracing.Trace {
	return tracing.Select("shape")
}

// Registry maps shape identifiers to borders, ready to be handed to
// Spline.ClipEnds.
type Registry map[string]spline.Border

// Add registers a border under an identifier.
func (r Registry) Add(name string, b spline.Border) {
	r[name] = b
}

// Polygon is a closed shape bounded by straight edges, possibly consisting
// of several contours (even-odd rule: a point inside an odd number of
// contours is inside the polygon).
type Polygon struct {
	contours polyclip.Polygon
	pending  polyclip.Contour // contour under construction
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(smooth.P(0, 0)).Knot(smooth.P(1, 3)).Knot(smooth.P(3, 0)).Cycle()
//
// Cycle() closes the contour under construction; further Knot() calls
// start a new contour.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a vertex to the contour under construction.
// Part of builder functionality.
func (pg *Polygon) Knot(p smooth.Pair) *Polygon {
	pg.pending = append(pg.pending, polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes the contour under construction. Contours with fewer than 3
// vertices are dropped. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if len(pg.pending) < 3 {
		L().Errorf("dropping polygon contour with %d vertices", len(pg.pending))
		pg.pending = nil
		return pg
	}
	pg.contours = append(pg.contours, pg.pending)
	pg.pending = nil
	return pg
}

// Box creates a rectangular polygon from two opposite corners.
func Box(p1, p2 smooth.Pair) *Polygon {
	return NullPolygon().
		Knot(smooth.P(p1.X(), p1.Y())).
		Knot(smooth.P(p2.X(), p1.Y())).
		Knot(smooth.P(p2.X(), p2.Y())).
		Knot(smooth.P(p1.X(), p2.Y())).
		Cycle()
}

// N returns the total vertex count over all closed contours.
func (pg *Polygon) N() int {
	n := 0
	for _, c := range pg.contours {
		n += len(c)
	}
	return n
}

// Contains is a predicate: does the polygon contain point p (even-odd rule)?
func (pg *Polygon) Contains(p smooth.Pair) bool {
	pt := polyclip.Point{X: p.X(), Y: p.Y()}
	inside := false
	for _, c := range pg.contours {
		if c.Contains(pt) {
			inside = !inside
		}
	}
	return inside
}

// Unite returns the boolean union of two polygons.
func (pg *Polygon) Unite(other *Polygon) *Polygon {
	return &Polygon{contours: pg.contours.Construct(polyclip.UNION, other.contours)}
}

// Intersect returns the boolean intersection of two polygons.
func (pg *Polygon) Intersect(other *Polygon) *Polygon {
	return &Polygon{contours: pg.contours.Construct(polyclip.INTERSECTION, other.contours)}
}

// Subtract returns the boolean difference pg minus other.
func (pg *Polygon) Subtract(other *Polygon) *Polygon {
	return &Polygon{contours: pg.contours.Construct(polyclip.DIFFERENCE, other.contours)}
}

// AsString returns a polygon in a MetaFont-like notation, for debugging.
// Each contour is rendered as "(x,y) -- (x,y) -- ... -- cycle".
func AsString(pg *Polygon) string {
	var s string
	for i, c := range pg.contours {
		if i > 0 {
			s += " & "
		}
		for _, pt := range c {
			s += fmt.Sprintf("(%g,%g) -- ", pt.X, pt.Y)
		}
		s += "cycle"
	}
	return s
}

// Sample count for bracketing border crossings of a cubic segment. A cubic
// cannot cross a straight edge more than 3 times, but a polygon border has
// many edges; 64 samples bracket every crossing of sanely sized shapes.
const intersectSamples = 64

const bisectTolerance = 1e-12

// IntersectCubic returns the local parameters in [0,1] at which a cubic
// segment crosses the polygon border, in ascending order. Crossings are
// bracketed by sampling the inside/outside predicate and then refined by
// bisection. Tangential touches that do not change sides are not reported.
//
// IntersectCubic implements the spline.Border interface.
func (pg *Polygon) IntersectCubic(seg spline.Segment) []float64 {
	var ts []float64
	prevT := 0.0
	prevInside := pg.Contains(seg.Point(0))
	for i := 1; i <= intersectSamples; i++ {
		t := float64(i) / intersectSamples
		inside := pg.Contains(seg.Point(t))
		if inside != prevInside {
			ts = append(ts, pg.bisect(seg, prevT, t, prevInside))
		}
		prevT, prevInside = t, inside
	}
	L().Debugf("cubic crosses polygon border %d times", len(ts))
	return ts
}

// bisect narrows a bracket [lo,hi] with differing insideness down to the
// crossing parameter.
func (pg *Polygon) bisect(seg spline.Segment, lo, hi float64, loInside bool) float64 {
	for hi-lo > bisectTolerance {
		mid := (lo + hi) / 2
		if pg.Contains(seg.Point(mid)) == loInside {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

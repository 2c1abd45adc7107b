// Package spline computes smooth piecewise-cubic Bezier curves that pass
// exactly through an ordered sequence of 2D points ("knots"), for open
// paths as well as closed loops.
/*

The curve through n+1 knots consists of n cubic Bezier segments. Requiring
the compound curve to be twice continuously differentiable at every interior
knot (and, for closed loops, across the wrap) leads to a diagonally dominant
tridiagonal system of linear equations for the first control point of every
segment; the second control point then follows algebraically. Open curves
carry natural boundary conditions, i.e. zero second derivative at both ends.
The technique is described in

   Smooth Bezier Spline Through Prescribed Points
   https://www.particleincell.com/2012/bezier-splines/

and is a classic of computer aided geometric design; see also

   Curves and Surfaces for CAGD -- Gerald Farin
   Morgan Kaufmann, 5th edition, 2001

For closed loops the constraint matrix is cyclic (corner entries couple the
first and last rows). It is solved with two plain tridiagonal solves and a
Sherman-Morrison rank-one correction.

This is a different animal from Hobby's algorithm (as used in MetaFont and
implemented in package jhobby of the arithm module): Hobby splines optimize
for locally "pleasing" curvature and offer tension and curl parameters, but
are only C1 in general. The splines of this package have no parameters and
interpolate with full C2 continuity, which is what one usually wants when
tracing data points or drawing a smooth closed outline around a set of
positions.

# Usage

Clients build a skeleton path with a builder pattern and hand it to the
solver (package qualifiers omitted for brevity):

   path := NullPath().Knot(P(0,0)).Knot(P(1,1)).Knot(P(2,0)).End()
   sp, err := BuildSpline(path)

The solved spline grants access to its cubic segments and their control
points, evaluates points and tangents at a global parameter in [0,1], and
hands its segments to a drawing backend through the CurveSink interface:

   sp.At(0.5)                   // point halfway through the parameter range
   sp.DrawTo(sink)              // emit MoveTo / CurveTo ops

The parametrization distributes the global parameter uniformly over the
segments. It is continuous and monotonic, but not arc-length-uniform; this
is a documented simplification, not a defect.

Spline ends may be clipped against the border of external shapes, e.g. when
a curve connects two boxes in a diagram and should visibly start and end at
the boxes' outlines rather than at their centers:

   path = path.FromShape("box1").ToShape("box2")
   sp.ClipEnds(borders)         // borders: map from shape id to shape.Border

Clipping solely narrows the usable parameter range ("trim interval") of the
evaluation; control points stay untouched. A segment that does not cross
its shape's border is left untrimmed, which means the knot itself is the
visible endpoint.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline

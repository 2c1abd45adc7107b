package spline

import (
	"fmt"

	"github.com/npillmayer/smooth"
)

// NullPath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a closed path through three knots.
//
//	path := NullPath().Knot(smooth.P(0, 0)).Knot(smooth.P(3, 2)).Knot(smooth.P(1, 4)).Cycle()
//
// Calling Cycle() or End() finishes the path. For a cyclic path the first
// knot must not be repeated as the terminal knot; the wrap segment back to
// K[0] is implicit.
func NullPath() *Path {
	return &Path{}
}

// Knot appends a knot to a path. Part of builder functionality.
func (path *Path) Knot(p smooth.Pair) *Path {
	path.knots = append(path.knots, p)
	return path
}

// End finishes an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// Cycle closes a cyclic path. Part of builder functionality.
func (path *Path) Cycle() *Path {
	path.cycle = true
	return path
}

// FromShape associates the first knot with an external shape identifier.
// The spline's visible start will later be clipped against that shape's
// border (see Spline.ClipEnds). Part of builder functionality.
func (path *Path) FromShape(shape string) *Path {
	path.fromShape = shape
	return path
}

// ToShape associates the last knot with an external shape identifier.
// Part of builder functionality.
func (path *Path) ToShape(shape string) *Path {
	path.toShape = shape
	return path
}

// IsCycle is a predicate: is this path cyclic?
func (path *Path) IsCycle() bool {
	return path.cycle
}

// N returns the length of this path (knot count). For cyclic paths the
// implicit terminal knot K[0] does not count.
func (path *Path) N() int {
	return len(path.knots)
}

// Z returns the knot at position (i mod N).
func (path *Path) Z(i int) smooth.Pair {
	if i < 0 || i >= path.N() {
		i = ((i % path.N()) + path.N()) % path.N()
	}
	return path.knots[i]
}

// SegmentCount returns the number of cubic segments a solved spline will
// have: N for cyclic paths, N-1 for open ones.
func (path *Path) SegmentCount() int {
	if path.cycle {
		return path.N()
	}
	return path.N() - 1
}

// Validate checks if a path is solvable: enough knots for its closedness,
// all coordinates finite, and no redundant terminal knot on cycles.
func (path *Path) Validate() error {
	if path == nil {
		return ErrNilPath
	}
	n := path.N()
	if path.cycle {
		if n < 3 {
			return fmt.Errorf("%w: cycle needs at least 3 knots, got %d", ErrDegenerateSpline, n)
		}
		if n > 1 && path.knots[0].Dist(path.knots[n-1]) <= _epsilon {
			return ErrCycleHasDuplicateTerminalKnot
		}
	} else if n < 2 {
		return fmt.Errorf("%w: open path needs at least 2 knots, got %d", ErrDegenerateSpline, n)
	}
	for i, z := range path.knots {
		if !z.IsValid() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	return nil
}

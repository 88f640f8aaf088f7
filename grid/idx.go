package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/dvoronoi/site"
)

// GridIdx is an integer coordinate pair. It addresses a grid cell and is
// also a site.Point, so metrics can measure distances to it directly.
type GridIdx struct {
	X, Y int
}

// FromPoint returns the GridIdx of p's coordinates.
func FromPoint(p site.Point) GridIdx {
	x, y := p.Coordinates()
	return GridIdx{X: x, Y: y}
}

// Coordinates implements site.Point.
func (g GridIdx) Coordinates() (int, int) { return g.X, g.Y }

// Inside reports whether g lies within b.
func (g GridIdx) Inside(b BoundingBox) bool { return b.Inside(g) }

// String renders the coordinate as "(x,y)".
func (g GridIdx) String() string { return fmt.Sprintf("(%d,%d)", g.X, g.Y) }

// Direction names one of the four axis-aligned neighbors.
type Direction int

const (
	// North is y+1.
	North Direction = iota
	// East is x+1.
	East
	// South is y-1.
	South
	// West is x-1.
	West
)

// neighborOffsets is indexed by Direction; the order is part of the
// determinism contract of the wavefront.
var neighborOffsets = [...][2]int{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

// String returns the compass name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Step returns the neighbor of g in direction d, ignoring bounds.
func (g GridIdx) Step(d Direction) GridIdx {
	o := neighborOffsets[d]
	return GridIdx{X: g.X + o[0], Y: g.Y + o[1]}
}

// Neighbors yields the in-bounds neighbors of g in N, E, S, W order.
func (g GridIdx) Neighbors(b BoundingBox) iter.Seq[GridIdx] {
	return func(yield func(GridIdx) bool) {
		for d := range neighborOffsets {
			n := g.Step(Direction(d))
			if !b.Inside(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// AppendNeighbors appends the in-bounds neighbors of g to dst in N, E, S, W
// order and returns the extended slice. It is the allocation-free form of
// Neighbors used on the hot path of the wavefront.
func (g GridIdx) AppendNeighbors(dst []GridIdx, b BoundingBox) []GridIdx {
	for d := range neighborOffsets {
		if n := g.Step(Direction(d)); b.Inside(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

package site

import (
	"cmp"
	"fmt"
)

// Point is anything addressable on the integer grid.
type Point interface {
	// Coordinates returns the (x, y) position of the point.
	Coordinates() (x, y int)
}

// Site is a weighted Point competing for grid cells.
// How the weight is interpreted depends on the metric in use.
type Site interface {
	Point
	// Weight returns the scalar weight of the site.
	Weight() float32
}

// Weighted is a plain (x, y, weight) site. It is comparable, so it can be
// used as a map key.
type Weighted struct {
	X, Y int
	W    float32
}

// New returns a Weighted site at (x, y) with weight w.
func New(x, y int, w float32) Weighted {
	return Weighted{X: x, Y: y, W: w}
}

// Coordinates implements Point.
func (s Weighted) Coordinates() (int, int) { return s.X, s.Y }

// Weight implements Site.
func (s Weighted) Weight() float32 { return s.W }

// String renders the site as "(x,y;w)".
func (s Weighted) String() string {
	return fmt.Sprintf("(%d,%d;%g)", s.X, s.Y, s.W)
}

// Compare orders two points by X, then by Y.
// It returns -1, 0 or +1 like cmp.Compare.
func Compare(a, b Point) int {
	ax, ay := a.Coordinates()
	bx, by := b.Coordinates()
	if c := cmp.Compare(ax, bx); c != 0 {
		return c
	}
	return cmp.Compare(ay, by)
}

// SameCoordinates reports whether a and b sit on the same grid cell.
func SameCoordinates(a, b Point) bool {
	return Compare(a, b) == 0
}

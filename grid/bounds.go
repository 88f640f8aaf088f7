package grid

import (
	"fmt"
	"iter"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dvoronoi/site"
)

// BoundingBox is the finite coordinate domain of a grid.
// A coordinate (x, y) is inside when 0 ≤ x-xOffset < width and
// 0 ≤ y-yOffset < height. The zero value is an empty box; build boxes with
// NewBoundingBox or FitToSites.
type BoundingBox struct {
	xOffset, yOffset int
	width, height    int
}

// NewBoundingBox returns the box whose lower corner is (xOffset, yOffset).
// Returns ErrInvalidDimensions if width or height is not positive.
// Complexity: O(1).
func NewBoundingBox(xOffset, yOffset, width, height int) (BoundingBox, error) {
	if width <= 0 || height <= 0 {
		return BoundingBox{}, errors.Wrapf(ErrInvalidDimensions, "got %dx%d", width, height)
	}
	return BoundingBox{xOffset: xOffset, yOffset: yOffset, width: width, height: height}, nil
}

// MustBoundingBox is like NewBoundingBox but panics on invalid dimensions.
// Intended for literals in examples and tests.
func MustBoundingBox(xOffset, yOffset, width, height int) BoundingBox {
	b, err := NewBoundingBox(xOffset, yOffset, width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// FitToSites returns the tightest box covering every point.
// Returns ErrNoSites if points is empty.
// Complexity: O(n).
func FitToSites[P site.Point](points []P) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, ErrNoSites
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for _, p := range points {
		x, y := p.Coordinates()
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return BoundingBox{
		xOffset: minX,
		yOffset: minY,
		width:   maxX - minX + 1,
		height:  maxY - minY + 1,
	}, nil
}

// Offset returns the lower corner of the box.
func (b BoundingBox) Offset() (x, y int) { return b.xOffset, b.yOffset }

// Dimensions returns the width and height of the box.
func (b BoundingBox) Dimensions() (width, height int) { return b.width, b.height }

// Len returns the number of coordinates inside the box (width×height).
func (b BoundingBox) Len() int { return b.width * b.height }

// Inside reports whether idx lies within the box.
// Complexity: O(1).
func (b BoundingBox) Inside(idx GridIdx) bool {
	x, y := idx.X-b.xOffset, idx.Y-b.yOffset
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// TranslateIdx maps idx to its zero-based column and row.
// The result is meaningless unless Inside(idx) holds.
func (b BoundingBox) TranslateIdx(idx GridIdx) (x, y int) {
	return idx.X - b.xOffset, idx.Y - b.yOffset
}

// Index maps idx to its dense row-major offset: x + y*width.
// The result is meaningless unless Inside(idx) holds.
func (b BoundingBox) Index(idx GridIdx) int {
	x, y := b.TranslateIdx(idx)
	return x + y*b.width
}

// IdxAt converts a row-major offset back to its coordinate.
// It is the inverse of Index for 0 ≤ i < Len().
func (b BoundingBox) IdxAt(i int) GridIdx {
	return GridIdx{X: i%b.width + b.xOffset, Y: i/b.width + b.yOffset}
}

// Coordinates yields every coordinate of the box in row-major order,
// x varying fastest. The sequence is lazy, finite (exactly Len() values)
// and can be ranged over any number of times.
func (b BoundingBox) Coordinates() iter.Seq[GridIdx] {
	return func(yield func(GridIdx) bool) {
		for y := b.yOffset; y < b.yOffset+b.height; y++ {
			for x := b.xOffset; x < b.xOffset+b.width; x++ {
				if !yield(GridIdx{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// String renders the box as "[x0,x1)×[y0,y1)".
func (b BoundingBox) String() string {
	return fmt.Sprintf("[%d,%d)×[%d,%d)", b.xOffset, b.xOffset+b.width, b.yOffset, b.yOffset+b.height)
}

// Package point resolves symbolic cell anchors (block.Block) into
// concrete floating-point SVG coordinates, and provides the collinearity
// check the reducer relies on to merge lines.
package point

import (
	"math"

	"github.com/eng618/bobsvg/pkg/block"
	"github.com/eng618/bobsvg/pkg/loc"
	"github.com/eng618/bobsvg/pkg/settings"
)

// Point is a concrete SVG-space coordinate.
type Point struct {
	X float64
	Y float64
}

// LocBlock names a cell and the settings used to measure it; ToPoint
// resolves a block.Block within that cell to a Point.
type LocBlock struct {
	Loc      loc.Loc
	Settings settings.Settings
}

// UnitX is one quarter of the cell width, the step between adjacent
// block columns; enhancement-pass radius multipliers are expressed in
// this unit.
func (lb LocBlock) UnitX() float64 {
	return lb.Settings.TextWidth / 4.0
}

// ToPoint resolves b to an absolute Point within the cell at lb.Loc.
func (lb LocBlock) ToPoint(b block.Block) Point {
	cx := float64(lb.Loc.X) * lb.Settings.TextWidth
	cy := float64(lb.Loc.Y) * lb.Settings.TextHeight
	return Point{
		X: cx + b.FractionX()*lb.Settings.TextWidth,
		Y: cy + b.FractionY()*lb.Settings.TextHeight,
	}
}

const epsilon = 1e-6

// Collinear reports whether a, b and c lie on a common straight line,
// via the standard cross-product/area-of-triangle test. Used by the
// reducer's dual three-point collinearity check (§4.6/§4.8).
func Collinear(a, b, c Point) bool {
	area := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	return math.Abs(area) < epsilon
}

// Less provides the total order over Point used for deterministic
// Element ordering: compare by Y then X.
func (p Point) Less(other Point) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// Equal compares two points for exact (post-resolution) equality.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

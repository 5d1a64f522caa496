// Package fragment defines the intermediate drawing vocabulary produced
// by the property table and the enhancement passes, before Points are
// resolved and the result is lowered into package element's Elements.
package fragment

import "github.com/eng618/bobsvg/pkg/block"

// Kind discriminates a Fragment's variant.
type Kind int

const (
	KindLine Kind = iota
	KindDashedLine
	KindCircleStartLine
	KindSquareStartLine
	KindCircleOpenLine
	KindBigCircleOpenLine
	KindArrowLine
	KindClearArrowLine
	KindStartArrowLine
	KindArc
	KindOpenCircle
	KindText
)

// Fragment is a tagged union; exactly the fields relevant to Kind are
// meaningful. P1/P2 (or Center) are still symbolic block.Block positions,
// resolved against the owning cell by grid.Focus.ToElements.
type Fragment struct {
	Kind   Kind
	P1     block.Block
	P2     block.Block
	Center block.Block
	Radius float64 // multiplier: OpenCircle radius is Radius*UnitX(), Arc radius is Radius*2*UnitX()
	Text   string
}

func Line(p1, p2 block.Block) Fragment            { return Fragment{Kind: KindLine, P1: p1, P2: p2} }
func DashedLine(p1, p2 block.Block) Fragment       { return Fragment{Kind: KindDashedLine, P1: p1, P2: p2} }
func CircleStartLine(p1, p2 block.Block) Fragment  { return Fragment{Kind: KindCircleStartLine, P1: p1, P2: p2} }
func SquareStartLine(p1, p2 block.Block) Fragment  { return Fragment{Kind: KindSquareStartLine, P1: p1, P2: p2} }
func CircleOpenLine(p1, p2 block.Block) Fragment   { return Fragment{Kind: KindCircleOpenLine, P1: p1, P2: p2} }
func BigCircleOpenLine(p1, p2 block.Block) Fragment {
	return Fragment{Kind: KindBigCircleOpenLine, P1: p1, P2: p2}
}
func ArrowLine(p1, p2 block.Block) Fragment      { return Fragment{Kind: KindArrowLine, P1: p1, P2: p2} }
func ClearArrowLine(p1, p2 block.Block) Fragment { return Fragment{Kind: KindClearArrowLine, P1: p1, P2: p2} }
func StartArrowLine(p1, p2 block.Block) Fragment { return Fragment{Kind: KindStartArrowLine, P1: p1, P2: p2} }

func Arc(p1, p2 block.Block, radiusMultiplier float64) Fragment {
	return Fragment{Kind: KindArc, P1: p1, P2: p2, Radius: radiusMultiplier}
}

func OpenCircle(center block.Block, radiusMultiplier float64) Fragment {
	return Fragment{Kind: KindOpenCircle, Center: center, Radius: radiusMultiplier}
}

func Text(s string) Fragment { return Fragment{Kind: KindText, Text: s} }

// Less gives Fragment a total order so a focus's fragment list can be
// sorted and deduplicated deterministically (§4.4 step 5).
func (f Fragment) Less(other Fragment) bool {
	if f.Kind != other.Kind {
		return f.Kind < other.Kind
	}
	if f.P1 != other.P1 {
		return f.P1 < other.P1
	}
	if f.P2 != other.P2 {
		return f.P2 < other.P2
	}
	if f.Center != other.Center {
		return f.Center < other.Center
	}
	if f.Radius != other.Radius {
		return f.Radius < other.Radius
	}
	return f.Text < other.Text
}

// Equal reports whether two Fragments are identical, used for dedup.
func (f Fragment) Equal(other Fragment) bool {
	return f == other
}

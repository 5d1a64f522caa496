// Package element holds the lowered drawing primitives — concrete Points
// in place of symbolic Blocks — ready for reduction and SVG mapping.
package element

import (
	"github.com/eng618/bobsvg/pkg/loc"
	"github.com/eng618/bobsvg/pkg/point"
)

// Stroke is a line's pen style.
type Stroke int

const (
	Solid Stroke = iota
	Dashed
)

// Feature is an end-of-line decoration, lowered to an SVG marker by
// package svgmap.
type Feature int

const (
	Nothing Feature = iota
	Arrow
	ClearArrow
	Circle
	Square
	OpenCircle
	BigOpenCircle
)

// MarkerID returns the SVG <marker> id this feature references, or ""
// for Nothing (which emits no marker attribute at all).
func (f Feature) MarkerID() string {
	switch f {
	case Arrow:
		return "triangle"
	case ClearArrow:
		return "clear_triangle"
	case Circle:
		return "circle"
	case Square:
		return "square"
	case OpenCircle:
		return "open_circle"
	case BigOpenCircle:
		return "big_open_circle"
	default:
		return ""
	}
}

// ArcFlag selects the SVG elliptical-arc large-arc-flag.
type ArcFlag int

const (
	Minor ArcFlag = iota // large-arc-flag = 0
	Major                // large-arc-flag = 1
)

// Kind discriminates an Element's variant.
type Kind int

const (
	KindCircle Kind = iota
	KindLine
	KindArc
	KindText
)

// Element is the tagged union of lowered drawing primitives (§3).
type Element struct {
	Kind Kind

	// Circle
	Center Point_
	Radius float64

	// Line / Arc shared fields
	Start, End   Point_
	Stroke       Stroke
	StartFeature Feature
	EndFeature   Feature

	// Arc-only
	ArcFlag ArcFlag
	Sweep   bool

	// Text-only
	Loc  loc.Loc
	Text string
}

// Point_ aliases point.Point to avoid importing point with a dotted name
// at every call site while keeping the dependency explicit in the type.
type Point_ = point.Point

func NewCircle(center Point_, radius float64) Element {
	return Element{Kind: KindCircle, Center: center, Radius: radius}
}

func NewLine(start, end Point_, stroke Stroke, startFeature, endFeature Feature) Element {
	return Element{
		Kind: KindLine, Start: start, End: end,
		Stroke: stroke, StartFeature: startFeature, EndFeature: endFeature,
	}
}

func NewArc(start, end Point_, radius float64, flag ArcFlag, sweep bool, stroke Stroke, startFeature, endFeature Feature) Element {
	return Element{
		Kind: KindArc, Start: start, End: end, Radius: radius,
		ArcFlag: flag, Sweep: sweep, Stroke: stroke,
		StartFeature: startFeature, EndFeature: endFeature,
	}
}

func NewText(l loc.Loc, text string) Element {
	return Element{Kind: KindText, Loc: l, Text: text}
}

// Less gives Element the total order demanded by §4.8: lexicographic by
// Kind (its "tag"), then by its points (Y then X), then by remaining
// attributes. Ties fall back to "equal" (Less returns false both ways).
func (e Element) Less(other Element) bool {
	if e.Kind != other.Kind {
		return e.Kind < other.Kind
	}
	switch e.Kind {
	case KindCircle:
		if !e.Center.Equal(other.Center) {
			return e.Center.Less(other.Center)
		}
		return e.Radius < other.Radius
	case KindLine, KindArc:
		if !e.Start.Equal(other.Start) {
			return e.Start.Less(other.Start)
		}
		if !e.End.Equal(other.End) {
			return e.End.Less(other.End)
		}
		if e.Stroke != other.Stroke {
			return e.Stroke < other.Stroke
		}
		if e.StartFeature != other.StartFeature {
			return e.StartFeature < other.StartFeature
		}
		if e.EndFeature != other.EndFeature {
			return e.EndFeature < other.EndFeature
		}
		if e.ArcFlag != other.ArcFlag {
			return e.ArcFlag < other.ArcFlag
		}
		return !e.Sweep && other.Sweep
	case KindText:
		if e.Loc != other.Loc {
			return e.Loc.Less(other.Loc)
		}
		return e.Text < other.Text
	default:
		return false
	}
}

// Equal reports element identity for dedup purposes.
func (e Element) Equal(other Element) bool {
	return e == other
}

// Reduce attempts to merge e with other into a single equivalent
// Element, implementing §4.6's line-merging and text-concatenation
// rules. It returns the merged Element and true on success.
func Reduce(e, other Element) (Element, bool) {
	if e == other {
		return other, true
	}
	switch e.Kind {
	case KindLine:
		if other.Kind != KindLine {
			return Element{}, false
		}
		return reduceLines(e, other)
	case KindText:
		if other.Kind != KindText {
			return Element{}, false
		}
		return reduceText(e, other)
	default:
		return Element{}, false
	}
}

func reduceLines(l1, l2 Element) (Element, bool) {
	if l1.Stroke != l2.Stroke {
		return Element{}, false
	}
	s1, e1 := l1.Start, l1.End
	s2, e2 := l2.Start, l2.End
	if !point.Collinear(s1, e1, s2) || !point.Collinear(s1, e1, e2) {
		return Element{}, false
	}

	switch {
	case s1.Equal(s2) && e1.Equal(e2) && l1.StartFeature == l2.StartFeature && l1.EndFeature == l2.EndFeature:
		return l2, true

	// e1==s2: extend line1 with line2 (s1 -> e2)
	case e1.Equal(s2) && l1.EndFeature == Nothing && l2.StartFeature == Nothing:
		return NewLine(s1, e2, l1.Stroke, l1.StartFeature, l2.EndFeature), true

	// e1==e2: extend line1 with flipped line2 (s1 -> s2)
	case e1.Equal(e2) && l1.EndFeature == Nothing && l2.EndFeature == Nothing:
		return NewLine(s1, s2, l1.Stroke, l1.StartFeature, l2.StartFeature), true

	// s1==s2: flip line1, extend with line2 (e1 -> e2). Guarded: never
	// flip away an arrow already drawn at line1's end.
	case s1.Equal(s2) && l1.StartFeature == Nothing && l2.StartFeature == Nothing && l1.EndFeature != Arrow:
		return NewLine(e1, e2, l1.Stroke, l1.EndFeature, l2.EndFeature), true

	// s1==e2: extend line2 with line1 (s2 -> e1)
	case s1.Equal(e2) && l1.StartFeature == Nothing && l2.EndFeature == Nothing:
		return NewLine(s2, e1, l1.Stroke, l2.StartFeature, l1.EndFeature), true

	default:
		return Element{}, false
	}
}

func reduceText(t1, t2 Element) (Element, bool) {
	if t1.Loc.Y != t2.Loc.Y {
		return Element{}, false
	}
	if t1.Loc.X+displayWidth(t1.Text) != t2.Loc.X {
		return Element{}, false
	}
	return NewText(t1.Loc, t1.Text+t2.Text), true
}

package enhance

import (
	"github.com/eng618/bobsvg/pkg/block"
	"github.com/eng618/bobsvg/pkg/element"
	"github.com/eng618/bobsvg/pkg/grid"
	"github.com/eng618/bobsvg/pkg/loc"
	"github.com/eng618/bobsvg/pkg/point"
)

// General scans the grid for the multi-cell patterns the plain
// per-character property table can't express on its own: doubled
// chevron arrowheads ("<<", ">>"), an arrowhead fed by a line
// perpendicular to its own pointing direction, and dashed-line
// continuation across a horizontal run of mixed `-`/`=`/`:` cells.
//
// Rounded corners closing an arc onto a line one cell away (spec.md
// §4.5's "closing of arcs") don't need a separate pass here: that's
// already the property table's own one-level intensification — see
// registerDot and registerApostrophe in pkg/properties, which each
// intensify toward two different neighbors and draw the Arc once both
// resolve. This pass only adds patterns the table's per-character,
// single-direction rules can't reach at all.
func General(g *grid.Grid, consumed grid.Consumed) []Match {
	var matches []Match
	for _, l := range g.Locs() {
		if consumed.Is(l) {
			continue
		}
		m, ok := matchChevron(g, consumed, l)
		if !ok {
			m, ok = matchBendArrow(g, consumed, l)
		}
		if !ok {
			m, ok = matchDashRun(g, consumed, l)
		}
		if !ok {
			continue
		}
		matches = append(matches, m)
		for _, c := range m.Consumed {
			consumed.Mark(c)
		}
	}
	return matches
}

// matchChevron recognizes a doubled arrowhead, e.g. "a <<-- b" or
// "a -->> b": an arrowhead glyph with a line character on one side and a
// repeat of itself on the other. The pattern consumes only the glyph next
// to the line and draws it as a one-cell line ending in an arrow, which
// the reducer joins onto the line. The repeated outer glyph is not
// consumed; it goes through the per-cell pass, which emits it as text
// unless some other neighbor connects to it.
func matchChevron(g *grid.Grid, consumed grid.Consumed, l loc.Loc) (Match, bool) {
	ch, ok := g.Get(l)
	if !ok {
		return Match{}, false
	}
	switch ch {
	case '>':
		if inner, ok := g.Get(l.Right()); ok && inner == '>' && !consumed.Is(l.Right()) {
			if left, ok := g.Get(l.Left()); ok && isLineChar(left) {
				lb := point.LocBlock{Loc: l, Settings: g.Settings}
				p1 := lb.ToPoint(block.K)
				p2 := lb.ToPoint(block.O)
				return Match{
					Elements: []element.Element{element.NewLine(p1, p2, element.Solid, element.Nothing, element.Arrow)},
					Consumed: []loc.Loc{l},
				}, true
			}
		}
	case '<':
		if inner, ok := g.Get(l.Left()); ok && inner == '<' && !consumed.Is(l.Left()) {
			if right, ok := g.Get(l.Right()); ok && isLineChar(right) {
				lb := point.LocBlock{Loc: l, Settings: g.Settings}
				p1 := lb.ToPoint(block.O)
				p2 := lb.ToPoint(block.K)
				return Match{
					Elements: []element.Element{element.NewLine(p1, p2, element.Solid, element.Nothing, element.Arrow)},
					Consumed: []loc.Loc{l},
				}, true
			}
		}
	}
	return Match{}, false
}

var (
	bendOffsetLeft   = loc.Offset{DX: -1, DY: 0}
	bendOffsetRight  = loc.Offset{DX: 1, DY: 0}
	bendOffsetTop    = loc.Offset{DX: 0, DY: -1}
	bendOffsetBottom = loc.Offset{DX: 0, DY: 1}
)

// bendCandidate is one perpendicular direction an arrowhead can be fed
// from at a bend: offset and want mirror a property-table intensify
// condition (the neighbor at offset must declare block want at
// Medium+); entry is the block on the arrow's own cell the incoming
// line lands on.
type bendCandidate struct {
	offset loc.Offset
	want   block.Block
	entry  block.Block
}

// arrowBend holds one arrowhead glyph's natural feed — what
// registerArrowRight et al. in pkg/properties already check, so this
// pass skips it — plus its tip block and the perpendicular feeds those
// single-direction registrations never look at.
type arrowBend struct {
	naturalOffset loc.Offset
	tip           block.Block
	perp          []bendCandidate
}

// bendArrows covers the two perpendicular directions each arrowhead's
// property-table registration doesn't check: a '>' only intensifies
// from a horizontal line to its left, so a vertical line turning into a
// rightward arrow ("|" directly above or below a ">") never lights it
// up there. The offset/want pairs reuse the same opposite-block-at-
// offset convention the table itself uses for its top/bottom/left/right
// Condition entries.
var bendArrows = map[rune]arrowBend{
	'>': {bendOffsetLeft, block.O, []bendCandidate{
		{bendOffsetTop, block.W, block.C},
		{bendOffsetBottom, block.C, block.W},
	}},
	'<': {bendOffsetRight, block.K, []bendCandidate{
		{bendOffsetTop, block.W, block.C},
		{bendOffsetBottom, block.C, block.W},
	}},
	'^': {bendOffsetBottom, block.C, []bendCandidate{
		{bendOffsetLeft, block.O, block.K},
		{bendOffsetRight, block.K, block.O},
	}},
	'v': {bendOffsetTop, block.W, []bendCandidate{
		{bendOffsetLeft, block.O, block.K},
		{bendOffsetRight, block.K, block.O},
	}},
}

// matchBendArrow recognizes an arrowhead fed by a line perpendicular to
// its own pointing direction rather than the straight run its property
// table registration expects. If the natural feed already satisfies the
// table's own intensify condition, there's nothing to add here.
func matchBendArrow(g *grid.Grid, consumed grid.Consumed, l loc.Loc) (Match, bool) {
	ch, ok := g.Get(l)
	if !ok {
		return Match{}, false
	}
	spec, ok := bendArrows[ch]
	if !ok {
		return Match{}, false
	}
	f := grid.At(g, l)
	if f.CanPassMediumConnect(spec.naturalOffset, spec.tip) {
		return Match{}, false
	}
	for _, cand := range spec.perp {
		if !f.CanPassMediumConnect(cand.offset, cand.want) {
			continue
		}
		lb := point.LocBlock{Loc: l, Settings: g.Settings}
		p1 := lb.ToPoint(cand.entry)
		p2 := lb.ToPoint(spec.tip)
		return Match{
			Elements: []element.Element{element.NewLine(p1, p2, element.Solid, element.Nothing, element.Arrow)},
			Consumed: []loc.Loc{l},
		}, true
	}
	return Match{}, false
}

// matchDashRun joins a horizontal run of two or more `-`/`=`/`:` cells
// that isn't a single repeated character into one DashedLine spanning
// the whole run. A run of one repeated `-` or `=` doesn't need this: the
// per-cell table already emits same-stroke Line/DashedLine fragments
// for each cell, and the reducer's reduceLines merges them because
// their strokes match (pkg/element's Reduce requires stroke1==stroke2,
// which a mixed run never satisfies on its own). A run made only of `:`
// is not joined here either; the table treats `:` as a vertical dashed
// glyph, so such a run falls back to text.
func matchDashRun(g *grid.Grid, consumed grid.Consumed, l loc.Loc) (Match, bool) {
	ch, ok := g.Get(l)
	if !ok || !isDashRunChar(ch) {
		return Match{}, false
	}
	if left, ok := g.Get(l.Left()); ok && isDashRunChar(left) && !consumed.Is(l.Left()) {
		return Match{}, false // not the leftmost cell of the run
	}
	end := l
	mixed := false
	for {
		next := end.Right()
		nc, ok := g.Get(next)
		if !ok || !isDashRunChar(nc) || consumed.Is(next) {
			break
		}
		if nc != ch {
			mixed = true
		}
		end = next
	}
	if !mixed {
		return Match{}, false
	}
	cells := make([]loc.Loc, 0, end.X-l.X+1)
	for x := l.X; x <= end.X; x++ {
		cells = append(cells, loc.New(x, l.Y))
	}
	p1 := (point.LocBlock{Loc: l, Settings: g.Settings}).ToPoint(block.K)
	p2 := (point.LocBlock{Loc: end, Settings: g.Settings}).ToPoint(block.O)
	return Match{
		Elements: []element.Element{element.NewLine(p1, p2, element.Dashed, element.Nothing, element.Nothing)},
		Consumed: cells,
	}, true
}

func isDashRunChar(ch rune) bool {
	switch ch {
	case '-', '=', ':':
		return true
	default:
		return false
	}
}

func isLineChar(ch rune) bool {
	switch ch {
	case '-', '=', '~', '_':
		return true
	default:
		return false
	}
}

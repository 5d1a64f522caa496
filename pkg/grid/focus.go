package grid

import (
	"sort"
	"unicode"

	"github.com/eng618/bobsvg/pkg/block"
	"github.com/eng618/bobsvg/pkg/element"
	"github.com/eng618/bobsvg/pkg/fragment"
	"github.com/eng618/bobsvg/pkg/loc"
	"github.com/eng618/bobsvg/pkg/point"
	"github.com/eng618/bobsvg/pkg/properties"
	"github.com/eng618/bobsvg/pkg/signal"
)

// Focus is a single cell together with the grid it lives in, giving the
// property table and enhancement passes a neighborhood to look around
// (§4.2). It is a small value type, cheap to construct per cell.
type Focus struct {
	Grid *Grid
	Loc  loc.Loc
}

// At builds a Focus for l within g.
func At(g *Grid, l loc.Loc) Focus { return Focus{Grid: g, Loc: l} }

// Ch returns this cell's rune, or 0 if the cell is empty/out of range.
func (f Focus) Ch() rune {
	r, _ := f.Grid.Get(f.Loc)
	return r
}

// IsNull reports whether the cell at offset o doesn't exist in the grid.
func (f Focus) IsNull(o loc.Offset) bool {
	_, ok := f.Grid.Get(f.Loc.From(o))
	return !ok
}

// IsBlank reports whether the cell at offset o is absent or a space.
func (f Focus) IsBlank(o loc.Offset) bool {
	r, ok := f.Grid.Get(f.Loc.From(o))
	return !ok || r == ' '
}

// Is reports whether the cell at offset o holds exactly ch.
func (f Focus) Is(o loc.Offset, ch rune) bool {
	r, ok := f.Grid.Get(f.Loc.From(o))
	return ok && r == ch
}

// Any reports whether the cell at offset o holds any rune in chars.
func (f Focus) Any(o loc.Offset, chars string) bool {
	r, ok := f.Grid.Get(f.Loc.From(o))
	if !ok {
		return false
	}
	for _, c := range chars {
		if c == r {
			return true
		}
	}
	return false
}

func (f Focus) neighborCharacteristic(o loc.Offset) (rune, signal.Characteristic, bool) {
	r, ok := f.Grid.Get(f.Loc.From(o))
	if !ok {
		return 0, signal.Characteristic{}, false
	}
	c, ok := properties.Lookup(r)
	return r, c, ok
}

// CanStronglyConnect, CanPassMediumConnect and CanPassWeaklyConnect ask
// whether the neighbor at offset o declares at least the given strength
// toward block b (§4.3's connection algebra). They read the neighbor's
// own declared Connections only — not its intensified state, which is
// what keeps intensification from recursing past one neighbor.
func (f Focus) CanStronglyConnect(o loc.Offset, b block.Block) bool {
	return f.neighborCanConnect(o, signal.Strong, b)
}

func (f Focus) CanPassMediumConnect(o loc.Offset, b block.Block) bool {
	return f.neighborCanConnect(o, signal.Medium, b)
}

func (f Focus) CanPassWeaklyConnect(o loc.Offset, b block.Block) bool {
	return f.neighborCanConnect(o, signal.Weak, b)
}

func (f Focus) neighborCanConnect(o loc.Offset, want signal.Signal, b block.Block) bool {
	_, c, ok := f.neighborCharacteristic(o)
	if !ok {
		return false
	}
	return c.CanConnect(want, b)
}

// IsStrongBlock reports whether this cell's block b is Strong, either
// declared directly or reached through one level of intensification.
func (f Focus) IsStrongBlock(b block.Block) bool {
	c, ok := properties.Lookup(f.Ch())
	if !ok {
		return false
	}
	if c.IsStrongBlock(b) {
		return true
	}
	return f.isIntensified(b, c)
}

func (f Focus) isIntensified(b block.Block, c signal.Characteristic) bool {
	for _, rule := range c.Intensify {
		if rule.Block != b {
			continue
		}
		if f.satisfies(rule.Condition) {
			return true
		}
	}
	return false
}

func (f Focus) satisfies(cond signal.Condition) bool {
	neighborCh, neighborC, ok := f.neighborCharacteristic(cond.At)
	switch cond.Can.Kind {
	case signal.CanConnectTo:
		if !ok {
			return false
		}
		return neighborC.CanConnect(cond.Can.Signal, cond.Can.Block)
	case signal.CanIs:
		r, exists := f.Grid.Get(f.Loc.From(cond.At))
		return exists && r == cond.Can.Char
	case signal.CanIsStrongAll:
		if !ok {
			return false
		}
		for _, bb := range cond.Can.Blocks {
			if !neighborC.IsStrongBlock(bb) {
				return false
			}
		}
		return true
	default:
		_ = neighborCh
		return false
	}
}

var (
	offsetLeft        = loc.Offset{DX: -1, DY: 0}
	offsetRight       = loc.Offset{DX: 1, DY: 0}
	offsetTop         = loc.Offset{DX: 0, DY: -1}
	offsetBottom      = loc.Offset{DX: 0, DY: 1}
	offsetTopLeft     = loc.Offset{DX: -1, DY: -1}
	offsetTopRight    = loc.Offset{DX: 1, DY: -1}
	offsetBottomLeft  = loc.Offset{DX: -1, DY: 1}
	offsetBottomRight = loc.Offset{DX: 1, DY: 1}
)

// usedAsDrawingPairs enumerates the ten self/neighbor block pairs that
// mark a non-static glyph as line art: this cell strongly connects its
// half of the pair and the named neighbor can at least medium-connect
// back through the opposite block. The first eight are the four
// cardinal and four diagonal through-connections; the last two are the
// underscore-continuation case, where a low horizontal stroke hands off
// sideways (U/Y) rather than through the cell's center.
var usedAsDrawingPairs = []struct {
	self     block.Block
	offset   loc.Offset
	neighbor block.Block
}{
	{block.O, offsetRight, block.K},
	{block.K, offsetLeft, block.O},
	{block.C, offsetTop, block.W},
	{block.W, offsetBottom, block.C},
	{block.A, offsetTopLeft, block.Y},
	{block.Y, offsetBottomRight, block.A},
	{block.E, offsetTopRight, block.U},
	{block.U, offsetBottomLeft, block.E},
	{block.U, offsetLeft, block.Y},
	{block.Y, offsetRight, block.U},
}

// UsedAsDrawing reports whether this cell currently contributes to the
// diagram's line art, per §4.2's used_as_drawing predicate: statically a
// box-drawing glyph, or one of the ten usedAsDrawingPairs holds between
// this cell's declared connections and a neighbor's. Text-surroundedness
// plays no part here — a hyphen between a line and a label is still
// drawing if the line side actually connects.
func (f Focus) UsedAsDrawing() bool {
	c, ok := properties.Lookup(f.Ch())
	if !ok {
		return false
	}
	if c.Static {
		return true
	}
	for _, p := range usedAsDrawingPairs {
		if c.CanConnect(signal.Strong, p.self) && f.CanPassMediumConnect(p.offset, p.neighbor) {
			return true
		}
	}
	return false
}

// UsedAsText reports whether this cell should be treated as a label
// character: it isn't used_as_drawing, and it sits beside a text
// character.
func (f Focus) UsedAsText() bool {
	if f.UsedAsDrawing() {
		return false
	}
	return f.IsTextSurrounded()
}

// isTextChar reports whether r counts as a label character when
// deciding if a neighboring cell is text-surrounded. 'o', 'O' and '_'
// are excluded even though they're letters/word characters: they
// double as circle markers and the underscore line glyph, so sitting
// next to one shouldn't pull an otherwise-ambiguous cell into text.
func isTextChar(r rune) bool {
	switch r {
	case 'o', 'O', '_':
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsTextSurrounded reports whether this cell sits directly beside a
// text character, the heuristic that keeps a hyphen in "well-known"
// from being drawn as a line segment.
func (f Focus) IsTextSurrounded() bool {
	if l, ok := f.Grid.Get(f.Loc.Left()); ok && isTextChar(l) {
		return true
	}
	if r, ok := f.Grid.Get(f.Loc.Right()); ok && isTextChar(r) {
		return true
	}
	return false
}

// GetFragments implements §4.4's per-cell emission algorithm: fall
// through to a bare Text fragment for anything the table doesn't know or
// that text-context heuristics claim, otherwise try each intended
// behavior (first full match wins — see DESIGN.md) before falling back
// to the character's plain Properties, deduplicating and sorting the
// result.
func (f Focus) GetFragments() []fragment.Fragment {
	ch := f.Ch()
	if ch == 0 || ch == ' ' {
		return nil
	}
	c, ok := properties.Lookup(ch)
	if !ok {
		return []fragment.Fragment{fragment.Text(string(ch))}
	}
	if f.UsedAsText() {
		return []fragment.Fragment{fragment.Text(string(ch))}
	}

	var frags []fragment.Fragment
	matched := false
	for _, be := range c.IntendedBehavior {
		if f.allStrong(be.Blocks) {
			frags = append(frags, be.Fragments...)
			matched = true
			break
		}
	}
	if !matched {
		for _, pe := range c.Properties {
			if f.IsStrongBlock(pe.Block) {
				frags = append(frags, pe.Fragments...)
			}
		}
	}
	if len(frags) == 0 {
		return []fragment.Fragment{fragment.Text(string(ch))}
	}
	return dedupFragments(frags)
}

func (f Focus) allStrong(blocks []block.Block) bool {
	for _, b := range blocks {
		if !f.IsStrongBlock(b) {
			return false
		}
	}
	return true
}

func dedupFragments(frags []fragment.Fragment) []fragment.Fragment {
	sort.Slice(frags, func(i, j int) bool { return frags[i].Less(frags[j]) })
	out := frags[:0]
	for i, fr := range frags {
		if i == 0 || !fr.Equal(frags[i-1]) {
			out = append(out, fr)
		}
	}
	return out
}

// ToElements lowers this cell's fragments into concrete Elements by
// resolving each Fragment's symbolic block.Block anchors against the
// cell's on-canvas position.
func (f Focus) ToElements(frags []fragment.Fragment) []element.Element {
	lb := point.LocBlock{Loc: f.Loc, Settings: f.Grid.Settings}
	var out []element.Element
	for _, fr := range frags {
		out = append(out, lowerFragment(lb, f.Loc, fr)...)
	}
	return out
}

func lowerFragment(lb point.LocBlock, l loc.Loc, fr fragment.Fragment) []element.Element {
	p1 := lb.ToPoint(fr.P1)
	p2 := lb.ToPoint(fr.P2)

	switch fr.Kind {
	case fragment.KindLine:
		return []element.Element{element.NewLine(p1, p2, element.Solid, element.Nothing, element.Nothing)}
	case fragment.KindDashedLine:
		return []element.Element{element.NewLine(p1, p2, element.Dashed, element.Nothing, element.Nothing)}
	case fragment.KindCircleStartLine:
		return []element.Element{element.NewLine(p1, p2, element.Solid, element.Circle, element.Nothing)}
	case fragment.KindSquareStartLine:
		return []element.Element{element.NewLine(p1, p2, element.Solid, element.Square, element.Nothing)}
	case fragment.KindCircleOpenLine:
		center := lb.ToPoint(block.M)
		return []element.Element{
			element.NewLine(p1, p2, element.Solid, element.Nothing, element.Nothing),
			element.NewCircle(center, lb.UnitX()*0.8),
		}
	case fragment.KindBigCircleOpenLine:
		center := lb.ToPoint(block.M)
		return []element.Element{
			element.NewLine(p1, p2, element.Solid, element.Nothing, element.Nothing),
			element.NewCircle(center, lb.UnitX()*1.4),
		}
	case fragment.KindArrowLine:
		return []element.Element{element.NewLine(p1, p2, element.Solid, element.Nothing, element.Arrow)}
	case fragment.KindClearArrowLine:
		return []element.Element{element.NewLine(p1, p2, element.Solid, element.Nothing, element.ClearArrow)}
	case fragment.KindStartArrowLine:
		return []element.Element{element.NewLine(p1, p2, element.Solid, element.Arrow, element.Nothing)}
	case fragment.KindArc:
		radius := fr.Radius * lb.UnitX() * 2
		return []element.Element{element.NewArc(p1, p2, radius, element.Minor, arcSweep(fr.P1, fr.P2), element.Solid, element.Nothing, element.Nothing)}
	case fragment.KindOpenCircle:
		center := lb.ToPoint(fr.Center)
		return []element.Element{element.NewCircle(center, fr.Radius*lb.UnitX())}
	case fragment.KindText:
		return []element.Element{element.NewText(l, fr.Text)}
	default:
		return nil
	}
}

// arcSweep picks the elliptical-arc sweep flag for the four corner-arc
// pairs the property table emits ('.' and '\'' rounded corners). Any
// other pair defaults to the minor sweep direction.
func arcSweep(p1, p2 block.Block) bool {
	switch {
	case p1 == block.W && p2 == block.O:
		return false
	case p1 == block.K && p2 == block.W:
		return true
	case p1 == block.C && p2 == block.O:
		return true
	case p1 == block.K && p2 == block.C:
		return false
	default:
		return false
	}
}

// Package grid turns input text into an addressable character matrix and
// provides the Focus/Neighborhood view (§4.2) that the property table and
// enhancement passes are evaluated against.
package grid

import (
	"sort"
	"strings"

	"github.com/eng618/bobsvg/pkg/loc"
	"github.com/eng618/bobsvg/pkg/settings"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Grid is an immutable rectangular view of the input diagram, addressed by
// column/row (loc.Loc), built once and read by every pass thereafter.
type Grid struct {
	cells    map[loc.Loc]rune
	width    int
	height   int
	Settings settings.Settings
}

// FromString builds a Grid from raw diagram text. Lines are split on '\n'
// (a trailing '\r' is trimmed); each line is walked grapheme-by-grapheme
// with uniseg so multi-rune clusters aren't split, and each cluster
// advances the column cursor by its go-runewidth display width so
// double-width glyphs (e.g. CJK) still line up with the cells around them
// (§9 "wide characters").
func FromString(input string, s settings.Settings) *Grid {
	g := &Grid{cells: make(map[loc.Loc]rune), Settings: s}
	if input == "" {
		return g
	}
	lines := strings.Split(input, "\n")
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		col := 0
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			cluster := gr.Runes()
			r := cluster[0]
			w := runewidth.StringWidth(gr.Str())
			if w < 1 {
				w = 1
			}
			g.cells[loc.New(col, y)] = r
			col += w
		}
		if col > g.width {
			g.width = col
		}
	}
	g.height = len(lines)
	return g
}

// Get returns the rune at l, or (0, false) if l is outside the grid or
// falls on the trailing column of a wide character.
func (g *Grid) Get(l loc.Loc) (rune, bool) {
	r, ok := g.cells[l]
	return r, ok
}

// Width and Height report the grid's bounding box in cells.
func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Locs returns every occupied cell location in top-to-bottom,
// left-to-right order.
func (g *Grid) Locs() []loc.Loc {
	out := make([]loc.Loc, 0, len(g.cells))
	for l := range g.cells {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Consumed tracks which cells an enhancement pass has claimed, so later
// passes and the default per-cell emitter skip them (§4.5's monotone
// "first pass to emit wins" rule).
type Consumed map[loc.Loc]bool

func (c Consumed) Mark(l loc.Loc)      { c[l] = true }
func (c Consumed) Is(l loc.Loc) bool   { return c[l] }
func NewConsumed() Consumed            { return make(Consumed) }

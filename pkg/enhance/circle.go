// Package enhance implements the pre-pass patterns that span more than
// one cell — full circles drawn with parentheses and a center dot, and
// the general patterns (arrow chevrons, dash runs) listed in
// SPEC_FULL.md's supplemented-features section. Each pattern anchors on
// one cell, inspects a fixed neighborhood, and on a match returns the
// Fragments to draw plus every cell it consumes.
//
// Passes run in the order the caller invokes them and must be monotone
// (§4.5): a cell already marked consumed is skipped by later patterns
// and by the default per-cell emitter.
package enhance

import (
	"sort"

	"github.com/eng618/bobsvg/pkg/element"
	"github.com/eng618/bobsvg/pkg/grid"
	"github.com/eng618/bobsvg/pkg/loc"
	"github.com/eng618/bobsvg/pkg/settings"
)

// Match is one successful pattern hit: the elements it produces and the
// cells it claims.
type Match struct {
	Elements []element.Element
	Consumed []loc.Loc
}

// circleTemplate describes one of svgbob's parenthesized circle
// spellings: a bounding box of cells, every one of which (including its
// blank interior) must match exactly, anchored on the cell holding '('.
// cells maps each required cell's offset from the anchor to its rune;
// centerOffsetX/Y locate the circle's center in cell-width/height units
// from the anchor cell's top-left corner, which is what lets an
// off-center or multi-row box still produce a centered circle.
type circleTemplate struct {
	cells         map[loc.Offset]rune
	radius        float64
	centerOffsetX float64
	centerOffsetY float64
}

// rowTemplate builds a circleTemplate from a small ASCII picture: rows
// top-to-bottom, anchorRow/anchorCol naming the '(' cell's position
// within that picture. Every rune in every row is a required match,
// including spaces — svgbob's circle spellings are exact boxes, not
// wildcards.
func rowTemplate(rows []string, anchorRow, anchorCol int, radius float64) circleTemplate {
	cells := make(map[loc.Offset]rune)
	for ry, row := range rows {
		for cx, ch := range row {
			cells[loc.Offset{DX: cx - anchorCol, DY: ry - anchorRow}] = ch
		}
	}
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	return circleTemplate{
		cells:         cells,
		radius:        radius,
		centerOffsetX: float64(width)/2.0 - float64(anchorCol),
		centerOffsetY: float64(len(rows))/2.0 - float64(anchorRow),
	}
}

// Circle-diagram templates. Single-row spellings come from svgbob's
// small inline circle notation; the multi-row boxes reproduce its
// documented small/medium/large circle gallery (anchor character, a
// matrix of required neighbors, a radius multiplier and a consumed-cell
// list, per spec.md §4.2) — see DESIGN.md for why these are built from
// the gallery's shape rather than ported byte-for-byte from
// enhance_circle.rs, which wasn't part of the retrieved original source.
//
// Checked most-specific first: the multi-row boxes before the single-row
// spellings (a box's middle row is itself a single-row spelling), and
// wider single-row spellings before narrower ones, so a longer run isn't
// partially matched by a shorter prefix.
var circleTemplates = []circleTemplate{
	rowTemplate([]string{
		" .-. ",
		"(   )",
		" `-' ",
	}, 1, 0, 1.8),
	rowTemplate([]string{
		"  .--.  ",
		" /    \\ ",
		"(      )",
		" \\    / ",
		"  `--'  ",
	}, 2, 0, 3.2),
	rowTemplate([]string{
		"   .--.   ",
		"  /    \\  ",
		" |      | ",
		"(        )",
		" |      | ",
		"  \\    /  ",
		"   `--'   ",
	}, 3, 0, 4.5),
	rowTemplate([]string{"(   )"}, 0, 0, 2.0),
	rowTemplate([]string{"(  )"}, 0, 0, 1.6),
	rowTemplate([]string{"( )"}, 0, 0, 1.1),
	rowTemplate([]string{"(.)"}, 0, 0, 1.1),
}

// Circle scans the grid for parenthesized circle spellings and returns
// one Match per hit. g's Settings determine the resolved radius.
func Circle(g *grid.Grid, consumed grid.Consumed) []Match {
	var matches []Match
	for _, l := range g.Locs() {
		if consumed.Is(l) {
			continue
		}
		r, _ := g.Get(l)
		if r != '(' {
			continue
		}
		if m, ok := matchCircleAt(g, consumed, l, g.Settings); ok {
			matches = append(matches, m)
			for _, c := range m.Consumed {
				consumed.Mark(c)
			}
		}
	}
	return matches
}

func matchCircleAt(g *grid.Grid, consumed grid.Consumed, anchor loc.Loc, s settings.Settings) (Match, bool) {
	for _, tmpl := range circleTemplates {
		cells, ok := matchTemplate(g, consumed, anchor, tmpl)
		if !ok {
			continue
		}
		centerX := float64(anchor.X)*s.TextWidth + tmpl.centerOffsetX*s.TextWidth
		centerY := float64(anchor.Y)*s.TextHeight + tmpl.centerOffsetY*s.TextHeight
		unitX := s.TextWidth / 4.0
		return Match{
			Elements: []element.Element{element.NewCircle(element.Point_{X: centerX, Y: centerY}, tmpl.radius*unitX)},
			Consumed: cells,
		}, true
	}
	return Match{}, false
}

func matchTemplate(g *grid.Grid, consumed grid.Consumed, anchor loc.Loc, tmpl circleTemplate) ([]loc.Loc, bool) {
	cells := make([]loc.Loc, 0, len(tmpl.cells))
	for off, want := range tmpl.cells {
		l := anchor.From(off)
		if consumed.Is(l) {
			return nil, false
		}
		got, exists := g.Get(l)
		if !exists || got != want {
			return nil, false
		}
		cells = append(cells, l)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells, true
}

// Package bob orchestrates the full pipeline described in SPEC_FULL.md:
// parse the input into a Grid, run the enhancement passes, emit the
// remaining cells through the property table, reduce the combined
// Element list, and map it to SVG.
package bob

import (
	"github.com/eng618/bobsvg/pkg/element"
	"github.com/eng618/bobsvg/pkg/enhance"
	"github.com/eng618/bobsvg/pkg/grid"
	"github.com/eng618/bobsvg/pkg/reduce"
	"github.com/eng618/bobsvg/pkg/settings"
	"github.com/eng618/bobsvg/pkg/svgmap"
)

// ToSVG converts diagram text into a complete SVG document using the
// given rendering settings.
func ToSVG(input string, s settings.Settings) (string, error) {
	s = s.Apply()
	g := grid.FromString(input, s)

	consumed := grid.NewConsumed()
	var elements []element.Element

	for _, m := range enhance.Circle(g, consumed) {
		elements = append(elements, m.Elements...)
	}
	for _, m := range enhance.General(g, consumed) {
		elements = append(elements, m.Elements...)
	}

	for _, l := range g.Locs() {
		if consumed.Is(l) {
			continue
		}
		f := grid.At(g, l)
		frags := f.GetFragments()
		if len(frags) == 0 {
			continue
		}
		elements = append(elements, f.ToElements(frags)...)
	}

	elements = reduce.Reduce(elements)
	return svgmap.Render(elements, g.Width(), g.Height(), s), nil
}

// Package reduce merges the raw Element list produced per-cell into the
// smallest equivalent set: adjacent collinear line segments become one
// line, adjacent same-row text runs concatenate (§4.6), under the
// deterministic total order §4.8 requires for reproducible output.
package reduce

import (
	"sort"

	"github.com/eng618/bobsvg/pkg/element"
)

// Reduce repeatedly merges any pair of elements that element.Reduce
// accepts, to a fixed point: a single merge can produce an element that
// is in turn mergeable with one further along in the list, which sorting
// by canonical order alone would not bring adjacent, so every pair is
// considered on each sweep. The result is sorted by canonical order.
func Reduce(elements []element.Element) []element.Element {
	out := append([]element.Element(nil), elements...)

	for {
		merged := false
	search:
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				if m, ok := element.Reduce(out[i], out[j]); ok {
					out[i] = m
					out = append(out[:j], out[j+1:]...)
					merged = true
					break search
				}
			}
		}
		if !merged {
			break
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

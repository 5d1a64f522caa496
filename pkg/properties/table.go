// Package properties is the static, read-only Characteristic registry
// keyed by character (§2 "Character Properties table", §4.4). It is
// built once via sync.Once and is safe for concurrent reads thereafter,
// matching §5's "read-only after construction" requirement.
package properties

import (
	"sync"

	"github.com/eng618/bobsvg/pkg/block"
	"github.com/eng618/bobsvg/pkg/fragment"
	"github.com/eng618/bobsvg/pkg/loc"
	"github.com/eng618/bobsvg/pkg/signal"
)

var (
	once  sync.Once
	table map[rune]signal.Characteristic
)

// Table returns the shared Characteristic registry, building it lazily
// on first use.
func Table() map[rune]signal.Characteristic {
	once.Do(build)
	return table
}

// Lookup returns the Characteristic for ch, or ok=false if ch has no
// entry (falls through to the Text path, §4.4 step 1/4).
func Lookup(ch rune) (signal.Characteristic, bool) {
	c, ok := Table()[ch]
	return c, ok
}

// IsStatic reports whether ch is unconditionally a drawing glyph
// (Unicode box-drawing), per §4.2's used_as_drawing special case.
func IsStatic(ch rune) bool {
	c, ok := Lookup(ch)
	return ok && c.Static
}

// left/top/right/bottom neighbor offsets, used throughout the table to
// build intensify Conditions.
var (
	left   = loc.Offset{DX: -1, DY: 0}
	right  = loc.Offset{DX: 1, DY: 0}
	top    = loc.Offset{DX: 0, DY: -1}
	bottom = loc.Offset{DX: 0, DY: 1}
)

func build() {
	table = make(map[rune]signal.Characteristic)

	registerHorizontalLine('-')
	registerHorizontalLine('_') // continuation underscore; same K/O semantics
	registerHorizontalDashed('=')
	registerHorizontalWeakDashed('~')
	registerVerticalLine('|')
	registerVerticalDashed(':')
	registerDiagonalUp('/')
	registerDiagonalDown('\\')
	registerPlus('+')
	registerDot('.')
	registerApostrophe('\'')
	registerStar('*')
	registerCircleMarker('o', fragment.CircleOpenLine)
	registerCircleMarker('O', fragment.BigCircleOpenLine)
	registerArrowRight('>')
	registerArrowLeft('<')
	registerArrowUp('^')
	registerArrowDown('v')

	registerStaticStraight('─', block.K, block.O)
	registerStaticStraight('│', block.C, block.W)
	registerStaticCorner('┌', block.W, block.O)
	registerStaticCorner('┐', block.W, block.K)
	registerStaticCorner('└', block.C, block.O)
	registerStaticCorner('┘', block.C, block.K)
	registerStaticCorner('╭', block.W, block.O)
	registerStaticCorner('╮', block.W, block.K)
	registerStaticCorner('╰', block.C, block.O)
	registerStaticCorner('╯', block.C, block.K)
	registerStaticTee('├', block.C, block.W, block.O)
	registerStaticTee('┤', block.C, block.W, block.K)
	registerStaticTee('┬', block.K, block.O, block.W)
	registerStaticTee('┴', block.K, block.O, block.C)
	registerStaticCross('┼')

	// Double-line box drawing reuses the single-line geometry: Element
	// has no "double stroke" rendering, so a faithful visual distinction
	// would require a new Element variant outside spec.md's vocabulary.
	registerStaticStraight('═', block.K, block.O)
	registerStaticStraight('║', block.C, block.W)
	registerStaticCorner('╔', block.W, block.O)
	registerStaticCorner('╗', block.W, block.K)
	registerStaticCorner('╚', block.C, block.O)
	registerStaticCorner('╝', block.C, block.K)
	registerStaticTee('╠', block.C, block.W, block.O)
	registerStaticTee('╣', block.C, block.W, block.K)
	registerStaticTee('╦', block.K, block.O, block.W)
	registerStaticTee('╩', block.K, block.O, block.C)
	registerStaticCross('╬')
}

func set(ch rune, c signal.Characteristic) {
	if c.Connections == nil {
		c.Connections = map[block.Block]signal.Signal{}
	}
	table[ch] = c
}

func registerHorizontalLine(ch rune) {
	set(ch, signal.Characteristic{
		Connections: map[block.Block]signal.Signal{block.K: signal.Strong, block.O: signal.Strong},
		Properties: []signal.PropertyEntry{
			{Block: block.K, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.Line(block.K, block.O)}},
		},
	})
}

func registerHorizontalDashed(ch rune) {
	set(ch, signal.Characteristic{
		Connections: map[block.Block]signal.Signal{block.K: signal.Strong, block.O: signal.Strong},
		Properties: []signal.PropertyEntry{
			{Block: block.K, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.DashedLine(block.K, block.O)}},
		},
	})
}

func registerHorizontalWeakDashed(ch rune) {
	set(ch, signal.Characteristic{
		Connections: map[block.Block]signal.Signal{block.K: signal.Medium, block.O: signal.Medium},
		Intensify: []signal.IntensifyRule{
			{Block: block.K, Condition: signal.Condition{At: left, Can: signal.ConnectTo(block.O, signal.Medium)}},
			{Block: block.O, Condition: signal.Condition{At: right, Can: signal.ConnectTo(block.K, signal.Medium)}},
		},
		Properties: []signal.PropertyEntry{
			{Block: block.K, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.DashedLine(block.K, block.O)}},
		},
	})
}

func registerVerticalLine(ch rune) {
	set(ch, signal.Characteristic{
		Connections: map[block.Block]signal.Signal{block.C: signal.Strong, block.W: signal.Strong},
		Properties: []signal.PropertyEntry{
			{Block: block.C, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.Line(block.C, block.W)}},
		},
	})
}

func registerVerticalDashed(ch rune) {
	set(ch, signal.Characteristic{
		Connections: map[block.Block]signal.Signal{block.C: signal.Medium, block.W: signal.Medium},
		Intensify: []signal.IntensifyRule{
			{Block: block.C, Condition: signal.Condition{At: top, Can: signal.ConnectTo(block.W, signal.Medium)}},
			{Block: block.W, Condition: signal.Condition{At: bottom, Can: signal.ConnectTo(block.C, signal.Medium)}},
		},
		Properties: []signal.PropertyEntry{
			{Block: block.C, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.DashedLine(block.C, block.W)}},
		},
	})
}

func registerDiagonalUp(ch rune) {
	set(ch, signal.Characteristic{
		Connections: map[block.Block]signal.Signal{block.U: signal.Strong, block.E: signal.Strong},
		Properties: []signal.PropertyEntry{
			{Block: block.U, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.Line(block.U, block.E)}},
		},
	})
}

func registerDiagonalDown(ch rune) {
	set(ch, signal.Characteristic{
		Connections: map[block.Block]signal.Signal{block.A: signal.Strong, block.Y: signal.Strong},
		Properties: []signal.PropertyEntry{
			{Block: block.A, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.Line(block.A, block.Y)}},
		},
	})
}

// registerPlus builds the '+' joint: it connects in all four cardinal
// directions, each intensified from the matching neighbor, and picks the
// most specific combination of strong blocks that applies.
//
// The generic algorithm (§4.4 step 2) would accumulate fragments from
// every intended_behavior entry whose blocks can all be made strong,
// which double-draws subset combinations (e.g. a 4-way cross also
// satisfies the "top+bottom+left" T-junction's requirement). This table
// instead relies on grid.Focus.GetFragments taking the first intended_behavior
// match per cell — see DESIGN.md's Open Question resolution.
func registerPlus(ch rune) {
	set(ch, signal.Characteristic{
		Connections: map[block.Block]signal.Signal{
			block.C: signal.Medium, block.W: signal.Medium,
			block.K: signal.Medium, block.O: signal.Medium,
		},
		Intensify: []signal.IntensifyRule{
			{Block: block.C, Condition: signal.Condition{At: top, Can: signal.ConnectTo(block.W, signal.Medium)}},
			{Block: block.W, Condition: signal.Condition{At: bottom, Can: signal.ConnectTo(block.C, signal.Medium)}},
			{Block: block.K, Condition: signal.Condition{At: left, Can: signal.ConnectTo(block.O, signal.Medium)}},
			{Block: block.O, Condition: signal.Condition{At: right, Can: signal.ConnectTo(block.K, signal.Medium)}},
		},
		IntendedBehavior: []signal.BehaviorEntry{
			{Blocks: []block.Block{block.C, block.W, block.K, block.O}, Fragments: []fragment.Fragment{
				fragment.Line(block.C, block.W), fragment.Line(block.K, block.O),
			}},
			{Blocks: []block.Block{block.C, block.W, block.K}, Fragments: []fragment.Fragment{
				fragment.Line(block.C, block.W), fragment.Line(block.K, block.M),
			}},
			{Blocks: []block.Block{block.C, block.W, block.O}, Fragments: []fragment.Fragment{
				fragment.Line(block.C, block.W), fragment.Line(block.M, block.O),
			}},
			{Blocks: []block.Block{block.C, block.K, block.O}, Fragments: []fragment.Fragment{
				fragment.Line(block.K, block.O), fragment.Line(block.C, block.M),
			}},
			{Blocks: []block.Block{block.W, block.K, block.O}, Fragments: []fragment.Fragment{
				fragment.Line(block.K, block.O), fragment.Line(block.M, block.W),
			}},
			{Blocks: []block.Block{block.C, block.W}, Fragments: []fragment.Fragment{fragment.Line(block.C, block.W)}},
			{Blocks: []block.Block{block.K, block.O}, Fragments: []fragment.Fragment{fragment.Line(block.K, block.O)}},
			{Blocks: []block.Block{block.C, block.O}, Fragments: []fragment.Fragment{
				fragment.Line(block.C, block.M), fragment.Line(block.M, block.O),
			}},
			{Blocks: []block.Block{block.C, block.K}, Fragments: []fragment.Fragment{
				fragment.Line(block.C, block.M), fragment.Line(block.K, block.M),
			}},
			{Blocks: []block.Block{block.W, block.O}, Fragments: []fragment.Fragment{
				fragment.Line(block.M, block.W), fragment.Line(block.M, block.O),
			}},
			{Blocks: []block.Block{block.W, block.K}, Fragments: []fragment.Fragment{
				fragment.Line(block.M, block.W), fragment.Line(block.K, block.M),
			}},
			{Blocks: []block.Block{block.C}, Fragments: []fragment.Fragment{fragment.Line(block.C, block.M)}},
			{Blocks: []block.Block{block.W}, Fragments: []fragment.Fragment{fragment.Line(block.M, block.W)}},
			{Blocks: []block.Block{block.K}, Fragments: []fragment.Fragment{fragment.Line(block.K, block.M)}},
			{Blocks: []block.Block{block.O}, Fragments: []fragment.Fragment{fragment.Line(block.M, block.O)}},
		},
	})
}

func registerDot(ch rune) {
	set(ch, signal.Characteristic{
		Intensify: []signal.IntensifyRule{
			{Block: block.W, Condition: signal.Condition{At: bottom, Can: signal.ConnectTo(block.C, signal.Medium)}},
			{Block: block.O, Condition: signal.Condition{At: right, Can: signal.ConnectTo(block.K, signal.Medium)}},
			{Block: block.K, Condition: signal.Condition{At: left, Can: signal.ConnectTo(block.O, signal.Medium)}},
		},
		IntendedBehavior: []signal.BehaviorEntry{
			// rounded top-left corner: vertical line below, horizontal line to the right
			{Blocks: []block.Block{block.W, block.O}, Fragments: []fragment.Fragment{fragment.Arc(block.W, block.O, 1.0)}},
			// rounded top-right corner: vertical line below, horizontal line to the left
			{Blocks: []block.Block{block.W, block.K}, Fragments: []fragment.Fragment{fragment.Arc(block.K, block.W, 1.0)}},
		},
	})
}

func registerApostrophe(ch rune) {
	set(ch, signal.Characteristic{
		Intensify: []signal.IntensifyRule{
			{Block: block.C, Condition: signal.Condition{At: top, Can: signal.ConnectTo(block.W, signal.Medium)}},
			{Block: block.O, Condition: signal.Condition{At: right, Can: signal.ConnectTo(block.K, signal.Medium)}},
			{Block: block.K, Condition: signal.Condition{At: left, Can: signal.ConnectTo(block.O, signal.Medium)}},
		},
		IntendedBehavior: []signal.BehaviorEntry{
			// rounded bottom-left corner: vertical line above, horizontal line to the right
			{Blocks: []block.Block{block.C, block.O}, Fragments: []fragment.Fragment{fragment.Arc(block.C, block.O, 1.0)}},
			// rounded bottom-right corner: vertical line above, horizontal line to the left
			{Blocks: []block.Block{block.C, block.K}, Fragments: []fragment.Fragment{fragment.Arc(block.K, block.C, 1.0)}},
		},
	})
}

func registerStar(ch rune) {
	set(ch, signal.Characteristic{
		Connections: map[block.Block]signal.Signal{block.M: signal.Strong},
		Properties: []signal.PropertyEntry{
			{Block: block.M, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.OpenCircle(block.M, 1.0)}},
		},
	})
}

// registerCircleMarker builds 'o' and 'O': an inline circle marker on
// whichever side(s) a line connects in, via the same
// intensify-single-block-then-match pattern as the arrowheads below.
func registerCircleMarker(ch rune, makeLine func(p1, p2 block.Block) fragment.Fragment) {
	set(ch, signal.Characteristic{
		Intensify: []signal.IntensifyRule{
			{Block: block.K, Condition: signal.Condition{At: left, Can: signal.ConnectTo(block.O, signal.Medium)}},
			{Block: block.O, Condition: signal.Condition{At: right, Can: signal.ConnectTo(block.K, signal.Medium)}},
			{Block: block.C, Condition: signal.Condition{At: top, Can: signal.ConnectTo(block.W, signal.Medium)}},
			{Block: block.W, Condition: signal.Condition{At: bottom, Can: signal.ConnectTo(block.C, signal.Medium)}},
		},
		IntendedBehavior: []signal.BehaviorEntry{
			{Blocks: []block.Block{block.K, block.O}, Fragments: []fragment.Fragment{makeLine(block.K, block.O)}},
			{Blocks: []block.Block{block.C, block.W}, Fragments: []fragment.Fragment{makeLine(block.C, block.W)}},
			{Blocks: []block.Block{block.K}, Fragments: []fragment.Fragment{makeLine(block.M, block.K)}},
			{Blocks: []block.Block{block.O}, Fragments: []fragment.Fragment{makeLine(block.M, block.O)}},
			{Blocks: []block.Block{block.C}, Fragments: []fragment.Fragment{makeLine(block.M, block.C)}},
			{Blocks: []block.Block{block.W}, Fragments: []fragment.Fragment{makeLine(block.M, block.W)}},
		},
	})
}

func registerArrowRight(ch rune) {
	set(ch, signal.Characteristic{
		Intensify: []signal.IntensifyRule{
			{Block: block.K, Condition: signal.Condition{At: left, Can: signal.ConnectTo(block.O, signal.Medium)}},
		},
		IntendedBehavior: []signal.BehaviorEntry{
			{Blocks: []block.Block{block.K}, Fragments: []fragment.Fragment{fragment.ArrowLine(block.K, block.O)}},
		},
	})
}

func registerArrowLeft(ch rune) {
	set(ch, signal.Characteristic{
		Intensify: []signal.IntensifyRule{
			{Block: block.O, Condition: signal.Condition{At: right, Can: signal.ConnectTo(block.K, signal.Medium)}},
		},
		IntendedBehavior: []signal.BehaviorEntry{
			{Blocks: []block.Block{block.O}, Fragments: []fragment.Fragment{fragment.ArrowLine(block.O, block.K)}},
		},
	})
}

func registerArrowUp(ch rune) {
	set(ch, signal.Characteristic{
		Intensify: []signal.IntensifyRule{
			{Block: block.W, Condition: signal.Condition{At: bottom, Can: signal.ConnectTo(block.C, signal.Medium)}},
		},
		IntendedBehavior: []signal.BehaviorEntry{
			{Blocks: []block.Block{block.W}, Fragments: []fragment.Fragment{fragment.ArrowLine(block.W, block.C)}},
		},
	})
}

func registerArrowDown(ch rune) {
	set(ch, signal.Characteristic{
		Intensify: []signal.IntensifyRule{
			{Block: block.C, Condition: signal.Condition{At: top, Can: signal.ConnectTo(block.W, signal.Medium)}},
		},
		IntendedBehavior: []signal.BehaviorEntry{
			{Blocks: []block.Block{block.C}, Fragments: []fragment.Fragment{fragment.ArrowLine(block.C, block.W)}},
		},
	})
}

func registerStaticStraight(ch rune, a, b block.Block) {
	set(ch, signal.Characteristic{
		Static:      true,
		Connections: map[block.Block]signal.Signal{a: signal.Strong, b: signal.Strong},
		Properties: []signal.PropertyEntry{
			{Block: a, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.Line(a, b)}},
		},
	})
}

func registerStaticCorner(ch rune, arm1, arm2 block.Block) {
	set(ch, signal.Characteristic{
		Static:      true,
		Connections: map[block.Block]signal.Signal{arm1: signal.Strong, arm2: signal.Strong},
		Properties: []signal.PropertyEntry{
			{Block: arm1, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.Line(arm1, block.M)}},
			{Block: arm2, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.Line(block.M, arm2)}},
		},
	})
}

func registerStaticTee(ch rune, through1, through2, stem block.Block) {
	set(ch, signal.Characteristic{
		Static: true,
		Connections: map[block.Block]signal.Signal{
			through1: signal.Strong, through2: signal.Strong, stem: signal.Strong,
		},
		Properties: []signal.PropertyEntry{
			{Block: through1, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.Line(through1, through2)}},
			{Block: stem, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.Line(block.M, stem)}},
		},
	})
}

func registerStaticCross(ch rune) {
	set(ch, signal.Characteristic{
		Static: true,
		Connections: map[block.Block]signal.Signal{
			block.C: signal.Strong, block.W: signal.Strong, block.K: signal.Strong, block.O: signal.Strong,
		},
		Properties: []signal.PropertyEntry{
			{Block: block.C, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.Line(block.C, block.W)}},
			{Block: block.K, Signal: signal.Strong, Fragments: []fragment.Fragment{fragment.Line(block.K, block.O)}},
		},
	})
}

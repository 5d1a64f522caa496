// Package signal defines the three-level connection strength a
// character asserts for a block, and the per-character Characteristic
// data shape the property table is built from (§3, §4.3).
package signal

import (
	"github.com/eng618/bobsvg/pkg/block"
	"github.com/eng618/bobsvg/pkg/fragment"
	"github.com/eng618/bobsvg/pkg/loc"
)

// Signal is the strength a character declares for one of its blocks.
type Signal int

const (
	Weak Signal = iota
	Medium
	Strong
)

// CanPass reports whether having `have` satisfies a requirement of at
// least `want` (Strong satisfies Medium and Weak requirements, etc).
func (have Signal) CanPass(want Signal) bool {
	return have >= want
}

// CanKind discriminates a Can predicate's variant (§4.3 intensification).
type CanKind int

const (
	CanConnectTo CanKind = iota
	CanIs
	CanIsStrongAll
)

// Can is the tagged union of intensification predicates.
type Can struct {
	Kind   CanKind
	Block  block.Block   // ConnectTo
	Signal Signal        // ConnectTo
	Char   rune          // Is
	Blocks []block.Block // IsStrongAll
}

func ConnectTo(b block.Block, s Signal) Can { return Can{Kind: CanConnectTo, Block: b, Signal: s} }
func Is(ch rune) Can                        { return Can{Kind: CanIs, Char: ch} }
func IsStrongAll(blocks ...block.Block) Can { return Can{Kind: CanIsStrongAll, Blocks: blocks} }

// Condition names where to look (a neighbor offset) and what must hold
// there (a Can predicate) for an intensify rule to fire.
type Condition struct {
	At  loc.Offset
	Can Can
}

// IntensifyRule promotes Block to Strong when Condition is satisfied by
// the neighbor at Condition.At.
type IntensifyRule struct {
	Block     block.Block
	Condition Condition
}

// PropertyEntry says: when Block is active at (at least) Signal, emit
// Fragments.
type PropertyEntry struct {
	Block     block.Block
	Signal    Signal
	Fragments []fragment.Fragment
}

// BehaviorEntry says: if every block in Blocks can be made Strong (and
// the cell is not used as text), emit Fragments instead of the default
// Properties (§4.4 step 2).
type BehaviorEntry struct {
	Blocks    []block.Block
	Fragments []fragment.Fragment
}

// Characteristic is everything the property table knows about one
// character.
type Characteristic struct {
	Properties       []PropertyEntry
	Intensify        []IntensifyRule
	IntendedBehavior []BehaviorEntry

	// Connections lists, per block, the strongest Signal this character
	// emits toward that block — independent of Properties' fragments,
	// this is what can_strongly_connect/can_pass_medium_connect/
	// can_pass_weakly_connect (§4.3) actually test.
	Connections map[block.Block]Signal

	// Static marks characters that are unconditionally drawing glyphs
	// (Unicode box-drawing), per §4.2's used_as_drawing special case.
	Static bool
}

// IsStrongBlock reports whether c declares Block at Strong, directly
// (not counting intensification).
func (c Characteristic) IsStrongBlock(b block.Block) bool {
	return c.Connections[b] == Strong
}

// CanConnect reports whether c declares Block at least at the given
// Signal level.
func (c Characteristic) CanConnect(s Signal, b block.Block) bool {
	have, ok := c.Connections[b]
	if !ok {
		return false
	}
	return have.CanPass(s)
}

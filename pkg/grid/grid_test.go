package grid

import (
	"testing"

	"github.com/eng618/bobsvg/pkg/loc"
	"github.com/eng618/bobsvg/pkg/settings"
)

func TestFromStringBasic(t *testing.T) {
	g := FromString("ab\ncd", settings.Default())
	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", g.Width(), g.Height())
	}
	cases := map[loc.Loc]rune{
		loc.New(0, 0): 'a',
		loc.New(1, 0): 'b',
		loc.New(0, 1): 'c',
		loc.New(1, 1): 'd',
	}
	for l, want := range cases {
		got, ok := g.Get(l)
		if !ok || got != want {
			t.Errorf("Get(%v) = %q, %v; want %q, true", l, got, ok, want)
		}
	}
}

func TestFromStringOutOfRange(t *testing.T) {
	g := FromString("a", settings.Default())
	if _, ok := g.Get(loc.New(5, 5)); ok {
		t.Error("out-of-range cell should not exist")
	}
}

func TestLocsOrder(t *testing.T) {
	g := FromString("ba\ndc", settings.Default())
	locs := g.Locs()
	for i := 1; i < len(locs); i++ {
		if locs[i].Less(locs[i-1]) {
			t.Fatalf("Locs() not sorted at index %d: %v before %v", i, locs[i-1], locs[i])
		}
	}
}

func TestConsumed(t *testing.T) {
	c := NewConsumed()
	l := loc.New(1, 1)
	if c.Is(l) {
		t.Error("a fresh Consumed set should mark nothing")
	}
	c.Mark(l)
	if !c.Is(l) {
		t.Error("Mark should make Is report true")
	}
}

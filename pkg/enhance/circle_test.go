package enhance

import (
	"testing"

	"github.com/eng618/bobsvg/pkg/element"
	"github.com/eng618/bobsvg/pkg/grid"
	"github.com/eng618/bobsvg/pkg/loc"
	"github.com/eng618/bobsvg/pkg/settings"
)

func TestCircleMatchesSmallSpelling(t *testing.T) {
	g := grid.FromString("( )", settings.Default())
	consumed := grid.NewConsumed()
	matches := Circle(g, consumed)
	if len(matches) != 1 {
		t.Fatalf("Circle() = %+v, want a single match", matches)
	}
	m := matches[0]
	if len(m.Elements) != 1 || m.Elements[0].Kind != element.KindCircle {
		t.Fatalf("match elements = %+v, want a single Circle element", m.Elements)
	}
	wantConsumed := []loc.Loc{loc.New(0, 0), loc.New(1, 0), loc.New(2, 0)}
	if len(m.Consumed) != len(wantConsumed) {
		t.Fatalf("Consumed = %+v, want %+v", m.Consumed, wantConsumed)
	}
	for i, l := range wantConsumed {
		if m.Consumed[i] != l {
			t.Errorf("Consumed[%d] = %+v, want %+v", i, m.Consumed[i], l)
		}
	}
	for _, l := range wantConsumed {
		if !consumed.Is(l) {
			t.Errorf("expected cell %+v marked consumed after Circle()", l)
		}
	}
}

func TestCirclePrefersWidestTemplate(t *testing.T) {
	g := grid.FromString("(   )", settings.Default())
	consumed := grid.NewConsumed()
	matches := Circle(g, consumed)
	if len(matches) != 1 {
		t.Fatalf("Circle() = %+v, want a single match", matches)
	}
	if len(matches[0].Consumed) != 5 {
		t.Fatalf("Consumed = %+v, want the full 5-cell spelling", matches[0].Consumed)
	}
}

func TestCircleNoMatchWithoutParen(t *testing.T) {
	g := grid.FromString("abc", settings.Default())
	consumed := grid.NewConsumed()
	if matches := Circle(g, consumed); len(matches) != 0 {
		t.Fatalf("Circle() = %+v, want no matches", matches)
	}
}

func TestCircleMatchesSmallMultiRowSpelling(t *testing.T) {
	diagram := " .-. \n(   )\n `-' "
	g := grid.FromString(diagram, settings.Default())
	consumed := grid.NewConsumed()
	matches := Circle(g, consumed)
	if len(matches) != 1 {
		t.Fatalf("Circle() = %+v, want a single match for the 3-row circle box", matches)
	}
	m := matches[0]
	if len(m.Elements) != 1 || m.Elements[0].Kind != element.KindCircle {
		t.Fatalf("match elements = %+v, want a single Circle element", m.Elements)
	}
	if len(m.Consumed) != 15 {
		t.Fatalf("Consumed = %+v, want the full 5x3 box (15 cells)", m.Consumed)
	}
	for _, l := range []loc.Loc{loc.New(0, 1), loc.New(4, 1)} {
		if !consumed.Is(l) {
			t.Errorf("expected paren cell %+v marked consumed", l)
		}
	}
}

func TestCircleMultiRowCenteredOnBox(t *testing.T) {
	diagram := " .-. \n(   )\n `-' "
	g := grid.FromString(diagram, settings.Default())
	consumed := grid.NewConsumed()
	matches := Circle(g, consumed)
	if len(matches) != 1 {
		t.Fatalf("Circle() = %+v, want a single match", matches)
	}
	s := settings.Default()
	wantX := 2.5 * s.TextWidth
	wantY := 1.5 * s.TextHeight
	got := matches[0].Elements[0].Center
	if got.X != wantX || got.Y != wantY {
		t.Errorf("Center = %+v, want {%g %g}", got, wantX, wantY)
	}
}

func TestCircleNoMatchForUnterminatedParen(t *testing.T) {
	g := grid.FromString("(abc", settings.Default())
	consumed := grid.NewConsumed()
	if matches := Circle(g, consumed); len(matches) != 0 {
		t.Fatalf("Circle() = %+v, want no matches for an unterminated paren run", matches)
	}
}

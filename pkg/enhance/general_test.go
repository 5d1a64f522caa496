package enhance

import (
	"testing"

	"github.com/eng618/bobsvg/pkg/element"
	"github.com/eng618/bobsvg/pkg/grid"
	"github.com/eng618/bobsvg/pkg/loc"
	"github.com/eng618/bobsvg/pkg/settings"
)

func TestGeneralMatchesLeftChevron(t *testing.T) {
	g := grid.FromString("<<--", settings.Default())
	consumed := grid.NewConsumed()
	matches := General(g, consumed)
	if len(matches) != 1 {
		t.Fatalf("General() = %+v, want a single chevron match", matches)
	}
	m := matches[0]
	if len(m.Consumed) != 1 || m.Consumed[0] != loc.New(1, 0) {
		t.Fatalf("Consumed = %+v, want [{1 0}]", m.Consumed)
	}
	if len(m.Elements) != 1 || m.Elements[0].Kind != element.KindLine || m.Elements[0].EndFeature != element.Arrow {
		t.Fatalf("Elements = %+v, want a single Line with an Arrow end feature", m.Elements)
	}
}

func TestGeneralMatchesRightChevron(t *testing.T) {
	g := grid.FromString("-->>", settings.Default())
	consumed := grid.NewConsumed()
	matches := General(g, consumed)
	if len(matches) != 1 {
		t.Fatalf("General() = %+v, want a single chevron match", matches)
	}
	m := matches[0]
	if len(m.Consumed) != 1 || m.Consumed[0] != loc.New(2, 0) {
		t.Fatalf("Consumed = %+v, want [{2 0}]", m.Consumed)
	}
	if len(m.Elements) != 1 || m.Elements[0].Kind != element.KindLine || m.Elements[0].EndFeature != element.Arrow {
		t.Fatalf("Elements = %+v, want a single Line with an Arrow end feature", m.Elements)
	}
}

func TestGeneralNoMatchForIsolatedChevron(t *testing.T) {
	g := grid.FromString("<<", settings.Default())
	consumed := grid.NewConsumed()
	if matches := General(g, consumed); len(matches) != 0 {
		t.Fatalf("General() = %+v, want no matches without an adjoining line", matches)
	}
}

func TestGeneralNoMatchForSingleArrow(t *testing.T) {
	g := grid.FromString("-->", settings.Default())
	consumed := grid.NewConsumed()
	if matches := General(g, consumed); len(matches) != 0 {
		t.Fatalf("General() = %+v, want no matches for a single (undoubled) arrowhead", matches)
	}
}

func TestGeneralMatchesBendArrowFromVerticalLine(t *testing.T) {
	g := grid.FromString("|\n>", settings.Default())
	consumed := grid.NewConsumed()
	matches := General(g, consumed)
	if len(matches) != 1 {
		t.Fatalf("General() = %+v, want a single bend-arrow match", matches)
	}
	m := matches[0]
	if len(m.Consumed) != 1 || m.Consumed[0] != loc.New(0, 1) {
		t.Fatalf("Consumed = %+v, want only the arrow cell", m.Consumed)
	}
	if len(m.Elements) != 1 || m.Elements[0].Kind != element.KindLine || m.Elements[0].EndFeature != element.Arrow {
		t.Fatalf("Elements = %+v, want a single Line with an Arrow end feature", m.Elements)
	}
}

func TestGeneralNoMatchForArrowAlreadyHandledByTable(t *testing.T) {
	g := grid.FromString("-->", settings.Default())
	consumed := grid.NewConsumed()
	matches := General(g, consumed)
	for _, m := range matches {
		for _, l := range m.Consumed {
			if l == loc.New(2, 0) {
				t.Fatalf("bend-arrow pass should not touch an arrow already fed by a straight run: %+v", matches)
			}
		}
	}
}

func TestGeneralJoinsMixedDashRun(t *testing.T) {
	g := grid.FromString("a -=: b", settings.Default())
	consumed := grid.NewConsumed()
	matches := General(g, consumed)
	if len(matches) != 1 {
		t.Fatalf("General() = %+v, want a single dashed-run match", matches)
	}
	m := matches[0]
	if len(m.Consumed) != 3 {
		t.Fatalf("Consumed = %+v, want the 3-cell mixed run", m.Consumed)
	}
	if len(m.Elements) != 1 || m.Elements[0].Kind != element.KindLine || m.Elements[0].Stroke != element.Dashed {
		t.Fatalf("Elements = %+v, want a single Dashed Line", m.Elements)
	}
}

func TestGeneralIgnoresUniformDashRun(t *testing.T) {
	g := grid.FromString("a --- b", settings.Default())
	consumed := grid.NewConsumed()
	if matches := General(g, consumed); len(matches) != 0 {
		t.Fatalf("General() = %+v, want no matches for a uniform run (handled by the reducer)", matches)
	}
}

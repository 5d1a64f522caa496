package reduce

import (
	"testing"

	"github.com/eng618/bobsvg/pkg/element"
	"github.com/eng618/bobsvg/pkg/point"
)

func TestReduceMergesChain(t *testing.T) {
	in := []element.Element{
		element.NewLine(point.Point{X: 0, Y: 0}, point.Point{X: 10, Y: 0}, element.Solid, element.Nothing, element.Nothing),
		element.NewLine(point.Point{X: 20, Y: 0}, point.Point{X: 30, Y: 0}, element.Solid, element.Nothing, element.Nothing),
		element.NewLine(point.Point{X: 10, Y: 0}, point.Point{X: 20, Y: 0}, element.Solid, element.Nothing, element.Nothing),
	}
	out := Reduce(in)
	if len(out) != 1 {
		t.Fatalf("Reduce() = %+v, want a single merged line", out)
	}
	want := element.NewLine(point.Point{X: 0, Y: 0}, point.Point{X: 30, Y: 0}, element.Solid, element.Nothing, element.Nothing)
	if out[0] != want {
		t.Errorf("Reduce() = %+v, want %+v", out[0], want)
	}
}

func TestReduceLeavesUnrelatedElements(t *testing.T) {
	in := []element.Element{
		element.NewCircle(point.Point{X: 0, Y: 0}, 5),
		element.NewLine(point.Point{X: 10, Y: 10}, point.Point{X: 20, Y: 20}, element.Solid, element.Nothing, element.Nothing),
	}
	out := Reduce(in)
	if len(out) != 2 {
		t.Fatalf("Reduce() = %+v, want both elements preserved", out)
	}
}

func TestReduceDeterministicOrder(t *testing.T) {
	in := []element.Element{
		element.NewCircle(point.Point{X: 5, Y: 5}, 1),
		element.NewCircle(point.Point{X: 1, Y: 1}, 1),
	}
	out := Reduce(in)
	if len(out) != 2 || !out[0].Less(out[1]) {
		t.Fatalf("Reduce() = %+v, want sorted canonical order", out)
	}
}

package fragment

import (
	"testing"

	"github.com/eng618/bobsvg/pkg/block"
)

func TestConstructors(t *testing.T) {
	l := Line(block.K, block.O)
	if l.Kind != KindLine || l.P1 != block.K || l.P2 != block.O {
		t.Errorf("Line() = %+v, unexpected", l)
	}

	arc := Arc(block.W, block.O, 1.5)
	if arc.Kind != KindArc || arc.Radius != 1.5 {
		t.Errorf("Arc() = %+v, unexpected", arc)
	}

	oc := OpenCircle(block.M, 2.0)
	if oc.Kind != KindOpenCircle || oc.Center != block.M || oc.Radius != 2.0 {
		t.Errorf("OpenCircle() = %+v, unexpected", oc)
	}

	txt := Text("hi")
	if txt.Kind != KindText || txt.Text != "hi" {
		t.Errorf("Text() = %+v, unexpected", txt)
	}
}

func TestLessOrdering(t *testing.T) {
	a := Line(block.K, block.O)
	b := DashedLine(block.K, block.O)
	if !a.Less(b) {
		t.Error("KindLine should sort before KindDashedLine")
	}

	c := Line(block.K, block.M)
	d := Line(block.K, block.O)
	if !c.Less(d) {
		t.Error("lower P2 should sort first")
	}
}

func TestEqual(t *testing.T) {
	a := Line(block.K, block.O)
	b := Line(block.K, block.O)
	if !a.Equal(b) {
		t.Error("identical fragments should be Equal")
	}
	if a.Equal(DashedLine(block.K, block.O)) {
		t.Error("differing Kind should not be Equal")
	}
}

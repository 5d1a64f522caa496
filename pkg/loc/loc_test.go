package loc

import "testing"

func TestNeighbors(t *testing.T) {
	l := New(3, 3)
	cases := []struct {
		name string
		got  Loc
		want Loc
	}{
		{"Top", l.Top(), New(3, 2)},
		{"Bottom", l.Bottom(), New(3, 4)},
		{"Left", l.Left(), New(2, 3)},
		{"Right", l.Right(), New(4, 3)},
		{"TopLeft", l.TopLeft(), New(2, 2)},
		{"TopRight", l.TopRight(), New(4, 2)},
		{"BottomLeft", l.BottomLeft(), New(2, 4)},
		{"BottomRight", l.BottomRight(), New(4, 4)},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestInN(t *testing.T) {
	l := New(5, 5)
	if got := l.InRight(3); got != New(8, 5) {
		t.Errorf("InRight(3) = %v, want (8,5)", got)
	}
	if got := l.InLeft(2); got != New(3, 5) {
		t.Errorf("InLeft(2) = %v, want (3,5)", got)
	}
	if got := l.InTop(1); got != New(5, 4) {
		t.Errorf("InTop(1) = %v, want (5,4)", got)
	}
	if got := l.InBottom(4); got != New(5, 9) {
		t.Errorf("InBottom(4) = %v, want (5,9)", got)
	}
}

func TestFrom(t *testing.T) {
	l := New(2, 2)
	if got := l.From(Offset{DX: 1, DY: -1}); got != New(3, 1) {
		t.Errorf("From = %v, want (3,1)", got)
	}
}

func TestLess(t *testing.T) {
	if !New(0, 0).Less(New(0, 1)) {
		t.Error("(0,0) should be less than (0,1)")
	}
	if !New(1, 0).Less(New(0, 1)) {
		t.Error("(1,0) should be less than (0,1): row takes priority")
	}
	if New(0, 0).Less(New(0, 0)) {
		t.Error("a Loc should not be Less than itself")
	}
}

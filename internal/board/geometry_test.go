package board

import "testing"

func TestDirUnit(t *testing.T) {
	tests := []struct {
		d    Dir
		want Dir
	}{
		{Dir{0, 5}, Dir{0, 1}},
		{Dir{-3, 0}, Dir{-1, 0}},
		{Dir{4, 4}, Dir{1, 1}},
		{Dir{-2, 2}, Dir{-1, 1}},
		{Dir{1, 2}, Dir{}},
		{Dir{0, 0}, Dir{}},
		{Dir{3, -2}, Dir{}},
	}
	for _, tc := range tests {
		if got := tc.d.Unit(); got != tc.want {
			t.Errorf("Unit(%v) = %v, want %v", tc.d, got, tc.want)
		}
	}
}

func TestDirOnRay(t *testing.T) {
	tests := []struct {
		d, off Dir
		want   bool
	}{
		{Dir{1, 0}, Dir{3, 0}, true},
		{Dir{1, 1}, Dir{4, 4}, true},
		{Dir{1, 1}, Dir{-2, -2}, false}, // opposite way
		{Dir{0, 1}, Dir{0, 0}, false},   // zero offset
		{Dir{1, 0}, Dir{3, 1}, false},   // off the line
		{Dir{-1, 1}, Dir{-2, 2}, true},
	}
	for _, tc := range tests {
		if got := tc.d.OnRay(tc.off); got != tc.want {
			t.Errorf("OnRay(%v, %v) = %v, want %v", tc.d, tc.off, got, tc.want)
		}
	}
}

func TestDirMinorSlider(t *testing.T) {
	if got := (Dir{1, 0}).MinorSlider(); got != Rook {
		t.Errorf("axial minor slider = %v, want Rook", got)
	}
	if got := (Dir{-1, 1}).MinorSlider(); got != Bishop {
		t.Errorf("diagonal minor slider = %v, want Bishop", got)
	}
	if got := (Dir{}).MinorSlider(); got != NoPieceType {
		t.Errorf("zero dir minor slider = %v, want none", got)
	}
}

func TestDirPawnCapture(t *testing.T) {
	tests := []struct {
		d    Dir
		c    Color
		want bool
	}{
		{Dir{1, 1}, White, true},
		{Dir{1, -1}, White, true},
		{Dir{1, 0}, White, false},
		{Dir{-1, 1}, White, false},
		{Dir{-1, -1}, Black, true},
		{Dir{1, 1}, Black, false},
	}
	for _, tc := range tests {
		if got := tc.d.PawnCapture(tc.c); got != tc.want {
			t.Errorf("PawnCapture(%v, %v) = %v, want %v", tc.d, tc.c, got, tc.want)
		}
	}
}

func TestNextKnightStepCycle(t *testing.T) {
	seen := map[Dir]bool{}
	d := Dir{1, 2}
	for i := 0; i < 8; i++ {
		if seen[d] {
			t.Fatalf("knight offset %v visited twice", d)
		}
		if abs(d.Row)*abs(d.Col) != 2 {
			t.Fatalf("%v is not a knight offset", d)
		}
		seen[d] = true
		d = d.NextKnightStep()
	}
	if d != (Dir{1, 2}) {
		t.Errorf("cycle does not close: ended on %v", d)
	}
}

func TestParsePos(t *testing.T) {
	p, err := ParsePos("e4")
	if err != nil {
		t.Fatal(err)
	}
	if p != (Pos{3, 4}) {
		t.Errorf("ParsePos(e4) = %v", p)
	}
	if p.String() != "e4" {
		t.Errorf("String() = %q, want e4", p.String())
	}
	for _, bad := range []string{"", "e", "i4", "e9", "e44"} {
		if _, err := ParsePos(bad); err == nil {
			t.Errorf("ParsePos(%q) succeeded", bad)
		}
	}
}

func TestPosValid(t *testing.T) {
	if !(Pos{0, 0}).Valid() || !(Pos{7, 7}).Valid() {
		t.Error("corner squares must be valid")
	}
	for _, p := range []Pos{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, InvalidPos} {
		if p.Valid() {
			t.Errorf("%v should be invalid", p)
		}
	}
}

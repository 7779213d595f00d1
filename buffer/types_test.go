package buffer

import "testing"

func TestComparePos(t *testing.T) {
	cases := []struct {
		a, b Pos
		want int
	}{
		{a: Pos{Row: 0, GraphemeCol: 5}, b: Pos{Row: 1}, want: -1},
		{a: Pos{Row: 2}, b: Pos{Row: 1, GraphemeCol: 999}, want: 1},
		{a: Pos{Row: 1}, b: Pos{Row: 1, GraphemeCol: 1}, want: -1},
		{a: Pos{Row: 3, GraphemeCol: 4}, b: Pos{Row: 3, GraphemeCol: 4}, want: 0},
	}
	for _, tc := range cases {
		if got := ComparePos(tc.a, tc.b); got != tc.want {
			t.Fatalf("ComparePos(%v, %v)=%d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNormalizeRange(t *testing.T) {
	r := NormalizeRange(Range{Start: Pos{Row: 2, GraphemeCol: 3}, End: Pos{Row: 1, GraphemeCol: 9}})
	if r.Start != (Pos{Row: 1, GraphemeCol: 9}) || r.End != (Pos{Row: 2, GraphemeCol: 3}) {
		t.Fatalf("unexpected range: %#v", r)
	}
	if r2 := NormalizeRange(r); r2 != r {
		t.Fatalf("expected idempotent normalize: %#v != %#v", r2, r)
	}
}

func TestClampPos(t *testing.T) {
	lineLens := []int{1, 0, 3}
	ll := func(row int) int { return lineLens[row] }

	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Row: -1, GraphemeCol: -1}, want: Pos{}},
		{in: Pos{Row: 999, GraphemeCol: 999}, want: Pos{Row: 2, GraphemeCol: 3}},
		{in: Pos{Row: 1, GraphemeCol: 5}, want: Pos{Row: 1}},
		{in: Pos{Row: 0, GraphemeCol: 1}, want: Pos{Row: 0, GraphemeCol: 1}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, len(lineLens), ll); got != tc.want {
			t.Fatalf("ClampPos(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
	if got := ClampPos(Pos{Row: 4, GraphemeCol: 4}, 0, nil); got != (Pos{}) {
		t.Fatalf("ClampPos on empty doc=%v, want zero", got)
	}
}

func TestLineStart(t *testing.T) {
	if got := LineStart(7); got != (Pos{Row: 7}) {
		t.Fatalf("LineStart(7)=%v", got)
	}
}

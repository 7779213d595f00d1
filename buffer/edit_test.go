package buffer

import "testing"

func TestBuffer_InsertText_MultiLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})
	v := b.Version()

	b.InsertText("X\nY")
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
}

func TestBuffer_InsertNewline_SplitsIndentedLine(t *testing.T) {
	b := New("  div.container", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 5})

	b.InsertNewline()
	if got, want := b.Text(), "  div\n.container"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 4}})

	b.InsertText("i")
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_InsertText_Unicode(t *testing.T) {
	b := New("", Options{})
	b.InsertText("π")
	b.InsertText("テ")

	if got, want := b.Text(), "πテ"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteBackward_JoinsLinesAtSOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1})

	b.DeleteBackward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteForward_JoinsLinesAtEOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteSelection_SpanningMultipleLines(t *testing.T) {
	b := New("abc\ndef\nghi", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 2, GraphemeCol: 2}})

	b.DeleteSelection()
	if got, want := b.Text(), "ai"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_Delete_NoOpsDoNotBumpVersion(t *testing.T) {
	b := New("ab", Options{})

	b.DeleteBackward() // at BOF
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})
	v := b.Version()
	b.DeleteForward() // at EOF
	b.DeleteSelection()
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
	if b.CanUndo() {
		t.Fatalf("no-op deletes should not record history")
	}
}

func TestBuffer_DeleteBackward_RemovesWholeGraphemeCluster(t *testing.T) {
	b := New("aé", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.DeleteBackward()
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_TextInRange(t *testing.T) {
	b := New("div\n  p\n    a", Options{})

	if got, want := b.TextInRange(Range{Start: Pos{Row: 1, GraphemeCol: 2}, End: Pos{Row: 0, GraphemeCol: 1}}), "iv\n  "; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.TextInRange(Range{Start: Pos{Row: 2}, End: Pos{Row: 9, GraphemeCol: 9}}), "    a"; got != want {
		t.Fatalf("clamped text=%q, want %q", got, want)
	}
}

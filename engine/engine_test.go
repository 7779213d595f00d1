package engine

import (
	"strings"
	"testing"

	"github.com/iw2rmb/emblem/buffer"
	"github.com/iw2rmb/emblem/classify"
)

var (
	_ Buffer   = (*buffer.Buffer)(nil)
	_ Selector = (*buffer.Buffer)(nil)
)

// lines is a read-only document for the pure navigation functions.
type lines []string

func (l lines) LineCount() int { return len(l) }

func (l lines) LineText(row int) string {
	if row < 0 || row >= len(l) {
		return ""
	}
	return l[row]
}

func doc(text string) lines { return lines(strings.Split(text, "\n")) }

func pos(row, col int) buffer.Pos { return buffer.Pos{Row: row, GraphemeCol: col} }

func newBuf(text string, row, col int) *buffer.Buffer {
	b := buffer.New(text, buffer.Options{})
	b.SetCursor(pos(row, col))
	return b
}

func assertText(t *testing.T, b *buffer.Buffer, want string) {
	t.Helper()
	if got := b.Text(); got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func assertCursor(t *testing.T, b *buffer.Buffer, want buffer.Pos) {
	t.Helper()
	if got := b.Cursor(); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestNew_Defaults(t *testing.T) {
	e := New()
	if got, want := e.IndentOffset(), DefaultIndentOffset; got != want {
		t.Fatalf("offset=%d, want %d", got, want)
	}
	if !e.BackspaceBackdentsNesting() {
		t.Fatalf("expected backspace to back-dent nesting by default")
	}
	if e.Classifier() == nil {
		t.Fatalf("expected default classifier")
	}
}

func TestNew_OptionsIgnoreInvalidValues(t *testing.T) {
	e := New(WithIndentOffset(0), WithIndentOffset(-3), WithClassifier(nil))
	if got := e.IndentOffset(); got != 2 {
		t.Fatalf("offset=%d, want 2", got)
	}
	if e.Classifier() == nil {
		t.Fatalf("nil classifier must be ignored")
	}
}

func TestNew_WithIndentOffset(t *testing.T) {
	e := New(WithIndentOffset(4))
	if got := e.ComputeIndent(doc("div\np"), 1); got != 4 {
		t.Fatalf("indent=%d, want 4", got)
	}
}

func TestNew_WithClassifier(t *testing.T) {
	only := classify.New(classify.RuleFunc(func(content string) bool { return content == "x" }))
	e := New(WithClassifier(only))

	if got := e.ComputeIndent(doc("div\np"), 1); got != 0 {
		t.Fatalf("indent after div=%d, want 0", got)
	}
	if got := e.ComputeIndent(doc("  x\np"), 1); got != 4 {
		t.Fatalf("indent after x=%d, want 4", got)
	}
}

func TestRegionMark_FollowsLineInsertAndDelete(t *testing.T) {
	b := newBuf("a\nb\nc\nd", 0, 0)
	m := markRegion(b, 1, 2)

	b.Apply(buffer.TextEdit{Range: buffer.Range{Start: pos(1, 0), End: pos(1, 0)}, Text: "x\n"})
	if start, end := m.rows(b); start != 1 || end != 3 {
		t.Fatalf("after insert rows=(%d,%d), want (1,3)", start, end)
	}

	b.Apply(buffer.TextEdit{Range: buffer.Range{Start: pos(0, 0), End: pos(2, 0)}})
	if start, end := m.rows(b); start != 1 || end != 1 {
		t.Fatalf("after delete rows=(%d,%d), want (1,1)", start, end)
	}
}

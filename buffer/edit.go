package buffer

import (
	"strings"

	"github.com/iw2rmb/emblem/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.editRange(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: one grapheme cluster, or the
// preceding line break at column 0.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case row == 0 && col == 0:
		return
	case col > 0:
		b.editRange(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "")
	default:
		prev := Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
		b.editRange(Range{Start: prev, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	lastRow := len(b.lines) - 1
	switch {
	case row == lastRow && col == len(b.lines[lastRow]):
		return
	case col < len(b.lines[row]):
		b.editRange(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "")
	default:
		b.editRange(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.editRange(r, "")
}

// editRange is the single-edit transaction used by the typing operations.
func (b *Buffer) editRange(r Range, text string) {
	prev := b.snapshot()
	change := b.beginChange()

	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	change.addAppliedEdit(applied)
	b.finishEdit(prev, change, nextCursor)
}

func (b *Buffer) finishEdit(prev bufferSnapshot, change changeBuilder, nextCursor Pos) {
	b.cursor = b.clampPos(nextCursor)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	b.commitChange(change)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}

	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return b.cursor, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol
	prefix := b.lines[startRow][:startCol]
	suffix := b.lines[endRow][endCol:]

	parts := strings.Split(text, "\n")
	repl := make([][]string, len(parts))
	for i, p := range parts {
		repl[i] = grapheme.Split(p)
	}
	last := len(repl) - 1
	nextCursor = Pos{Row: startRow + last, GraphemeCol: len(repl[last])}
	if last == 0 {
		nextCursor.GraphemeCol += len(prefix)
	}

	first := make([]string, 0, len(prefix)+len(repl[0]))
	first = append(first, prefix...)
	repl[0] = append(first, repl[0]...)
	repl[last] = append(repl[last], suffix...)

	out := make([][]string, 0, len(b.lines)-(endRow-startRow)+last)
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)
	b.lines = out

	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}

// TextInRange returns the text covered by r after clamping it into the
// document.
func (b *Buffer) TextInRange(r Range) string {
	return textForLinesRange(b.lines, NormalizeRange(ClampRange(r, len(b.lines), b.lineLen)))
}

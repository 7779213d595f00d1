package buffer

import (
	"strings"

	"github.com/iw2rmb/emblem/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer holds document text, cursor, selection and undo history.
//
// Lines are stored as grapheme clusters so that every column the structural
// engine computes (indentation depth, first non-whitespace column) maps to
// one cluster.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// Version changes on every observable mutation: text, cursor or selection.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when the document text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// LineCount returns the number of logical lines. It is always at least 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// LineText returns the text of row, or "" when row is out of range.
func (b *Buffer) LineText(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the selection anchor/end without normalization, so
// callers can tell which end the cursor sits on.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	b.sel = next
	nextRange, nextOK := b.Selection()
	if prevOK == nextOK && prevRange == nextRange {
		return
	}
	b.version++
}

func (b *Buffer) ClearSelection() {
	_, ok := b.Selection()
	b.sel = selectionState{}
	if ok {
		b.version++
	}
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}

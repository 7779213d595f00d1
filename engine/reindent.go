package engine

import (
	"github.com/iw2rmb/emblem/buffer"
	"github.com/iw2rmb/emblem/classify"
)

// IndentLine indents the cursor row to ComputeIndent. Repeated at the same
// cursor, it instead steps a non-zero indentation down to the next multiple
// of the offset, and wraps from 0 back to the computed indentation.
//
// A cursor inside the leading whitespace lands on the new indentation; a
// cursor in the content keeps its place in the text.
func (e *Engine) IndentLine(buf Buffer) {
	cur := buf.Cursor()
	text := buf.LineText(cur.Row)
	old := classify.Indentation(text)

	target := e.ComputeIndent(buf, cur.Row)
	if e.repeats(opIndentLine, cur) && old != 0 {
		target = e.cycleTarget(old)
	}
	if target != old {
		buf.Apply(setIndentEdit(cur.Row, old, target))
	}

	col := target
	if cur.GraphemeCol > old {
		col = cur.GraphemeCol + target - old
	}
	buf.SetCursor(buffer.Pos{Row: cur.Row, GraphemeCol: col})
	e.remember(opIndentLine, buf.Cursor())
}

// IndentRegion reindents rows startRow..endRow (inclusive, in either order)
// as a unit. The first non-blank row gets ComputeIndent, or the cycled
// indentation when the command repeats at the same cursor; every other
// non-blank row keeps its indentation relative to that row, clamped at 0.
// Blank rows are emptied.
func (e *Engine) IndentRegion(buf Buffer, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	startRow, endRow = clampRow(buf, startRow), clampRow(buf, endRow)
	cur := buf.Cursor()

	first := -1
	for row := startRow; row <= endRow; row++ {
		if !isBlankRow(buf, row) {
			first = row
			break
		}
	}

	target, base := 0, 0
	if first >= 0 {
		base = classify.Indentation(buf.LineText(first))
		target = e.ComputeIndent(buf, first)
		if e.repeats(opIndentRegion, cur) && base != 0 {
			target = e.cycleTarget(base)
		}
	}

	var edits []buffer.TextEdit
	curCol := cur.GraphemeCol
	for row := endRow; row >= startRow; row-- {
		text := buf.LineText(row)
		old := classify.Indentation(text)
		next := 0
		if !classify.IsBlank(text) {
			next = max(0, target+old-base)
		}
		if row == cur.Row {
			curCol = trackIndentCol(cur.GraphemeCol, old, next)
		}
		if next != old {
			edits = append(edits, setIndentEdit(row, old, next))
		}
	}
	buf.Apply(edits...)

	buf.SetCursor(buffer.Pos{Row: cur.Row, GraphemeCol: curCol})
	e.remember(opIndentRegion, buf.Cursor())
}

// setIndentEdit replaces the old leading whitespace of row with n spaces.
func setIndentEdit(row, old, n int) buffer.TextEdit {
	return buffer.TextEdit{
		Range: buffer.Range{Start: buffer.LineStart(row), End: buffer.Pos{Row: row, GraphemeCol: old}},
		Text:  spaces(n),
	}
}

// trackIndentCol maps a column across an indentation change from old to
// next. Columns inside the old whitespace are clamped to the new one.
func trackIndentCol(col, old, next int) int {
	if col >= old {
		return col + next - old
	}
	return min(col, next)
}

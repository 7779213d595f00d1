package engine

import "github.com/iw2rmb/emblem/buffer"

// ShiftRegion rewrites the indentation prefix of rows startRow..endRow
// (inclusive, in either order): every non-empty row that starts with at least
// ref spaces has those ref spaces replaced by max(0, ref+delta) spaces. Rows
// with a shorter prefix and empty rows are left alone. The edit is one undo
// step and the cursor stays on its text.
func ShiftRegion(buf Buffer, startRow, endRow, ref, delta int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	startRow, endRow = clampRow(buf, startRow), clampRow(buf, endRow)
	cur := buf.Cursor()
	moves := cur.Row >= startRow && cur.Row <= endRow && shifts(buf.LineText(cur.Row), ref)

	edits := shiftEdits(buf, startRow, endRow, ref, delta)
	if len(edits) == 0 {
		return
	}
	buf.Apply(edits...)
	if moves {
		cur.GraphemeCol = shiftedCol(cur.GraphemeCol, ref, delta)
	}
	buf.SetCursor(cur)
}

// ShiftBlock moves the block under the cursor count offsets to the right, or
// to the left for a negative count.
func (e *Engine) ShiftBlock(buf Buffer, count int) {
	row := buf.Cursor().Row
	if isBlankRow(buf, row) {
		return
	}
	start, end := BlockExtent(buf, row)
	ShiftRegion(buf, start, end, leadingSpaces(buf.LineText(start)), count*e.offset)
}

// shiftEdits builds the bottom-up edits of a ShiftRegion call against the
// current buffer state. Callers may append edits for rows above startRow.
func shiftEdits(lines Lines, startRow, endRow, ref, delta int) []buffer.TextEdit {
	if ref < 0 || delta == 0 {
		return nil
	}
	repl := spaces(ref + delta)
	var edits []buffer.TextEdit
	for row := endRow; row >= startRow; row-- {
		if !shifts(lines.LineText(row), ref) {
			continue
		}
		edits = append(edits, buffer.TextEdit{
			Range: buffer.Range{Start: buffer.LineStart(row), End: buffer.Pos{Row: row, GraphemeCol: ref}},
			Text:  repl,
		})
	}
	return edits
}

func shifts(text string, ref int) bool {
	return text != "" && leadingSpaces(text) >= ref
}

// shiftedCol maps a column of a row that shiftEdits rewrote.
func shiftedCol(col, ref, delta int) int {
	next := max(0, ref+delta)
	if col < ref {
		return min(col, next)
	}
	return col + next - ref
}

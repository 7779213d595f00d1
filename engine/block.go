package engine

import (
	"github.com/iw2rmb/emblem/buffer"
	"github.com/iw2rmb/emblem/classify"
	"github.com/iw2rmb/emblem/internal/grapheme"
)

// CommentBlock puts the block under the cursor inside a comment: a "/" line
// is inserted at the head's indentation and the block moves one offset to the
// right. The cursor stays on its text.
func (e *Engine) CommentBlock(buf Buffer) {
	cur := buf.Cursor()
	head, last := BlockExtent(buf, cur.Row)
	text := buf.LineText(head)
	ref := leadingSpaces(text)
	moves := shifts(buf.LineText(cur.Row), ref)

	cursorMark := markRow(buf, cur.Row)
	edits := shiftEdits(buf, head, last, ref, e.offset)
	edits = append(edits, buffer.TextEdit{
		Range: buffer.Range{Start: buffer.LineStart(head), End: buffer.LineStart(head)},
		Text:  text[:classify.Indentation(text)] + "/\n",
	})
	buf.Apply(edits...)

	if moves {
		cur.GraphemeCol = shiftedCol(cur.GraphemeCol, ref, e.offset)
	}
	cur.Row = cursorMark.row(buf)
	buf.SetCursor(cur)
}

// UncommentBlock removes the nearest enclosing comment: starting at the
// cursor row it goes up one level at a time until it reaches a "/" line,
// deletes that line and moves the exposed block one offset to the left. It
// returns ErrNoCommentBlock, without editing, when the first row is reached
// without finding a comment that contains the cursor.
func (e *Engine) UncommentBlock(buf Buffer) error {
	cur := buf.Cursor()
	head := clampRow(buf, cur.Row)
	for !classify.IsComment(buf.LineText(head)) {
		up := UpList(buf, buffer.Pos{Row: head}, 1).Row
		if up == head {
			return ErrNoCommentBlock
		}
		head = up
	}
	_, last := BlockExtent(buf, head)
	if cur.Row > last {
		return ErrNoCommentBlock
	}

	e.dropHead(buf, cur, head, last)
	return nil
}

// KillLineAndIndent deletes the cursor row and moves its descendants one
// offset to the left, so they take the deleted line's place. The cursor lands
// on the indentation of the row that follows.
func (e *Engine) KillLineAndIndent(buf Buffer) {
	cur := buf.Cursor()
	head, last := BlockExtent(buf, cur.Row)
	e.dropHead(buf, buffer.Pos{Row: head}, head, last)
}

// dropHead deletes row head and shifts rows head+1..last left by one offset,
// using the first descendant's indentation as the reference column.
func (e *Engine) dropHead(buf Buffer, cur buffer.Pos, head, last int) {
	var edits []buffer.TextEdit
	ref := 0
	moves := false
	if last > head {
		first, _ := AdvanceSkippingBlank(buf, head, Forward)
		ref = leadingSpaces(buf.LineText(first))
		moves = cur.Row > head && cur.Row <= last && shifts(buf.LineText(cur.Row), ref)
		edits = shiftEdits(buf, head+1, last, ref, -e.offset)
	}
	edits = append(edits, deleteLineEdit(buf, head))

	region := markRegion(buf, head, last)
	cursorMark := markRow(buf, cur.Row)
	buf.Apply(edits...)

	start, end := region.rows(buf)
	if cur.Row == head {
		buf.SetCursor(atIndentation(buf, start))
		return
	}
	if moves {
		cur.GraphemeCol = shiftedCol(cur.GraphemeCol, ref, -e.offset)
	}
	cur.Row = min(max(cursorMark.row(buf), start), end)
	buf.SetCursor(cur)
}

// deleteLineEdit removes row and one adjacent line break. The only line of a
// document is emptied instead.
func deleteLineEdit(lines Lines, row int) buffer.TextEdit {
	last := lines.LineCount() - 1
	switch {
	case row < last:
		return buffer.TextEdit{Range: buffer.Range{Start: buffer.LineStart(row), End: buffer.LineStart(row + 1)}}
	case row > 0:
		return buffer.TextEdit{Range: buffer.Range{
			Start: buffer.Pos{Row: row - 1, GraphemeCol: lineLen(lines, row-1)},
			End:   buffer.Pos{Row: row, GraphemeCol: lineLen(lines, row)},
		}}
	default:
		return buffer.TextEdit{Range: buffer.Range{End: buffer.Pos{GraphemeCol: lineLen(lines, row)}}}
	}
}

// ElectricBackspace deletes count graphemes backward, except when the cursor
// sits exactly on the non-zero indentation of a non-blank line. Then it
// back-dents the line to the previous multiple of the offset, count times,
// together with its whole block when the engine is configured to move
// nesting.
func (e *Engine) ElectricBackspace(buf Buffer, count int) {
	count = max(count, 1)
	cur := buf.Cursor()
	text := buf.LineText(cur.Row)
	ref := leadingSpaces(text)
	if cur.GraphemeCol != classify.Indentation(text) || cur.GraphemeCol == 0 || ref == 0 || classify.IsBlank(text) {
		deleteBackward(buf, cur, count)
		return
	}

	end := cur.Row
	if e.backdentNesting {
		_, end = BlockExtent(buf, cur.Row)
	}
	target := ref
	for range count {
		if target == 0 {
			break
		}
		target = e.cycleTarget(target)
	}
	delta := target - ref
	buf.Apply(shiftEdits(buf, cur.Row, end, ref, delta)...)
	buf.SetCursor(buffer.Pos{Row: cur.Row, GraphemeCol: shiftedCol(cur.GraphemeCol, ref, delta)})
}

func deleteBackward(buf Buffer, cur buffer.Pos, count int) {
	cur.GraphemeCol = min(cur.GraphemeCol, lineLen(buf, cur.Row))
	start := cur
	for range count {
		switch {
		case start.GraphemeCol > 0:
			start.GraphemeCol--
		case start.Row > 0:
			start.Row--
			start.GraphemeCol = lineLen(buf, start.Row)
		}
	}
	if start == cur {
		return
	}
	buf.Apply(buffer.TextEdit{Range: buffer.Range{Start: start, End: cur}})
	buf.SetCursor(start)
}

// MarkBlock selects the block under the cursor, from the start of its head
// to the end of its last descendant, and leaves the cursor at the end. The
// selection is only set when buf implements Selector.
func (e *Engine) MarkBlock(buf Buffer) buffer.Range {
	start, end := BlockExtent(buf, buf.Cursor().Row)
	r := buffer.Range{
		Start: buffer.LineStart(start),
		End:   buffer.Pos{Row: end, GraphemeCol: lineLen(buf, end)},
	}
	buf.SetCursor(r.End)
	if s, ok := buf.(Selector); ok {
		s.SetSelection(r)
	}
	return r
}

// NewlineAndIndent breaks the line at the cursor, dropping the whitespace
// around the break, and indents the new line as ComputeIndent would.
func (e *Engine) NewlineAndIndent(buf Buffer) {
	cur := buf.Cursor()
	clusters := grapheme.Split(buf.LineText(cur.Row))
	col := min(cur.GraphemeCol, len(clusters))

	cut := col
	for cut > 0 && isIndentCluster(clusters[cut-1]) {
		cut--
	}
	resume := col
	for resume < len(clusters) && isIndentCluster(clusters[resume]) {
		resume++
	}

	target := e.ComputeIndent(buf, cur.Row)
	if prefix := grapheme.Join(clusters[:cut]); !classify.IsBlank(prefix) {
		target = e.indentAfter(prefix)
	}
	buf.Apply(buffer.TextEdit{
		Range: buffer.Range{
			Start: buffer.Pos{Row: cur.Row, GraphemeCol: cut},
			End:   buffer.Pos{Row: cur.Row, GraphemeCol: resume},
		},
		Text: "\n" + spaces(target),
	})
	buf.SetCursor(buffer.Pos{Row: cur.Row + 1, GraphemeCol: target})
}

func isIndentCluster(c string) bool {
	return c == " " || c == "\t"
}

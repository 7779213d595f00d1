package engine

import "github.com/iw2rmb/emblem/buffer"

// ForwardBlock returns the position count blocks after pos. Each step leaves
// the current line and skips every following line indented deeper than it,
// stopping on the next line at the same or a shallower depth, or on the last
// row. A negative count moves backward; in that case a cursor that is not at
// its line's indentation only moves to the indentation. The result is always
// at the first non-whitespace column.
func ForwardBlock(lines Lines, pos buffer.Pos, count int) buffer.Pos {
	row := clampRow(lines, pos.Row)
	dir := Forward
	if count < 0 {
		dir = Backward
		count = -count
		if at := atIndentation(lines, row); pos.GraphemeCol != at.GraphemeCol {
			return at
		}
	}
	for range count {
		indent := depth(lines, row)
		for {
			next, edge := AdvanceSkippingBlank(lines, row, dir)
			row = next
			if edge || depth(lines, row) <= indent {
				break
			}
		}
	}
	return atIndentation(lines, row)
}

// BackwardBlock is ForwardBlock with count negated.
func BackwardBlock(lines Lines, pos buffer.Pos, count int) buffer.Pos {
	return ForwardBlock(lines, pos, -count)
}

// UpList returns the position of the count-th enclosing line: each step
// scans backward to the nearest line indented less than the current one. The
// first row stops the scan. A negative count goes down instead and ignores
// the error DownList would report.
func UpList(lines Lines, pos buffer.Pos, count int) buffer.Pos {
	if count < 0 {
		p, _ := DownList(lines, pos, -count)
		return p
	}
	row := clampRow(lines, pos.Row)
	for range count {
		indent := depth(lines, row)
		for {
			next, edge := AdvanceSkippingBlank(lines, row, Backward)
			row = next
			if edge || depth(lines, row) < indent {
				break
			}
		}
	}
	return atIndentation(lines, row)
}

// DownList returns the position of the first line nested under pos, count
// levels deep. Each level looks at exactly one line: the next non-blank line.
// If it is not indented deeper, DownList returns pos unchanged and
// ErrNoNestedBlock.
func DownList(lines Lines, pos buffer.Pos, count int) (buffer.Pos, error) {
	if count < 0 {
		return UpList(lines, pos, -count), nil
	}
	row := clampRow(lines, pos.Row)
	for range count {
		indent := depth(lines, row)
		next, _ := AdvanceSkippingBlank(lines, row, Forward)
		if next == row || depth(lines, next) <= indent {
			return pos, ErrNoNestedBlock
		}
		row = next
	}
	return atIndentation(lines, row), nil
}

// BlockExtent returns the rows of the block headed at row: the head through
// its last non-blank descendant. Trailing blank lines are not part of the
// block. A blank row is a block of its own.
func BlockExtent(lines Lines, row int) (start, end int) {
	row = clampRow(lines, row)
	if isBlankRow(lines, row) {
		return row, row
	}
	indent := depth(lines, row)
	end = row
	for cur := row; ; {
		next, edge := AdvanceSkippingBlank(lines, cur, Forward)
		if next == cur || isBlankRow(lines, next) || depth(lines, next) <= indent {
			break
		}
		end = next
		if edge {
			break
		}
		cur = next
	}
	return row, end
}

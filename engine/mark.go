package engine

// rowMark pins a row by its distance from the last row, so it follows lines
// inserted or deleted above it.
type rowMark int

func markRow(lines Lines, row int) rowMark {
	return rowMark(lines.LineCount() - 1 - row)
}

func (m rowMark) row(lines Lines) int {
	return clampRow(lines, lines.LineCount()-1-int(m))
}

// regionMark captures a row range before an edit that inserts or deletes
// whole lines at or above its start. The start stays absolute and the end
// follows the edit.
type regionMark struct {
	startRow int
	end      rowMark
}

func markRegion(lines Lines, startRow, endRow int) regionMark {
	return regionMark{startRow: startRow, end: markRow(lines, endRow)}
}

// rows resolves the region against the edited document.
func (m regionMark) rows(lines Lines) (start, end int) {
	start = clampRow(lines, m.startRow)
	return start, max(start, m.end.row(lines))
}

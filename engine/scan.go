package engine

import (
	"strings"

	"github.com/iw2rmb/emblem/buffer"
	"github.com/iw2rmb/emblem/classify"
	"github.com/iw2rmb/emblem/internal/grapheme"
)

// Direction is the scanning direction of AdvanceSkippingBlank.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// AdvanceSkippingBlank moves one line from row in dir and keeps going while
// the reached line is blank. It stops on the first non-blank line or on the
// first/last row. edge reports that the returned row is that boundary row
// (the first row when scanning backward, the last row when scanning forward);
// callers use it to end their loops. Starting on the boundary returns it
// unchanged.
func AdvanceSkippingBlank(lines Lines, row int, dir Direction) (int, bool) {
	last := lines.LineCount() - 1
	row = min(max(row, 0), last)
	boundary := last
	if dir < 0 {
		boundary = 0
	}
	for {
		if row == boundary {
			return row, true
		}
		row += int(dir)
		if row == boundary {
			return row, true
		}
		if !classify.IsBlank(lines.LineText(row)) {
			return row, false
		}
	}
}

// depth is the structural indentation of row. Blank lines count as 0 so a
// whitespace-only line never looks nested.
func depth(lines Lines, row int) int {
	text := lines.LineText(row)
	if classify.IsBlank(text) {
		return 0
	}
	return classify.Indentation(text)
}

func isBlankRow(lines Lines, row int) bool {
	return classify.IsBlank(lines.LineText(row))
}

// atIndentation is the position of the first non-whitespace column of row.
func atIndentation(lines Lines, row int) buffer.Pos {
	return buffer.Pos{Row: row, GraphemeCol: classify.Indentation(lines.LineText(row))}
}

func lineLen(lines Lines, row int) int {
	return grapheme.Count(lines.LineText(row))
}

func clampRow(lines Lines, row int) int {
	return min(max(row, 0), lines.LineCount()-1)
}

func spaces(n int) string {
	return strings.Repeat(" ", max(n, 0))
}

// leadingSpaces counts leading ' ' characters only; tabs stop the count.
func leadingSpaces(text string) int {
	return len(text) - len(strings.TrimLeft(text, " "))
}

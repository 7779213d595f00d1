package engine

import "github.com/iw2rmb/emblem/classify"

// ComputeIndent returns the indentation row should have: the indentation of
// the previous non-blank line, plus one offset when that line is a block
// opener. The first row, and any row with only blank lines above it, gets 0.
func (e *Engine) ComputeIndent(lines Lines, row int) int {
	row = clampRow(lines, row)
	if row == 0 {
		return 0
	}
	prev, _ := AdvanceSkippingBlank(lines, row, Backward)
	return e.indentAfter(lines.LineText(prev))
}

// indentAfter is the indentation of a line that directly follows text.
func (e *Engine) indentAfter(text string) int {
	if classify.IsBlank(text) {
		return 0
	}
	indent := classify.Indentation(text)
	if e.isOpener(text) {
		indent += e.offset
	}
	return indent
}

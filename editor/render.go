package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/emblem/buffer"
	"github.com/iw2rmb/emblem/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	lineCount := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(lineCount)
	}

	first, last := m.visibleRows(lineCount)

	out := make([]string, 0, lineCount)
	for row := range lineCount {
		text := m.buf.LineText(row)
		clusters := grapheme.Split(text)

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		var spans []HighlightSpan
		if row >= first && row < last {
			spans = m.highlightForLine(row, text, len(clusters), cursor)
		}
		sb.WriteString(renderLine(m.cfg.Style, clusters, row, cursor, m.focused, sel, selOK, spans))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// visibleRows is the half-open row range the highlighter runs on. Before the
// first SetSize every row counts as visible.
func (m *Model) visibleRows(lineCount int) (int, int) {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if m.viewport.Height <= 0 {
		return 0, lineCount
	}
	if h <= 0 {
		return 0, 0
	}
	first := clampInt(m.viewport.YOffset, 0, lineCount)
	return first, min(first+h, lineCount)
}

func (m *Model) highlightForLine(row int, text string, lineLen int, cursor buffer.Pos) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}
	ctx := LineContext{
		Row:               row,
		Text:              text,
		CursorGraphemeCol: -1,
		Doc:               m.buf,
		TextVersion:       m.buf.TextVersion(),
	}
	if cursor.Row == row {
		ctx.HasCursor = true
		ctx.CursorGraphemeCol = clampInt(cursor.GraphemeCol, 0, lineLen)
	}
	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, lineLen)
}

func renderLine(
	st Style,
	clusters []string,
	row int,
	cursor buffer.Pos,
	focused bool,
	sel buffer.Range,
	selOK bool,
	highlights []HighlightSpan,
) string {
	hasCursor := focused && row == cursor.Row
	cursorCol := -1
	if hasCursor {
		cursorCol = clampInt(cursor.GraphemeCol, 0, len(clusters))
	}
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len(clusters))

	var sb strings.Builder
	for col, g := range clusters {
		if g == "\t" {
			g = " "
		}
		switch {
		case col == cursorCol:
			sb.WriteString(st.Cursor.Render(g))
		case hasSel && col >= selStart && col < selEnd:
			sb.WriteString(st.Selection.Render(g))
		default:
			style := st.Text
			for _, sp := range highlights {
				if col >= sp.StartGraphemeCol && col < sp.EndGraphemeCol {
					style = sp.Style.Inherit(st.Text)
					break
				}
			}
			sb.WriteString(style.Render(g))
		}
	}
	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if cursorCol == len(clusters) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// selectionColsForRow returns the selected column span of row.
func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.GraphemeCol
	}
	if row == sel.End.Row {
		end = sel.End.GraphemeCol
	}
	return start, end, start < end
}

func (m Model) renderStatus() string {
	cur := m.buf.Cursor()
	off, _ := m.buf.RuneOffsetFromPos(cur, buffer.OffsetClamp)
	line := fmt.Sprintf("Ln %d, Col %d  Off %d", cur.Row+1, cur.GraphemeCol+1, off)
	if m.count > 0 {
		line += fmt.Sprintf("  [%d]", m.count)
	}
	if m.status == "" {
		return m.cfg.Style.Status.Render(line)
	}
	return m.cfg.Style.Status.Render(line+"  ") + m.cfg.Style.StatusError.Render(m.status)
}

func gutterDigits(lineCount int) int {
	return len(fmt.Sprintf("%d", max(lineCount, 1)))
}

package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type HighlightSpan struct {
	// StartGraphemeCol and EndGraphemeCol index grapheme clusters in the
	// line text, half-open [Start, End).
	StartGraphemeCol int
	EndGraphemeCol   int
	Style            lipgloss.Style
}

// Document is read access to the whole buffer, for highlighters whose
// spans depend on surrounding lines.
type Document interface {
	LineCount() int
	LineText(row int) string
}

type LineContext struct {
	Row  int
	Text string

	// CursorGraphemeCol is the cursor column if the cursor is on this row;
	// otherwise -1.
	CursorGraphemeCol int
	HasCursor         bool

	Doc Document
	// TextVersion changes whenever Doc's text changes, so highlighters can
	// cache per-document work.
	TextVersion uint64
}

type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// normalizeHighlightSpans clamps spans to the line, drops empty ones and
// resolves overlaps by keeping the earlier span.
func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartGraphemeCol, 0, lineLen)
		end := clampInt(sp.EndGraphemeCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: end, Style: sp.Style})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartGraphemeCol != out[j].StartGraphemeCol {
			return out[i].StartGraphemeCol < out[j].StartGraphemeCol
		}
		return out[i].EndGraphemeCol < out[j].EndGraphemeCol
	})

	merged := out[:0]
	for _, sp := range out {
		if n := len(merged); n > 0 && sp.StartGraphemeCol < merged[n-1].EndGraphemeCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

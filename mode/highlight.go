package mode

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/emblem/classify"
	"github.com/iw2rmb/emblem/editor"
	"github.com/iw2rmb/emblem/engine"
	"github.com/iw2rmb/emblem/internal/grapheme"
)

type regionKind uint8

const (
	regionNone regionKind = iota
	regionComment
	regionText
	regionEmbed
)

// Highlighter styles comment, text and embedded-content blocks: the marker
// line and everything nested beneath it. Region rows are computed once per
// text version.
type Highlighter struct {
	styles [4]lipgloss.Style

	version   uint64
	lineCount int
	valid     bool
	rows      []regionKind
}

// NewHighlighter builds a Highlighter with colors from theme. Empty colors
// fall back to DefaultTheme.
func NewHighlighter(theme Theme) *Highlighter {
	def := DefaultTheme()
	color := func(c, fallback string) lipgloss.Color {
		if c == "" {
			c = fallback
		}
		return lipgloss.Color(c)
	}

	h := &Highlighter{}
	h.styles[regionComment] = lipgloss.NewStyle().Foreground(color(theme.Comment, def.Comment)).Italic(true)
	h.styles[regionText] = lipgloss.NewStyle().Foreground(color(theme.Text, def.Text))
	h.styles[regionEmbed] = lipgloss.NewStyle().Foreground(color(theme.Embed, def.Embed))
	return h
}

// Highlighter returns a Highlighter using the mode's theme.
func (m *Mode) Highlighter() *Highlighter {
	return NewHighlighter(m.cfg.Theme)
}

func (h *Highlighter) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	if ctx.Doc == nil {
		return nil, nil
	}
	h.update(ctx.Doc, ctx.TextVersion)
	if ctx.Row < 0 || ctx.Row >= len(h.rows) {
		return nil, nil
	}
	kind := h.rows[ctx.Row]
	if kind == regionNone || classify.IsBlank(ctx.Text) {
		return nil, nil
	}
	return []editor.HighlightSpan{{
		StartGraphemeCol: classify.Indentation(ctx.Text),
		EndGraphemeCol:   grapheme.Count(ctx.Text),
		Style:            h.styles[kind],
	}}, nil
}

func (h *Highlighter) update(doc engine.Lines, version uint64) {
	n := doc.LineCount()
	if h.valid && h.version == version && h.lineCount == n {
		return
	}
	h.version, h.lineCount, h.valid = version, n, true
	h.rows = classifyRows(doc, h.rows[:0])
}

// classifyRows classifies every row of doc. The outermost marker wins.
func classifyRows(doc engine.Lines, rows []regionKind) []regionKind {
	n := doc.LineCount()
	rows = append(rows, make([]regionKind, n)...)
	for row := 0; row < n; {
		kind := markerKind(doc.LineText(row))
		if kind == regionNone {
			row++
			continue
		}
		_, end := engine.BlockExtent(doc, row)
		for r := row; r <= end; r++ {
			rows[r] = kind
		}
		row = end + 1
	}
	return rows
}

func markerKind(line string) regionKind {
	content := classify.Content(line)
	switch {
	case content == "":
		return regionNone
	case classify.CommentRule.Matches(content):
		return regionComment
	case classify.TextRule.Matches(content):
		return regionText
	case classify.EmbedRule.Matches(content):
		return regionEmbed
	default:
		return regionNone
	}
}

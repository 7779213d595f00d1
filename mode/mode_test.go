package mode

import (
	"errors"
	"testing"

	"github.com/iw2rmb/emblem/buffer"
	"github.com/iw2rmb/emblem/classify"
	"github.com/iw2rmb/emblem/editor"
	"github.com/iw2rmb/emblem/engine"
)

var _ editor.CommandRunner = (*Mode)(nil)

const luaTilde = `function is_block_opener(line) return line:sub(1, 1) == "~" end`

func newMode(t *testing.T, cfg Config) *Mode {
	t.Helper()
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func newBuf(text string, row, col int) *buffer.Buffer {
	b := buffer.New(text, buffer.Options{})
	b.SetCursor(buffer.Pos{Row: row, GraphemeCol: col})
	return b
}

func TestNew_ZeroConfigFillsOffsetAndExtensions(t *testing.T) {
	m := newMode(t, Config{})
	if got := m.Engine().IndentOffset(); got != 2 {
		t.Fatalf("indent offset=%d, want 2", got)
	}
	if !m.MatchesFile("page.em") {
		t.Fatalf("default extensions not applied")
	}
	if m.Engine().BackspaceBackdentsNesting() {
		t.Fatalf("backspace back-dents nesting=true, want the given false")
	}
	if !newMode(t, DefaultConfig()).Engine().BackspaceBackdentsNesting() {
		t.Fatalf("DefaultConfig must back-dent nesting")
	}
}

func TestNew_AppliesEngineOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IndentOffset = 4
	cfg.BackspaceBackdentsNesting = false
	m := newMode(t, cfg)

	if got := m.Engine().IndentOffset(); got != 4 {
		t.Fatalf("indent offset=%d, want 4", got)
	}
	if m.Engine().BackspaceBackdentsNesting() {
		t.Fatalf("backspace back-dents nesting, want off")
	}
	if m.Config().IndentOffset != 4 {
		t.Fatalf("config not kept")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IndentOffset = -1
	if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err=%v, want ErrInvalidConfig", err)
	}

	cfg = DefaultConfig()
	cfg.Openers = []string{"("}
	if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err=%v, want ErrInvalidConfig", err)
	}
}

func TestNew_ExtraOpeners(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Openers = []string{`^\+`}
	cfg.LuaOpener = luaTilde
	m := newMode(t, cfg)
	c := m.Engine().Classifier()

	for _, line := range []string{"+widget", "  ~ block", "div.container"} {
		if !c.IsBlockOpener(line) {
			t.Fatalf("IsBlockOpener(%q)=false, want true", line)
		}
	}
	if c.IsBlockOpener("  = value") {
		t.Fatalf("IsBlockOpener(%q)=true, want false", "  = value")
	}
	if classify.Default().IsBlockOpener("+widget") {
		t.Fatalf("default classifier changed")
	}
}

func TestNew_LuaOpenerWithoutFunction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LuaOpener = "x = 1"
	if _, err := New(cfg); !errors.Is(err, classify.ErrLuaRuleMissing) {
		t.Fatalf("err=%v, want ErrLuaRuleMissing", err)
	}
}

func TestMode_CloseIsIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LuaOpener = luaTilde
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Close()
	m.Close()
	if m.Engine().Classifier().IsBlockOpener("~x") {
		t.Fatalf("closed lua rule still matches")
	}
}

func TestMatchesFile(t *testing.T) {
	m := newMode(t, DefaultConfig())
	cases := map[string]bool{
		"views/index.em":   true,
		"layout.emblem":    true,
		"PARTIAL.EMBL":     true,
		"index.slim":       false,
		"em":               false,
		"archive.em.gz":    false,
		"dir.em/file.html": false,
	}
	for path, want := range cases {
		if got := m.MatchesFile(path); got != want {
			t.Fatalf("MatchesFile(%q)=%v, want %v", path, got, want)
		}
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	m := newMode(t, DefaultConfig())
	err := m.Run("emblem.nope", newBuf("div", 0, 0), 1)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("err=%v, want ErrUnknownCommand", err)
	}
}

func TestRun_Navigation(t *testing.T) {
	m := newMode(t, DefaultConfig())
	b := newBuf("div\n  p\n    | hello\n\n  span\nfooter\n  a", 0, 0)

	if err := m.Run(CmdForwardBlock, b, 1); err != nil {
		t.Fatalf("forward: %v", err)
	}
	if got, want := b.Cursor(), (buffer.Pos{Row: 5}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	if err := m.Run(CmdDownList, b, 1); err != nil {
		t.Fatalf("down: %v", err)
	}
	if got, want := b.Cursor(), (buffer.Pos{Row: 6, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	if err := m.Run(CmdDownList, b, 1); !errors.Is(err, engine.ErrNoNestedBlock) {
		t.Fatalf("err=%v, want ErrNoNestedBlock", err)
	}
	if got, want := b.Cursor(), (buffer.Pos{Row: 6, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor after failed down=%v, want %v", got, want)
	}
}

func TestRun_IndentLineCyclesAcrossRuns(t *testing.T) {
	m := newMode(t, DefaultConfig())
	b := newBuf("div\n  ul\n    li", 2, 4)

	for i, want := range []string{"    li", "  li", "li"} {
		if err := m.Run(CmdIndentLine, b, 1); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got := b.LineText(2); got != want {
			t.Fatalf("step %d: line=%q, want %q", i, got, want)
		}
	}
}

func TestRun_OtherCommandsStopCycling(t *testing.T) {
	m := newMode(t, DefaultConfig())
	b := newBuf("div\n  ul\n    li", 2, 4)

	_ = m.Run(CmdIndentLine, b, 1)
	if err := m.Run(CmdDownList, b, 1); !errors.Is(err, engine.ErrNoNestedBlock) {
		t.Fatalf("err=%v, want ErrNoNestedBlock", err)
	}
	_ = m.Run(CmdIndentLine, b, 1)

	if got := b.LineText(2); got != "    li" {
		t.Fatalf("line=%q, want %q", got, "    li")
	}
}

func TestMode_InvalidateStopsCycling(t *testing.T) {
	m := newMode(t, DefaultConfig())
	b := newBuf("div\n  ul\n    li", 2, 4)

	_ = m.Run(CmdIndentLine, b, 1)
	m.Invalidate()
	_ = m.Run(CmdIndentLine, b, 1)

	if got := b.LineText(2); got != "    li" {
		t.Fatalf("line=%q, want %q", got, "    li")
	}
}

func TestRun_IndentRegion(t *testing.T) {
	cases := []struct {
		name string
		sel  *buffer.Range
		want string
	}{
		{
			name: "selection",
			sel:  &buffer.Range{Start: buffer.Pos{Row: 1}, End: buffer.Pos{Row: 2, GraphemeCol: 3}},
			want: "div\n  p\n    q",
		},
		{
			name: "selection ending at column 0 skips its last row",
			sel:  &buffer.Range{Start: buffer.Pos{Row: 1}, End: buffer.Pos{Row: 2}},
			want: "div\n  p\n  q",
		},
		{
			name: "block under cursor",
			want: "div\n  p\n    q",
		},
	}
	for _, tc := range cases {
		m := newMode(t, DefaultConfig())
		b := newBuf("div\np\n  q", 1, 0)
		if tc.sel != nil {
			b.SetSelection(*tc.sel)
		}
		if err := m.Run(CmdIndentRegion, b, 1); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got := b.Text(); got != tc.want {
			t.Fatalf("%s: text=%q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRun_ShiftBlock(t *testing.T) {
	m := newMode(t, DefaultConfig())
	b := newBuf("div\n  p\n    span\nq", 1, 2)

	_ = m.Run(CmdShiftBlockRight, b, 1)
	if got, want := b.Text(), "div\n    p\n      span\nq"; got != want {
		t.Fatalf("after right: text=%q, want %q", got, want)
	}
	_ = m.Run(CmdShiftBlockLeft, b, 1)
	if got, want := b.Text(), "div\n  p\n    span\nq"; got != want {
		t.Fatalf("after left: text=%q, want %q", got, want)
	}
}

func TestRun_CommentRoundTrip(t *testing.T) {
	m := newMode(t, DefaultConfig())
	const text = "div\n  p\n    span\n  q"
	b := newBuf(text, 1, 2)

	if err := m.Run(CmdCommentBlock, b, 1); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if got, want := b.Text(), "div\n  /\n    p\n      span\n  q"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if err := m.Run(CmdUncommentBlock, b, 1); err != nil {
		t.Fatalf("uncomment: %v", err)
	}
	if got := b.Text(); got != text {
		t.Fatalf("text=%q, want %q", got, text)
	}
	if err := m.Run(CmdUncommentBlock, newBuf("div\n  p", 1, 2), 1); !errors.Is(err, engine.ErrNoCommentBlock) {
		t.Fatalf("err=%v, want ErrNoCommentBlock", err)
	}
}

func TestCommands_TableIsComplete(t *testing.T) {
	names := []string{
		CmdForwardBlock, CmdBackwardBlock, CmdUpList, CmdDownList,
		CmdIndentLine, CmdIndentRegion, CmdShiftBlockRight, CmdShiftBlockLeft,
		CmdCommentBlock, CmdUncommentBlock, CmdKillLineAndIndent,
		CmdElectricBackspace, CmdMarkBlock, CmdNewlineAndIndent,
	}
	if len(Commands) != len(names) {
		t.Fatalf("commands=%d, want %d", len(Commands), len(names))
	}
	for _, name := range names {
		cmd, ok := Commands[name]
		if !ok || cmd.Run == nil {
			t.Fatalf("command %s missing", name)
		}
		if cmd.Cycles && cmd.Motion {
			t.Fatalf("command %s both cycles and moves", name)
		}
	}
}

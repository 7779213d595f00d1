package mode

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/iw2rmb/emblem/classify"
	"github.com/iw2rmb/emblem/engine"
)

// Mode is a configured engine plus the command table that drives it. A Mode
// is not safe for concurrent use.
type Mode struct {
	cfg    Config
	engine *engine.Engine
	lua    *classify.LuaRule
}

// New builds the classifier and engine described by cfg. Only a zero
// IndentOffset and empty Extensions take their defaults; every other field,
// BackspaceBackdentsNesting included, is used as given. Start from
// DefaultConfig to get all defaults.
func New(cfg Config) (*Mode, error) {
	def := DefaultConfig()
	if cfg.IndentOffset == 0 {
		cfg.IndentOffset = def.IndentOffset
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = def.Extensions
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rules := make([]classify.Rule, 0, len(cfg.Openers)+1)
	for i, expr := range cfg.Openers {
		p, err := classify.NewPattern(fmt.Sprintf("opener[%d]", i), expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		rules = append(rules, p)
	}

	m := &Mode{cfg: cfg}
	if strings.TrimSpace(cfg.LuaOpener) != "" {
		lr, err := classify.NewLuaRule("lua_opener", cfg.LuaOpener)
		if err != nil {
			return nil, err
		}
		m.lua = lr
		rules = append(rules, lr)
	}

	m.engine = engine.New(
		engine.WithIndentOffset(cfg.IndentOffset),
		engine.WithBackspaceBackdentsNesting(cfg.BackspaceBackdentsNesting),
		engine.WithClassifier(classify.Default().With(rules...)),
	)
	return m, nil
}

func (m *Mode) Engine() *engine.Engine { return m.engine }

func (m *Mode) Config() Config { return m.cfg }

// Close releases the Lua state of a scripted opener rule, if any.
func (m *Mode) Close() {
	if m.lua != nil {
		m.lua.Close()
		m.lua = nil
	}
}

// MatchesFile reports whether path has one of the configured extensions.
func (m *Mode) MatchesFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext != "" && slices.Contains(m.cfg.Extensions, ext)
}

// Run executes the named command. Commands that do not cycle clear the
// engine's repeat memo first.
func (m *Mode) Run(name string, buf engine.Buffer, count int) error {
	cmd, ok := Commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if !cmd.Cycles {
		m.engine.Invalidate()
	}
	return cmd.Run(m.engine, buf, count)
}

// Invalidate clears the repeat memo. Hosts call it for every command that
// does not go through Run.
func (m *Mode) Invalidate() {
	m.engine.Invalidate()
}

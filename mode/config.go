package mode

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/emblem/engine"
)

// ConfigFileName is the file the reference host looks for next to the
// edited file.
const ConfigFileName = "emblem.toml"

// Config is the mode configuration as stored in emblem.toml:
//
//	indent_offset = 2
//	backspace_backdents_nesting = true
//	extensions = [".em", ".emblem", ".embl"]
//	openers = ['^ruby:']
//	lua_opener = '''
//	function is_block_opener(line) return line:sub(1, 1) == "+" end
//	'''
//
//	[theme]
//	comment = "244"
type Config struct {
	IndentOffset              int      `toml:"indent_offset"`
	BackspaceBackdentsNesting bool     `toml:"backspace_backdents_nesting"`
	Extensions                []string `toml:"extensions"`

	// Openers are extra regular expressions matched against line content
	// after the built-in rules.
	Openers []string `toml:"openers"`
	// LuaOpener is Lua source defining is_block_opener(line).
	LuaOpener string `toml:"lua_opener"`

	Theme Theme `toml:"theme"`
}

// Theme holds lipgloss colors for highlighted block regions.
type Theme struct {
	Comment string `toml:"comment"`
	Text    string `toml:"text"`
	Embed   string `toml:"embed"`
}

func DefaultTheme() Theme {
	return Theme{Comment: "244", Text: "109", Embed: "139"}
}

func DefaultConfig() Config {
	return Config{
		IndentOffset:              engine.DefaultIndentOffset,
		BackspaceBackdentsNesting: engine.DefaultBackspaceBackdentsNesting,
		Extensions:                []string{".em", ".emblem", ".embl"},
		Theme:                     DefaultTheme(),
	}
}

// Validate reports values the engine cannot work with.
func (c Config) Validate() error {
	if c.IndentOffset <= 0 {
		return fmt.Errorf("%w: indent_offset must be positive, got %d", ErrInvalidConfig, c.IndentOffset)
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidConfig, ext)
		}
	}
	return nil
}

// fileConfig distinguishes absent keys from zero values so that a file only
// overrides what it sets.
type fileConfig struct {
	IndentOffset              *int      `toml:"indent_offset"`
	BackspaceBackdentsNesting *bool     `toml:"backspace_backdents_nesting"`
	Extensions                *[]string `toml:"extensions"`
	Openers                   []string  `toml:"openers"`
	LuaOpener                 string    `toml:"lua_opener"`
	Theme                     struct {
		Comment string `toml:"comment"`
		Text    string `toml:"text"`
		Embed   string `toml:"embed"`
	} `toml:"theme"`
}

func (f fileConfig) apply(c Config) Config {
	if f.IndentOffset != nil {
		c.IndentOffset = *f.IndentOffset
	}
	if f.BackspaceBackdentsNesting != nil {
		c.BackspaceBackdentsNesting = *f.BackspaceBackdentsNesting
	}
	if f.Extensions != nil {
		c.Extensions = append([]string(nil), (*f.Extensions)...)
	}
	c.Openers = append(c.Openers, f.Openers...)
	if f.LuaOpener != "" {
		c.LuaOpener = f.LuaOpener
	}
	if f.Theme.Comment != "" {
		c.Theme.Comment = f.Theme.Comment
	}
	if f.Theme.Text != "" {
		c.Theme.Text = f.Theme.Text
	}
	if f.Theme.Embed != "" {
		c.Theme.Embed = f.Theme.Embed
	}
	return c
}

// ParseConfig decodes TOML data over DefaultConfig. Unknown keys are errors.
func ParseConfig(data []byte) (Config, error) {
	return parse("<data>", data)
}

// LoadConfig reads path. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// FindConfig returns the emblem.toml in dir.
func FindConfig(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

func parse(source string, data []byte) (Config, error) {
	var f fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Config{}, newParseError(source, err)
	}

	cfg := f.apply(DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var de *toml.DecodeError
	var se *toml.StrictMissingError
	switch {
	case errors.As(err, &de):
		pe.Line, pe.Column = de.Position()
	case errors.As(err, &se) && len(se.Errors) > 0:
		pe.Line, pe.Column = se.Errors[0].Position()
		if k := strings.Join(se.Errors[0].Key(), "."); k != "" {
			pe.Message = "unknown key " + k
		}
	}
	return pe
}

package classify

import (
	"fmt"
	"regexp"
)

// Rule is one structural predicate over a line's content.
type Rule interface {
	Matches(content string) bool
}

// RuleFunc adapts a plain function to Rule.
type RuleFunc func(content string) bool

func (f RuleFunc) Matches(content string) bool { return f(content) }

// Pattern is a named regular-expression Rule.
type Pattern struct {
	name string
	re   *regexp.Regexp
}

// NewPattern compiles expr into a Pattern.
func NewPattern(name, expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("compile %s rule %q: %w", name, expr, err)
	}
	return Pattern{name: name, re: re}, nil
}

// MustPattern is NewPattern for expressions known at compile time.
func MustPattern(name, expr string) Pattern {
	p, err := NewPattern(name, expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pattern) Name() string { return p.name }

func (p Pattern) String() string { return p.name + ": " + p.re.String() }

func (p Pattern) Matches(content string) bool {
	return p.re != nil && p.re.MatchString(content)
}

var (
	// TagRule: a tag, class or id token without spaces, an optional
	// attribute group, nothing after it.
	TagRule = MustPattern("tag", `^[.#A-Za-z][^ \t]*(\[.*\])?[ \t]*$`)

	// DoBlockRule: a code or output line ending in "do" with optional
	// block parameters.
	DoBlockRule = MustPattern("do-block", `^[-=].*\bdo[ \t]*(\|.*\|[ \t]*)?$`)

	// ControlRule: a reserved control word, optionally behind - or =.
	ControlRule = MustPattern("control", `^([-=][ \t]*)?(if|unless|while|until|else|begin|elsif|rescue|ensure|when)\b`)

	// TextRule: a literal text block.
	TextRule = MustPattern("text", `^\|`)

	// CommentRule: a comment block.
	CommentRule = MustPattern("comment", `^/`)

	// EmbedRule: an embedded-content filter such as "markdown:".
	EmbedRule = MustPattern("embed", `^[a-z0-9_]+:`)
)

// DefaultRules returns the built-in rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{TagRule, DoBlockRule, ControlRule, TextRule, CommentRule, EmbedRule}
}

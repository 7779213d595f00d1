package classify

import "strings"

// Classifier evaluates an ordered set of rules as a disjunction.
// The zero value has no rules and classifies nothing as an opener.
type Classifier struct {
	rules []Rule
}

func New(rules ...Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// Default returns a Classifier with DefaultRules.
func Default() *Classifier {
	return New(DefaultRules()...)
}

// With returns a copy of c with rules appended after the existing ones.
func (c *Classifier) With(rules ...Rule) *Classifier {
	out := make([]Rule, 0, len(c.rules)+len(rules))
	out = append(out, c.rules...)
	out = append(out, rules...)
	return &Classifier{rules: out}
}

func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// IsBlockOpener reports whether lines may be nested beneath line.
func (c *Classifier) IsBlockOpener(line string) bool {
	_, ok := c.Match(line)
	return ok
}

// Match returns the first rule that accepts line.
func (c *Classifier) Match(line string) (Rule, bool) {
	content := Content(line)
	if content == "" {
		return nil, false
	}
	for _, r := range c.rules {
		if r.Matches(content) {
			return r, true
		}
	}
	return nil, false
}

// Content returns line from its first non-whitespace character.
func Content(line string) string {
	return strings.TrimLeft(line, " \t")
}

// Indentation returns the number of leading space and tab characters.
func Indentation(line string) int {
	return len(line) - len(Content(line))
}

// IsBlank reports whether line has no non-whitespace content.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsComment reports whether line opens a comment block.
func IsComment(line string) bool {
	return CommentRule.Matches(Content(line))
}

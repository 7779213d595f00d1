package classify

import "testing"

func TestDefault_IsBlockOpener(t *testing.T) {
	c := Default()

	cases := []struct {
		line string
		want bool
	}{
		{line: "div.container", want: true},
		{line: "  #main", want: true},
		{line: ".item", want: true},
		{line: "p", want: true},
		{line: "a[href='/'] ", want: true},
		{line: "div[class='a b']", want: true},
		{line: "p Hello world", want: false},
		{line: "- if x.present? do |y|", want: true},
		{line: "- if x.present?", want: true},
		{line: "= form_for @user do", want: true},
		{line: "- items.each do |item, i|", want: true},
		{line: "- undo_last", want: false},
		{line: "if isActive", want: true},
		{line: "else", want: true},
		{line: "= unless done", want: true},
		{line: "- elsif other", want: true},
		{line: "- iffy", want: false},
		{line: "| some text", want: true},
		{line: "    |", want: true},
		{line: "/ a comment", want: true},
		{line: "markdown:", want: true},
		{line: "  javascript: alert(1)", want: true},
		{line: "= name", want: false},
		{line: "{{outlet}}", want: false},
		{line: "", want: false},
		{line: "   \t ", want: false},
	}
	for _, tc := range cases {
		if got := c.IsBlockOpener(tc.line); got != tc.want {
			t.Fatalf("IsBlockOpener(%q)=%v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestClassifier_MatchReportsFirstRule(t *testing.T) {
	c := Default()

	cases := []struct {
		line string
		want Pattern
	}{
		{line: "div", want: TagRule},
		{line: "- if x.present? do |y|", want: DoBlockRule},
		{line: "- if x.present?", want: ControlRule},
		{line: "| text", want: TextRule},
		{line: "/ note", want: CommentRule},
		{line: "markdown: x", want: EmbedRule},
	}
	for _, tc := range cases {
		r, ok := c.Match(tc.line)
		if !ok {
			t.Fatalf("Match(%q): no rule matched", tc.line)
		}
		p, isPattern := r.(Pattern)
		if !isPattern || p.Name() != tc.want.Name() {
			t.Fatalf("Match(%q)=%v, want %s", tc.line, r, tc.want.Name())
		}
	}
}

func TestClassifier_OrderDoesNotChangeResult(t *testing.T) {
	rules := DefaultRules()
	reversed := make([]Rule, len(rules))
	for i, r := range rules {
		reversed[len(rules)-1-i] = r
	}
	a, b := New(rules...), New(reversed...)

	for _, line := range []string{"div", "- if x", "| t", "/ c", "md:", "= x", "hello there"} {
		if a.IsBlockOpener(line) != b.IsBlockOpener(line) {
			t.Fatalf("rule order changed result for %q", line)
		}
	}
}

func TestClassifier_WithExtendsWithoutMutating(t *testing.T) {
	base := New(TextRule)
	ext := base.With(RuleFunc(func(content string) bool { return content == "{{#each}}" }))

	if base.IsBlockOpener("{{#each}}") {
		t.Fatalf("base classifier must not see appended rule")
	}
	if !ext.IsBlockOpener("  {{#each}}") {
		t.Fatalf("extended classifier should match appended rule")
	}
	if got, want := len(ext.Rules()), 2; got != want {
		t.Fatalf("rules=%d, want %d", got, want)
	}
}

func TestClassifier_ZeroValueMatchesNothing(t *testing.T) {
	var c Classifier
	if c.IsBlockOpener("div") {
		t.Fatalf("zero classifier should not match")
	}
}

func TestNewPattern_InvalidExpression(t *testing.T) {
	if _, err := NewPattern("broken", "(["); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestLineHelpers(t *testing.T) {
	if got := Indentation("  \tdiv"); got != 3 {
		t.Fatalf("Indentation=%d, want 3", got)
	}
	if got := Content("  \tdiv"); got != "div" {
		t.Fatalf("Content=%q, want %q", got, "div")
	}
	if !IsBlank(" \t ") || IsBlank(" x") {
		t.Fatalf("IsBlank mismatch")
	}
	if !IsComment("    / note") || IsComment("p / not a comment") {
		t.Fatalf("IsComment mismatch")
	}
}

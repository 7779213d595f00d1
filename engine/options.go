package engine

import "github.com/iw2rmb/emblem/classify"

// Default configuration values.
const (
	DefaultIndentOffset              = 2
	DefaultBackspaceBackdentsNesting = true
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithIndentOffset sets the number of columns one nesting level adds.
// Non-positive values are ignored.
func WithIndentOffset(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.offset = n
		}
	}
}

// WithBackspaceBackdentsNesting controls whether ElectricBackspace moves a
// line's descendants along with it.
func WithBackspaceBackdentsNesting(on bool) Option {
	return func(e *Engine) {
		e.backdentNesting = on
	}
}

// WithClassifier replaces the default block-opener classifier.
func WithClassifier(c *classify.Classifier) Option {
	return func(e *Engine) {
		if c != nil {
			e.classifier = c
		}
	}
}

package engine

import "github.com/iw2rmb/emblem/classify"

// Engine runs structural commands against a Buffer. It is not safe for
// concurrent use; a host drives it from its update loop.
type Engine struct {
	offset          int
	backdentNesting bool
	classifier      *classify.Classifier

	last lastOperation
}

// New creates an Engine with an indent offset of 2, nesting-aware electric
// backspace and the default classifier.
func New(opts ...Option) *Engine {
	e := &Engine{
		offset:          DefaultIndentOffset,
		backdentNesting: DefaultBackspaceBackdentsNesting,
		classifier:      classify.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) IndentOffset() int { return e.offset }

func (e *Engine) BackspaceBackdentsNesting() bool { return e.backdentNesting }

func (e *Engine) Classifier() *classify.Classifier { return e.classifier }

// ForwardBlock moves the cursor over count blocks; see ForwardBlock.
func (e *Engine) ForwardBlock(buf Buffer, count int) {
	buf.SetCursor(ForwardBlock(buf, buf.Cursor(), count))
}

func (e *Engine) BackwardBlock(buf Buffer, count int) {
	buf.SetCursor(BackwardBlock(buf, buf.Cursor(), count))
}

func (e *Engine) UpList(buf Buffer, count int) {
	buf.SetCursor(UpList(buf, buf.Cursor(), count))
}

// DownList moves the cursor into the first nested line. On failure the
// cursor is left where it was.
func (e *Engine) DownList(buf Buffer, count int) error {
	p, err := DownList(buf, buf.Cursor(), count)
	if err != nil {
		return err
	}
	buf.SetCursor(p)
	return nil
}

// BlockExtent returns the rows spanned by the block headed at row: the head
// itself through its last non-blank descendant.
func (e *Engine) BlockExtent(lines Lines, row int) (start, end int) {
	return BlockExtent(lines, row)
}

func (e *Engine) isOpener(line string) bool {
	return e.classifier.IsBlockOpener(line)
}

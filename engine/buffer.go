package engine

import "github.com/iw2rmb/emblem/buffer"

// Lines is read access to a document. Queries that never move the cursor
// only need Lines.
type Lines interface {
	LineCount() int
	LineText(row int) string
}

// Buffer is the document an Engine edits. *buffer.Buffer implements it.
//
// Apply must treat all edits as one undo step and interpret each edit
// against the state left by the previous one.
type Buffer interface {
	Lines
	Cursor() buffer.Pos
	SetCursor(p buffer.Pos)
	Apply(edits ...buffer.TextEdit)
}

// Selector is implemented by buffers that hold a selection. MarkBlock uses it
// when available.
type Selector interface {
	SetSelection(r buffer.Range)
}

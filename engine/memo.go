package engine

import "github.com/iw2rmb/emblem/buffer"

type opKind uint8

const (
	opNone opKind = iota
	opIndentLine
	opIndentRegion
)

// lastOperation remembers the previous cycling command and the cursor it
// left behind.
type lastOperation struct {
	kind opKind
	pos  buffer.Pos
}

// Invalidate forgets the previous command, so the next IndentLine or
// IndentRegion computes the indentation instead of cycling.
func (e *Engine) Invalidate() {
	e.last = lastOperation{}
}

// repeats reports whether kind was also the previous command and the cursor
// has not moved since.
func (e *Engine) repeats(kind opKind, pos buffer.Pos) bool {
	return e.last.kind == kind && e.last.pos == pos
}

func (e *Engine) remember(kind opKind, pos buffer.Pos) {
	e.last = lastOperation{kind: kind, pos: pos}
}

// cycleTarget is the next shallower multiple of the offset below cur.
func (e *Engine) cycleTarget(cur int) int {
	return ((cur - 1) / e.offset) * e.offset
}

package buffer

// Apply applies a sequence of text edits as one transaction. Each edit's
// range is interpreted against the buffer state left by the previous edit,
// so callers that build several line edits up front should order them from
// the bottom of the document upwards.
//
// Ranges are clamped into document bounds. The cursor moves to the end of
// the last effective edit, the selection is cleared, and the whole batch is
// recorded as a single undo step.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}

	prev := b.snapshot()
	change := b.beginChange()

	anyChanged := false
	lastCursor := b.cursor
	for _, e := range edits {
		nextCursor, applied, changed := b.replaceRange(e.Range, e.Text)
		if !changed {
			continue
		}
		anyChanged = true
		lastCursor = nextCursor
		change.addAppliedEdit(applied)
	}
	if !anyChanged {
		return
	}
	b.finishEdit(prev, change, lastCursor)
}

package editor

import "github.com/iw2rmb/emblem/buffer"

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos
	// RuneOffset is the cursor as an absolute rune offset into Text.
	RuneOffset int
	Selection  struct {
		Range  buffer.Range
		Active bool
	}

	Text string

	// Edits are the effective edits of the latest text transaction, such as
	// one structural command. Nil when only the cursor or selection moved.
	Edits []buffer.AppliedEdit
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Cursor:      b.Cursor(),
		Text:        b.Text(),
	}
	ev.RuneOffset, _ = b.RuneOffsetFromPos(ev.Cursor, buffer.OffsetClamp)
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if textChanged {
		if ch, ok := b.LastChange(); ok {
			ev.Edits = ch.AppliedEdits
		}
	}
	return ev
}

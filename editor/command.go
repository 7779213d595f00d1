package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/emblem/engine"
)

// CommandRunner executes named structural commands against the buffer.
// Invalidate is called before every key the editor handles itself, so a
// runner with repeat-sensitive commands can tell an uninterrupted repeat.
type CommandRunner interface {
	Run(name string, buf engine.Buffer, count int) error
	Invalidate()
}

// CommandBinding binds keys to a command name. Motion commands do not edit
// text and stay enabled in read-only mode.
type CommandBinding struct {
	Binding key.Binding
	Command string
	Motion  bool
}

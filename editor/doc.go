// Package editor is a small Bubble Tea component that hosts an emblem
// buffer: it renders the text with line numbers, cursor, selection and
// highlight spans, handles ordinary editing keys, and forwards bound keys to
// a CommandRunner such as mode.Mode.
package editor

// Package mode binds the structural engine to a host: it loads the
// emblem.toml configuration, builds the classifier and engine from it, and
// exposes the engine operations as named commands with default key bindings
// and a block highlighter for the editor component.
package mode

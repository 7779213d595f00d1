package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	// ShowStatus reserves the last row for a status line with the cursor
	// position, its rune offset and the last command error.
	ShowStatus bool
	Style      Style

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap   KeyMap
	ReadOnly bool

	// Forwarded to buffer.Options.
	HistoryLimit int

	Clipboard   Clipboard
	Highlighter Highlighter

	// Commands runs the commands named by Bindings. Bindings are checked
	// before KeyMap.
	Commands CommandRunner
	Bindings []CommandBinding

	// OnChange is called after every update that changed the buffer version.
	OnChange func(ChangeEvent)
}

func (c Config) normalized() Config {
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}

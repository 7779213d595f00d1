package mode

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/emblem/editor"
)

// DefaultBindings maps keys to command names. They are matched before the
// editor's own key map, so tab, backspace and enter become structural.
func DefaultBindings() []editor.CommandBinding {
	bind := func(cmd, help string, keys ...string) editor.CommandBinding {
		return editor.CommandBinding{
			Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
			Command: cmd,
			Motion:  Commands[cmd].Motion,
		}
	}
	return []editor.CommandBinding{
		bind(CmdIndentLine, "indent line", "tab"),
		bind(CmdIndentRegion, "indent region", "shift+tab"),
		bind(CmdElectricBackspace, "back-dent", "backspace"),
		bind(CmdNewlineAndIndent, "newline and indent", "enter"),

		bind(CmdForwardBlock, "next block", "alt+ctrl+f"),
		bind(CmdBackwardBlock, "previous block", "alt+ctrl+b"),
		bind(CmdUpList, "parent block", "alt+ctrl+u"),
		bind(CmdDownList, "first child", "alt+ctrl+d"),

		bind(CmdKillLineAndIndent, "kill head", "alt+ctrl+k"),
		bind(CmdMarkBlock, "mark block", "alt+h"),
		bind(CmdCommentBlock, "comment block", "alt+c"),
		bind(CmdUncommentBlock, "uncomment block", "alt+u"),
		bind(CmdShiftBlockRight, "shift block right", "alt+."),
		bind(CmdShiftBlockLeft, "shift block left", "alt+,"),
	}
}

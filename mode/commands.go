package mode

import (
	"github.com/iw2rmb/emblem/buffer"
	"github.com/iw2rmb/emblem/engine"
)

// Command names.
const (
	CmdForwardBlock      = "emblem.forwardBlock"
	CmdBackwardBlock     = "emblem.backwardBlock"
	CmdUpList            = "emblem.upList"
	CmdDownList          = "emblem.downList"
	CmdIndentLine        = "emblem.indentLine"
	CmdIndentRegion      = "emblem.indentRegion"
	CmdShiftBlockRight   = "emblem.shiftBlockRight"
	CmdShiftBlockLeft    = "emblem.shiftBlockLeft"
	CmdCommentBlock      = "emblem.commentBlock"
	CmdUncommentBlock    = "emblem.uncommentBlock"
	CmdKillLineAndIndent = "emblem.killLineAndIndent"
	CmdElectricBackspace = "emblem.electricBackspace"
	CmdMarkBlock         = "emblem.markBlock"
	CmdNewlineAndIndent  = "emblem.newlineAndIndent"
)

// Command is one entry of the command table.
type Command struct {
	Run func(e *engine.Engine, buf engine.Buffer, count int) error
	// Cycles marks commands that keep the repeat memo.
	Cycles bool
	// Motion marks commands that never change text.
	Motion bool
}

// Commands maps command names to engine operations.
var Commands = map[string]Command{
	CmdForwardBlock: {Motion: true, Run: func(e *engine.Engine, buf engine.Buffer, count int) error {
		e.ForwardBlock(buf, count)
		return nil
	}},
	CmdBackwardBlock: {Motion: true, Run: func(e *engine.Engine, buf engine.Buffer, count int) error {
		e.BackwardBlock(buf, count)
		return nil
	}},
	CmdUpList: {Motion: true, Run: func(e *engine.Engine, buf engine.Buffer, count int) error {
		e.UpList(buf, count)
		return nil
	}},
	CmdDownList: {Motion: true, Run: func(e *engine.Engine, buf engine.Buffer, count int) error {
		return e.DownList(buf, count)
	}},
	CmdIndentLine: {Cycles: true, Run: func(e *engine.Engine, buf engine.Buffer, _ int) error {
		e.IndentLine(buf)
		return nil
	}},
	CmdIndentRegion: {Cycles: true, Run: func(e *engine.Engine, buf engine.Buffer, _ int) error {
		start, end := regionRows(e, buf)
		e.IndentRegion(buf, start, end)
		return nil
	}},
	CmdShiftBlockRight: {Run: func(e *engine.Engine, buf engine.Buffer, count int) error {
		e.ShiftBlock(buf, count)
		return nil
	}},
	CmdShiftBlockLeft: {Run: func(e *engine.Engine, buf engine.Buffer, count int) error {
		e.ShiftBlock(buf, -count)
		return nil
	}},
	CmdCommentBlock: {Run: func(e *engine.Engine, buf engine.Buffer, _ int) error {
		e.CommentBlock(buf)
		return nil
	}},
	CmdUncommentBlock: {Run: func(e *engine.Engine, buf engine.Buffer, _ int) error {
		return e.UncommentBlock(buf)
	}},
	CmdKillLineAndIndent: {Run: func(e *engine.Engine, buf engine.Buffer, _ int) error {
		e.KillLineAndIndent(buf)
		return nil
	}},
	CmdElectricBackspace: {Run: func(e *engine.Engine, buf engine.Buffer, count int) error {
		e.ElectricBackspace(buf, count)
		return nil
	}},
	CmdMarkBlock: {Motion: true, Run: func(e *engine.Engine, buf engine.Buffer, _ int) error {
		e.MarkBlock(buf)
		return nil
	}},
	CmdNewlineAndIndent: {Run: func(e *engine.Engine, buf engine.Buffer, _ int) error {
		e.NewlineAndIndent(buf)
		return nil
	}},
}

// selectionSource is implemented by *buffer.Buffer.
type selectionSource interface {
	Selection() (buffer.Range, bool)
}

// regionRows returns the rows of the active selection, or the block under
// the cursor when nothing is selected. A selection ending at column 0 does
// not include its last row.
func regionRows(e *engine.Engine, buf engine.Buffer) (int, int) {
	if s, ok := buf.(selectionSource); ok {
		if r, ok := s.Selection(); ok {
			end := r.End.Row
			if r.End.GraphemeCol == 0 && end > r.Start.Row {
				end--
			}
			return r.Start.Row, end
		}
	}
	return e.BlockExtent(buf, buf.Cursor().Row)
}

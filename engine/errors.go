package engine

import "errors"

// Errors returned by engine commands.
var (
	// ErrNoNestedBlock is returned by DownList when nothing is nested under
	// the current line.
	ErrNoNestedBlock = errors.New("nothing is nested under this line")

	// ErrNoCommentBlock is returned by UncommentBlock when no enclosing line
	// opens a comment.
	ErrNoCommentBlock = errors.New("no enclosing comment block")
)

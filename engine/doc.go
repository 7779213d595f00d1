// Package engine implements indentation-structural editing for Emblem
// templates.
//
// The engine never builds a tree. Every query re-reads the buffer: a block is
// a line plus the following lines indented strictly deeper than it, and blank
// lines are transparent. Navigation functions are pure and take a position;
// the Engine methods of the same name read and move the buffer cursor.
//
// Mutations are delivered to the buffer as a single Apply call, so each
// command is one undo step. The only state kept between calls is a one-slot
// memo that lets IndentLine and IndentRegion cycle the indentation when they
// are repeated at the same cursor; hosts call Invalidate for every other
// command.
package engine

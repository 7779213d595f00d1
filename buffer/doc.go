// Package buffer implements the line-oriented document model the emblem
// structural editor operates on.
//
// Coordinates are 0-based (Row, GraphemeCol); columns count grapheme
// clusters, so a tab or a space is one column. Ranges are half-open:
// [Start, End). Every mutation bumps Version; text mutations also bump
// TextVersion and record one undo step.
package buffer

// Package classify decides which Emblem lines may have nested children.
//
// A Classifier holds an ordered list of Rules and reports a line as a block
// opener when any rule matches. Rules see the line starting at its first
// non-whitespace character. The default rules cover tags and selectors,
// control lines ending in a do-block, reserved control words, text blocks,
// comments, and embedded-content filters; hosts add regular expressions or
// Lua predicates on top.
package classify

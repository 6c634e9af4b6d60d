// Package surface implements the editable text surface behind the widget.
//
// The surface is an ordered list of segments: text runs, plus at most one
// suggestion run holding ghost text that is not part of the content. Carets
// and selections are anchors (segment index, grapheme offset) into text runs,
// so splitting a run to place a suggestion keeps every caret meaningful.
//
// Offsets are 0-based grapheme counts over the logical content, which is the
// concatenation of all text runs in order.
package surface

package suggest

import (
	"strings"

	"github.com/iw2rmb/ghostline/internal/grapheme"
)

// AdjustSpacing pads a suggestion so it joins the surrounding words.
//
// Only text that looks space-delimited (before+after has an ASCII letter) is
// touched, and blank suggestions are returned as is. A space is prepended
// when the grapheme before the caret is neither whitespace nor one of
// .,!?;: and the suggestion does not start with whitespace. A space is
// appended under the same conditions on the grapheme after the caret and the
// suggestion's last grapheme.
func AdjustSpacing(suggestion, before, after string) string {
	if strings.TrimSpace(suggestion) == "" {
		return suggestion
	}
	if !grapheme.HasASCIILetter(before + after) {
		return suggestion
	}

	out := suggestion
	if prev := grapheme.Last(before); joinsWithSpace(prev) && !grapheme.IsSpace(grapheme.First(out)) {
		out = " " + out
	}
	if next := grapheme.First(after); joinsWithSpace(next) && !grapheme.IsSpace(grapheme.Last(out)) {
		out += " "
	}
	return out
}

func joinsWithSpace(neighbour string) bool {
	return neighbour != "" && !grapheme.IsSpace(neighbour) && !grapheme.IsJoinPunct(neighbour)
}

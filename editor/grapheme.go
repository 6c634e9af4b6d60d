package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const tabWidth = 4

// cellText returns how a grapheme is drawn at visual column col and its width
// in terminal cells. Tabs expand to the next tab stop.
func cellText(g string, col int) (string, int) {
	if g == "\t" {
		n := tabWidth - col%tabWidth
		return strings.Repeat(" ", n), n
	}
	return g, graphemeCellWidth(g)
}

func graphemeCellWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

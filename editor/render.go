package editor

import (
	"strings"

	"github.com/iw2rmb/ghostline/internal/grapheme"
	"github.com/iw2rmb/ghostline/surface"
)

type cellKind uint8

const (
	cellDoc cellKind = iota
	cellGhost
	cellCaret // 1-cell placeholder for a caret with no doc grapheme under it
)

type layoutCell struct {
	text  string
	kind  cellKind
	off   int // content offset; ghost cells carry the suggestion's offset
	width int

	cursor   bool
	selected bool
}

type layoutRow struct {
	cells []layoutCell
	// endOff is the content offset a click past the last cell resolves to.
	endOff int
}

// layout splits the surface into screen rows of at most width cells
// (0 disables wrapping). It returns the rows and the row holding the caret.
func (m *Model) layout(width int) (rows []layoutRow, caretRow int) {
	caretOff := -1
	if m.focused {
		caretOff = m.surf.CaretOffset()
	}
	selStart, selEnd := 0, 0
	if r, ok := m.surf.Selection(); ok {
		selStart, selEnd = m.surf.OffsetOf(r.Start), m.surf.OffsetOf(r.End)
	}
	_, markerOff, hasMarker := m.surf.Marker()
	cursorOnGhost := hasMarker && caretOff >= 0 && markerOff == caretOff
	cursorDone := caretOff < 0

	var cur layoutRow
	curWidth := 0
	push := func(c layoutCell) {
		if width > 0 && curWidth > 0 && curWidth+c.width > width {
			cur.endOff = c.off
			rows = append(rows, cur)
			cur, curWidth = layoutRow{}, 0
		}
		if c.cursor {
			caretRow = len(rows)
		}
		cur.cells = append(cur.cells, c)
		curWidth += c.width
	}
	breakRow := func(endOff int) {
		cur.endOff = endOff
		rows = append(rows, cur)
		cur, curWidth = layoutRow{}, 0
	}
	caretCell := func(off int) layoutCell {
		return layoutCell{text: " ", kind: cellCaret, off: off, width: 1, cursor: true}
	}

	off := 0
	for _, seg := range m.surf.Segments() {
		if seg.Kind == surface.KindSuggestion {
			for i, g := range grapheme.Split(seg.Text) {
				atCaret := i == 0 && cursorOnGhost && !cursorDone
				if atCaret {
					cursorDone = true
				}
				if grapheme.IsNewline(g) {
					if atCaret {
						push(caretCell(off))
					}
					breakRow(off)
					continue
				}
				text, w := cellText(g, curWidth)
				push(layoutCell{text: text, kind: cellGhost, off: off, width: w, cursor: atCaret})
			}
			continue
		}

		for _, g := range grapheme.Split(seg.Text) {
			atCaret := !cursorDone && off == caretOff
			if atCaret {
				cursorDone = true
			}
			if grapheme.IsNewline(g) {
				if atCaret {
					push(caretCell(off))
				}
				breakRow(off)
				off++
				continue
			}
			text, w := cellText(g, curWidth)
			push(layoutCell{
				text:     text,
				kind:     cellDoc,
				off:      off,
				width:    w,
				cursor:   atCaret,
				selected: off >= selStart && off < selEnd,
			})
			off++
		}
	}
	if !cursorDone {
		push(caretCell(off))
	}
	cur.endOff = off
	rows = append(rows, cur)
	return rows, caretRow
}

func (m *Model) renderContent() string {
	if m.showPlaceholder() {
		m.rows = []layoutRow{{}}
		m.caretRow = 0
		return m.style.Placeholder.Render(m.Placeholder())
	}

	rows, caretRow := m.layout(m.viewport.Width)
	m.rows, m.caretRow = rows, caretRow

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		var sb strings.Builder
		for _, c := range row.cells {
			sb.WriteString(m.renderCell(c))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderCell(c layoutCell) string {
	st := m.style
	switch {
	case c.cursor:
		return st.Cursor.Render(c.text)
	case c.kind == cellGhost:
		return st.Suggestion.Inherit(st.Text).Render(c.text)
	case c.selected:
		return st.Selection.Render(c.text)
	default:
		return st.Text.Render(c.text)
	}
}

// showPlaceholder reports whether the placeholder replaces the content: the
// value is empty and the widget is not focused.
func (m *Model) showPlaceholder() bool {
	return !m.focused && m.surf.Len() == 0 && !m.surf.HasMarker() && m.Placeholder() != ""
}

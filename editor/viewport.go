package editor

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
	m.lastVersion = m.surf.Version()
}

// followCaret scrolls the minimum amount that keeps the caret row visible.
func (m *Model) followCaret() {
	if !m.focused {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if m.caretRow < y {
		m.viewport.SetYOffset(m.caretRow)
		return
	}
	if m.caretRow >= y+h {
		m.viewport.SetYOffset(m.caretRow - h + 1)
	}
}

// offsetAt maps a viewport-relative cell to a content offset. Clicks on the
// suggestion resolve to its insertion point; clicks past a row's end resolve
// to the row's end.
func (m Model) offsetAt(x, y int) int {
	if len(m.rows) == 0 {
		return 0
	}
	row := clampInt(y+m.viewport.YOffset, 0, len(m.rows)-1)
	r := m.rows[row]
	acc := 0
	for _, c := range r.cells {
		if c.kind == cellCaret {
			continue
		}
		if x < acc+c.width {
			return c.off
		}
		acc += c.width
	}
	return r.endOff
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package surface

import "github.com/iw2rmb/ghostline/internal/grapheme"

// InsertText inserts text at the caret, or replaces the first range when it
// is not collapsed. It is a no-op without a selection.
func (s *Surface) InsertText(text string) bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	return s.replace(r, text)
}

// DeleteBackward applies backspace semantics at the caret.
func (s *Surface) DeleteBackward() bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	if !r.IsCollapsed() && s.offsetOf(r.Start) != s.offsetOf(r.End) {
		return s.replace(r, "")
	}
	off := s.offsetOf(r.Start)
	if off == 0 {
		return false
	}
	return s.replace(Range{Start: s.AnchorAt(off - 1), End: r.Start}, "")
}

// DeleteForward applies delete-key semantics at the caret.
func (s *Surface) DeleteForward() bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	if !r.IsCollapsed() && s.offsetOf(r.Start) != s.offsetOf(r.End) {
		return s.replace(r, "")
	}
	off := s.offsetOf(r.Start)
	if off >= s.Len() {
		return false
	}
	return s.replace(Range{Start: r.Start, End: s.AnchorAt(off + 1)}, "")
}

// DeleteSelection deletes the first range if it covers any text.
func (s *Surface) DeleteSelection() bool {
	r, ok := s.Selection()
	if !ok || s.offsetOf(r.Start) == s.offsetOf(r.End) {
		return false
	}
	return s.replace(r, "")
}

// replace deletes the ordered range r and inserts text at its start. The
// selection collapses to the end of the inserted text. Runs emptied by the
// deletion stay in place as empty text runs.
func (s *Surface) replace(r Range, text string) bool {
	start := s.validAnchor(r.Start)
	end := s.validAnchor(r.End)
	if s.offsetOf(end) < s.offsetOf(start) {
		start, end = end, start
	}

	changed := false
	if s.offsetOf(start) != s.offsetOf(end) {
		s.deleteBetween(start, end)
		changed = true
	}

	caret := start
	if text != "" {
		seg := &s.segs[start.Seg]
		left := grapheme.Split(grapheme.Join(seg.clusters[:start.Off]) + text)
		right := append([]string(nil), seg.clusters[start.Off:]...)
		seg.clusters = append(left, right...)
		caret = Anchor{Seg: start.Seg, Off: len(left)}
		changed = true
	}

	s.ranges = []Range{{Start: caret, End: caret}}
	if changed {
		s.version++
	}
	return changed
}

func (s *Surface) deleteBetween(start, end Anchor) {
	if start.Seg == end.Seg {
		seg := &s.segs[start.Seg]
		seg.clusters = append(seg.clusters[:start.Off:start.Off], seg.clusters[end.Off:]...)
		return
	}
	first := &s.segs[start.Seg]
	first.clusters = first.clusters[:start.Off:start.Off]
	for i := start.Seg + 1; i < end.Seg; i++ {
		if s.segs[i].isText() {
			s.segs[i].clusters = nil
		}
	}
	last := &s.segs[end.Seg]
	last.clusters = append([]string(nil), last.clusters[end.Off:]...)
}

package surface

import "github.com/iw2rmb/ghostline/internal/grapheme"

// InsertMarker places a suggestion run holding text at the caret (the start
// of the first range). A caret in the middle of a run splits it and the
// marker goes between the two fragments. The caret is then collapsed to the
// end of the left fragment, immediately before the marker, so typing never
// lands inside the suggestion.
//
// Any existing marker is removed first. InsertMarker reports false when there
// is no selection or text is empty.
func (s *Surface) InsertMarker(text string) bool {
	if text == "" {
		return false
	}
	s.RemoveMarker()

	r, ok := s.Selection()
	if !ok {
		return false
	}
	at := s.validAnchor(r.Start)
	seg := s.segs[at.Seg]

	marker := segment{kind: KindSuggestion, clusters: grapheme.Split(text)}
	out := make([]segment, 0, len(s.segs)+2)
	out = append(out, s.segs[:at.Seg]...)
	if at.Off < len(seg.clusters) {
		left := segment{kind: KindText, clusters: append([]string(nil), seg.clusters[:at.Off]...)}
		right := segment{kind: KindText, clusters: append([]string(nil), seg.clusters[at.Off:]...)}
		out = append(out, left, marker, right)
	} else {
		out = append(out, seg, marker)
	}
	out = append(out, s.segs[at.Seg+1:]...)

	// Other ranges are dropped; the split shifted their anchors.
	s.segs = out
	s.ranges = []Range{{Start: at, End: at}}
	s.version++
	return true
}

// RemoveMarker deletes the suggestion run if there is one. Text fragments
// created by the split stay separate; anchors after the marker are shifted so
// they keep pointing at the same content.
func (s *Surface) RemoveMarker() bool {
	idx := s.markerIndex()
	if idx < 0 {
		return false
	}
	s.segs = append(s.segs[:idx:idx], s.segs[idx+1:]...)
	for i := range s.ranges {
		s.ranges[i].Start = shiftAfterRemoval(s.ranges[i].Start, idx)
		s.ranges[i].End = shiftAfterRemoval(s.ranges[i].End, idx)
	}
	s.version++
	return true
}

// CommitMarker turns the suggestion run into a text run with the same text and
// collapses the caret to its end. It returns the committed text.
func (s *Surface) CommitMarker() (string, bool) {
	idx := s.markerIndex()
	if idx < 0 {
		return "", false
	}
	s.segs[idx].kind = KindText
	end := Anchor{Seg: idx, Off: len(s.segs[idx].clusters)}
	s.ranges = []Range{{Start: end, End: end}}
	s.version++
	return grapheme.Join(s.segs[idx].clusters), true
}

// Marker returns the suggestion text and the content offset it sits at.
func (s *Surface) Marker() (text string, off int, ok bool) {
	idx := s.markerIndex()
	if idx < 0 {
		return "", 0, false
	}
	for i := 0; i < idx; i++ {
		if s.segs[i].isText() {
			off += len(s.segs[i].clusters)
		}
	}
	return grapheme.Join(s.segs[idx].clusters), off, true
}

// HasMarker reports whether a suggestion run exists.
func (s *Surface) HasMarker() bool { return s.markerIndex() >= 0 }

func (s *Surface) markerIndex() int {
	for i, seg := range s.segs {
		if seg.kind == KindSuggestion {
			return i
		}
	}
	return -1
}

func shiftAfterRemoval(a Anchor, removed int) Anchor {
	if a.Seg > removed {
		a.Seg--
	}
	return a
}

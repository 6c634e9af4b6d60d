package editor

import "github.com/iw2rmb/ghostline/surface"

// ChangeEvent is delivered to Config.OnChange after every edit that changes
// the content, including an accepted suggestion. Showing or clearing a
// suggestion is not a change.
type ChangeEvent struct {
	Version uint64
	Text    string
	Caret   int
	// Selection is in content offsets, Start <= End.
	Selection struct {
		Start, End int
		Active     bool
	}
}

func buildChangeEvent(s *surface.Surface) ChangeEvent {
	ev := ChangeEvent{
		Version: s.Version(),
		Text:    s.Text(),
		Caret:   s.CaretOffset(),
	}
	if r, ok := s.Selection(); ok {
		start, end := s.OffsetOf(r.Start), s.OffsetOf(r.End)
		if start != end {
			ev.Selection.Active = true
			ev.Selection.Start = start
			ev.Selection.End = end
		}
	}
	return ev
}

// Package caret derives the caret's logical position from a surface.
//
// Positions are recomputed from the live segment list on every call. Placing
// or removing a suggestion splits text runs, so a cached anchor or offset can
// go stale between two calls.
package caret

import (
	"github.com/iw2rmb/ghostline/internal/grapheme"
	"github.com/iw2rmb/ghostline/surface"
)

// State is a caret snapshot. OK is false when the surface has no selection,
// in which case Position is 0 and Anchor is the zero anchor.
type State struct {
	Position int
	Anchor   surface.Anchor
	OK       bool
}

type Tracker struct {
	s *surface.Surface
}

func New(s *surface.Surface) Tracker {
	return Tracker{s: s}
}

// Position returns the grapheme offset of the caret within the content.
//
// The caret is the start of the first selection range in document order;
// further ranges are ignored. Suggestion runs do not count.
func (t Tracker) Position() State {
	if t.s == nil {
		return State{}
	}
	r, ok := t.s.Selection()
	if !ok {
		return State{}
	}

	pos := 0
	for i, seg := range t.s.Segments() {
		if i == r.Start.Seg {
			if seg.Kind == surface.KindText {
				pos += clamp(r.Start.Off, 0, seg.Len)
			}
			break
		}
		if seg.Kind == surface.KindText {
			pos += seg.Len
		}
	}
	return State{Position: pos, Anchor: r.Start, OK: true}
}

// Split returns the content before and after the caret. Without a selection
// the caret counts as position 0 and everything is "after".
func (t Tracker) Split() (before, after string) {
	if t.s == nil {
		return "", ""
	}
	clusters := grapheme.Split(t.s.Text())
	st := t.Position()
	if !st.OK {
		return "", grapheme.Join(clusters)
	}
	p := clamp(st.Position, 0, len(clusters))
	return grapheme.Join(clusters[:p]), grapheme.Join(clusters[p:])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package surface

import (
	"strings"

	"github.com/iw2rmb/ghostline/internal/grapheme"
)

// Surface is the segment list plus its selection state.
//
// A fresh surface has no selection; hosts give it one on focus.
type Surface struct {
	segs    []segment
	ranges  []Range
	version uint64
}

func New(text string) *Surface {
	return &Surface{
		segs: []segment{{kind: KindText, clusters: grapheme.Split(text)}},
	}
}

// Text returns the logical content: all text runs joined, suggestion excluded.
func (s *Surface) Text() string {
	var sb strings.Builder
	for _, seg := range s.segs {
		if !seg.isText() {
			continue
		}
		for _, c := range seg.clusters {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

// Len returns the grapheme length of the logical content.
func (s *Surface) Len() int {
	n := 0
	for _, seg := range s.segs {
		if seg.isText() {
			n += len(seg.clusters)
		}
	}
	return n
}

func (s *Surface) Version() uint64 { return s.version }

// SetText replaces the whole content with a single text run. Any suggestion
// run is dropped. An existing selection collapses to the end of the new text.
func (s *Surface) SetText(text string) {
	hadSelection := len(s.ranges) > 0
	s.segs = []segment{{kind: KindText, clusters: grapheme.Split(text)}}
	s.ranges = nil
	if hadSelection {
		end := Anchor{Seg: 0, Off: len(s.segs[0].clusters)}
		s.ranges = []Range{{Start: end, End: end}}
	}
	s.version++
}

// Segments returns a snapshot of the run list.
func (s *Surface) Segments() []Segment {
	out := make([]Segment, 0, len(s.segs))
	for _, seg := range s.segs {
		out = append(out, Segment{
			Kind: seg.kind,
			Text: grapheme.Join(seg.clusters),
			Len:  len(seg.clusters),
		})
	}
	return out
}

// Ranges returns a copy of all selection ranges, in insertion order.
func (s *Surface) Ranges() []Range {
	return append([]Range(nil), s.ranges...)
}

// HasSelection reports whether any range (collapsed or not) exists.
func (s *Surface) HasSelection() bool { return len(s.ranges) > 0 }

// Selection returns the first range with its ends in document order.
func (s *Surface) Selection() (Range, bool) {
	if len(s.ranges) == 0 {
		return Range{}, false
	}
	r := s.ranges[0]
	if s.offsetOf(r.End) < s.offsetOf(r.Start) {
		r.Start, r.End = r.End, r.Start
	}
	return r, true
}

// Caret returns the moving end of the first range.
func (s *Surface) Caret() (Anchor, bool) {
	if len(s.ranges) == 0 {
		return Anchor{}, false
	}
	return s.ranges[0].End, true
}

// CaretOffset returns the content offset of Caret, or -1 without a selection.
func (s *Surface) CaretOffset() int {
	a, ok := s.Caret()
	if !ok {
		return -1
	}
	return s.offsetOf(a)
}

// SelectedText returns the text covered by the first range.
func (s *Surface) SelectedText() string {
	r, ok := s.Selection()
	if !ok {
		return ""
	}
	clusters := s.textClusters()
	return grapheme.Join(clusters[s.offsetOf(r.Start):s.offsetOf(r.End)])
}

// SetRanges replaces the selection. Anchors that do not point into a text run
// are re-resolved from their offset. Passing no ranges clears the selection.
func (s *Surface) SetRanges(ranges ...Range) {
	next := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		next = append(next, Range{Start: s.validAnchor(r.Start), End: s.validAnchor(r.End)})
	}
	if rangesEqual(s.ranges, next) {
		return
	}
	s.ranges = next
	s.version++
}

// SetCaret collapses the selection to a.
func (s *Surface) SetCaret(a Anchor) {
	a = s.validAnchor(a)
	s.SetRanges(Range{Start: a, End: a})
}

// SetCaretOffset collapses the selection to the given content offset.
func (s *Surface) SetCaretOffset(off int) {
	s.SetCaret(s.AnchorAt(off))
}

// SetSelectionOffsets selects [start, end) in content offsets.
func (s *Surface) SetSelectionOffsets(start, end int) {
	s.SetRanges(Range{Start: s.AnchorAt(start), End: s.AnchorAt(end)})
}

// SelectAll selects the whole content.
func (s *Surface) SelectAll() {
	s.SetSelectionOffsets(0, s.Len())
}

// ClearSelection drops every range; the surface then has no caret.
func (s *Surface) ClearSelection() {
	if len(s.ranges) == 0 {
		return
	}
	s.ranges = nil
	s.version++
}

// AnchorAt resolves a content offset to the first text run that can hold it.
// At a run boundary this is the end of the earlier run.
func (s *Surface) AnchorAt(off int) Anchor {
	off = clampInt(off, 0, s.Len())
	acc := 0
	last := Anchor{}
	for i, seg := range s.segs {
		if !seg.isText() {
			continue
		}
		n := len(seg.clusters)
		if off <= acc+n {
			return Anchor{Seg: i, Off: off - acc}
		}
		acc += n
		last = Anchor{Seg: i, Off: n}
	}
	return last
}

// OffsetOf converts an anchor into a content offset.
func (s *Surface) OffsetOf(a Anchor) int {
	return s.offsetOf(a)
}

// Normalize merges adjacent text runs and drops empty ones, keeping the
// suggestion run (if any) and the selection at the same content offsets.
func (s *Surface) Normalize() {
	type offs struct{ start, end int }
	saved := make([]offs, 0, len(s.ranges))
	for _, r := range s.ranges {
		saved = append(saved, offs{start: s.offsetOf(r.Start), end: s.offsetOf(r.End)})
	}

	out := make([]segment, 0, len(s.segs))
	for _, seg := range s.segs {
		if seg.isText() && len(seg.clusters) == 0 {
			continue
		}
		if seg.isText() && len(out) > 0 && out[len(out)-1].isText() {
			last := &out[len(out)-1]
			last.clusters = append(last.clusters, seg.clusters...)
			continue
		}
		out = append(out, segment{kind: seg.kind, clusters: append([]string(nil), seg.clusters...)})
	}
	if len(out) == 0 || !out[0].isText() {
		out = append([]segment{{kind: KindText}}, out...)
	}
	if !segmentsEqual(s.segs, out) {
		s.segs = out
		s.version++
	}

	for i, o := range saved {
		s.ranges[i] = Range{Start: s.AnchorAt(o.start), End: s.AnchorAt(o.end)}
	}
}

func (s *Surface) offsetOf(a Anchor) int {
	off := 0
	for i := 0; i < a.Seg && i < len(s.segs); i++ {
		if s.segs[i].isText() {
			off += len(s.segs[i].clusters)
		}
	}
	if a.Seg >= 0 && a.Seg < len(s.segs) && s.segs[a.Seg].isText() {
		off += clampInt(a.Off, 0, len(s.segs[a.Seg].clusters))
	}
	return off
}

// validAnchor returns a unchanged when it points into a text run, otherwise
// the anchor for the nearest valid offset.
func (s *Surface) validAnchor(a Anchor) Anchor {
	if a.Seg >= 0 && a.Seg < len(s.segs) && s.segs[a.Seg].isText() {
		a.Off = clampInt(a.Off, 0, len(s.segs[a.Seg].clusters))
		return a
	}
	if a.Seg < 0 {
		return s.AnchorAt(0)
	}
	if a.Seg >= len(s.segs) {
		return s.AnchorAt(s.Len())
	}
	return s.AnchorAt(s.offsetOf(a))
}

func (s *Surface) textClusters() []string {
	out := make([]string, 0, s.Len())
	for _, seg := range s.segs {
		if seg.isText() {
			out = append(out, seg.clusters...)
		}
	}
	return out
}

func rangesEqual(a, b []Range) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func segmentsEqual(a, b []segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].kind != b[i].kind || len(a[i].clusters) != len(b[i].clusters) {
			return false
		}
		for j := range a[i].clusters {
			if a[i].clusters[j] != b[i].clusters[j] {
				return false
			}
		}
	}
	return true
}

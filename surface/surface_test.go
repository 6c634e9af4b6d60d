package surface

import (
	"reflect"
	"testing"
)

func TestNew_HasNoSelection(t *testing.T) {
	s := New("hello")
	if s.HasSelection() {
		t.Fatalf("fresh surface must not have a selection")
	}
	if _, ok := s.Caret(); ok {
		t.Fatalf("fresh surface must not have a caret")
	}
	if got := s.CaretOffset(); got != -1 {
		t.Fatalf("caret offset without selection: got %d, want %d", got, -1)
	}
	if got := s.Text(); got != "hello" {
		t.Fatalf("text: got %q, want %q", got, "hello")
	}
}

func TestSetText_CollapsesExistingSelectionToEnd(t *testing.T) {
	s := New("ab")
	s.SetCaretOffset(1)
	s.SetText("wxyz")
	if got := s.CaretOffset(); got != 4 {
		t.Fatalf("caret after SetText: got %d, want %d", got, 4)
	}

	s = New("ab")
	s.SetText("cd")
	if s.HasSelection() {
		t.Fatalf("SetText must not create a selection")
	}
}

func TestAnchorAt_PrefersEarlierRunAtBoundary(t *testing.T) {
	s := New("abcd")
	s.SetCaretOffset(2)
	if !s.InsertMarker("X") {
		t.Fatalf("expected marker insertion")
	}
	// segments: "ab" | X | "cd"
	if got := s.AnchorAt(2); got != (Anchor{Seg: 0, Off: 2}) {
		t.Fatalf("anchor at boundary: got %+v", got)
	}
	if got := s.AnchorAt(3); got != (Anchor{Seg: 2, Off: 1}) {
		t.Fatalf("anchor after marker: got %+v", got)
	}
	if got := s.OffsetOf(Anchor{Seg: 2, Off: 0}); got != 2 {
		t.Fatalf("offset of right fragment start: got %d, want %d", got, 2)
	}
	if got := s.AnchorAt(99); got != (Anchor{Seg: 2, Off: 2}) {
		t.Fatalf("anchor past end: got %+v", got)
	}
}

func TestSelection_OrdersBackwardRange(t *testing.T) {
	s := New("hello")
	s.SetSelectionOffsets(4, 1)
	r, ok := s.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if s.OffsetOf(r.Start) != 1 || s.OffsetOf(r.End) != 4 {
		t.Fatalf("ordered selection: got %d..%d, want 1..4", s.OffsetOf(r.Start), s.OffsetOf(r.End))
	}
	if got := s.SelectedText(); got != "ell" {
		t.Fatalf("selected text: got %q, want %q", got, "ell")
	}
	if got := s.CaretOffset(); got != 1 {
		t.Fatalf("caret follows the moving end: got %d, want %d", got, 1)
	}
}

func TestSetRanges_RepairsInvalidAnchorsAndKeepsAllRanges(t *testing.T) {
	s := New("abc")
	s.SetRanges(
		Range{Start: Anchor{Seg: 7, Off: 0}, End: Anchor{Seg: 7, Off: 0}},
		Range{Start: Anchor{Seg: 0, Off: 1}, End: Anchor{Seg: 0, Off: 2}},
	)
	got := s.Ranges()
	want := []Range{
		{Start: Anchor{Seg: 0, Off: 3}, End: Anchor{Seg: 0, Off: 3}},
		{Start: Anchor{Seg: 0, Off: 1}, End: Anchor{Seg: 0, Off: 2}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ranges: got %+v, want %+v", got, want)
	}

	s.ClearSelection()
	if s.HasSelection() {
		t.Fatalf("ClearSelection must drop every range")
	}
}

func TestVersion_BumpsOnlyOnEffectiveChanges(t *testing.T) {
	s := New("ab")
	v := s.Version()
	s.SetCaretOffset(1)
	if s.Version() == v {
		t.Fatalf("version must change when the caret is created")
	}
	v = s.Version()
	s.SetCaretOffset(1)
	if s.Version() != v {
		t.Fatalf("version must not change on a no-op caret update")
	}
	s.ClearSelection()
	v = s.Version()
	s.ClearSelection()
	if s.Version() != v {
		t.Fatalf("version must not change when clearing an empty selection")
	}
}

func TestNormalize_MergesRunsAndKeepsCaret(t *testing.T) {
	s := New("abcd")
	s.SetCaretOffset(2)
	s.InsertMarker("XY")
	if _, ok := s.CommitMarker(); !ok {
		t.Fatalf("expected commit")
	}
	if got := len(s.Segments()); got != 3 {
		t.Fatalf("segments before normalize: got %d, want %d", got, 3)
	}

	s.Normalize()
	segs := s.Segments()
	if len(segs) != 1 || segs[0].Text != "abXYcd" || segs[0].Len != 6 {
		t.Fatalf("segments after normalize: got %+v", segs)
	}
	if got := s.CaretOffset(); got != 4 {
		t.Fatalf("caret after normalize: got %d, want %d", got, 4)
	}
}

func TestNormalize_KeepsMarkerAndLeadingTextRun(t *testing.T) {
	s := New("ab")
	s.SetCaretOffset(0)
	s.InsertMarker("X")
	s.Normalize()
	segs := s.Segments()
	if len(segs) != 3 || segs[0].Kind != KindText || segs[0].Len != 0 || segs[1].Kind != KindSuggestion {
		t.Fatalf("segments after normalize: got %+v", segs)
	}
	if got := s.Text(); got != "ab" {
		t.Fatalf("text: got %q, want %q", got, "ab")
	}
}

func TestLineCol(t *testing.T) {
	s := New("ab\ncde\n")
	cases := []struct {
		off       int
		line, col int
	}{
		{off: 0, line: 0, col: 0},
		{off: 2, line: 0, col: 2},
		{off: 3, line: 1, col: 0},
		{off: 6, line: 1, col: 3},
		{off: 7, line: 2, col: 0},
	}
	for _, tc := range cases {
		line, col := s.LineCol(tc.off)
		if line != tc.line || col != tc.col {
			t.Fatalf("LineCol(%d): got (%d,%d), want (%d,%d)", tc.off, line, col, tc.line, tc.col)
		}
	}
}

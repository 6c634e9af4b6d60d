package surface

import "github.com/iw2rmb/ghostline/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the range start and moves only its end
}

// Move moves the caret. Without a selection the caret starts at offset 0.
// It reports whether the selection changed.
func (s *Surface) Move(m Move) bool {
	prev := s.Ranges()

	from := 0
	start := Anchor{}
	if len(s.ranges) > 0 {
		from = s.offsetOf(s.ranges[0].End)
		start = s.ranges[0].Start
	}

	clusters := s.textClusters()
	to := clampInt(moveOffset(clusters, from, m), 0, len(clusters))
	head := s.AnchorAt(to)

	next := Range{Start: head, End: head}
	if m.Extend && len(s.ranges) > 0 {
		next.Start = start
	}
	if len(prev) == 1 && prev[0] == next {
		return false
	}
	s.ranges = []Range{next}
	s.version++
	return true
}

func moveOffset(clusters []string, off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return moveGrapheme(clusters, off, m.Dir)
	case MoveWord:
		return moveWord(clusters, off, m.Dir)
	case MoveLine:
		return moveLine(clusters, off, m.Dir)
	case MoveDoc:
		return moveDoc(clusters, off, m.Dir)
	default:
		return off
	}
}

func moveGrapheme(clusters []string, off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		if off > 0 {
			return off - 1
		}
		return off
	case DirRight:
		if off < len(clusters) {
			return off + 1
		}
		return off
	default:
		return moveLine(clusters, off, dir)
	}
}

func moveWord(clusters []string, off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return prevWordBoundary(clusters, off)
	case DirRight:
		return nextWordBoundary(clusters, off)
	default:
		return moveLine(clusters, off, dir)
	}
}

func moveLine(clusters []string, off int, dir MoveDir) int {
	start := lineStart(clusters, off)
	col := off - start

	switch dir {
	case DirHome:
		return start
	case DirEnd:
		return lineEnd(clusters, off)
	case DirUp:
		if start == 0 {
			return off
		}
		prevStart := lineStart(clusters, start-1)
		return prevStart + minInt(col, start-1-prevStart)
	case DirDown:
		end := lineEnd(clusters, off)
		if end >= len(clusters) {
			return off
		}
		nextStart := end + 1
		return nextStart + minInt(col, lineEnd(clusters, nextStart)-nextStart)
	default:
		return off
	}
}

func moveDoc(clusters []string, off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp, DirLeft:
		return 0
	case DirEnd, DirDown, DirRight:
		return len(clusters)
	default:
		return off
	}
}

func lineStart(clusters []string, off int) int {
	i := clampInt(off, 0, len(clusters))
	for i > 0 && !grapheme.IsNewline(clusters[i-1]) {
		i--
	}
	return i
}

func lineEnd(clusters []string, off int) int {
	i := clampInt(off, 0, len(clusters))
	for i < len(clusters) && !grapheme.IsNewline(clusters[i]) {
		i++
	}
	return i
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - a line break stops the scan
func prevWordBoundary(clusters []string, off int) int {
	i := clampInt(off, 0, len(clusters))
	for i > 0 && grapheme.IsSpace(clusters[i-1]) && !grapheme.IsNewline(clusters[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(clusters []string, off int) int {
	i := clampInt(off, 0, len(clusters))
	for i < len(clusters) && grapheme.IsSpace(clusters[i]) && !grapheme.IsNewline(clusters[i]) {
		i++
	}
	for i < len(clusters) && !grapheme.IsSpace(clusters[i]) {
		i++
	}
	return i
}

// LineCol returns the 0-based line and grapheme column of a content offset.
func (s *Surface) LineCol(off int) (line, col int) {
	clusters := s.textClusters()
	off = clampInt(off, 0, len(clusters))
	start := 0
	for i := 0; i < off; i++ {
		if grapheme.IsNewline(clusters[i]) {
			line++
			start = i + 1
		}
	}
	return line, off - start
}

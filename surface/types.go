package surface

// Kind distinguishes content runs from the ghost suggestion run.
type Kind uint8

const (
	KindText Kind = iota
	KindSuggestion
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSuggestion:
		return "suggestion"
	default:
		return "unknown"
	}
}

// Anchor points at a grapheme offset inside the text run at index Seg.
type Anchor struct {
	Seg int
	Off int
}

// Range is one selection range. Start is where the selection was anchored and
// End is where the caret sits; they are not ordered. Use Surface.Selection
// for the range in document order.
type Range struct {
	Start Anchor
	End   Anchor
}

// IsCollapsed reports whether both ends share the same anchor.
func (r Range) IsCollapsed() bool { return r.Start == r.End }

// Segment is a read-only view of one run.
type Segment struct {
	Kind Kind
	Text string
	Len  int // grapheme count of Text
}

type segment struct {
	kind     Kind
	clusters []string
}

func (s segment) isText() bool { return s.kind == KindText }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

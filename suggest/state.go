package suggest

// State is the lifecycle state of the suggestion slot.
type State uint8

const (
	// StateIdle: nothing shown and no completion pending.
	StateIdle State = iota
	// StatePending: a completion debounce window is open or a request is in
	// flight.
	StatePending
	// StateShown: a suggestion is on the surface.
	StateShown
	// StateAccepted is reported while a suggestion is committed; the
	// controller moves on to StateIdle (or StatePending) right away.
	StateAccepted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateShown:
		return "shown"
	case StateAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Suggestion is the text currently shown and the content offset it sits at.
type Suggestion struct {
	Text           string
	InsertionPoint int
}

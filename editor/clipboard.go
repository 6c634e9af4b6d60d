package editor

// Clipboard connects copy, cut and paste to the host.
//
// Errors are ignored; a failing clipboard never interrupts editing.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

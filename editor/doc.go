// Package editor provides a Bubble Tea text input with inline AI completion.
//
// The Model renders a surface.Surface, turns key presses, pastes and mouse
// clicks into surface edits, and forwards the resulting input and cursor
// activity to a suggest.Controller. Suggestions appear as ghost text at the
// caret; the accept key (Tab, or Space on touch terminals) commits them.
//
// Host integration mirrors a form control: string and boolean attributes
// (value, placeholder, disabled, readonly, required, name, prompt, apiUrl,
// disableAI, autofocus), focus and selection methods, change events and a
// pluggable completion.Provider.
package editor

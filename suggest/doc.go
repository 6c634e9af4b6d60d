// Package suggest drives the inline suggestion lifecycle of the widget.
//
// A Controller owns the ghost suggestion shown on a surface. Hosts report
// input, cursor activity, key presses and focus changes; the controller
// debounces them, asks a completion.Provider for text, places the result as
// the surface's suggestion run and commits or discards it.
//
// All methods must be called from the Bubble Tea update loop. Provider calls
// and debounce windows run as tea.Cmds and report back through Update.
package suggest

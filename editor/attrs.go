package editor

import (
	"errors"
	"strings"

	"github.com/iw2rmb/ghostline/completion"
)

// Attribute names accepted by SetAttribute and friends.
const (
	AttrValue       = "value"
	AttrPlaceholder = "placeholder"
	AttrDisabled    = "disabled"
	AttrReadOnly    = "readonly"
	AttrRequired    = "required"
	AttrAutofocus   = "autofocus"
	AttrName        = "name"
	AttrPrompt      = "prompt"
	AttrAPIURL      = "apiurl"
	AttrDisableAI   = "disableai"
)

// ErrValueMissing is returned by Validate for a required, empty widget.
var ErrValueMissing = errors.New("editor: value missing")

type attrID int

const (
	attrValue attrID = iota
	attrPlaceholder
	attrDisabled
	attrReadOnly
	attrRequired
	attrAutofocus
	attrName
	attrPrompt
	attrAPIURL
	attrDisableAI
	attrCount
)

var attrNames = [attrCount]string{
	attrValue:       AttrValue,
	attrPlaceholder: AttrPlaceholder,
	attrDisabled:    AttrDisabled,
	attrReadOnly:    AttrReadOnly,
	attrRequired:    AttrRequired,
	attrAutofocus:   AttrAutofocus,
	attrName:        AttrName,
	attrPrompt:      AttrPrompt,
	attrAPIURL:      AttrAPIURL,
	attrDisableAI:   AttrDisableAI,
}

// attributes is a fixed-size attribute table so Model copies never alias.
type attributes struct {
	present [attrCount]bool
	values  [attrCount]string
}

// lookupAttr resolves a name case-insensitively ("apiUrl" == "apiurl").
func lookupAttr(name string) (attrID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range attrNames {
		if n == name {
			return attrID(id), true
		}
	}
	return 0, false
}

func (a attributes) has(id attrID) bool { return a.present[id] }
func (a attributes) get(id attrID) string { return a.values[id] }
func (a *attributes) set(id attrID, v string) { a.present[id], a.values[id] = true, v }
func (a *attributes) remove(id attrID) { a.present[id], a.values[id] = false, "" }

// SetAttribute sets an attribute and applies its effect. Boolean attributes
// are on while present, whatever their value. Unknown names are ignored.
func (m Model) SetAttribute(name, value string) Model {
	id, ok := lookupAttr(name)
	if !ok {
		return m
	}
	old, had := m.attrs.get(id), m.attrs.has(id)
	m.attrs.set(id, value)
	if had && old == value && id != attrValue {
		return m
	}
	m.attributeChanged(id)
	return m
}

// GetAttribute returns the attribute value and whether it is present. The
// value attribute reads the live content.
func (m Model) GetAttribute(name string) (string, bool) {
	id, ok := lookupAttr(name)
	if !ok {
		return "", false
	}
	if id == attrValue {
		return m.surf.Text(), m.attrs.has(id)
	}
	return m.attrs.get(id), m.attrs.has(id)
}

func (m Model) HasAttribute(name string) bool {
	id, ok := lookupAttr(name)
	return ok && m.attrs.has(id)
}

// RemoveAttribute removes an attribute. Removing value keeps the content.
func (m Model) RemoveAttribute(name string) Model {
	id, ok := lookupAttr(name)
	if !ok || !m.attrs.has(id) {
		return m
	}
	m.attrs.remove(id)
	if id != attrValue {
		m.attributeChanged(id)
	}
	return m
}

func (m *Model) attributeChanged(id attrID) {
	switch id {
	case attrValue:
		m.ctrl.Clear()
		m.surf.SetText(m.attrs.get(attrValue))
	case attrDisabled:
		if m.attrs.has(attrDisabled) && m.focused {
			m.focused = false
			m.ctrl.HandleBlur()
		}
	case attrPrompt:
		m.ctrl.SetPrompt(m.attrs.get(attrPrompt))
	case attrAPIURL:
		if !m.customProvider {
			m.ctrl.SetProvider(m.httpProvider())
		}
	case attrDisableAI:
		m.ctrl.SetDisabled(m.attrs.has(attrDisableAI))
	}
	m.rebuildContent()
}

func (m *Model) setBool(id attrID, v bool) {
	if v == m.attrs.has(id) {
		return
	}
	if v {
		m.attrs.set(id, "")
	} else {
		m.attrs.remove(id)
	}
	m.attributeChanged(id)
}

func (m *Model) setString(id attrID, v string) {
	*m = m.SetAttribute(attrNames[id], v)
}

func (m Model) httpProvider() completion.Provider {
	return completion.NewHTTPProvider(m.attrs.get(attrAPIURL), completion.WithLogger(m.logger))
}

// Value returns the content, never including a shown suggestion.
func (m Model) Value() string { return m.surf.Text() }

// SetValue replaces the content and drops any suggestion. It does not fire
// OnChange.
func (m Model) SetValue(v string) Model {
	m.setString(attrValue, v)
	return m
}

func (m Model) Placeholder() string { return m.attrs.get(attrPlaceholder) }

func (m Model) SetPlaceholder(v string) Model {
	m.setString(attrPlaceholder, v)
	return m
}

func (m Model) Name() string { return m.attrs.get(attrName) }

func (m Model) SetName(v string) Model {
	m.setString(attrName, v)
	return m
}

func (m Model) APIURL() string { return m.attrs.get(attrAPIURL) }

func (m Model) SetAPIURL(v string) Model {
	m.setString(attrAPIURL, v)
	return m
}

func (m Model) Disabled() bool { return m.attrs.has(attrDisabled) }

func (m Model) SetDisabled(v bool) Model {
	m.setBool(attrDisabled, v)
	return m
}

func (m Model) ReadOnly() bool { return m.attrs.has(attrReadOnly) }

func (m Model) SetReadOnly(v bool) Model {
	m.setBool(attrReadOnly, v)
	return m
}

func (m Model) Required() bool { return m.attrs.has(attrRequired) }

func (m Model) SetRequired(v bool) Model {
	m.setBool(attrRequired, v)
	return m
}

func (m Model) Autofocus() bool { return m.attrs.has(attrAutofocus) }

func (m Model) DisableAI() bool { return m.attrs.has(attrDisableAI) }

func (m Model) SetDisableAI(v bool) Model {
	m.setBool(attrDisableAI, v)
	return m
}

func (m Model) Prompt() string { return m.attrs.get(attrPrompt) }

// SetPrompt sets the style prompt. An empty prompt removes the attribute.
func (m Model) SetPrompt(v string) Model {
	if v == "" {
		return m.RemoveAttribute(AttrPrompt)
	}
	m.setString(attrPrompt, v)
	return m
}

// Validate reports ErrValueMissing when the widget is required and empty.
func (m Model) Validate() error {
	if m.Required() && m.Value() == "" {
		return ErrValueMissing
	}
	return nil
}

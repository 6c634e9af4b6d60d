package device

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

func env(kv map[string]string) func(string) string {
	return func(k string) string { return kv[k] }
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{name: "plain", env: nil, want: false},
		{name: "termux", env: map[string]string{"TERMUX_VERSION": "0.118"}, want: true},
		{name: "ish", env: map[string]string{"ISH_VERSION": "1.3"}, want: true},
		{name: "override on", env: map[string]string{"GHOSTLINE_TOUCH": "true"}, want: true},
		{name: "override off", env: map[string]string{"GHOSTLINE_TOUCH": "0", "TERMUX_VERSION": "1"}, want: false},
		{name: "bad override", env: map[string]string{"GHOSTLINE_TOUCH": "maybe"}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(env(tc.env)).Touch; got != tc.want {
				t.Fatalf("touch: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAcceptKey(t *testing.T) {
	tab := tea.KeyMsg{Type: tea.KeyTab}
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	if !key.Matches(tab, Pointer().AcceptKey()) {
		t.Fatalf("pointer devices accept with tab")
	}
	if key.Matches(space, Pointer().AcceptKey()) {
		t.Fatalf("pointer devices must not accept with space")
	}
	if !key.Matches(space, Touchscreen().AcceptKey()) {
		t.Fatalf("touch devices accept with space")
	}
	if key.Matches(tab, Touchscreen().AcceptKey()) {
		t.Fatalf("touch devices must not accept with tab")
	}
}

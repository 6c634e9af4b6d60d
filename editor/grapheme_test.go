package editor

import "testing"

func TestCellText(t *testing.T) {
	tests := []struct {
		g         string
		col       int
		wantText  string
		wantWidth int
	}{
		{"a", 0, "a", 1},
		{"界", 0, "界", 2},
		{"\t", 0, "    ", 4},
		{"\t", 1, "   ", 3},
		{"\t", 4, "    ", 4},
		{"é", 0, "é", 1},
	}
	for _, tt := range tests {
		text, w := cellText(tt.g, tt.col)
		if text != tt.wantText || w != tt.wantWidth {
			t.Fatalf("cellText(%q, %d): got (%q, %d), want (%q, %d)", tt.g, tt.col, text, w, tt.wantText, tt.wantWidth)
		}
	}
}

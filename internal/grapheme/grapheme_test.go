package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	family := "\U0001F468\u200d\U0001F469\u200d\U0001F467"
	text := "a" + "é" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len: got %d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]: got %q, want %q", got[1], "é")
	}
	if got[2] != family {
		t.Fatalf("split[2]: got %q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count: got %d, want %d", c, 4)
	}
	if j := Join(got); j != text {
		t.Fatalf("join: got %q, want %q", j, text)
	}
}

func TestFirstLast(t *testing.T) {
	if got := First("éx"); got != "é" {
		t.Fatalf("first: got %q", got)
	}
	if got := Last("xé"); got != "é" {
		t.Fatalf("last: got %q", got)
	}
	if First("") != "" || Last("") != "" {
		t.Fatalf("first/last of empty text must be empty")
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") || !IsSpace("\n") {
		t.Fatalf("tab and newline should be space")
	}
	if IsSpace("a") || IsSpace("") {
		t.Fatalf("letter and empty cluster should not be space")
	}
	for _, p := range []string{".", ",", "!", "?", ";", ":"} {
		if !IsJoinPunct(p) {
			t.Fatalf("%q should be join punctuation", p)
		}
	}
	if IsJoinPunct("-") || IsJoinPunct("a") {
		t.Fatalf("dash and letter are not join punctuation")
	}
	if !IsNewline("\r\n") || IsNewline(" ") {
		t.Fatalf("newline classification")
	}
}

func TestHasASCIILetter(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{text: "hello", want: true},
		{text: "123 ,.", want: false},
		{text: "你好", want: false},
		{text: "你好 Go", want: true},
		{text: "", want: false},
	}
	for _, tc := range cases {
		if got := HasASCIILetter(tc.text); got != tc.want {
			t.Fatalf("HasASCIILetter(%q): got %v, want %v", tc.text, got, tc.want)
		}
	}
}

// Package grapheme wraps uniseg with the few cluster helpers the surface,
// caret tracker and spacing heuristic share.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in logical order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// First returns the first cluster of text, or "" for empty text.
func First(text string) string {
	if text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	if !g.Next() {
		return ""
	}
	return g.Str()
}

// Last returns the last cluster of text, or "" for empty text.
func Last(text string) string {
	clusters := Split(text)
	if len(clusters) == 0 {
		return ""
	}
	return clusters[len(clusters)-1]
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNewline reports whether cluster is a line break ("\n" or "\r\n").
func IsNewline(cluster string) bool {
	return cluster == "\n" || cluster == "\r\n"
}

// IsJoinPunct reports whether cluster is one of the sentence punctuation
// marks a following word attaches to without a space: . , ! ? ; :
func IsJoinPunct(cluster string) bool {
	switch cluster {
	case ".", ",", "!", "?", ";", ":":
		return true
	}
	return false
}

// HasASCIILetter reports whether text contains at least one of a-z or A-Z.
func HasASCIILetter(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}

package rag

import "strings"

// Keywords lowercases text and returns its whitespace-delimited tokens as a set.
func Keywords(text string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

package pysrc

import "strings"

// ExtractSubstring returns the part of text strictly between the first
// occurrence of startMarker and the first occurrence of endMarker after it.
// When either marker is missing the original text is returned unchanged, so
// callers must tolerate untrimmed input.
func ExtractSubstring(text string, startMarker string, endMarker string) string {
	start := strings.Index(text, startMarker)
	if start < 0 {
		return text
	}
	start += len(startMarker)
	end := strings.Index(text[start:], endMarker)
	if end < 0 {
		return text
	}
	return text[start : start+end]
}

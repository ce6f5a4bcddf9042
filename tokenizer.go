package search

import "strings"

// splitIntoWords splits text on runs of ASCII space (0x20) characters.
// Leading, trailing and repeated internal spaces produce no empty tokens.
// No other whitespace is treated as a separator, matching
// string_processing.cpp's SplitIntoWords/SplitIntoWordsView.
func splitIntoWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ' ' })
	return fields
}

// hasControlByte reports whether text contains a byte in [0x00, 0x1F],
// the validation every entry point runs before touching its input (spec.md
// §3 and §4.C).
func hasControlByte(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < 0x20 {
			return true
		}
	}
	return false
}

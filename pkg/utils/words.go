package utils

import (
	"fmt"
	"strings"
)

// CountWords counts whitespace-delimited words. Soft line breaks are
// whitespace like any other, so the count is stable across fill and
// unfill.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// FormatWordCount formats a word count for the status bar
func FormatWordCount(words int) string {
	if words == 1 {
		return "1 word"
	}
	if words < 10000 {
		return fmt.Sprintf("%d words", words)
	}
	return fmt.Sprintf("%.1fK words", float64(words)/1000)
}

// Package readingtime estimates how long a Markdown body takes to read.
//
// Every function is pure and holds no state, so the package is safe for
// concurrent use by any number of rendering contexts.
package readingtime

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultWordsPerMinute is the reading speed used when none is given.
const DefaultWordsPerMinute = 200

var (
	fencedCode = regexp.MustCompile("(?s)```.*?```")
	inlineCode = regexp.MustCompile("`[^`]*`")
	image      = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	link       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	emphasis   = regexp.MustCompile(`[#*_~]`)
)

// Strip removes Markdown syntax that should not count as prose.
// The order matters: code goes first so that brackets or asterisks inside
// code never reach the link and emphasis passes.
func Strip(text string) string {
	text = fencedCode.ReplaceAllString(text, "")
	text = inlineCode.ReplaceAllString(text, "")
	text = image.ReplaceAllString(text, "")
	text = link.ReplaceAllString(text, "$1")
	text = emphasis.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// CountWords returns the number of whitespace-delimited tokens left after Strip.
func CountWords(text string) int {
	return len(strings.Fields(Strip(text)))
}

// Calculate returns the reading time in whole minutes, rounded up.
// A non-positive wordsPerMinute falls back to DefaultWordsPerMinute.
// Text with no words yields 0.
func Calculate(text string, wordsPerMinute int) int {
	return Minutes(CountWords(text), wordsPerMinute)
}

// Minutes converts a word count into whole minutes, rounded up.
func Minutes(words, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	if words <= 0 {
		return 0
	}
	minutes := words / wordsPerMinute
	if words%wordsPerMinute != 0 {
		minutes++
	}
	return minutes
}

// Format renders minutes for display.
func Format(minutes int) string {
	switch {
	case minutes < 1:
		return "Less than 1 min read"
	case minutes == 1:
		return "1 min read"
	default:
		return fmt.Sprintf("%d min read", minutes)
	}
}

// Get calculates and formats the reading time at the default speed.
func Get(text string) string {
	return Format(Calculate(text, DefaultWordsPerMinute))
}

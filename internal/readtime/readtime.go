// Package readtime estimates how long a post takes to read.
package readtime

import (
	"regexp"
	"strings"
)

// wordsPerMinute is the assumed average reading speed.
const wordsPerMinute = 200

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Estimate returns the estimated reading time in minutes for an HTML
// content string. Tags are stripped with a non-validating regex, the
// remaining text is split on whitespace runs, and the word count is
// divided by the reading speed, rounded up. Empty content yields 0.
func Estimate(content string) int {
	text := tagPattern.ReplaceAllString(content, "")
	words := len(strings.Fields(text))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

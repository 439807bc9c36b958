// Package nlp extracts named entities from document text and produces a
// short extractive summary.
//
// Both operations run on top of prose's statistical models. The Engine is
// the process-wide handle to that machinery: create one at startup and
// inject it wherever entity extraction or summarization is needed; it is
// read-only and safe for concurrent use.
package nlp

import (
	"regexp"
	"strings"
)

// Bounds and thresholds for text processing. Entity extraction tolerates a
// much longer prefix than summarization, which runs over the full combined
// text and has a stricter performance budget.
const (
	entityTextLimit  = 100000
	summaryTextLimit = 10000
	summarySentences = 5
	summaryMinChars  = 100
	fallbackChars    = 300
)

// Engine provides entity extraction and summarization.
type Engine struct{}

// NewEngine creates the shared NLP engine.
func NewEngine() *Engine {
	return &Engine{}
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Letters and digits from any script count as word characters; Go's
	// \w would be ASCII-only and strip accented text.
	disallowedRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,;:!?()-]`)
	numericRe    = regexp.MustCompile(`^\p{N}+$`)
)

// Clean collapses whitespace runs to a single space and strips characters
// outside the allowed set (word characters, whitespace and basic
// punctuation), which otherwise confuse the NLP models.
func Clean(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = disallowedRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// truncate returns at most limit runes of s.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

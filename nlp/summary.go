package nlp

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Summarize returns a short extractive summary: the first few sentences of
// the cleaned text, segmenting at most summaryTextLimit runes of it. When
// those sentences are too short to be useful (dense headers or tables tend
// to segment into tiny fragments), a fixed-length prefix of the full
// cleaned text is returned instead.
func (e *Engine) Summarize(text string) (string, error) {
	cleaned := Clean(text)
	if cleaned == "" {
		return "", nil
	}
	doc, err := prose.NewDocument(truncate(cleaned, summaryTextLimit),
		prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return "", fmt.Errorf("sentence segmentation: %w", err)
	}

	sents := doc.Sentences()
	n := summarySentences
	if len(sents) < n {
		n = len(sents)
	}
	parts := make([]string, 0, n)
	for _, s := range sents[:n] {
		parts = append(parts, strings.TrimSpace(s.Text))
	}
	return fallbackSummary(strings.Join(parts, " "), cleaned), nil
}

// fallbackSummary swaps an unhelpfully short sentence summary for a prefix
// of the cleaned source plus an ellipsis marker. The source must itself
// exceed summaryMinChars, otherwise the sentence summary already covers
// everything there is. Both thresholds count characters, not bytes.
func fallbackSummary(summary, cleaned string) string {
	if len([]rune(summary)) < summaryMinChars && len([]rune(cleaned)) > summaryMinChars {
		return truncate(cleaned, fallbackChars) + "..."
	}
	return summary
}

// Package structure infers a document outline from page text.
//
// Headings are detected with textual heuristics rather than PDF style or
// font metadata, which is frequently missing or inconsistent. The trade-off
// is precision: short all-caps prose or capitalized proper-noun lines can
// produce false section boundaries. That limitation is accepted and left
// as-is.
package structure

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ChicagoSwoles/PDF-Intelligence/model"
)

// HeadingMaxLen is the length (in runes) at or above which a line is never
// considered a heading.
const HeadingMaxLen = 100

var (
	// enumeratedRe matches enumerated headings: "3. Results"
	enumeratedRe = regexp.MustCompile(`^[0-9]+\.\s+[A-Z]`)

	// titleCaseRe matches short Title-Case phrases of 1-4 words.
	titleCaseRe = regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+){0,3}$`)

	// wordRe matches alphanumeric runs for word counting. Letters and
	// digits from any script count; \w would be ASCII-only.
	wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// Analyzer partitions a document into sections and estimates its word
// count.
type Analyzer struct{}

// Analyze walks the pages in order, opening a new section at every line
// that looks like a heading. It returns the inferred structure together
// with the combined text of all pages, which later stages (entities,
// summary) consume. A section's span runs until the next section's start;
// consumers compute spans from successive StartPage values.
func (Analyzer) Analyze(pages []model.Page) (model.DocumentStructure, string) {
	st := model.DocumentStructure{TotalPages: len(pages)}

	var combined strings.Builder
	var open *model.Section
	for _, page := range pages {
		combined.WriteString(page.Text)
		combined.WriteByte('\n')
		st.WordCount += len(wordRe.FindAllString(page.Text, -1))

		for _, line := range strings.Split(page.Text, "\n") {
			line = strings.TrimSpace(line)
			if !IsHeading(line) {
				continue
			}
			if open != nil {
				st.Sections = append(st.Sections, *open)
			}
			open = &model.Section{Heading: line, StartPage: page.Index}
		}
	}
	if open != nil {
		st.Sections = append(st.Sections, *open)
	}
	return st, combined.String()
}

// IsHeading reports whether a trimmed line qualifies as a section heading:
// shorter than HeadingMaxLen and either entirely upper-case, an enumerated
// heading ("3. Results"), or a short Title-Case phrase.
func IsHeading(line string) bool {
	if line == "" || len([]rune(line)) >= HeadingMaxLen {
		return false
	}
	return isUpper(line) || enumeratedRe.MatchString(line) || titleCaseRe.MatchString(line)
}

// isUpper reports whether the line contains at least one cased letter and
// no lower-case letters.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

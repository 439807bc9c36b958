package structure

import (
	"strings"
	"testing"

	"github.com/ChicagoSwoles/PDF-Intelligence/model"
)

func TestIsHeading(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"all caps", "INTRODUCTION", true},
		{"all caps with spaces", "RESULTS AND DISCUSSION", true},
		{"enumerated", "1. Introduction", true},
		{"enumerated multi digit", "12. Results", true},
		{"title case single word", "Introduction", true},
		{"title case four words", "Results Of The Study", true},
		{"title case five words", "Results Of The Long Study", false},
		{"lowercase prose", "this is ordinary prose", false},
		{"mixed case prose", "The experiment was run twice.", false},
		{"empty", "", false},
		{"too long", strings.Repeat("A", 100), false},
		{"just under limit", strings.Repeat("A", 99), true},
		{"enumerated lowercase", "1. introduction", false},
		{"digits only", "12345", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHeading(tt.line); got != tt.want {
				t.Errorf("IsHeading(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestAnalyzeSections(t *testing.T) {
	pages := []model.Page{
		{Index: 1, Text: "ABSTRACT\nWe study a thing in depth and report on it here at length."},
		{Index: 2, Text: "some continuing prose without any headings in it at all, just words."},
		{Index: 3, Text: "2. Results\nthe numbers were good."},
	}
	st, combined := Analyzer{}.Analyze(pages)

	if st.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", st.TotalPages)
	}
	if len(st.Sections) != 2 {
		t.Fatalf("got %d sections, want 2: %+v", len(st.Sections), st.Sections)
	}
	if st.Sections[0].Heading != "ABSTRACT" || st.Sections[0].StartPage != 1 {
		t.Errorf("section 0: %+v", st.Sections[0])
	}
	if st.Sections[1].Heading != "2. Results" || st.Sections[1].StartPage != 3 {
		t.Errorf("section 1: %+v", st.Sections[1])
	}
	for _, p := range pages {
		if !strings.Contains(combined, strings.Split(p.Text, "\n")[0]) {
			t.Errorf("combined text missing content of page %d", p.Index)
		}
	}
}

func TestAnalyzeUppercaseLineAlwaysOpensSection(t *testing.T) {
	pages := []model.Page{{Index: 1, Text: "SHOUTY HEADING"}}
	st, _ := Analyzer{}.Analyze(pages)
	if len(st.Sections) != 1 || st.Sections[0].StartPage != 1 {
		t.Fatalf("uppercase line did not open a section: %+v", st.Sections)
	}
}

func TestAnalyzeWordCount(t *testing.T) {
	pages := []model.Page{
		{Index: 1, Text: "one two three"},
		{Index: 2, Text: "four, five; six-seven"},
	}
	st, _ := Analyzer{}.Analyze(pages)
	if st.WordCount != 7 {
		t.Errorf("WordCount = %d, want 7", st.WordCount)
	}
}

func TestAnalyzeWordCountAccentedText(t *testing.T) {
	// Accented letters belong to their word; an ASCII-only class would
	// split "Über" into two runs and inflate the count.
	pages := []model.Page{
		{Index: 1, Text: "Über die Brücke nach München"},
	}
	st, _ := Analyzer{}.Analyze(pages)
	if st.WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", st.WordCount)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	st, combined := Analyzer{}.Analyze(nil)
	if st.TotalPages != 0 || st.WordCount != 0 || len(st.Sections) != 0 {
		t.Errorf("unexpected structure for empty input: %+v", st)
	}
	if combined != "" {
		t.Errorf("combined = %q, want empty", combined)
	}
}

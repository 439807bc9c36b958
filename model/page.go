package model

// Page holds the extracted plain text of a single physical page.
type Page struct {
	Index int    // 1-based page number
	Text  string // text in content-stream reading order
}

// Section is a detected structural unit of the document. A section spans
// from StartPage until the next section's start; the last section runs to
// the end of the document.
type Section struct {
	Heading   string `json:"heading"`
	StartPage int    `json:"page"`
}

// DocumentStructure describes the inferred outline of a document.
type DocumentStructure struct {
	TotalPages int       `json:"total_pages"`
	Sections   []Section `json:"sections"`
	WordCount  int       `json:"estimated_word_count"`
}

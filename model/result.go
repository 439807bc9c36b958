package model

// Entity is a deduplicated named entity found in the document text.
// Original casing is preserved for display; uniqueness is keyed on the
// lowercased text together with the label.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// AnalysisResult aggregates everything derived from one document. It is
// fully self-contained: consumers never need access to the source bytes.
type AnalysisResult struct {
	Filename  string            `json:"filename"`
	Summary   string            `json:"summary"`
	Structure DocumentStructure `json:"structure"`
	Entities  []Entity          `json:"entities"`
	Images    []ImageRecord     `json:"images"`
	PageCount int               `json:"page_count"`
	Pages     []string          `json:"text_by_page"`
}

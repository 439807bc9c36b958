package model

import (
	"encoding/base64"
	"encoding/json"
)

// ChartKind is the coarse chart subtype assigned by the chart classifier.
type ChartKind string

const (
	ChartBar   ChartKind = "bar"
	ChartLine  ChartKind = "line"
	ChartOther ChartKind = "other"
)

// PixelSize holds the pixel dimensions of a decoded bitmap.
type PixelSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ImageRecord is one embedded image extracted from a page, enriched with
// recognized text and a chart classification. After enrichment a record is
// never mutated.
//
// Invariant: IsChart == false implies ChartKind == "".
type ImageRecord struct {
	PageIndex      int       `json:"page"`
	Position       BBox      `json:"position"`
	PNG            []byte    `json:"-"` // lossless transport encoding of the decoded bitmap
	Size           PixelSize `json:"size"`
	SourceFormat   string    `json:"format"` // original embedded codec (jpg, png, tiff, ...)
	RecognizedText string    `json:"ocr_text"`
	IsChart        bool      `json:"is_chart"`
	ChartKind      ChartKind `json:"chart_type,omitempty"`
}

// DataURI returns the transport encoding as a data URI suitable for direct
// embedding in markup. The transport encoding is always PNG regardless of
// the source format.
func (r *ImageRecord) DataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(r.PNG)
}

// MarshalJSON emits the bitmap as a tagged data URI under the "image" key
// alongside the plain fields.
func (r ImageRecord) MarshalJSON() ([]byte, error) {
	type alias ImageRecord
	return json.Marshal(struct {
		alias
		Image string `json:"image"`
	}{alias(r), r.DataURI()})
}

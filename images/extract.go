package images

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"sort"

	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ChicagoSwoles/PDF-Intelligence/document"
	"github.com/ChicagoSwoles/PDF-Intelligence/model"
)

// Extracted is one successfully decoded embedded image. The Bitmap is kept
// alongside the PNG transport encoding so later stages never re-decode.
type Extracted struct {
	PageIndex    int
	Name         string // XObject resource name
	Position     model.BBox
	Bitmap       image.Image
	PNG          []byte
	SourceFormat string // original embedded codec
}

// Outcome is the per-image result variant. Exactly one of Image or Skipped
// is set; a skipped image carries its diagnostic reason and is never
// surfaced as a request failure.
type Outcome struct {
	Image   *Extracted
	Skipped string
}

// OK reports whether the image survived extraction.
func (o Outcome) OK() bool { return o.Image != nil }

// Extractor pulls embedded images out of an opened document.
type Extractor struct {
	log *slog.Logger
}

// NewExtractor creates an Extractor. A nil logger falls back to the
// process default.
func NewExtractor(log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{log: log}
}

// Extract returns one Outcome per embedded image, in ascending page order
// and then ascending object number within a page. The explicit page walk
// keeps the output order deterministic across runs. A page whose images
// cannot be enumerated is logged and skipped without touching the other
// pages; per-image failures yield Skipped entries.
func (e *Extractor) Extract(doc *document.Document) []Outcome {
	var outcomes []Outcome
	for pageNr := 1; pageNr <= doc.PageCount(); pageNr++ {
		byObjNr, err := doc.PageImages(pageNr)
		if err != nil {
			e.log.Warn("image enumeration failed", "page", pageNr, "error", err)
			continue
		}
		if len(byObjNr) == 0 {
			continue
		}
		objNrs := make([]int, 0, len(byObjNr))
		for nr := range byObjNr {
			objNrs = append(objNrs, nr)
		}
		sort.Ints(objNrs)

		placements := doc.ImagePlacements(pageNr)
		for _, nr := range objNrs {
			outcomes = append(outcomes, e.processOne(byObjNr[nr], placements))
		}
	}
	return outcomes
}

func (e *Extractor) processOne(raw pdfmodel.Image, placements map[string]model.BBox) Outcome {
	skip := func(err error) Outcome {
		e.log.Warn("skipping image",
			"page", raw.PageNr, "name", raw.Name, "error", err)
		return Outcome{Skipped: err.Error()}
	}

	data, err := io.ReadAll(raw)
	if err != nil {
		return skip(fmt.Errorf("read image stream: %w", err))
	}
	bmp, err := Decode(data, raw.FileType)
	if err != nil {
		return skip(err)
	}
	bmp = Normalize(bmp)
	encoded, err := EncodePNG(bmp)
	if err != nil {
		return skip(err)
	}

	return Outcome{Image: &Extracted{
		PageIndex:    raw.PageNr,
		Name:         raw.Name,
		Position:     placements[raw.Name],
		Bitmap:       bmp,
		PNG:          encoded,
		SourceFormat: raw.FileType,
	}}
}

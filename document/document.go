package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ChicagoSwoles/PDF-Intelligence/model"
)

// ErrDocumentParse reports that the submitted bytes cannot be opened as a
// valid PDF. It is fatal for the whole analysis: no partial result exists.
var ErrDocumentParse = errors.New("document cannot be parsed")

// Document is an opened PDF. It is immutable after Load and discarded once
// an analysis completes; nothing is persisted.
type Document struct {
	ctx *pdfmodel.Context
}

// Load validates and opens PDF bytes.
func Load(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDocumentParse)
	}
	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	return &Document{ctx: ctx}, nil
}

// PageCount returns the number of physical pages.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// PageImages returns the embedded images the page uses, keyed by object
// number. Streams come back in the codec they are stored in; decoding
// them is the caller's concern.
func (d *Document) PageImages(pageNr int) (map[int]pdfmodel.Image, error) {
	return pdfcpu.ExtractPageImages(d.ctx, pageNr, false)
}

// ExtractPages returns one Page per physical page, in increasing page
// order. Pages whose content cannot be read yield empty text rather than
// an error.
func (d *Document) ExtractPages() []model.Page {
	pages := make([]model.Page, 0, d.ctx.PageCount)
	for nr := 1; nr <= d.ctx.PageCount; nr++ {
		pages = append(pages, model.Page{Index: nr, Text: d.pageText(nr)})
	}
	return pages
}

func (d *Document) pageText(pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(d.ctx, pageNr)
	if err != nil || r == nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromContent(data)
}

// ImagePlacements returns the bounding box, in page coordinates, of each
// image XObject drawn on the page, keyed by resource name. Images the
// content stream never draws are absent.
func (d *Document) ImagePlacements(pageNr int) map[string]model.BBox {
	r, err := pdfcpu.ExtractPageContent(d.ctx, pageNr)
	if err != nil || r == nil {
		return nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil
	}
	return placementsFromContent(data)
}

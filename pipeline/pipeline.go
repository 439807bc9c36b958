// Package pipeline runs the full document analysis: per-page text, image
// extraction with recognition and chart classification, structural
// sections, named entities and a short summary, merged into one
// self-contained result.
//
// One analysis is processed start to finish by a single worker; the stages
// share nothing mutable between requests. Between stages the pipeline
// honours context cancellation as a cooperative abort signal.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/ChicagoSwoles/PDF-Intelligence/charts"
	"github.com/ChicagoSwoles/PDF-Intelligence/document"
	"github.com/ChicagoSwoles/PDF-Intelligence/images"
	"github.com/ChicagoSwoles/PDF-Intelligence/model"
	"github.com/ChicagoSwoles/PDF-Intelligence/nlp"
	"github.com/ChicagoSwoles/PDF-Intelligence/structure"
)

// Recognizer recognizes text in an encoded image. *ocr.Client implements
// it; a nil Recognizer disables recognition entirely.
type Recognizer interface {
	RecognizeImage(imageData []byte) (string, error)
}

// Config assembles a Pipeline's collaborators. Zero values get defaults;
// the NLP engine should be shared process-wide rather than rebuilt per
// pipeline.
type Config struct {
	OCR    Recognizer
	Charts *charts.Classifier
	NLP    *nlp.Engine
	Logger *slog.Logger
}

// Pipeline analyzes documents. Safe for concurrent use as long as its
// Recognizer is (the gosseract client is not; give each pipeline its own).
type Pipeline struct {
	ocr    Recognizer
	charts charts.Classifier
	nlp    *nlp.Engine
	log    *slog.Logger
}

// New creates a Pipeline from cfg.
func New(cfg Config) *Pipeline {
	p := &Pipeline{
		ocr:    cfg.OCR,
		charts: charts.Default(),
		nlp:    cfg.NLP,
		log:    cfg.Logger,
	}
	if cfg.Charts != nil {
		p.charts = *cfg.Charts
	}
	if p.nlp == nil {
		p.nlp = nlp.NewEngine()
	}
	if p.log == nil {
		p.log = slog.Default()
	}
	return p
}

// Analyze runs every stage over the document bytes. It fails only when the
// bytes cannot be opened as a PDF (document.ErrDocumentParse) or the
// context is cancelled; every per-image or NLP failure degrades locally
// and is logged instead.
func (p *Pipeline) Analyze(ctx context.Context, filename string, data []byte) (*model.AnalysisResult, error) {
	doc, err := document.Load(data)
	if err != nil {
		return nil, err
	}

	pages := doc.ExtractPages()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st, combined := structure.Analyzer{}.Analyze(pages)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := p.processImages(doc)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entities, err := p.nlp.Entities(combined)
	if err != nil {
		p.log.Warn("entity extraction failed", "file", filename, "error", err)
		entities = nil
	}
	summary, err := p.nlp.Summarize(combined)
	if err != nil {
		p.log.Warn("summarization failed", "file", filename, "error", err)
		summary = ""
	}

	texts := make([]string, len(pages))
	for i, pg := range pages {
		texts[i] = pg.Text
	}

	return &model.AnalysisResult{
		Filename:  filename,
		Summary:   summary,
		Structure: st,
		Entities:  entities,
		Images:    records,
		PageCount: doc.PageCount(),
		Pages:     texts,
	}, nil
}

// processImages extracts every embedded image and enriches the survivors
// with recognized text and a chart classification. Decode failures were
// already logged and skipped by the extractor; recognition failures leave
// the record with empty text rather than dropping it.
func (p *Pipeline) processImages(doc *document.Document) []model.ImageRecord {
	outcomes := images.NewExtractor(p.log).Extract(doc)
	records := make([]model.ImageRecord, 0, len(outcomes))
	for _, out := range outcomes {
		if !out.OK() {
			continue
		}
		img := out.Image
		b := img.Bitmap.Bounds()
		rec := model.ImageRecord{
			PageIndex:    img.PageIndex,
			Position:     img.Position,
			PNG:          img.PNG,
			Size:         model.PixelSize{Width: b.Dx(), Height: b.Dy()},
			SourceFormat: img.SourceFormat,
		}
		if p.ocr != nil {
			text, err := p.ocr.RecognizeImage(img.PNG)
			if err != nil {
				p.log.Debug("text recognition failed",
					"page", img.PageIndex, "name", img.Name, "error", err)
			} else {
				rec.RecognizedText = text
			}
		}
		rec.IsChart, rec.ChartKind = p.charts.Classify(img.Bitmap)
		records = append(records, rec)
	}
	return records
}

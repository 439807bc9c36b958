// Package pdfintelligence provides a fluent API for producing a structured
// analytical summary of a PDF document: per-page text, detected sections,
// extracted images with recognized text and a chart classification,
// deduplicated named entities and a short extractive summary.
//
// Basic usage:
//
//	result, err := pdfintelligence.Open("report.pdf").Analyze(ctx)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Summary)
//
// With options:
//
//	result, err := pdfintelligence.Open("report.pdf").
//	    WithOCR(client).
//	    WithLogger(logger).
//	    Analyze(ctx)
//
// For finer control the pipeline package is also available directly.
package pdfintelligence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChicagoSwoles/PDF-Intelligence/model"
	"github.com/ChicagoSwoles/PDF-Intelligence/pipeline"
)

// Open prepares an Analyzer for a PDF file on disk. The file is read when
// Analyze is called.
func Open(filename string) *Analyzer {
	return &Analyzer{filename: filename, options: defaultOptions()}
}

// FromBytes prepares an Analyzer over in-memory PDF bytes. filename is
// carried through to the result for display only.
func FromBytes(filename string, data []byte) *Analyzer {
	return &Analyzer{filename: filename, data: data, options: defaultOptions()}
}

// Analyze runs the configured analysis.
func (a *Analyzer) Analyze(ctx context.Context) (*model.AnalysisResult, error) {
	data := a.data
	if data == nil {
		var err error
		data, err = os.ReadFile(a.filename)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", a.filename, err)
		}
	}
	p := pipeline.New(pipeline.Config{
		OCR:    a.options.ocr,
		Charts: a.options.charts,
		NLP:    a.options.nlp,
		Logger: a.options.logger,
	})
	return p.Analyze(ctx, filepath.Base(a.filename), data)
}

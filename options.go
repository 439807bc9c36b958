package pdfintelligence

import (
	"log/slog"

	"github.com/ChicagoSwoles/PDF-Intelligence/charts"
	"github.com/ChicagoSwoles/PDF-Intelligence/nlp"
	"github.com/ChicagoSwoles/PDF-Intelligence/pipeline"
)

// Analyzer is a configurable analysis of a single document. Configure it
// with the With* methods, then call Analyze.
type Analyzer struct {
	filename string
	data     []byte
	options  analyzeOptions
}

type analyzeOptions struct {
	ocr    pipeline.Recognizer
	charts *charts.Classifier
	nlp    *nlp.Engine
	logger *slog.Logger
}

func defaultOptions() analyzeOptions {
	return analyzeOptions{}
}

// WithOCR enables text recognition inside extracted images. Without it,
// recognized text is left empty.
func (a *Analyzer) WithOCR(r pipeline.Recognizer) *Analyzer {
	a.options.ocr = r
	return a
}

// WithChartClassifier overrides the chart heuristic thresholds.
func (a *Analyzer) WithChartClassifier(c charts.Classifier) *Analyzer {
	a.options.charts = &c
	return a
}

// WithNLP injects a shared NLP engine. Services analyzing many documents
// should create one engine at startup and pass it here.
func (a *Analyzer) WithNLP(e *nlp.Engine) *Analyzer {
	a.options.nlp = e
	return a
}

// WithLogger sets the logger for per-item diagnostics.
func (a *Analyzer) WithLogger(l *slog.Logger) *Analyzer {
	a.options.logger = l
	return a
}

package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoSwoles/PDF-Intelligence/document"
	"github.com/ChicagoSwoles/PDF-Intelligence/internal/pdftest"
	"github.com/ChicagoSwoles/PDF-Intelligence/nlp"
)

func testPipeline() *Pipeline {
	return New(Config{NLP: nlp.NewEngine(), Logger: slog.Default()})
}

func TestAnalyzeEndToEnd(t *testing.T) {
	data := pdftest.MinimalPDF(
		"INTRODUCTION\nThis report describes the annual performance of the team in detail.",
		"The middle page continues the discussion with more findings and numbers.",
		"CONCLUSION\nEverything went fine in the end.",
	)

	result, err := testPipeline().Analyze(context.Background(), "report.pdf", data)
	require.NoError(t, err)

	assert.Equal(t, "report.pdf", result.Filename)
	assert.Equal(t, 3, result.PageCount)
	require.Len(t, result.Pages, 3)
	assert.Contains(t, result.Pages[0], "INTRODUCTION")

	assert.Equal(t, 3, result.Structure.TotalPages)
	require.NotEmpty(t, result.Structure.Sections)
	assert.Equal(t, "INTRODUCTION", result.Structure.Sections[0].Heading)
	assert.Equal(t, 1, result.Structure.Sections[0].StartPage)
	assert.Greater(t, result.Structure.WordCount, 0)

	assert.NotEmpty(t, result.Summary)
	assert.Empty(t, result.Images, "minimal document embeds no images")
}

func TestAnalyzeParseFailureIsFatal(t *testing.T) {
	result, err := testPipeline().Analyze(context.Background(), "bad.pdf", []byte("not a pdf"))
	require.ErrorIs(t, err, document.ErrDocumentParse)
	assert.Nil(t, result, "no partial result on parse failure")
}

func TestAnalyzeHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := pdftest.MinimalPDF("JUST ONE PAGE\nwith a little text on it.")
	_, err := testPipeline().Analyze(ctx, "doc.pdf", data)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeDeterministicEntities(t *testing.T) {
	data := pdftest.MinimalPDF(
		"George Washington founded a company in Berlin. George Washington liked Berlin.",
	)
	p := testPipeline()

	first, err := p.Analyze(context.Background(), "a.pdf", data)
	require.NoError(t, err)
	second, err := p.Analyze(context.Background(), "a.pdf", data)
	require.NoError(t, err)
	assert.Equal(t, first.Entities, second.Entities)

	seen := map[string]bool{}
	for _, ent := range first.Entities {
		key := ent.Label + "\x00" + ent.Text
		assert.False(t, seen[key], "duplicate entity %q/%s", ent.Text, ent.Label)
		seen[key] = true
	}
}

type fakeRecognizer struct {
	text string
	err  error
}

func (f fakeRecognizer) RecognizeImage([]byte) (string, error) { return f.text, f.err }

func TestSerializeRecognizer(t *testing.T) {
	r := Serialize(fakeRecognizer{text: "hello"})
	got, err := r.RecognizeImage(nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	assert.Nil(t, Serialize(nil))
}

func TestRecognizerFailureDoesNotFailAnalysis(t *testing.T) {
	data := pdftest.MinimalPDF("A PAGE\nwith text but no images.")
	p := New(Config{
		OCR:    fakeRecognizer{err: errors.New("engine offline")},
		NLP:    nlp.NewEngine(),
		Logger: slog.Default(),
	})
	result, err := p.Analyze(context.Background(), "doc.pdf", data)
	require.NoError(t, err)
	require.NotNil(t, result)
}

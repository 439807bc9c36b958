package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoSwoles/PDF-Intelligence/internal/pdftest"
	"github.com/ChicagoSwoles/PDF-Intelligence/nlp"
	"github.com/ChicagoSwoles/PDF-Intelligence/pipeline"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()
	cfg := &Config{UploadDir: t.TempDir()}
	cfg.defaults()
	pipe := pipeline.New(pipeline.Config{NLP: nlp.NewEngine()})
	return New(cfg, pipe, nil).Router()
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorPayload {
	t.Helper()
	var payload errorPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	return payload
}

func TestAnalyzeNoFile(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no file provided", decodeError(t, rec).Error)
}

func TestAnalyzeEmptyFilename(t *testing.T) {
	srv := testServer(t)
	body, contentType := multipartUpload(t, "", []byte("irrelevant"))
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no file selected", decodeError(t, rec).Error)
}

func TestAnalyzeUnparsableDocument(t *testing.T) {
	srv := testServer(t)
	body, contentType := multipartUpload(t, "broken.pdf", []byte("not a pdf at all"))
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotEmpty(t, decodeError(t, rec).Error)
}

func TestAnalyzeSuccess(t *testing.T) {
	srv := testServer(t)
	pdf := pdftest.MinimalPDF("OVERVIEW\nA short report about nothing in particular, but long enough to summarize.")
	body, contentType := multipartUpload(t, "report.pdf", pdf)
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, "report.pdf", result["filename"])
	assert.Equal(t, float64(1), result["page_count"])
	assert.NotEmpty(t, result["summary"])
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoadConfigFileDefaults(t *testing.T) {
	cfg, err := LoadConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, "eng", cfg.OCRLanguage)
	assert.Positive(t, cfg.MaxUploadBytes)
}

func TestChartConfigClassifierDefaults(t *testing.T) {
	cl := ChartConfig{}.Classifier()
	assert.Equal(t, 50, cl.MaxPalette)

	tuned := ChartConfig{MaxPalette: 10, BarRatio: 1.5}.Classifier()
	assert.Equal(t, 10, tuned.MaxPalette)
	assert.Equal(t, 1.5, tuned.BarRatio)
	assert.Equal(t, 0.8, tuned.LineRatio)
}

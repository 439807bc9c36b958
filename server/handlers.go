package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ChicagoSwoles/PDF-Intelligence/document"
)

// errorPayload is the structured error returned to callers. Client input
// errors (no file, empty filename) answer 400 before the pipeline runs;
// unparsable documents answer 422 with no partial result.
type errorPayload struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: "no file provided"})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: "no file selected"})
		return
	}
	filename := filepath.Base(header.Filename)

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Error: "could not read upload"})
		return
	}

	// Spool the upload so the storage area reflects in-flight requests;
	// the file is transient and removed once analysis finishes.
	if spooled, err := s.spool(data); err == nil {
		defer os.Remove(spooled)
	} else {
		s.log.Warn("could not spool upload", "file", filename, "error", err)
	}

	result, err := s.pipe.Analyze(r.Context(), filename, data)
	switch {
	case errors.Is(err, document.ErrDocumentParse):
		writeJSON(w, http.StatusUnprocessableEntity, errorPayload{Error: err.Error()})
		return
	case err != nil:
		s.log.Error("analysis failed", "file", filename, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorPayload{Error: "analysis failed"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) spool(data []byte) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", err
	}
	f, err := os.CreateTemp(s.cfg.UploadDir, "upload-*.pdf")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

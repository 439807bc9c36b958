//go:build ocr

// Package ocr recognizes text embedded in images extracted from a
// document. It wraps the Tesseract engine via gosseract and therefore
// needs Tesseract installed on the system:
//
//	brew install tesseract        (macOS)
//	apt-get install tesseract-ocr (Ubuntu/Debian)
//
// Builds without the "ocr" tag get a stub whose calls fail with
// ErrNotEnabled; the analysis pipeline treats that as "no text
// recognized" rather than an error.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps a Tesseract session. It is not safe for concurrent use;
// create one client per pipeline.
type Client struct {
	tess *gosseract.Client
}

// New creates an OCR client. Close it when done to release the engine.
func New() (*Client, error) {
	return &Client{tess: gosseract.NewClient()}, nil
}

// Close releases engine resources.
func (c *Client) Close() error {
	if c.tess != nil {
		return c.tess.Close()
	}
	return nil
}

// SetLanguage selects the recognition language(s), "+"-separated for
// multiple (e.g. "eng+deu"). The default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.tess.SetLanguage(lang)
}

// RecognizeImage runs recognition over encoded image bytes (PNG, JPEG,
// TIFF) and returns the trimmed text.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.tess.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.tess.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return strings.TrimSpace(text), nil
}

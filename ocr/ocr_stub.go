//go:build !ocr

// Package ocr recognizes text embedded in images extracted from a
// document.
//
// This is the stub used when the "ocr" build tag is not set; every call
// fails with ErrNotEnabled. Rebuild with
//
//	go build -tags ocr
//
// (Tesseract must be installed) to enable real recognition. The analysis
// pipeline degrades a failing recognizer to an empty recognized-text
// field, so the stub is safe to run everywhere.
package ocr

import "errors"

// ErrNotEnabled is returned when OCR support was not compiled in.
var ErrNotEnabled = errors.New("ocr support not enabled; rebuild with -tags ocr")

// Client is a stub recognizer.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage fails with ErrNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrNotEnabled
}

// RecognizeImage fails with ErrNotEnabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrNotEnabled
}

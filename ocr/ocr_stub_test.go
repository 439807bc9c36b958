//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubNew(t *testing.T) {
	client, err := New()
	if !errors.Is(err, ErrNotEnabled) {
		t.Errorf("New: got %v, want ErrNotEnabled", err)
	}
	if client != nil {
		t.Error("stub New must not return a client")
	}
}

func TestStubCloseNilSafe(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client: %v", err)
	}
}

func TestStubCallsFail(t *testing.T) {
	c := &Client{}
	if _, err := c.RecognizeImage([]byte("png")); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("RecognizeImage: got %v", err)
	}
	if err := c.SetLanguage("eng"); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("SetLanguage: got %v", err)
	}
}

package pipeline

import "sync"

// Serialize wraps a Recognizer that is not safe for concurrent use (the
// Tesseract client keeps per-call state) so one instance can be shared by
// concurrent analyses.
func Serialize(r Recognizer) Recognizer {
	if r == nil {
		return nil
	}
	return &serialRecognizer{r: r}
}

type serialRecognizer struct {
	mu sync.Mutex
	r  Recognizer
}

func (s *serialRecognizer) RecognizeImage(imageData []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.RecognizeImage(imageData)
}

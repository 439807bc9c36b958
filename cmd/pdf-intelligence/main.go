// Command pdf-intelligence serves the document analysis pipeline over
// HTTP. POST a PDF as multipart field "file" to /analyze.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ChicagoSwoles/PDF-Intelligence/nlp"
	"github.com/ChicagoSwoles/PDF-Intelligence/ocr"
	"github.com/ChicagoSwoles/PDF-Intelligence/pipeline"
	"github.com/ChicagoSwoles/PDF-Intelligence/server"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := server.LoadConfigFile(*configPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	// Heavyweight shared state: one NLP engine and at most one OCR client
	// for the whole process.
	engine := nlp.NewEngine()

	var recognizer pipeline.Recognizer
	if cfg.OCREnabled {
		client, err := ocr.New()
		if err != nil {
			log.Warn("ocr unavailable, continuing without text recognition", "error", err)
		} else {
			defer client.Close()
			if err := client.SetLanguage(cfg.OCRLanguage); err != nil {
				log.Warn("could not set ocr language", "lang", cfg.OCRLanguage, "error", err)
			}
			recognizer = pipeline.Serialize(client)
		}
	}

	classifier := cfg.Charts.Classifier()
	pipe := pipeline.New(pipeline.Config{
		OCR:    recognizer,
		Charts: &classifier,
		NLP:    engine,
		Logger: log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(cfg, pipe, log).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}

package main

import (
	"chunkd/core"
	"chunkd/internal/ingest"
	"chunkd/models"
	"chunkd/splitter"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

// How many URLs are ingested at once.
const INGEST_CONCURRENCY = 4

func main() {
	godotenv.Load()

	logger, err := core.NewLogger()
	if err != nil {
		panic(err)
	}

	urls := os.Args[1:]
	if len(urls) == 0 {
		logger.Fatal("usage: ingester URL [URL ...]")
	}

	// connect to the database
	db, err := core.InitDB()
	if err != nil {
		panic(err)
	}

	// auto migrate the database
	err = db.AutoMigrate(
		&models.Document{},
		&models.DocumentChunk{},
	)
	if err != nil {
		panic(err)
	}

	s, err := splitter.NewSplitter(
		envInt("CHUNK_SIZE", splitter.DefaultChunkSize),
		envInt("CHUNK_OVERLAP", splitter.DefaultChunkOverlap),
	)
	if err != nil {
		panic(err)
	}

	ingester := ingest.NewIngester(db, s, logger)

	logger.Infof("Running ingestion job for %v URLs...", len(urls))

	errs, ctx := errgroup.WithContext(context.Background())
	errs.SetLimit(INGEST_CONCURRENCY)
	for _, url := range urls {
		url := url
		errs.Go(func() error {
			document, err := ingester.IngestURL(ctx, url, url)
			if err != nil {
				// Failures are logged and skipped; the job keeps going.
				logger.Errorw("Failed to ingest URL", "url", url, "error", err)
				return nil
			}

			logger.Infow("Stored document", "url", url, "uuid", document.UUID)
			return nil
		})
	}

	if err := errs.Wait(); err != nil {
		panic(err)
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		panic(fmt.Errorf("%v must be an integer, got %q", key, raw))
	}

	return parsed
}

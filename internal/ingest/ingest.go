// Package ingest turns raw documents into persisted chunk sequences.
package ingest

import (
	"chunkd/fetcher"
	"chunkd/models"
	"chunkd/splitter"
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/textsplitter"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// The splitter plugs straight into langchain document loaders.
var _ textsplitter.TextSplitter = (*splitter.Splitter)(nil)

// Ingester splits documents and stores them together with their chunks.
type Ingester struct {
	db       *gorm.DB
	splitter *splitter.Splitter
	logger   *zap.SugaredLogger
}

func NewIngester(db *gorm.DB, s *splitter.Splitter, logger *zap.SugaredLogger) *Ingester {
	return &Ingester{
		db:       db,
		splitter: s,
		logger:   logger,
	}
}

// IngestText splits text and stores the document together with all of its
// chunks. The document and chunks commit in one transaction: either the
// whole chunk sequence is persisted or nothing is.
func (i *Ingester) IngestText(ctx context.Context, title, originURL, text string) (*models.Document, error) {
	loader := documentloaders.NewText(strings.NewReader(text))
	docs, err := loader.LoadAndSplit(ctx, i.splitter)
	if err != nil {
		return nil, fmt.Errorf("failed to split document %q: %w", title, err)
	}

	chunks := make([]string, 0, len(docs))
	for _, doc := range docs {
		chunks = append(chunks, doc.PageContent)
	}

	var document *models.Document
	if err := i.db.Transaction(func(tx *gorm.DB) error {
		var err error
		document, err = models.CreateDocument(tx, title, originURL, text, i.splitter.ChunkSize(), i.splitter.ChunkOverlap())
		if err != nil {
			return fmt.Errorf("failed to create document %q: %w", title, err)
		}

		if _, err := models.CreateDocumentChunks(tx, document, chunks); err != nil {
			return fmt.Errorf("failed to store chunks for document %q: %w", title, err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	i.logger.Infow("Ingested document", "title", title, "uuid", document.UUID, "chunks", len(chunks))
	return document, nil
}

// IngestURL fetches a remote page, converts it to plain text and ingests it.
func (i *Ingester) IngestURL(ctx context.Context, url, title string) (*models.Document, error) {
	text, err := fetcher.FetchText(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %v: %w", url, err)
	}

	return i.IngestText(ctx, title, url, text)
}

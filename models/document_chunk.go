package models

import (
	"errors"

	"gorm.io/gorm"
)

// DocumentChunks are the bounded text chunks derived from a Document. Their
// order within the document is given by ChunkIndex.
type DocumentChunk struct {
	Generic

	DocumentID uint     `gorm:"index;not null" json:"-"`
	Document   Document `json:"-"`
	ChunkIndex int      `gorm:"index;not null" json:"chunk_index"`
	RawContent string   `gorm:"not null" json:"raw_content"`
}

// CreateDocumentChunks stores all chunks of a document, preserving their
// order. Callers are expected to run this inside the same transaction that
// creates the document.
func CreateDocumentChunks(db *gorm.DB, document *Document, chunks []string) ([]DocumentChunk, error) {
	records := make([]DocumentChunk, 0, len(chunks))
	for i, chunk := range chunks {
		records = append(records, DocumentChunk{
			DocumentID: document.ID,
			ChunkIndex: i,
			RawContent: chunk,
		})
	}

	if len(records) == 0 {
		return records, nil
	}

	if err := db.Create(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func GetDocumentChunks(db *gorm.DB, documentID uint) ([]DocumentChunk, error) {
	var chunks []DocumentChunk
	err := db.Where("document_id = ?", documentID).Order("chunk_index ASC").Find(&chunks).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return chunks, nil
}

package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Documents are raw text inputs. We keep the full original content primarily
// for debugging and supportability reasons; consumers work with the chunks
// derived from it.
type Document struct {
	Generic

	// UUID is the external identifier for the document. Chunks are queried
	// by document, so consumers never need the internal numeric ID.
	UUID       uuid.UUID `gorm:"index;not null" json:"uuid"`
	Title      string    `gorm:"not null" json:"title"`
	OriginURL  string    `json:"origin_url"`
	RawContent string    `gorm:"not null" json:"-"`

	ChunkSize    int `gorm:"not null" json:"chunk_size"`
	ChunkOverlap int `gorm:"not null" json:"chunk_overlap"`
}

func CreateDocument(db *gorm.DB, title, originURL, rawContent string, chunkSize, chunkOverlap int) (*Document, error) {
	document := Document{
		UUID:         uuid.New(),
		Title:        title,
		OriginURL:    originURL,
		RawContent:   rawContent,
		ChunkSize:    chunkSize,
		ChunkOverlap: chunkOverlap,
	}

	if err := db.Create(&document).Error; err != nil {
		return nil, err
	}

	return &document, nil
}

func GetDocumentByUUID(db *gorm.DB, documentUUID uuid.UUID) (*Document, error) {
	var document Document
	err := db.Where("uuid = ?", documentUUID).First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &document, nil
}

func GetRecentDocuments(db *gorm.DB, limit int) ([]Document, error) {
	var documents []Document
	err := db.Order("created_at DESC").Limit(limit).Find(&documents).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return documents, nil
}

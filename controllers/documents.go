package controllers

import (
	"chunkd/internal/ingest"
	"chunkd/models"
	"chunkd/splitter"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DocumentsController ingests documents and serves their chunk sequences.
type DocumentsController struct {
	DB     *gorm.DB
	Logger *zap.SugaredLogger
}

type createDocumentRequest struct {
	Title string `json:"title"`
	// Exactly one of Text and URL must be set.
	Text string `json:"text"`
	URL  string `json:"url"`

	// Absent fields mean "use the defaults"; explicit values, zero
	// included, are validated and rejected, never clamped.
	ChunkSize    *int     `json:"chunk_size"`
	ChunkOverlap *int     `json:"chunk_overlap"`
	Separators   []string `json:"separators"`
}

func (d DocumentsController) Create(c *gin.Context) {
	var req createDocumentRequest
	if err := c.BindJSON(&req); err != nil {
		RespondBadRequestErr(c, []error{ErrBadRequest})
		return
	}

	if (req.Text == "") == (req.URL == "") {
		RespondBadRequestErr(c, []error{errors.New("exactly one of text and url must be provided")})
		return
	}

	chunkSize := splitter.DefaultChunkSize
	chunkOverlap := splitter.DefaultChunkOverlap
	if req.ChunkSize != nil {
		chunkSize = *req.ChunkSize
		chunkOverlap = 0
	}
	if req.ChunkOverlap != nil {
		chunkOverlap = *req.ChunkOverlap
	}

	s, err := splitter.NewSplitter(chunkSize, chunkOverlap, req.Separators...)
	if err != nil {
		RespondBadRequestErr(c, []error{err})
		return
	}

	ingester := ingest.NewIngester(d.DB, s, d.Logger)

	var document *models.Document
	if req.URL != "" {
		document, err = ingester.IngestURL(c.Request.Context(), req.URL, req.Title)
	} else {
		document, err = ingester.IngestText(c.Request.Context(), req.Title, "", req.Text)
	}
	if err != nil {
		d.Logger.Errorw("Failed to ingest document", "title", req.Title, "error", err)
		RespondInternalErr(c)
		return
	}

	RespondOK(c, document)
}

func (d DocumentsController) List(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			RespondBadRequestErr(c, []error{ErrBadRequest})
			return
		}
		limit = parsed
	}

	documents, err := models.GetRecentDocuments(d.DB, limit)
	if err != nil {
		d.Logger.Errorw("Failed to list documents", "error", err)
		RespondInternalErr(c)
		return
	}

	RespondOK(c, documents)
}

func (d DocumentsController) Get(c *gin.Context) {
	document, ok := d.documentFromPath(c)
	if !ok {
		return
	}

	RespondOK(c, document)
}

func (d DocumentsController) GetChunks(c *gin.Context) {
	document, ok := d.documentFromPath(c)
	if !ok {
		return
	}

	chunks, err := models.GetDocumentChunks(d.DB, document.ID)
	if err != nil {
		d.Logger.Errorw("Failed to get document chunks", "uuid", document.UUID, "error", err)
		RespondInternalErr(c)
		return
	}

	RespondOK(c, chunks)
}

func (d DocumentsController) documentFromPath(c *gin.Context) (*models.Document, bool) {
	documentUUID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		RespondBadRequestErr(c, []error{ErrBadRequest})
		return nil, false
	}

	document, err := models.GetDocumentByUUID(d.DB, documentUUID)
	if err != nil {
		d.Logger.Errorw("Failed to get document", "uuid", documentUUID, "error", err)
		RespondInternalErr(c)
		return nil, false
	}

	if document == nil {
		RespondNotFoundErr(c)
		return nil, false
	}

	return document, true
}

package controllers

import (
	"chunkd/splitter"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SplitController chunks text without persisting anything.
type SplitController struct {
	Logger *zap.SugaredLogger
}

type splitRequest struct {
	Text string `json:"text"`
	// Absent fields mean "use the defaults"; explicit values, zero
	// included, are validated and rejected, never clamped.
	ChunkSize    *int     `json:"chunk_size"`
	ChunkOverlap *int     `json:"chunk_overlap"`
	Separators   []string `json:"separators"`
}

type splitResponse struct {
	Chunks []string `json:"chunks"`
	Count  int      `json:"count"`
}

func (s SplitController) Split(c *gin.Context) {
	var req splitRequest
	if err := c.BindJSON(&req); err != nil {
		RespondBadRequestErr(c, []error{ErrBadRequest})
		return
	}

	chunks, err := splitText(req)
	if err != nil {
		if errors.Is(err, splitter.ErrInvalidArgument) {
			RespondBadRequestErr(c, []error{err})
			return
		}

		s.Logger.Errorw("Failed to split text", "error", err)
		RespondInternalErr(c)
		return
	}

	RespondOK(c, splitResponse{Chunks: chunks, Count: len(chunks)})
}

func splitText(req splitRequest) ([]string, error) {
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
		return nil, err
	}

	return s.SplitText(req.Text)
}

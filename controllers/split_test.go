package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newSplitServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	controller := SplitController{Logger: zap.NewNop().Sugar()}
	engine.POST("/split", controller.Split)
	return engine
}

func postSplit(t *testing.T, engine *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/split", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSplitEndpoint(t *testing.T) {
	engine := newSplitServer()

	w := postSplit(t, engine, map[string]any{
		"text":       "one two three four five",
		"chunk_size": 11,
		"separators": []string{" "},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Chunks []string `json:"chunks"`
			Count  int      `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Data.Count != len(resp.Data.Chunks) || resp.Data.Count == 0 {
		t.Fatalf("inconsistent response: %+v", resp.Data)
	}
	for i, chunk := range resp.Data.Chunks {
		if len(chunk) > 11 {
			t.Fatalf("chunk %d exceeds limit: %q", i, chunk)
		}
	}
}

func TestSplitEndpointInvalidOverlap(t *testing.T) {
	engine := newSplitServer()

	w := postSplit(t, engine, map[string]any{
		"text":          "some text",
		"chunk_size":    10,
		"chunk_overlap": 10,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSplitEndpointInvalidSize(t *testing.T) {
	engine := newSplitServer()

	w := postSplit(t, engine, map[string]any{
		"text":       "some text",
		"chunk_size": -1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSplitEndpointExplicitZeroSize(t *testing.T) {
	engine := newSplitServer()

	// chunk_size may be omitted for the default, but an explicit zero is
	// invalid and must not be clamped.
	w := postSplit(t, engine, map[string]any{
		"text":       "some text",
		"chunk_size": 0,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSplitEndpointOmittedSizeUsesDefaults(t *testing.T) {
	engine := newSplitServer()

	w := postSplit(t, engine, map[string]any{"text": "a short text"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Chunks []string `json:"chunks"`
			Count  int      `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Count != 1 {
		t.Fatalf("expected one chunk under the default size, got %d", resp.Data.Count)
	}
}

func TestSplitEndpointEmptyText(t *testing.T) {
	engine := newSplitServer()

	w := postSplit(t, engine, map[string]any{"text": ""})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Chunks []string `json:"chunks"`
			Count  int      `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Count != 0 {
		t.Fatalf("expected no chunks for empty text, got %d", resp.Data.Count)
	}
}

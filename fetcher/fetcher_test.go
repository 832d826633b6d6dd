package fetcher

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	b, err := Fetch(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "hello" {
		t.Fatalf("expected body %q, got %q", "hello", b)
	}
}

func TestFetchNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := Fetch(server.URL); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestFetchTextStripsMarkup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>first paragraph</p><p>second paragraph</p></body></html>"))
	}))
	defer server.Close()

	text, err := FetchText(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(text, "<p>") {
		t.Fatalf("markup survived conversion: %q", text)
	}
	if !strings.Contains(text, "first paragraph") || !strings.Contains(text, "second paragraph") {
		t.Fatalf("content lost in conversion: %q", text)
	}
}

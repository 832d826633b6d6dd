// Package fetcher downloads remote documents and normalizes them to plain
// text so they can be split.
package fetcher

import (
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/jaytaylor/html2text"
)

// Fetch downloads the resource at url, retrying transient failures.
func Fetch(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	resp, err := client.StandardClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %v fetching %v", resp.Status, url)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// FetchText downloads the resource at url and converts its markup to plain
// text. Non-HTML content passes through unchanged.
func FetchText(url string) (string, error) {
	b, err := Fetch(url)
	if err != nil {
		return "", err
	}

	text, err := html2text.FromString(string(b))
	if err != nil {
		return "", fmt.Errorf("failed to convert %v to text: %w", url, err)
	}

	return text, nil
}

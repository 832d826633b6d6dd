package main

import (
	"chunkd/splitter"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// chunk splits a file (or stdin) into chunks and prints them with their
// boundaries marked. Chunking is configured through CHUNK_SIZE and
// CHUNK_OVERLAP.
func main() {
	godotenv.Load()

	var input []byte
	var err error
	if len(os.Args) > 1 {
		input, err = os.ReadFile(os.Args[1])
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
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

	chunks, err := s.SplitText(string(input))
	if err != nil {
		panic(err)
	}

	for i, chunk := range chunks {
		fmt.Printf("--- chunk %v (%v bytes) ---\n%s\n", i, len(chunk), chunk)
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

// Package splitter cuts long text into ordered chunks bounded by a maximum
// size, preferring natural boundaries (paragraphs, sentences, words) and
// falling back to fixed-width cuts only when nothing coarser fits.
package splitter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Defaults used by the ingestion pipeline when nothing is configured.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 100
)

// DefaultSeparators are tried from coarsest to finest. The empty string
// means "split anywhere" and always terminates the hierarchy.
var DefaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// ErrInvalidArgument is returned for configurations that could never
// produce a valid chunk sequence. Check for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Splitter splits text into chunks. It is immutable after construction and
// safe for concurrent use.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

// NewSplitter returns a new Splitter. The chunk size must be positive and
// the overlap strictly smaller than it, otherwise the packing loop could
// never advance. With no separators given, DefaultSeparators are used; a
// terminal "" separator is appended if the list doesn't already end in one.
func NewSplitter(chunkSize, chunkOverlap int, separators ...string) (*Splitter, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidArgument, chunkSize)
	}

	if chunkOverlap < 0 {
		return nil, fmt.Errorf("%w: chunk overlap must not be negative, got %d", ErrInvalidArgument, chunkOverlap)
	}

	if chunkOverlap >= chunkSize {
		return nil, fmt.Errorf("%w: chunk overlap %d must be smaller than chunk size %d", ErrInvalidArgument, chunkOverlap, chunkSize)
	}

	if len(separators) == 0 {
		separators = DefaultSeparators
	}

	// Everything after a "split anywhere" separator is unreachable.
	seps := make([]string, 0, len(separators)+1)
	for _, sep := range separators {
		seps = append(seps, sep)
		if sep == "" {
			break
		}
	}
	if seps[len(seps)-1] != "" {
		seps = append(seps, "")
	}

	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   seps,
	}, nil
}

// Split is a convenience wrapper for one-off calls. The separator hierarchy
// is used exactly as given; an empty hierarchy means every cut is a
// fixed-width one.
func Split(text string, chunkSize, chunkOverlap int, separators []string) ([]string, error) {
	seps := make([]string, len(separators), len(separators)+1)
	copy(seps, separators)
	seps = append(seps, "")

	s, err := NewSplitter(chunkSize, chunkOverlap, seps...)
	if err != nil {
		return nil, err
	}

	return s.SplitText(text)
}

// SplitText splits text into chunks of at most the configured size. Chunks
// are exact substrings of the input (no trimming), each separator staying
// attached to the piece that precedes it, so concatenating the chunks with
// overlap prefixes removed reproduces the input byte for byte. The output
// is deterministic for a fixed configuration.
//
// The signature matches langchaingo's textsplitter.TextSplitter so a
// Splitter can be used with document loaders directly.
func (s *Splitter) SplitText(text string) ([]string, error) {
	if text == "" {
		return []string{}, nil
	}

	if len(text) <= s.chunkSize {
		return []string{text}, nil
	}

	return s.merge(s.decompose(text)), nil
}

// ChunkSize returns the configured maximum chunk size in bytes.
func (s *Splitter) ChunkSize() int {
	return s.chunkSize
}

// ChunkOverlap returns the configured overlap in bytes.
func (s *Splitter) ChunkOverlap() int {
	return s.chunkOverlap
}

// fragment is a worklist entry: a slice of the input paired with the index
// of the separator to try next.
type fragment struct {
	text string
	sep  int
}

// decompose cuts text into ordered pieces no longer than the chunk size.
// The separator-hierarchy descent runs over an explicit stack so a
// pathological input (one massive token, say) can't grow the call stack.
func (s *Splitter) decompose(text string) []string {
	var pieces []string

	stack := []fragment{{text: text, sep: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(f.text) <= s.chunkSize {
			if f.text != "" {
				pieces = append(pieces, f.text)
			}
			continue
		}

		sep := s.separators[f.sep]
		if sep == "" {
			pieces = append(pieces, s.hardCut(f.text)...)
			continue
		}

		parts := strings.SplitAfter(f.text, sep)
		if len(parts) == 1 {
			// Separator absent; descend to the next one.
			stack = append(stack, fragment{text: f.text, sep: f.sep + 1})
			continue
		}

		// Push in reverse so pieces come out in input order. Parts small
		// enough are emitted by the base case above; oversized ones carry
		// no interior occurrence of the current separator, so they descend.
		for i := len(parts) - 1; i >= 0; i-- {
			stack = append(stack, fragment{text: parts[i], sep: f.sep + 1})
		}
	}

	return pieces
}

// hardCut slices text into fixed-width byte windows, backing the cut off to
// a rune boundary so multi-byte runes stay intact. A single rune wider than
// the window is cut anyway so the loop always advances.
func (s *Splitter) hardCut(text string) []string {
	pieces := make([]string, 0, len(text)/s.chunkSize+1)

	for start := 0; start < len(text); {
		end := start + s.chunkSize
		if end >= len(text) {
			pieces = append(pieces, text[start:])
			break
		}

		for end > start && !utf8.RuneStart(text[end]) {
			end--
		}
		if end == start {
			end = start + s.chunkSize
		}

		pieces = append(pieces, text[start:end])
		start = end
	}

	return pieces
}

// merge greedily packs pieces into chunks, seeding each new chunk with the
// tail of the one just emitted when overlap is configured. seedLen tracks
// how much of the buffer is seed so a chunk is never pure overlap.
func (s *Splitter) merge(pieces []string) []string {
	chunks := make([]string, 0, len(pieces))

	var buf strings.Builder
	seedLen := 0

	for _, piece := range pieces {
		if buf.Len()+len(piece) > s.chunkSize && buf.Len() > seedLen {
			chunk := buf.String()
			chunks = append(chunks, chunk)

			seed := s.overlapTail(chunk)
			buf.Reset()
			buf.WriteString(seed)
			seedLen = len(seed)
		}

		if buf.Len()+len(piece) > s.chunkSize {
			// The seed alone crowds the piece out; keep whatever tail of
			// it still fits, possibly nothing.
			seed := shrinkSeed(buf.String(), s.chunkSize-len(piece))
			buf.Reset()
			buf.WriteString(seed)
			seedLen = len(seed)
		}

		buf.WriteString(piece)
	}

	if buf.Len() > seedLen {
		chunks = append(chunks, buf.String())
	}

	return chunks
}

// overlapTail returns the trailing overlap bytes of chunk, advanced to a
// rune boundary.
func (s *Splitter) overlapTail(chunk string) string {
	if s.chunkOverlap == 0 {
		return ""
	}

	if len(chunk) <= s.chunkOverlap {
		return chunk
	}

	tail := chunk[len(chunk)-s.chunkOverlap:]
	for tail != "" && !utf8.RuneStart(tail[0]) {
		tail = tail[1:]
	}

	return tail
}

// shrinkSeed trims seed from the left to at most max bytes, advanced to a
// rune boundary.
func shrinkSeed(seed string, max int) string {
	if max <= 0 {
		return ""
	}

	if len(seed) <= max {
		return seed
	}

	seed = seed[len(seed)-max:]
	for seed != "" && !utf8.RuneStart(seed[0]) {
		seed = seed[1:]
	}

	return seed
}

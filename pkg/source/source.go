// Package source holds original source text and resolves spans back to it.
package source

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dlint-dev/dlint/pkg/token"
)

// File is an immutable source file. It resolves spans to their exact
// original text and maps byte offsets to line/column positions.
type File struct {
	name    string
	content string
	lines   []int // byte offset of the start of each line
}

// NewFile indexes content for span and position lookups.
func NewFile(name, content string) *File {
	lines := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &File{name: name, content: content, lines: lines}
}

// Name returns the file identifier.
func (f *File) Name() string {
	return f.name
}

// Content returns the full source text.
func (f *File) Content() string {
	return f.content
}

// Extent returns the span covering the whole file.
func (f *File) Extent() token.Span {
	return token.NewSpan(f.name, 0, len(f.content))
}

// Snippet returns the exact source substring for span. A span outside the
// file is a programming error on the caller's side and yields an error.
func (f *File) Snippet(span token.Span) (string, error) {
	if span.File != f.name {
		return "", fmt.Errorf("span %s does not belong to file %q", span, f.name)
	}
	if !span.IsValid() || span.Hi > len(f.content) {
		return "", fmt.Errorf("span %s is outside the source extent [0,%d)", span, len(f.content))
	}
	return f.content[span.Lo:span.Hi], nil
}

// Position maps a byte offset to its line/column position.
// Offsets past the end of the file clamp to the final position.
func (f *File) Position(offset int) token.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.content) {
		offset = len(f.content)
	}
	// First line whose start is past the offset; the offset's line precedes it.
	line := sort.Search(len(f.lines), func(i int) bool {
		return f.lines[i] > offset
	})
	start := f.lines[line-1]
	return token.Position{
		Line:   line,
		Column: len([]rune(f.content[start:offset])),
		Offset: offset,
	}
}

// SpanOf locates the nth occurrence (1-based) of substr and returns its
// span. It returns false when there are fewer than n occurrences. Intended
// for fixtures and hosts that build ASTs over literal source.
func (f *File) SpanOf(substr string, n int) (token.Span, bool) {
	if substr == "" || n < 1 {
		return token.Span{}, false
	}
	from := 0
	for i := 0; i < n; i++ {
		rel := strings.Index(f.content[from:], substr)
		if rel < 0 {
			return token.Span{}, false
		}
		from += rel
		if i < n-1 {
			from += len(substr)
		}
	}
	return token.NewSpan(f.name, from, from+len(substr)), true
}

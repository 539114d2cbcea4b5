package token

import "fmt"

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 0-based character column within the line
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String renders the position as "line:col".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open byte range [Lo, Hi) into one source file.
type Span struct {
	File string // file identifier, usually the path handed to the host
	Lo   int    // inclusive start offset
	Hi   int    // exclusive end offset
}

// NewSpan constructs a span over [lo, hi) in the given file.
func NewSpan(file string, lo, hi int) Span {
	return Span{File: file, Lo: lo, Hi: hi}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.Hi - s.Lo
}

// IsValid returns true if the span is well-formed.
func (s Span) IsValid() bool {
	return s.Lo >= 0 && s.Hi >= s.Lo
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Lo && offset < s.Hi
}

// Within returns true if s lies entirely inside outer.
func (s Span) Within(outer Span) bool {
	return s.File == outer.File && s.Lo >= outer.Lo && s.Hi <= outer.Hi
}

// Compare orders spans by (File, Lo, Hi). It returns -1, 0 or 1.
func (s Span) Compare(o Span) int {
	switch {
	case s.File < o.File:
		return -1
	case s.File > o.File:
		return 1
	case s.Lo < o.Lo:
		return -1
	case s.Lo > o.Lo:
		return 1
	case s.Hi < o.Hi:
		return -1
	case s.Hi > o.Hi:
		return 1
	}
	return 0
}

// String renders the span as "file[lo,hi)".
func (s Span) String() string {
	return fmt.Sprintf("%s[%d,%d)", s.File, s.Lo, s.Hi)
}

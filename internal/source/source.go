// Package source provides byte-offset spans into an immutable source
// buffer, with line/column derivation on demand. All lexer and parser
// positions are expressed as Span values indexing into a File.
package source

import "fmt"

// Span is a half-open [Start, End) byte range into a source buffer.
// Zero-length spans are permitted; they mark synthetic tokens or
// nodes inserted during error recovery.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan constructs a Span, clamping End to at least Start.
func NewSpan(start, end uint32) Span {
	if end < start {
		end = start
	}
	return Span{Start: start, End: end}
}

// Zero reports whether the span has zero length.
func (s Span) Zero() bool { return s.Start == s.End }

// Len returns the length of the span in bytes.
func (s Span) Len() int { return int(s.End - s.Start) }

// Merge returns the smallest span containing both s and other. Merge
// is the "union" operation spans are closed under.
func (s Span) Merge(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Contains reports whether other is fully contained in s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// String renders the span as "start..end".
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Position is a derived line/column location, computed on demand from
// a File and a byte offset. It is never stored on tokens or AST nodes.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in bytes
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// File wraps an immutable source buffer and caches line-start offsets
// so Position derivation from a byte offset is O(log n) rather than
// O(n) per query.
type File struct {
	Name        string
	Bytes       []byte
	lineOffsets []int // byte offset of the first byte of each line
}

// NewFile builds a File and precomputes its line table.
func NewFile(name string, content []byte) *File {
	f := &File{Name: name, Bytes: content}
	f.lineOffsets = []int{0}
	for i, b := range content {
		if b == '\n' {
			f.lineOffsets = append(f.lineOffsets, i+1)
		}
	}
	return f
}

// Slice returns the raw bytes covered by span, clamped to the buffer.
func (f *File) Slice(span Span) []byte {
	start := int(span.Start)
	end := int(span.End)
	if start < 0 {
		start = 0
	}
	if end > len(f.Bytes) {
		end = len(f.Bytes)
	}
	if start > end {
		return nil
	}
	return f.Bytes[start:end]
}

// Position derives a 1-based line/column for a byte offset via binary
// search over the cached line-start table.
func (f *File) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Bytes) {
		offset = len(f.Bytes)
	}

	lo, hi := 0, len(f.lineOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineOffsets[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	line := lo + 1
	column := offset - f.lineOffsets[lo] + 1
	return Position{Line: line, Column: column, Offset: offset}
}

// PositionOf is a convenience wrapper deriving the start position of a
// span.
func (f *File) PositionOf(span Span) Position {
	return f.Position(int(span.Start))
}

// Len returns the size of the underlying buffer in bytes.
func (f *File) Len() int { return len(f.Bytes) }

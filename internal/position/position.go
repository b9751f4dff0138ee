// Package position defines source positions and spans. Every BIR node
// carries a span so that diagnostics and synthesized declarations can point
// back at the source construct they came from.
package position

import (
	"fmt"
	"path/filepath"
)

// Position is a single point in source. Line and Column are 1-based; the
// zero value is invalid.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// IsValid reports whether p denotes a real source location.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a source range from Start to End, inclusive. A point span has
// Start == End.
type Span struct {
	Start Position
	End   Position
}

// Point returns the span covering the single location at line:column.
func Point(filename string, line, column int) Span {
	p := Position{Filename: filename, Line: line, Column: column}
	return Span{Start: p, End: p}
}

// IsValid reports whether both ends denote real locations in one file.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.Start.Filename == s.End.Filename
}

func (s Span) String() string {
	if s.Start == s.End {
		return s.Start.String()
	}
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s-%d", s.Start, s.End.Column)
	}
	return fmt.Sprintf("%s-%d:%d", s.Start, s.End.Line, s.End.Column)
}

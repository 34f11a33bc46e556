package token

import "fmt"

// Position locates a character in the input. Offset is in bytes and
// indexes the string handed to the lexer, byte-order mark included;
// Column counts characters, so "é" advances it by one.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based
}

// IsValid reports whether p was set by the lexer. Nodes built by hand
// carry the zero Position.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the half-open range [Start, End) a token, comment or node covers.
type Span struct {
	Start Position
	End   Position
}

// Text returns the source the span covers, or "" when the span does not
// fit inside src.
func (s Span) Text(src string) string {
	if s.Start.Offset < 0 || s.End.Offset < s.Start.Offset || s.End.Offset > len(src) {
		return ""
	}
	return src[s.Start.Offset:s.End.Offset]
}

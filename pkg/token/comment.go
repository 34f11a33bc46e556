package token

import "strings"

// CommentKind tells the two comment syntaxes apart.
type CommentKind int

const (
	// LineComment runs to the end of the line: "-- x", or "# x" in
	// dialects with hash comments. The newline is not part of it.
	LineComment CommentKind = iota
	// BlockComment is delimited by /* and */ and may nest.
	BlockComment
)

func (k CommentKind) String() string {
	if k == BlockComment {
		return "BLOCK_COMMENT"
	}
	return "LINE_COMMENT"
}

// Comment is a comment the lexer skipped. Text is the exact source,
// delimiters included, so it can be written back unchanged.
type Comment struct {
	Kind CommentKind
	Text string
	Span Span
}

// Body returns the comment text without its delimiters or surrounding
// blanks. Only the outermost /* */ pair of a nested block is removed.
func (c Comment) Body() string {
	s := c.Text
	switch c.Kind {
	case BlockComment:
		s = strings.TrimSuffix(strings.TrimPrefix(s, "/*"), "*/")
	default:
		if !strings.HasPrefix(s, "--") {
			s = strings.TrimPrefix(s, "#")
		} else {
			s = s[2:]
		}
	}
	return strings.TrimSpace(s)
}

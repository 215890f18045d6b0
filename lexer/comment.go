// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strings"
)

const (
	lineCommentStart  = "//"
	lineCommentEnd    = "\n"
	blockCommentStart = "/*"
	blockCommentEnd   = "*/"
)

// SingleLineComment consumes a `//` comment including its terminating newline.
//
// The returned text excludes both delimiters. A comment lacking a newline before the end of the
// input is unterminated.
func SingleLineComment(c Cursor) (Cursor, string, error) {
	return delimited(c, lineCommentStart, lineCommentEnd, "single-line comment")
}

// BlockComment consumes a `/* */` comment.
//
// Block comments don't nest, the first `*/` closes the comment.
func BlockComment(c Cursor) (Cursor, string, error) {
	return delimited(c, blockCommentStart, blockCommentEnd, "block comment")
}

func delimited(c Cursor, start, end, what string) (next Cursor, text string, err error) {
	next = c
	if !c.HasPrefix(start) {
		err = unmatched(c, what)
		return
	}

	body := c.Advance(len(start))
	index := strings.Index(body.Rest(), end)
	if index < 0 {
		err = fmt.Errorf("%w %s opened at offset %d", ErrUnterminated, what, c.Offset())
		return
	}

	text = strings.Clone(body.Rest()[:index])
	next = body.Advance(index + len(end))

	return
}

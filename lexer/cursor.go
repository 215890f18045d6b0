// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strings"
)

type (
	// Cursor is an immutable view over the unconsumed part of a source.
	//
	// Recognizers never modify a Cursor, they return a new one positioned after the consumed
	// input. The returned Cursor always shares the source of its predecessor.
	Cursor struct {
		src string
		off int
	}

	// Position locates a Cursor within its source.
	Position struct {
		Offset int // byte offset, starting at 0
		Line   int // line number, starting at 1
		Column int // byte column, starting at 1
	}
)

// NewCursor creates a Cursor at the start of src.
func NewCursor(src string) Cursor { return Cursor{src: src} }

// Source retrieves the complete source the Cursor views.
func (c Cursor) Source() string { return c.src }

// Offset retrieves the byte offset of the Cursor within its source.
func (c Cursor) Offset() int { return c.off }

// Rest retrieves the unconsumed input.
func (c Cursor) Rest() string { return c.src[c.off:] }

// Len is the amount of unconsumed bytes.
func (c Cursor) Len() int { return len(c.src) - c.off }

// EOF reports whether the input is exhausted.
func (c Cursor) EOF() bool { return c.off >= len(c.src) }

// Peek returns the next byte without consuming it.
func (c Cursor) Peek() (b byte, ok bool) {
	if c.EOF() {
		return
	}

	return c.src[c.off], true
}

// HasPrefix checks whether the unconsumed input starts with prefix.
func (c Cursor) HasPrefix(prefix string) bool { return strings.HasPrefix(c.Rest(), prefix) }

// Advance returns a Cursor n bytes further, clamped to the end of the source.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 {
		n = 0
	}
	if n > c.Len() {
		n = c.Len()
	}

	return Cursor{src: c.src, off: c.off + n}
}

// Since returns the input consumed between from and c.
//
// from must be a Cursor on the same source at or before c.
func (c Cursor) Since(from Cursor) string { return c.src[from.off:c.off] }

// Position computes the line & column of the Cursor.
//
// NOTE: This scans the consumed input, use it for diagnostics only.
func (c Cursor) Position() (p Position) {
	consumed := c.src[:c.off]

	p.Offset = c.off
	p.Line = strings.Count(consumed, "\n") + 1
	p.Column = c.off - strings.LastIndexByte(consumed, '\n')

	return
}

// String is the fmt.Stringer implementation for Position.
func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

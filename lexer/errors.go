// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
)

// Recognition errors.
//
// ErrUnmatched is recoverable, callers may try another recognizer at the same position. The
// others signal malformed input & have to be propagated.
var (
	ErrUnmatched    = errors.New("unmatched")
	ErrIncomplete   = errors.New("incomplete")
	ErrOverflow     = errors.New("numeric overflow")
	ErrUnterminated = errors.New("unterminated")

	ErrMalformedNamespace = fmt.Errorf("%w namespace", ErrIncomplete)
	ErrMalformedTag       = fmt.Errorf("%w hex tag", ErrIncomplete)

	ErrInvalidVariant = errors.New("invalid identifier variant")
	ErrMissingTag     = errors.New("missing hex tag")
)

// Lexing errors.
var (
	ErrUnknownTokens = errors.New("unknown tokens")
)

// IsUnmatched checks whether err is a recoverable recognition failure.
func IsUnmatched(err error) bool { return errors.Is(err, ErrUnmatched) }

func unmatched(c Cursor, expected string) error {
	return fmt.Errorf("%w: expected %s at offset %d", ErrUnmatched, expected, c.Offset())
}

// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

// Option defines the Lexer functional option type
type Option func(*Lexer)

const (
	defBufferSize = 10

	// previewLimit caps the unknown input quoted by an ErrUnknownTokens.
	previewLimit = 32
)

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithSource configures the source option.
func WithSource(source string) Option { return func(l *Lexer) { l.cursor = NewCursor(source) } }

// WithComments configures the emission of ItemComment Items, comments are discarded otherwise.
func WithComments(keep bool) Option { return func(l *Lexer) { l.comments = keep } }

// WithBufferSize configures the capacity of the Item channel.
func WithBufferSize(size int) Option {
	return func(l *Lexer) {
		if size >= 0 {
			l.bufferSize = size
		}
	}
}

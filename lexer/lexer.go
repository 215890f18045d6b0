// SPDX-License-Identifier: MIT
package lexer

// REF: https://core.telegram.org/mtproto/TL-formal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type (
	// NextOperation type for the next function to be executed
	NextOperation func(context.Context) NextOperation

	// Lexer splits a TL schema into Items, skipping the layout between them.
	//
	// The Lexer drives the recognizers in this package, it holds no grammar knowledge beyond
	// the choice of recognizer for the next byte.
	Lexer struct {
		debug      bool
		comments   bool
		bufferSize int
		logger     logrus.FieldLogger

		// c is a channel for communicating lexed Items.
		c chan Item

		// cursor is the unconsumed input.
		cursor Cursor
		// pos tracks the position of cursor.
		pos Position

		// pending holds a terminal error Item the consumer wasn't around to receive.
		pending *Item

		identCounter   int
		commentCounter int
	}
)

// New creates a new Lexer for the configured source.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		bufferSize: defBufferSize,
		logger:     logrus.New(),
		cursor:     NewCursor(""),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.c = make(chan Item, l.bufferSize)
	l.pos = l.cursor.Position()

	return l
}

// IdentCounter obtains the amount of identifier Items lexed.
func (l *Lexer) IdentCounter() int { return l.identCounter }

// CommentCounter obtains the amount of comments lexed, emitted or not.
func (l *Lexer) CommentCounter() int { return l.commentCounter }

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Lex lexes the input by executing state functions.
//
// The Item channel is closed on return.
func (l *Lexer) Lex(ctx context.Context) {
	for stateFunction := l.LexLayout; stateFunction != nil; {
		stateFunction = stateFunction(ctx)
	}

	// Close channel
	close(l.c)
}

// LexLayout skips whitespace & selects the recognizer for the next token.
func (l *Lexer) LexLayout(ctx context.Context) NextOperation {
	select {
	case <-ctx.Done():
		l.EmitError(ctx, ctx.Err())
		return nil
	default:
	}

	// Ignore white spaces, discard instead of emit.
	next, _ := acceptWhile(l.cursor, isWhitespace)
	l.advance(next)

	b, ok := l.cursor.Peek()
	switch {
	case !ok:
		l.EmitEOF(ctx)
		return nil
	case l.cursor.HasPrefix(lineCommentStart), l.cursor.HasPrefix(blockCommentStart):
		return l.LexComment
	case IsDigit(b):
		return l.LexNumber
	case IsIdentChar(b):
		return l.LexWord
	case b == tagMarker:
		return l.LexWildcard
	case isPunctuation(b):
		return l.LexPunct
	default:
		preview := l.cursor.Rest()
		if len(preview) > previewLimit {
			preview = preview[:previewLimit]
		}
		l.EmitError(ctx, fmt.Errorf("%w: %q", ErrUnknownTokens, preview))

		return nil
	}
}

// LexComment consumes a single-line or block comment.
func (l *Lexer) LexComment(ctx context.Context) NextOperation {
	recognize := SingleLineComment
	if l.cursor.HasPrefix(blockCommentStart) {
		recognize = BlockComment
	}

	next, text, err := recognize(l.cursor)
	if err != nil {
		l.EmitError(ctx, err)
		return nil
	}
	l.commentCounter++

	if !l.comments {
		l.advance(next)
		return l.LexLayout
	}

	if !l.Emit(ctx, Item{ID: ItemComment, Val: text}, next) {
		return nil
	}

	return l.LexLayout
}

// LexNumber consumes a numeric constant.
func (l *Lexer) LexNumber(ctx context.Context) NextOperation {
	next, n, err := NumericConstant(l.cursor)
	if err != nil {
		l.EmitError(ctx, err)
		return nil
	}

	if !l.Emit(ctx, Item{ID: ItemNumber, Num: n}, next) {
		return nil
	}

	return l.LexLayout
}

// LexWord consumes an identifier.
//
// The identifier forms are attempted from the most to the least specific; a malformed hex tag
// stops the lexer since no other form can explain the `#`.
func (l *Lexer) LexWord(ctx context.Context) NextOperation {
	item, next, err := l.word()
	if err != nil {
		l.EmitError(ctx, err)
		return nil
	}
	l.identCounter++

	if !l.Emit(ctx, item, next) {
		return nil
	}

	return l.LexLayout
}

func (l *Lexer) word() (item Item, next Cursor, err error) {
	var full FullIdent
	next, full, err = FullIdentifier(l.cursor)
	switch {
	case err == nil:
		item = Item{ID: ItemLowerIdent, Ident: full}
		return
	case errors.Is(err, ErrMalformedTag):
		return
	}

	var q QualifiedIdent
	if next, q, err = UpperQualified(l.cursor); err == nil {
		item = Item{ID: ItemUpperIdent, Ident: FullIdent{QualifiedIdent: q}}
		return
	}

	var id Identifier
	if next, id, err = UpperIdent(l.cursor); err == nil {
		item = Item{ID: ItemUpperIdent, Ident: FullIdent{QualifiedIdent: QualifiedIdent{Name: id}}}
		return
	}

	if next, id, err = LooseIdent(l.cursor); err == nil {
		item = Item{ID: ItemVarIdent, Ident: FullIdent{QualifiedIdent: QualifiedIdent{Name: id}}}
	}

	return
}

// LexWildcard consumes the `#` type token.
func (l *Lexer) LexWildcard(ctx context.Context) NextOperation {
	next, _, err := TypeIdent(l.cursor)
	if err != nil {
		l.EmitError(ctx, err)
		return nil
	}

	if !l.Emit(ctx, Item{ID: ItemWildcard}, next) {
		return nil
	}

	return l.LexLayout
}

// LexPunct consumes a single punctuation character.
func (l *Lexer) LexPunct(ctx context.Context) NextOperation {
	next, _, err := accept(l.cursor, isPunctuation, "punctuation")
	if err != nil {
		l.EmitError(ctx, err)
		return nil
	}

	if !l.Emit(ctx, Item{ID: ItemPunct}, next) {
		return nil
	}

	return l.LexLayout
}

// Emit sends an Item spanning the input up to next over the communication channel.
//
// The Item's position is filled in, as is its source text when unset. Returns false when the context
// ends before the Item is received, the cancellation is then reported as the terminal ItemError.
func (l *Lexer) Emit(ctx context.Context, item Item, next Cursor) (sent bool) {
	item.Pos = l.pos
	if item.Val == "" && item.ID != ItemComment {
		item.Val = strings.Clone(next.Since(l.cursor))
	}

	if l.debug {
		// Debug operation makes this operation un-inlinable.
		l.logger.Debugf("lexer Emit: %s", item)
	}

	if sent = l.send(ctx, item); sent {
		l.advance(next)
		return
	}
	l.EmitError(ctx, ctx.Err())

	return
}

// EmitEOF sends an ItemEOF Item over the communication channel.
func (l *Lexer) EmitEOF(ctx context.Context) {
	if !l.send(ctx, Item{ID: ItemEOF, Pos: l.pos}) {
		l.EmitError(ctx, ctx.Err())
	}
}

// EmitError sends an error over the Lexer's channel.
//
// This terminates the scan process.
func (l *Lexer) EmitError(ctx context.Context, err error) {
	if l.debug {
		l.logger.WithField("pos", l.pos.String()).Debugf("lexer error: %v", err)
	}

	item := Item{ID: ItemError, Pos: l.pos, Err: err}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// The consumer may have left, don't block on it.
		select {
		case l.c <- item:
		default:
			l.pending = &item
		}

		return
	}

	if !l.send(ctx, item) {
		l.pending = &item
	}
}

// Item return a lexed Item from the input.
//
// A terminal error the Lexer couldn't send before closing its channel is returned once the
// channel is drained. Item isn't safe for use by multiple consumers.
func (l *Lexer) Item() (i Item, ok bool) {
	if i, ok = <-l.c; ok || l.pending == nil {
		return
	}

	// The close of l.c orders the write to pending before this read.
	i, ok, l.pending = *l.pending, true, nil

	return
}

func (l *Lexer) send(ctx context.Context, item Item) bool {
	select {
	case l.c <- item:
		return true
	case <-ctx.Done():
		return false
	}
}

// advance moves the cursor to next, tracking the line & column.
func (l *Lexer) advance(next Cursor) {
	consumed := next.Since(l.cursor)
	if consumed == "" {
		return
	}

	if lines := strings.Count(consumed, "\n"); lines > 0 {
		l.pos.Line += lines
		l.pos.Column = len(consumed) - strings.LastIndexByte(consumed, '\n')
	} else {
		l.pos.Column += len(consumed)
	}
	l.pos.Offset = next.Offset()
	l.cursor = next
}

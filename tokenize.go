// SPDX-License-Identifier: MIT
package tl

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/tl/lexer"
)

// Tokenization errors.
var (
	ErrTokenize    = errors.New("failed to tokenize")
	ErrWorkerPool  = errors.New("worker pool failure")
	ErrNoTerminate = errors.New("lexer closed without an EOF")
)

// Tokenize lexes a schema source, returning its items excluding the trailing ItemEOF.
//
// The first lexing error terminates the operation.
func Tokenize(ctx context.Context, src string, opts ...lexer.Option) (items []lexer.Item, err error) {
	lexCtx, lexCancel := context.WithCancel(ctx)
	defer lexCancel()

	// Avoid appending to the caller's backing array.
	opts = append(opts[:len(opts):len(opts)], lexer.WithSource(src))

	l := lexer.New(opts...)
	go l.Lex(lexCtx)

	for {
		item, proceed := l.Item()
		if !proceed {
			cause := ErrNoTerminate
			if ctxErr := lexCtx.Err(); ctxErr != nil {
				cause = ctxErr
			}
			err = fmt.Errorf("%w: %w", ErrTokenize, cause)
			items = nil

			return
		}

		switch item.ID {
		case lexer.ItemEOF:
			return
		case lexer.ItemError:
			err = fmt.Errorf("%w at %s: %w", ErrTokenize, item.Pos, item.Err)
			items = nil
			return
		}

		items = append(items, item)
	}
}

// TokenizeAll lexes multiple schema sources concurrently on a worker pool sized by
// [Config].Workers.
//
// Results are indexed as the sources; the errors of all failed sources are joined.
func TokenizeAll(ctx context.Context, cfg *Config, sources []string, opts ...lexer.Option) (results [][]lexer.Item, err error) {
	if cfg == nil {
		cfg = DefConfig()
	}
	cfg.Validate()

	results = make([][]lexer.Item, len(sources))
	if len(sources) < 1 {
		return
	}

	pool, err := ants.NewPool(cfg.Workers, ants.WithLogger(cfg.Logger))
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrWorkerPool, err)
		return
	}
	defer pool.Release()

	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for index := range sources {
		index := index

		wg.Add(1)
		if subErr := pool.Submit(func() {
			defer wg.Done()

			results[index], errs[index] = Tokenize(ctx, sources[index], opts...)
		}); subErr != nil {
			wg.Done()
			errs[index] = fmt.Errorf("%w: %w", ErrWorkerPool, subErr)
		}
	}
	wg.Wait()

	for index := range errs {
		if errs[index] != nil {
			errs[index] = fmt.Errorf("source %d: %w", index, errs[index])
		}
	}
	err = errors.Join(errs...)

	if cfg.Debug {
		cfg.Logger.Debugf("tokenized %d source(s), err: %v", len(sources), err)
	}

	return
}

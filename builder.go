// SPDX-License-Identifier: MIT
package tl

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

type (
	// Builder defines an interface for entities that can be read into a Catalog.
	Builder[T Constraint] interface {
		// Value obtains the value stored by the Builder.
		Value() T
		// Parent obtains the parent stored by the Builder
		//
		// The zero value marks the root node.
		Parent() T
	}

	// BuildSource is a wrapper type for []Builder used to generate the Catalog.
	BuildSource[T Constraint] struct {
		cfg *Config

		list      []Builder[T]
		isOrdered bool
	}

	// BuildOption defines the BuildSource functional option type.
	BuildOption[T Constraint] func(*BuildSource[T])
)

// Catalog building errors.
var (
	ErrBuildCatalog = errors.New("failed to build catalog")

	ErrMissingRootNode   = errors.New("missing root node")
	ErrMultipleRootNodes = errors.New("catalog has multiple root nodes")

	ErrEmptyCatalogSrc   = errors.New("empty catalog source")
	ErrInvalidCatalogSrc = errors.New("invalid catalog source")

	ErrLocateParents = errors.New("unable to locate parents(s)")

	ErrPanicked = errors.New("recovery from panic")
)

// NewBuildSource instantiates a BuildSource.
func NewBuildSource[T Constraint](options ...BuildOption[T]) *BuildSource[T] {
	b := &BuildSource[T]{cfg: defConfig, list: []Builder[T]{}}

	for _, opt := range options {
		opt(b)
	}

	return b
}

// WithBuilders configures the underlying list.
func WithBuilders[T Constraint](list []Builder[T]) BuildOption[T] {
	return func(b *BuildSource[T]) { b.list = list }
}

// WithBuildConfig configures the [Config] shared by the BuildSource & the built Catalog.
func WithBuildConfig[T Constraint](cfg *Config) BuildOption[T] {
	return func(b *BuildSource[T]) {
		cfg.Validate()
		b.cfg = cfg
	}
}

// WithOrdered declares that every parent precedes its children in the list.
func WithOrdered[T Constraint](ordered bool) BuildOption[T] {
	return func(b *BuildSource[T]) { b.isOrdered = ordered }
}

// Len retrieves the length of the BuildSource.
func (b *BuildSource[T]) Len() int { return len(b.list) }

// cut the entry at index from the BuildSource.
func (b *BuildSource[T]) cut(index int) {
	if index == 0 {
		b.list = b.list[1:]
		return
	}

	upper := index + 1
	// Cut upto (excluding) `index`, cut from (including) `index+1`.
	b.list = append(b.list[:index], b.list[upper:]...)
}

// Build generates a Catalog from a BuildSource.
//
// The BuildSource is consumed by the operation.
func (b *BuildSource[T]) Build(ctx context.Context) (c *Catalog[T], err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrBuildCatalog, err)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}

		if err != nil {
			// Skip expensive operation if not debug.
			if b.cfg.Debug {
				b.cfg.Logger.Debugf("current catalog: %s \nsource remnants: %s", spew.Sprint(c), spew.Sprint(b.list))
			}

			err = fmt.Errorf("%w: %w", ErrInvalidCatalogSrc, err)
			c = nil
		}
	}()

	if b.Len() < 1 {
		err = ErrEmptyCatalogSrc
		return
	}

	var rootValue T

	// Nodes in the catalog by value.
	cache := make(map[T]*Catalog[T])

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
	}

	rootIndex := 0
	for index := range b.list {
		if b.list[index].Parent() != rootValue {
			continue
		}

		// Disallow additional root node(s).
		if c != nil {
			err = ErrMultipleRootNodes
			return
		}
		value := b.list[index].Value()
		c = New(value, WithConfig[T](b.cfg))
		cache[value] = c

		rootIndex = index
	}
	if c == nil {
		err = ErrMissingRootNode
		return
	}

	// Remove the root node from the build source.
	prevLen := b.Len()
	b.cut(rootIndex)

	for {
		lenSrc := b.Len()
		if lenSrc < 1 {
			return
		}

		if lenSrc == prevLen {
			err = fmt.Errorf("%w for: %s", ErrLocateParents, spew.Sprint(b.list))
			return
		}
		prevLen = lenSrc

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		for index := 0; index < lenSrc; index++ {
			node := b.list[index]

			// Parent not in the catalog.
			parent, ok := cache[node.Parent()]
			if !ok {
				continue
			}

			child := New(node.Value(), WithConfig[T](b.cfg))
			if err = parent.AddChild(child); err != nil {
				return
			}
			cache[child.value] = child

			// Remove added node from the build source.
			b.cut(index)

			// Allow for unordered Sources.
			//
			// Adds extraneous opcodes compared to the ordered Source's operation.
			if !b.isOrdered {
				break
			}

			index--
			lenSrc--
		}
	}
}

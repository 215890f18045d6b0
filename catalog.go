// SPDX-License-Identifier: MIT
package tl

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Constraint is a wrapper interface containing comparable & constraints.Ordered.
type Constraint interface {
	comparable
	constraints.Ordered
}

type (
	// Catalog is a node of the tree grouping schema identifiers.
	//
	// A Catalog is written once by a [BuildSource] & read afterwards, reads need no locking.
	Catalog[T Constraint] struct {
		cfg    *Config
		parent *Catalog[T]
		value  T

		children map[T]*Catalog[T]
	}

	// List holds Catalog nodes.
	List[T Constraint] []*Catalog[T]

	// WalkFunc is called for every node visited by [Catalog.Walk] with its distance from the
	// starting node.
	//
	// Returning ErrStopWalk ends the walk without an error.
	WalkFunc[T Constraint] func(node *Catalog[T], depth int) error

	// Option defines the Catalog functional option type.
	Option[T Constraint] func(*Catalog[T])
)

// Errors encountered when handling a Catalog.
var (
	ErrNotFound     = errors.New("not found")
	ErrAlreadyChild = errors.New("is a child of")

	ErrStopWalk = errors.New("walk stopped")
)

// New instantiates a [Catalog] node.
func New[T Constraint](value T, options ...Option[T]) *Catalog[T] {
	c := &Catalog[T]{
		cfg:      defConfig,
		value:    value,
		children: make(map[T]*Catalog[T]),
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// WithConfig configures the [Catalog] [Config].
func WithConfig[T Constraint](cfg *Config) Option[T] {
	return func(c *Catalog[T]) { c.cfg = cfg }
}

// Config retrieves the [Catalog]'s Config.
func (c *Catalog[T]) Config() *Config { return c.cfg }

// Value retrieves the [Catalog]'s data.
func (c *Catalog[T]) Value() T { return c.value }

// Parent retrieves the [Catalog]'s parent, nil for the root.
func (c *Catalog[T]) Parent() *Catalog[T] { return c.parent }

// Child retrieves an immediate child.
func (c *Catalog[T]) Child(childValue T) (child *Catalog[T], ok bool) {
	child, ok = c.children[childValue]
	return
}

// AddChild attaches child to the [Catalog], the child adopts the Catalog's [Config].
func (c *Catalog[T]) AddChild(child *Catalog[T]) error {
	if _, ok := c.children[child.value]; ok {
		return fmt.Errorf("(%v) %w (%v)", child.value, ErrAlreadyChild, c.value)
	}

	child.parent, child.cfg = c, c.cfg
	c.children[child.value] = child

	return nil
}

// Children lists the immediate children, sorted by value.
func (c *Catalog[T]) Children() List[T] {
	children := List[T](maps.Values(c.children))
	slices.SortFunc(children, func(a, b *Catalog[T]) int { return compare(a.value, b.value) })

	return children
}

// Walk visits the [Catalog] & its descendants in level order, peers in value order.
//
// The walk ends on context cancellation or the first error returned by visit.
func (c *Catalog[T]) Walk(ctx context.Context, visit WalkFunc[T]) error {
	if c == nil {
		return nil
	}

	level := List[T]{c}
	for depth := 0; len(level) > 0; depth++ {
		var below List[T]

		for _, node := range level {
			if err := ctx.Err(); err != nil {
				return err
			}

			switch err := visit(node, depth); {
			case errors.Is(err, ErrStopWalk):
				return nil
			case err != nil:
				return err
			}

			below = append(below, node.Children()...)
		}

		level = below
	}

	return nil
}

// Leaves lists the nodes lacking children in level order.
//
// A lone node is its own leaf.
func (c *Catalog[T]) Leaves(ctx context.Context) (leaves List[T], err error) {
	err = c.Walk(ctx, func(node *Catalog[T], _ int) error {
		if len(node.children) < 1 {
			leaves = append(leaves, node)
		}
		return nil
	})
	if err != nil {
		leaves = nil
	}

	return
}

// Locate searches the [Catalog] for value.
func (c *Catalog[T]) Locate(ctx context.Context, value T) (node *Catalog[T], err error) {
	err = c.Walk(ctx, func(n *Catalog[T], _ int) error {
		if n.value != value {
			return nil
		}
		node = n

		return ErrStopWalk
	})
	if err == nil && node == nil {
		err = fmt.Errorf("(%v) %w", value, ErrNotFound)
	}

	return
}

// Values lists the values held by a [List].
func (l List[T]) Values() []T {
	values := make([]T, len(l))
	for index, node := range l {
		values[index] = node.value
	}

	return values
}

func compare[T Constraint](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// SPDX-License-Identifier: MIT
package tl

import (
	"context"
	"fmt"
	"strings"
)

// Serialization markers.
const (
	// Splitter separates a node from its first child & peers from each other.
	Splitter = ','
	// EndMarker closes a node's children.
	EndMarker = ')'
)

// Serialize transforms a [Catalog] into a string.
//
// Nodes are written in depth-first order with sorted peers, each followed by its children &
// an EndMarker; the index of `auth.sendCode` & `user` serializes to `.,auth.,auth.sendCode)),user))`.
func (c *Catalog[T]) Serialize(ctx context.Context) (output string, err error) {
	if c == nil {
		return
	}

	var buffer strings.Builder
	if err = c.serialize(ctx, &buffer); err != nil {
		// Invalidate serialization output.
		return
	}
	output = buffer.String()

	return
}

func (c *Catalog[T]) serialize(ctx context.Context, buffer *strings.Builder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fmt.Fprint(buffer, c.value)

	for _, child := range c.Children() {
		buffer.WriteByte(Splitter)
		if err := child.serialize(ctx, buffer); err != nil {
			return err
		}
	}
	buffer.WriteByte(EndMarker)

	return nil
}

// SPDX-License-Identifier: MIT
package tl

import (
	"context"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/tl/lexer"
)

// RootValue is the value of an index [Catalog]'s root node.
const RootValue = "."

// Entry is a [Builder] for the identifiers of a lexed schema.
type Entry struct {
	value, parent string
}

var _ Builder[string] = Entry{}

// Value obtains the Entry's value.
func (e Entry) Value() string { return e.value }

// Parent obtains the Entry's parent.
func (e Entry) Parent() string { return e.parent }

// NamespaceValue obtains the [Catalog] value of a namespace node.
func NamespaceValue(ns lexer.Identifier) string { return string(ns) + "." }

// Index groups the lowercase & uppercase identifiers of a lexed schema by namespace.
//
// The [Catalog] root holds a node per namespace (valued `ns.`) & the unqualified identifiers;
// a namespace node holds its qualified identifiers (valued `ns.name`). Tags are dropped,
// repeated identifiers are indexed once.
func Index(ctx context.Context, cfg *Config, items []lexer.Item) (c *Catalog[string], err error) {
	if cfg == nil {
		cfg = DefConfig()
	}
	cfg.Validate()

	seen := map[string]struct{}{RootValue: {}}
	src := []Builder[string]{Entry{value: RootValue}}

	add := func(value, parent string) {
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		src = append(src, Entry{value: value, parent: parent})
	}

	for index := range items {
		switch items[index].ID {
		case lexer.ItemLowerIdent, lexer.ItemUpperIdent:
		default:
			continue
		}

		q := items[index].Ident.QualifiedIdent
		if !q.HasNamespace() {
			add(string(q.Name), RootValue)
			continue
		}

		ns := NamespaceValue(q.Namespace)
		add(ns, RootValue)
		add(q.String(), ns)
	}

	b := NewBuildSource(
		WithBuilders(src),
		WithBuildConfig[string](cfg),
		WithOrdered[string](true),
	)
	if c, err = b.Build(ctx); err != nil {
		return
	}

	if cfg.Debug {
		outline, _ := c.Serialize(ctx)
		cfg.Logger.WithField("namespaces", spew.Sdump(Namespaces(c))).Debugf("index: %s", outline)
	}

	return
}

// Namespaces lists the namespaces of an index [Catalog], sorted.
func Namespaces(c *Catalog[string]) (namespaces []lexer.Identifier) {
	for _, child := range c.Children() {
		if ns, ok := strings.CutSuffix(child.value, "."); ok {
			namespaces = append(namespaces, lexer.Identifier(ns))
		}
	}

	return
}

// Members lists the identifiers declared in a namespace of an index [Catalog], sorted.
//
// The empty namespace lists the unqualified identifiers.
func Members(ctx context.Context, c *Catalog[string], ns lexer.Identifier) (members []string, err error) {
	node := c
	if ns != "" {
		if node, err = c.Locate(ctx, NamespaceValue(ns)); err != nil {
			return
		}
	}

	for _, child := range node.Children() {
		if len(child.children) > 0 {
			// A namespace node.
			continue
		}
		members = append(members, child.value)
	}

	return
}

// Lookup resolves an identifier in an index [Catalog], its tag is ignored.
func Lookup(ctx context.Context, c *Catalog[string], id lexer.QualifiedIdent) (*Catalog[string], error) {
	return c.Locate(ctx, id.String())
}

// Identifiers lists every identifier of an index [Catalog] in level order.
func Identifiers(ctx context.Context, c *Catalog[string]) ([]string, error) {
	leaves, err := c.Leaves(ctx)
	if err != nil {
		return nil, err
	}

	// Drop the root of an empty index.
	if len(leaves) == 1 && leaves[0] == c {
		return nil, nil
	}

	return leaves.Values(), nil
}

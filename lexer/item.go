// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// ItemID int holding an identifier for the Item tokens
	ItemID int

	// Item type holding the token, value & item type of a lexed span.
	Item struct {
		Err   error
		Ident FullIdent // Identifier data for the ItemLowerIdent, ItemUpperIdent & ItemVarIdent
		Val   string    // Source text of this Item, the body for an ItemComment
		Pos   Position  // Start of this Item
		Num   uint32    // Value of an ItemNumber
		ID    ItemID    // The type of this Item
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_              ItemID = iota // Consume 0 to start actual numbering at 1.
	ItemError                    // Notify occurrence of an `error`.
	ItemEOF                      // End of the source.
	ItemComment                  // `//` or `/* */` comment.
	ItemLowerIdent               // Full identifier: `ns.name#1f814f1f`.
	ItemUpperIdent               // Type name: `ns.Name`.
	ItemVarIdent                 // Case-insensitive identifier: `flags`, `X`.
	ItemWildcard                 // `#`.
	ItemNumber                   // Numeric constant.
	ItemPunct                    // Single TL punctuation character.
)

var itemNames = [...]string{
	ItemError:      "error",
	ItemEOF:        "EOF",
	ItemComment:    "comment",
	ItemLowerIdent: "lc_ident",
	ItemUpperIdent: "uc_ident",
	ItemVarIdent:   "var_ident",
	ItemWildcard:   "wildcard",
	ItemNumber:     "number",
	ItemPunct:      "punctuation",
}

// String is the fmt.Stringer implementation for ItemID.
func (id ItemID) String() string {
	if id > 0 && int(id) < len(itemNames) {
		return itemNames[id]
	}

	return fmt.Sprintf("ItemID(%d)", int(id))
}

// String is the fmt.Stringer implementation for Item.
func (i Item) String() string {
	switch i.ID {
	case ItemError:
		return fmt.Sprintf("%s %s: %v", i.Pos, i.ID, i.Err)
	case ItemEOF:
		return fmt.Sprintf("%s %s", i.Pos, i.ID)
	}

	return fmt.Sprintf("%s %s %q", i.Pos, i.ID, i.Val)
}

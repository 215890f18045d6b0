// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// Identifier is a TL identifier as written in the source.
	Identifier string

	// HexTag is the 8 digit lowercase hexadecimal constructor tag following a `#`.
	//
	// An empty HexTag indicates the tag is absent.
	HexTag string

	// QualifiedIdent is an Identifier with an optional namespace.
	//
	// An empty Namespace indicates the namespace is absent.
	QualifiedIdent struct {
		Name      Identifier
		Namespace Identifier
	}

	// TypeToken is a type identifier, either a QualifiedIdent or the `#` wildcard.
	TypeToken struct {
		QualifiedIdent
		Wildcard bool
	}

	// FullIdent is a lowercase QualifiedIdent with an optional HexTag.
	FullIdent struct {
		QualifiedIdent
		Tag HexTag
	}

	// Variant selects the identifier rules applied around a namespace separator.
	Variant int

	// identRule recognizes a bare Identifier.
	identRule func(Cursor) (Cursor, Identifier, error)
)

// Namespace-qualified identifier variants.
const (
	// VariantLower is `lc_ident` optionally qualified by a lowercase namespace.
	VariantLower Variant = iota
	// VariantUpper is `uc_ident` optionally qualified by a lowercase namespace.
	VariantUpper
	// VariantLoose is a case-insensitive identifier optionally qualifying an `uc_ident`.
	VariantLoose
)

const (
	namespaceSeparator = '.'
	tagMarker          = '#'
	hexTagLen          = 8

	// Wildcard is the type token denoting any type.
	Wildcard = "#"
)

var variantRules = [...]struct {
	left, right identRule
	name        string
}{
	VariantLower: {LowerIdent, LowerIdent, "lowercase"},
	VariantUpper: {LowerIdent, UpperIdent, "uppercase"},
	VariantLoose: {LooseIdent, UpperIdent, "loose"},
}

// LowerIdent recognizes an identifier starting with a lowercase letter.
//
// The identifier has at least one character following the leading letter.
func LowerIdent(c Cursor) (Cursor, Identifier, error) {
	return ident(c, IsLowerLetter, 2, "lowercase identifier")
}

// UpperIdent recognizes an identifier starting with an uppercase letter.
//
// The identifier has at least one character following the leading letter.
func UpperIdent(c Cursor) (Cursor, Identifier, error) {
	return ident(c, IsUpperLetter, 2, "uppercase identifier")
}

// LooseIdent recognizes a run of identifier characters regardless of case.
func LooseIdent(c Cursor) (Cursor, Identifier, error) {
	return ident(c, IsIdentChar, 1, "variable identifier")
}

// ident recognizes a leading character of the lead class followed by identifier characters.
func ident(c Cursor, lead CharClass, minLen int, what string) (next Cursor, id Identifier, err error) {
	next = c

	body, _, err := accept(c, lead, what)
	if err != nil {
		return
	}

	end, n := acceptWhile(body, IsIdentChar)
	if n+1 < minLen {
		err = fmt.Errorf("%w: %s at offset %d is shorter than %d characters", ErrUnmatched, what, c.Offset(), minLen)
		return
	}

	id, next = Identifier(strings.Clone(end.Since(c))), end

	return
}

// Qualified recognizes an optionally namespaced identifier of the Variant.
//
// A missing separator yields the left identifier as the name. A separator that isn't followed by
// a valid identifier is an ErrMalformedNamespace, the separator is never left for the next token.
func Qualified(v Variant, c Cursor) (next Cursor, q QualifiedIdent, err error) {
	next = c
	if v < 0 || int(v) >= len(variantRules) {
		err = fmt.Errorf("%w: %d", ErrInvalidVariant, v)
		return
	}
	rules := variantRules[v]

	afterLeft, left, err := rules.left(c)
	if err != nil {
		return
	}

	afterSep, _, sepErr := accept(afterLeft, isNamespaceSeparator, "namespace separator")
	if sepErr != nil {
		q.Name, next = left, afterLeft
		return
	}

	afterRight, right, err := rules.right(afterSep)
	if err != nil {
		err = fmt.Errorf("%w (%s) %q: %v", ErrMalformedNamespace, rules.name, left, err)
		return
	}

	q, next = QualifiedIdent{Name: right, Namespace: left}, afterRight

	return
}

// LowerQualified is Qualified for VariantLower.
func LowerQualified(c Cursor) (Cursor, QualifiedIdent, error) { return Qualified(VariantLower, c) }

// UpperQualified is Qualified for VariantUpper.
func UpperQualified(c Cursor) (Cursor, QualifiedIdent, error) { return Qualified(VariantUpper, c) }

// LooseQualified is Qualified for VariantLoose.
func LooseQualified(c Cursor) (Cursor, QualifiedIdent, error) { return Qualified(VariantLoose, c) }

// TypeIdent recognizes a type identifier: a lowercase or uppercase qualified identifier, or the
// wildcard.
//
// The wildcard is only attempted when no identifier started at the Cursor.
func TypeIdent(c Cursor) (next Cursor, t TypeToken, err error) {
	if next, t.QualifiedIdent, err = LowerQualified(c); err == nil {
		return
	}
	if next, t.QualifiedIdent, err = UpperQualified(c); err == nil {
		return
	}
	if !IsUnmatched(err) {
		return
	}

	if next, _, err = accept(c, isTagMarker, "type identifier"); err != nil {
		return
	}
	t.Wildcard = true

	return
}

// FullIdentifier recognizes a lowercase qualified identifier with an optional HexTag.
//
// A `#` that isn't followed by 8 lowercase hex digits is an ErrMalformedTag.
func FullIdentifier(c Cursor) (next Cursor, f FullIdent, err error) {
	next = c

	afterIdent, q, err := LowerQualified(c)
	if err != nil {
		return
	}

	tagStart, _, markErr := accept(afterIdent, isTagMarker, "hex tag marker")
	if markErr != nil {
		f.QualifiedIdent, next = q, afterIdent
		return
	}

	tagEnd := tagStart
	for index := 0; index < hexTagLen; index++ {
		if tagEnd, _, err = HexDigit(tagEnd); err != nil {
			err = fmt.Errorf("%w of %q: %v", ErrMalformedTag, q.String(), err)
			return
		}
	}

	f = FullIdent{QualifiedIdent: q, Tag: HexTag(strings.Clone(tagEnd.Since(tagStart)))}
	next = tagEnd

	return
}

func isNamespaceSeparator(b byte) bool { return b == namespaceSeparator }

func isTagMarker(b byte) bool { return b == tagMarker }

// HasNamespace checks for the presence of a namespace.
func (q QualifiedIdent) HasNamespace() bool { return q.Namespace != "" }

// String renders the QualifiedIdent as written in a schema.
func (q QualifiedIdent) String() string {
	if !q.HasNamespace() {
		return string(q.Name)
	}

	return string(q.Namespace) + string(namespaceSeparator) + string(q.Name)
}

// String renders the TypeToken as written in a schema.
func (t TypeToken) String() string {
	if t.Wildcard {
		return Wildcard
	}

	return t.QualifiedIdent.String()
}

// HasTag checks for the presence of a HexTag.
func (f FullIdent) HasTag() bool { return f.Tag != "" }

// String renders the FullIdent as written in a schema.
func (f FullIdent) String() string {
	if !f.HasTag() {
		return f.QualifiedIdent.String()
	}

	return f.QualifiedIdent.String() + string(tagMarker) + string(f.Tag)
}

// Uint32 decodes the HexTag into its 32-bit value.
func (t HexTag) Uint32() (id uint32, err error) {
	if t == "" {
		err = ErrMissingTag
		return
	}

	val, err := strconv.ParseUint(string(t), 16, 32)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedTag, err)
		return
	}
	id = uint32(val)

	return
}

// SPDX-License-Identifier: MIT
package lexer

// CharClass reports whether a byte belongs to a character class.
type CharClass func(byte) bool

// Lookup tables improve on performance compared to ORs & keep the predicates inlinable.
var (
	lowerLetters = [256]bool{
		'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true, 'h': true,
		'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true, 'o': true, 'p': true,
		'q': true, 'r': true, 's': true, 't': true, 'u': true, 'v': true, 'w': true, 'x': true,
		'y': true, 'z': true,
	}

	upperLetters = [256]bool{
		'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true, 'H': true,
		'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true, 'O': true, 'P': true,
		'Q': true, 'R': true, 'S': true, 'T': true, 'U': true, 'V': true, 'W': true, 'X': true,
		'Y': true, 'Z': true,
	}

	digits = [256]bool{
		'0': true, '1': true, '2': true, '3': true, '4': true,
		'5': true, '6': true, '7': true, '8': true, '9': true,
	}

	// Uppercase hex digits are not part of the TL grammar.
	hexLetters = [256]bool{'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true}

	whitespace = [256]bool{
		' ':  true,
		'\t': true,
		'\r': true,
		'\n': true,
	}

	punctuation = [256]bool{
		':': true, ';': true, '=': true, '(': true, ')': true, '{': true, '}': true,
		'[': true, ']': true, '<': true, '>': true, '?': true, '!': true, '%': true,
		'*': true, ',': true, '.': true, '+': true, '-': true,
	}
)

// IsLowerLetter matches ASCII a-z.
func IsLowerLetter(b byte) bool { return lowerLetters[b] }

// IsUpperLetter matches ASCII A-Z.
func IsUpperLetter(b byte) bool { return upperLetters[b] }

// IsDigit matches ASCII 0-9.
func IsDigit(b byte) bool { return digits[b] }

// IsHexDigit matches a digit or a lowercase a-f.
func IsHexDigit(b byte) bool { return digits[b] || hexLetters[b] }

// IsLetter matches a lower or upper case letter.
func IsLetter(b byte) bool { return lowerLetters[b] || upperLetters[b] }

// IsIdentChar matches a letter, a digit or an underscore.
func IsIdentChar(b byte) bool { return IsLetter(b) || digits[b] || b == '_' }

func isWhitespace(b byte) bool { return whitespace[b] }

func isPunctuation(b byte) bool { return punctuation[b] }

// LowerLetter consumes a lowercase letter.
func LowerLetter(c Cursor) (Cursor, byte, error) { return accept(c, IsLowerLetter, "lowercase letter") }

// UpperLetter consumes an uppercase letter.
func UpperLetter(c Cursor) (Cursor, byte, error) { return accept(c, IsUpperLetter, "uppercase letter") }

// Digit consumes a decimal digit.
func Digit(c Cursor) (Cursor, byte, error) { return accept(c, IsDigit, "digit") }

// HexDigit consumes a lowercase hexadecimal digit.
func HexDigit(c Cursor) (Cursor, byte, error) { return accept(c, IsHexDigit, "hex digit") }

// Letter consumes a letter.
func Letter(c Cursor) (Cursor, byte, error) { return accept(c, IsLetter, "letter") }

// IdentChar consumes an identifier character.
func IdentChar(c Cursor) (Cursor, byte, error) { return accept(c, IsIdentChar, "identifier character") }

// accept consumes a single byte of the class, leaving the Cursor untouched otherwise.
func accept(c Cursor, class CharClass, expected string) (next Cursor, b byte, err error) {
	next = c

	var ok bool
	if b, ok = c.Peek(); !ok || !class(b) {
		err = unmatched(c, expected)
		return
	}
	next = c.Advance(1)

	return
}

// acceptWhile consumes bytes of the class, returning the amount consumed.
func acceptWhile(c Cursor, class CharClass) (next Cursor, n int) {
	rest := c.Rest()
	for n < len(rest) && class(rest[n]) {
		n++
	}
	next = c.Advance(n)

	return
}

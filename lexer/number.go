// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strconv"
)

// natBits is the width of a TL `nat`.
const natBits = 32

// NumericConstant recognizes a run of decimal digits as an unsigned 32-bit integer.
//
// Leading zeros don't imply octal. A value exceeding 32 bits is an ErrOverflow.
func NumericConstant(c Cursor) (next Cursor, n uint32, err error) {
	next = c

	end, count := acceptWhile(c, IsDigit)
	if count < 1 {
		err = unmatched(c, "numeric constant")
		return
	}

	digitRun := end.Since(c)
	val, err := strconv.ParseUint(digitRun, 10, natBits)
	if err != nil {
		// The run holds digits only, range is the sole possible failure.
		err = fmt.Errorf("%w: %s at offset %d exceeds %d bits", ErrOverflow, digitRun, c.Offset(), natBits)
		return
	}

	n, next = uint32(val), end

	return
}

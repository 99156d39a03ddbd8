// SPDX-License-Identifier: MIT
package scanner

type (
	// Item type holding a matched digit token.
	Item struct {
		Digit int // The value of this Item
		Pos   int // The starting position, (in bytes) of this Item
		Len   int // The length, (in bytes) of the matched token
	}
)

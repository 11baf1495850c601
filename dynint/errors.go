// This file is part of Arbitrary.
//
// Arbitrary is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Arbitrary is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Arbitrary.  If not, see <https://www.gnu.org/licenses/>.

package dynint

// error patterns for use with the curated package. tested with curated.Is()
// and curated.Has()
const (
	// NotInitialised is returned when an operand is nil, or when its buffer
	// has been released with Clear() and the integer not re-initialised
	NotInitialised = "dynint: not initialised"

	// BufferTooLarge is returned when an extension would take the buffer past
	// MaxFields
	BufferTooLarge = "dynint: buffer too large (%d fields, max %d)"

	// MulOperandTooLarge is returned when the smaller operand of a
	// multiplication is too large to be realised as a shift sequence
	MulOperandTooLarge = "dynint: multiplicand too large"

	// DivideByZero is returned by Div and Mod when the divisor is zero
	DivideByZero = "dynint: division by zero"

	// CastOverflow is returned when a cast to a machine integer would lose
	// information
	CastOverflow = "dynint: cast overflow (%d significant bits into %d bytes)"

	// CastSize is returned when the byte count given to a cast is not that of
	// a machine integer
	CastSize = "dynint: cast size out of range (%d bytes)"
)

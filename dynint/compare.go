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

import (
	"github.com/ladle-gh/arbitrary/bitfield"
	"github.com/ladle-gh/arbitrary/curated"
)

// IsNegative checks the sign bit of the integer.
func (v *Int) IsNegative() bool {
	if !v.usable() {
		return false
	}
	return v.last()&bitfield.SignBit != 0
}

// IsZero checks if the integer is zero.
func (v *Int) IsZero() bool {
	if !v.usable() {
		return false
	}
	for _, b := range v.bits {
		if b != 0 {
			return false
		}
	}
	return true
}

// Cmp compares two integers. The return value is:
//
//	-1 if lhs < rhs
//	 0 if lhs = rhs
//	+1 if lhs > rhs
func Cmp(lhs, rhs *Int) (int, error) {
	if !lhs.usable() || !rhs.usable() {
		return 0, curated.Errorf(NotInitialised)
	}

	lneg := lhs.IsNegative()
	if lneg != rhs.IsNegative() {
		if lneg {
			return -1, nil
		}
		return 1, nil
	}

	// for operands of the same sign the buffers order the same way as the
	// values they represent. shorter buffers are compared through their sign
	// fill
	sz := len(lhs.bits)
	if len(rhs.bits) > sz {
		sz = len(rhs.bits)
	}
	for i := sz - 1; i >= 0; i-- {
		l, r := lhs.peek(i), rhs.peek(i)
		if l > r {
			return 1, nil
		}
		if l < r {
			return -1, nil
		}
	}
	return 0, nil
}

// MostSignificant returns whichever of the two integers has the greater
// magnitude. Ties return lhs.
func MostSignificant(lhs, rhs *Int) (*Int, error) {
	if !lhs.usable() || !rhs.usable() {
		return nil, curated.Errorf(NotInitialised)
	}

	labs, err := Abs(lhs)
	if err != nil {
		return nil, err
	}
	rabs, err := Abs(rhs)
	if err != nil {
		return nil, err
	}

	if maxSig(labs, rabs) == labs {
		return lhs, nil
	}
	return rhs, nil
}

// SigBits returns the position, counting from one, of the most significant
// set bit in the absolute value of the integer. Zero has no significant bits.
func (v *Int) SigBits() uint {
	if !v.usable() {
		return 0
	}
	if !v.IsNegative() {
		return v.sigBits()
	}
	abs, err := Abs(v)
	if err != nil {
		return 0
	}
	return abs.sigBits()
}

// Bit returns the state of the bit at idx. An index beyond the buffer returns
// the sign fill.
func (v *Int) Bit(idx uint) bool {
	if !v.usable() {
		return false
	}
	if idx >= uint(len(v.bits))*bitfield.Bits {
		return v.insig() != 0
	}
	return v.bit(idx)
}

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
	"github.com/ladle-gh/arbitrary/curated"
)

// Neg negates the integer. Two's complement negation: every bit is flipped
// and one is added.
func (tar *Int) Neg() error {
	if err := tar.Not(); err != nil {
		return err
	}
	return tar.Add(One)
}

// Abs replaces the integer with its absolute value.
func (tar *Int) Abs() error {
	if !tar.usable() {
		return curated.Errorf(NotInitialised)
	}
	if tar.IsNegative() {
		return tar.Neg()
	}
	return nil
}

// Add adds val to tar. The buffer grows as needed to hold the full result,
// including an overflow field when the larger magnitude occupies the top
// field of its buffer.
func (tar *Int) Add(val *Int) error {
	if !tar.usable() || !val.usable() {
		return curated.Errorf(NotInitialised)
	}

	tarAbs, err := Abs(tar)
	if err != nil {
		return err
	}
	valAbs, err := Abs(val)
	if err != nil {
		return err
	}

	// size the result buffer from the larger magnitude, with room for
	// overflow if its top field is occupied
	max := maxSig(tarAbs, valAbs)
	need := len(max.bits)
	if max.last() != max.insig() {
		need++
	}
	if len(tar.bits) < need {
		if err := tar.extend(uint(need)); err != nil {
			return err
		}
	}

	// signed addition in two's complement is bitwise identical to unsigned
	// addition modulo the buffer width, so a single carry-propagating walk
	// from the low field serves both signs
	var carry bool
	for i := range tar.bits {
		v := val.peek(i)
		sum := tar.bits[i] + v
		c := sum < v
		if carry {
			sum++
			c = c || sum == 0
		}
		tar.bits[i] = sum
		carry = c
	}
	return nil
}

// Sub subtracts val from tar. Implemented as the addition of val's negation.
func (tar *Int) Sub(val *Int) error {
	neg, err := Neg(val)
	if err != nil {
		return err
	}
	return tar.Add(neg)
}

// Mul multiplies tar by val. The smaller magnitude operand must not exceed
// MaxMul; multiplication is realised as a shift sequence and the shift counts
// involved must be representable.
func (tar *Int) Mul(val *Int) error {
	if !tar.usable() || !val.usable() {
		return curated.Errorf(NotInitialised)
	}

	if tar.IsZero() || val.IsZero() {
		return tar.Assign(Zero)
	}

	tarAbs, err := Abs(tar)
	if err != nil {
		return err
	}
	valAbs, err := Abs(val)
	if err != nil {
		return err
	}

	max := maxSig(tarAbs, valAbs)
	min := valAbs
	if max == valAbs {
		min = tarAbs
	}

	if c, err := Cmp(min, MaxMul); err != nil {
		return err
	} else if c > 0 {
		return curated.Errorf(MulOperandTooLarge)
	}

	negate := tar.IsNegative() != val.IsNegative()

	// schoolbook shift-and-add over the set bits of the smaller magnitude.
	// max is a working copy so it can be shifted in place
	acc := NewInt()
	sig := min.sigBits()
	for i := uint(0); i < sig; i++ {
		if i > 0 {
			if err := max.Lsh(1); err != nil {
				return err
			}
		}
		if min.bit(i) {
			if err := acc.Add(max); err != nil {
				return err
			}
		}
	}

	if negate {
		if err := acc.Neg(); err != nil {
			return err
		}
	}
	return tar.Swap(acc)
}

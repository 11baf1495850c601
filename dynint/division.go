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

// Div divides tar by val, truncating toward zero.
func (tar *Int) Div(val *Int) error {
	return tar.divmod(val, false)
}

// Mod replaces tar with the remainder of the division of tar by val. The
// remainder takes the sign of the dividend, preserving the identity
//
//	tar = (tar div val) * val + (tar mod val)
func (tar *Int) Mod(val *Int) error {
	return tar.divmod(val, true)
}

// divmod is the shared kernel of Div and Mod. restoring long division on the
// absolute values with the signs reconciled afterwards
func (tar *Int) divmod(val *Int, rem bool) error {
	if !tar.usable() || !val.usable() {
		return curated.Errorf(NotInitialised)
	}
	if val.IsZero() {
		return curated.Errorf(DivideByZero)
	}
	if tar.IsZero() {
		return nil
	}

	t, err := Abs(tar)
	if err != nil {
		return err
	}
	v, err := Abs(val)
	if err != nil {
		return err
	}

	c, err := Cmp(t, v)
	if err != nil {
		return err
	}
	switch c {
	case -1:
		// dividend magnitude smaller than the divisor: quotient is zero and
		// the remainder is the dividend
		if rem {
			return nil
		}
		return tar.Assign(Zero)
	case 0:
		if rem {
			return tar.Assign(Zero)
		}
		negate := tar.IsNegative() != val.IsNegative()
		if err := tar.Assign(One); err != nil {
			return err
		}
		if negate {
			return tar.Neg()
		}
		return nil
	}

	negQ := tar.IsNegative() != val.IsNegative()
	negR := tar.IsNegative()

	cur := t.sigBits() - v.sigBits()

	// partial remainder seeded with the high bits of the dividend
	r, err := NewIntCopy(t)
	if err != nil {
		return err
	}
	if err := r.Rsh(cur); err != nil {
		return err
	}

	// the quotient's highest possible bit is cur. the extra field keeps the
	// sign field clear
	q := NewInt()
	if err := q.extend(cur/bitfield.Bits + 2); err != nil {
		return err
	}

	for {
		c, err := Cmp(r, v)
		if err != nil {
			return err
		}
		if c >= 0 {
			q.setBit(cur)
			if err := r.Sub(v); err != nil {
				return err
			}
		}
		if cur == 0 {
			break
		}
		cur--

		// pull the next bit of the dividend into the partial remainder
		if err := r.Lsh(1); err != nil {
			return err
		}
		if t.bit(cur) {
			r.bits[0] |= 1
		}
	}

	if rem {
		if negR {
			if err := r.Neg(); err != nil {
				return err
			}
		}
		return tar.Swap(r)
	}

	if negQ {
		if err := q.Neg(); err != nil {
			return err
		}
	}
	return tar.Swap(q)
}

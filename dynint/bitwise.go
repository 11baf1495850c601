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

// Not flips every bit in the integer.
func (tar *Int) Not() error {
	if !tar.usable() {
		return curated.Errorf(NotInitialised)
	}
	for i := range tar.bits {
		tar.bits[i] = ^tar.bits[i]
	}
	return nil
}

// And combines the two integers bitwise, storing the result in tar. A val
// with a shorter buffer behaves as though it were sign-extended to tar's
// width.
func (tar *Int) And(val *Int) error {
	if !tar.usable() || !val.usable() {
		return curated.Errorf(NotInitialised)
	}
	if len(tar.bits) < len(val.bits) {
		if err := tar.extend(uint(len(val.bits))); err != nil {
			return err
		}
	}
	for i := range tar.bits {
		tar.bits[i] &= val.peek(i)
	}
	return nil
}

// Or combines the two integers bitwise, storing the result in tar. A val
// with a shorter buffer behaves as though it were sign-extended to tar's
// width.
func (tar *Int) Or(val *Int) error {
	if !tar.usable() || !val.usable() {
		return curated.Errorf(NotInitialised)
	}
	if len(tar.bits) < len(val.bits) {
		if err := tar.extend(uint(len(val.bits))); err != nil {
			return err
		}
	}
	for i := range tar.bits {
		tar.bits[i] |= val.peek(i)
	}
	return nil
}

// Xor combines the two integers bitwise, storing the result in tar. A val
// with a shorter buffer behaves as though it were sign-extended to tar's
// width.
func (tar *Int) Xor(val *Int) error {
	if !tar.usable() || !val.usable() {
		return curated.Errorf(NotInitialised)
	}
	if len(tar.bits) < len(val.bits) {
		if err := tar.extend(uint(len(val.bits))); err != nil {
			return err
		}
	}
	for i := range tar.bits {
		tar.bits[i] ^= val.peek(i)
	}
	return nil
}

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

// CastSigned returns the value of the integer as a signed machine integer of
// the given byte count. The cast fails if the value cannot be represented in
// that many bytes.
func (v *Int) CastSigned(size uint) (int64, error) {
	if !v.usable() {
		return 0, curated.Errorf(NotInitialised)
	}
	if size < 1 || size > 8 {
		return 0, curated.Errorf(CastSize, size)
	}

	width := size * 8

	abs, err := Abs(v)
	if err != nil {
		return 0, err
	}
	sig := abs.sigBits()

	// a magnitude occupying every bit of the target width is representable in
	// one case only: the smallest negative value for that width
	if sig > width || (sig == width && !(v.IsNegative() && abs.bits[0] == bitfield.Bitfield(1)<<(width-1))) {
		return 0, curated.Errorf(CastOverflow, sig, size)
	}

	// sign-extend the low bits of the buffer to the full width of the machine
	// integer
	sh := 64 - width
	return int64(uint64(v.bits[0])<<sh) >> sh, nil
}

// CastUnsigned returns the value of the integer as an unsigned machine
// integer of the given byte count. The cast fails if the integer is negative
// or too large for that many bytes.
func (v *Int) CastUnsigned(size uint) (uint64, error) {
	if !v.usable() {
		return 0, curated.Errorf(NotInitialised)
	}
	if size < 1 || size > 8 {
		return 0, curated.Errorf(CastSize, size)
	}

	if v.IsNegative() {
		return 0, curated.Errorf(CastOverflow, v.SigBits(), size)
	}
	if sig := v.sigBits(); sig > size*8 {
		return 0, curated.Errorf(CastOverflow, sig, size)
	}

	return uint64(v.bits[0]), nil
}

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

// this file contains the helper functions that work directly on the bitfield
// buffer. none of them check for usability, the public operations do that

func (v *Int) usable() bool {
	return v != nil && v.bits != nil
}

// insig returns the bitfield value conceptually extending the integer beyond
// its buffer. all ones for a negative integer, zero otherwise
func (v *Int) insig() bitfield.Bitfield {
	if v.IsNegative() {
		return bitfield.Max
	}
	return 0
}

// peek returns the bitfield at idx. if idx is past the end of the buffer the
// insignificant fill value is returned
func (v *Int) peek(idx int) bitfield.Bitfield {
	if idx >= len(v.bits) {
		return v.insig()
	}
	return v.bits[idx]
}

// last returns the final bitfield in the buffer. the field that holds the
// sign bit
func (v *Int) last() bitfield.Bitfield {
	return v.bits[len(v.bits)-1]
}

// sigBits returns the number of significant bits in the buffer when it is
// read as an unsigned number. zero for an integer of value zero
func (v *Int) sigBits() uint {
	for i := len(v.bits) - 1; i >= 0; i-- {
		if v.bits[i] != 0 {
			return uint(i)*bitfield.Bits + bitfield.Sig(v.bits[i])
		}
	}
	return 0
}

// padding returns the number of bits between the most significant set bit and
// the end of the buffer
func (v *Int) padding() uint {
	return uint(len(v.bits))*bitfield.Bits - v.sigBits()
}

// bit returns the state of the bit at idx. idx must be within the buffer
func (v *Int) bit(idx uint) bool {
	return v.bits[idx/bitfield.Bits]&(bitfield.Bitfield(1)<<(idx%bitfield.Bits)) != 0
}

// setBit sets the bit at idx. idx must be within the buffer
func (v *Int) setBit(idx uint) {
	v.bits[idx/bitfield.Bits] |= bitfield.Bitfield(1) << (idx % bitfield.Bits)
}

// maxSig returns whichever of the two integers holds the larger value when
// the buffers are read as unsigned numbers. both arguments are expected to be
// non-negative. ties return lhs
func maxSig(lhs, rhs *Int) *Int {
	sz := len(lhs.bits)
	if len(rhs.bits) > sz {
		sz = len(rhs.bits)
	}
	for i := sz - 1; i >= 0; i-- {
		l, r := lhs.peek(i), rhs.peek(i)
		if l > r {
			return lhs
		}
		if r > l {
			return rhs
		}
	}
	return lhs
}

// extend grows the buffer to resize fields, filling the new high fields with
// the sign fill. a resize within the current buffer size is a no-op
func (v *Int) extend(resize uint) error {
	if resize > MaxFields {
		return curated.Errorf(BufferTooLarge, resize, uint(MaxFields))
	}
	if resize <= uint(len(v.bits)) {
		return nil
	}
	fill := v.insig()
	bits := make([]bitfield.Bitfield, resize)
	n := copy(bits, v.bits)
	for i := n; i < len(bits); i++ {
		bits[i] = fill
	}
	v.bits = bits
	return nil
}

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

// Lsh shifts the integer left by the given number of bits. The buffer grows
// as needed so high bits are never dropped; the vacated low bits are zero.
func (tar *Int) Lsh(shift uint) error {
	return tar.lshift(shift, 0)
}

// SLsh shifts the integer left by the given number of bits, like Lsh, except
// that the vacated low bits take the value of the integer's sign fill.
func (tar *Int) SLsh(shift uint) error {
	if !tar.usable() {
		return curated.Errorf(NotInitialised)
	}
	return tar.lshift(shift, tar.insig())
}

// lshift performs a left shift, filling the vacated low bits from fill
func (tar *Int) lshift(shift uint, fill bitfield.Bitfield) error {
	if !tar.usable() {
		return curated.Errorf(NotInitialised)
	}

	if shift == 0 {
		return nil
	}

	move := int(shift / bitfield.Bits)
	intra := shift % bitfield.Bits

	// grow the buffer when the shift would push significant bits into, or
	// past, the sign bit
	if pad := tar.padding(); shift >= pad {
		add := bitfield.CeilDiv(shift-pad+1, bitfield.Bits)
		if add > MaxFields || uint(len(tar.bits)) > MaxFields-add {
			return curated.Errorf(BufferTooLarge, uint(len(tar.bits))+add, uint(MaxFields))
		}
		if err := tar.extend(uint(len(tar.bits)) + add); err != nil {
			return err
		}
	}

	// whole-field move, high fields first
	for i := len(tar.bits) - 1; i >= move; i-- {
		tar.bits[i] = tar.bits[i-move]
	}
	for i := 0; i < move && i < len(tar.bits); i++ {
		tar.bits[i] = fill
	}

	// intra-field shift, carrying the displaced high bits into the next field
	var carry bitfield.Bitfield
	for i := move; i < len(tar.bits); i++ {
		tmp := tar.bits[i] >> (bitfield.Bits - intra)
		tar.bits[i] = tar.bits[i]<<intra | carry
		if i == move {
			tar.bits[i] |= fill >> (bitfield.Bits - intra)
		}
		carry = tmp
	}
	return nil
}

// Rsh shifts the integer right by the given number of bits. The shift is
// arithmetic: the vacated high bits take the value of the sign fill. Low bits
// are discarded.
func (tar *Int) Rsh(shift uint) error {
	if !tar.usable() {
		return curated.Errorf(NotInitialised)
	}

	move := int(shift / bitfield.Bits)
	intra := shift % bitfield.Bits
	fill := tar.insig()

	// a move of the whole buffer leaves only the sign
	if move >= len(tar.bits) {
		for i := range tar.bits {
			tar.bits[i] = fill
		}
		return nil
	}

	// whole-field move, low fields first
	for i := 0; i < len(tar.bits)-move; i++ {
		tar.bits[i] = tar.bits[i+move]
	}
	for i := len(tar.bits) - move; i < len(tar.bits); i++ {
		tar.bits[i] = fill
	}

	if intra == 0 {
		return nil
	}

	// intra-field shift, feeding the sign fill in at the top
	carry := fill << (bitfield.Bits - intra)
	for i := len(tar.bits) - move - 1; i >= 0; i-- {
		tmp := tar.bits[i] << (bitfield.Bits - intra)
		tar.bits[i] = tar.bits[i]>>intra | carry
		carry = tmp
	}
	return nil
}

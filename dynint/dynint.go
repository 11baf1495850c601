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
	"fmt"
	"strings"

	"github.com/ladle-gh/arbitrary/bitfield"
	"github.com/ladle-gh/arbitrary/curated"
)

const (
	// MaxShift is the largest shift count that can be given to any of the
	// shift operations.
	MaxShift = ^uint(0)

	// MaxFields is the largest number of bitfields an integer's buffer may
	// hold. The limit keeps the total bit count of a buffer representable as
	// a shift count.
	MaxFields = MaxShift / bitfield.Bits
)

// Int is a signed integer of unbounded magnitude. The zero value of the type
// is not usable; integers are created with one of the NewInt constructors.
type Int struct {
	// the value, least significant bitfield first, interpreted as a two's
	// complement number over the width of the whole buffer. bitfields beyond
	// the buffer are conceptually equal to the sign fill. always at least one
	// field long while the integer is usable
	bits []bitfield.Bitfield
}

// Shared convenience values. These are read-only. They must never be the
// target of a method call.
var (
	Zero = &Int{bits: []bitfield.Bitfield{0}}
	One  = &Int{bits: []bitfield.Bitfield{1}}

	// MaxMul is the largest value a multiplicand may take. It equals
	// MaxShift, the largest shift count.
	MaxMul = NewIntUnsigned(uint64(MaxShift))
)

// NewInt creates a new integer with a value of zero.
func NewInt() *Int {
	return &Int{bits: make([]bitfield.Bitfield, 1)}
}

// NewIntSigned creates a new integer from a signed machine integer. The
// buffer is two fields long so that a magnitude reaching the top bit of the
// first field still has a distinct sign field.
func NewIntSigned(val int64) *Int {
	in := &Int{bits: make([]bitfield.Bitfield, 2)}
	in.bits[0] = bitfield.Bitfield(val)
	if val < 0 {
		in.bits[1] = bitfield.Max
	}
	return in
}

// NewIntUnsigned creates a new integer from an unsigned machine integer. The
// second field of the buffer is zero, keeping the value non-negative even
// when the top bit of the machine integer is set.
func NewIntUnsigned(val uint64) *Int {
	in := &Int{bits: make([]bitfield.Bitfield, 2)}
	in.bits[0] = bitfield.Bitfield(val)
	return in
}

// NewIntCopy creates a new integer with the same value, and the same buffer
// size, as src.
func NewIntCopy(src *Int) (*Int, error) {
	if !src.usable() {
		return nil, curated.Errorf(NotInitialised)
	}
	in := &Int{bits: make([]bitfield.Bitfield, len(src.bits))}
	copy(in.bits, src.bits)
	return in, nil
}

// Assign copies the value of src into tar. The buffer grows if src does not
// fit; if tar's buffer is the longer of the two the excess fields are set to
// src's sign fill.
func (tar *Int) Assign(src *Int) error {
	if !tar.usable() || !src.usable() {
		return curated.Errorf(NotInitialised)
	}
	if tar == src {
		return nil
	}
	if len(tar.bits) < len(src.bits) {
		tar.bits = make([]bitfield.Bitfield, len(src.bits))
	}
	n := copy(tar.bits, src.bits)
	fill := src.insig()
	for i := n; i < len(tar.bits); i++ {
		tar.bits[i] = fill
	}
	return nil
}

// AssignSigned sets tar to the value of a signed machine integer. The buffer
// keeps its current size.
func (tar *Int) AssignSigned(val int64) error {
	if !tar.usable() {
		return curated.Errorf(NotInitialised)
	}
	var fill bitfield.Bitfield
	if val < 0 {
		fill = bitfield.Max
	}
	tar.bits[0] = bitfield.Bitfield(val)
	for i := 1; i < len(tar.bits); i++ {
		tar.bits[i] = fill
	}
	return nil
}

// AssignUnsigned sets tar to the value of an unsigned machine integer.
func (tar *Int) AssignUnsigned(val uint64) error {
	if !tar.usable() {
		return curated.Errorf(NotInitialised)
	}

	// a single-field buffer cannot hold a value that reaches the sign bit
	if len(tar.bits) < 2 && bitfield.Bitfield(val)&bitfield.SignBit != 0 {
		if err := tar.extend(2); err != nil {
			return err
		}
	}

	tar.bits[0] = bitfield.Bitfield(val)
	for i := 1; i < len(tar.bits); i++ {
		tar.bits[i] = 0
	}
	return nil
}

// Swap exchanges the buffers of the two integers. Both must be usable.
func (tar *Int) Swap(val *Int) error {
	if !tar.usable() || !val.usable() {
		return curated.Errorf(NotInitialised)
	}
	tar.bits, val.bits = val.bits, tar.bits
	return nil
}

// Clear releases the integer's buffer. The integer cannot be used again:
// every operation on it, Assign included, fails with NotInitialised. Clear on
// a nil integer is a no-op.
func (v *Int) Clear() {
	if v == nil {
		return
	}
	v.bits = nil
}

// Extend grows the buffer to the given number of fields, sign-extending the
// value. Extend never shrinks the buffer.
func (tar *Int) Extend(fields uint) error {
	if !tar.usable() {
		return curated.Errorf(NotInitialised)
	}
	return tar.extend(fields)
}

// String returns the bitfields of the integer in hexadecimal notation, most
// significant field first.
func (v *Int) String() string {
	if !v.usable() {
		return "(not initialised)"
	}
	var b strings.Builder
	for i := len(v.bits) - 1; i >= 0; i-- {
		if i < len(v.bits)-1 {
			b.WriteRune(' ')
		}
		fmt.Fprintf(&b, "%016x", uint64(v.bits[i]))
	}
	return b.String()
}

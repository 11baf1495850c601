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

package dynint_test

import (
	"math/rand/v2"
	"testing"

	"github.com/ladle-gh/arbitrary/dynint"
	itest "github.com/ladle-gh/arbitrary/dynint/test"
	"github.com/ladle-gh/arbitrary/test"
)

func TestBitwise(t *testing.T) {
	a := dynint.NewIntUnsigned(0xDEADBEEF)
	b := dynint.NewIntUnsigned(0x0F0F0F0F)

	v, err := dynint.And(a, b)
	test.ExpectSuccess(t, err)
	itest.EquateInts(t, v, uint64(0x0E0D0E0F))

	v, err = dynint.Or(a, b)
	test.ExpectSuccess(t, err)
	itest.EquateInts(t, v, uint64(0xDFAFBFEF))

	v, err = dynint.Xor(a, b)
	test.ExpectSuccess(t, err)
	itest.EquateInts(t, v, uint64(0xD1A2B1E0))

	// operands are commutative
	w, err := dynint.And(b, a)
	test.ExpectSuccess(t, err)
	itest.EquateInts(t, w, uint64(0x0E0D0E0F))
}

func TestBitwiseSignExtension(t *testing.T) {
	// a narrow val behaves as though sign-extended to tar's width. minus one
	// is all ones at any width so ANDing it changes nothing
	wide, err := dynint.Lsh(dynint.One, 300)
	test.ExpectSuccess(t, err)

	v, err := dynint.And(wide, dynint.NewIntSigned(-1))
	test.ExpectSuccess(t, err)
	itest.EquateInts(t, v, wide)

	// a narrow non-negative val clears everything past its width
	v, err = dynint.And(wide, dynint.NewIntUnsigned(0xff))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, v.IsZero())

	// a short negative tar extends itself with ones before combining with a
	// wider val
	v, err = dynint.And(dynint.NewIntSigned(-1), wide)
	test.ExpectSuccess(t, err)
	itest.EquateInts(t, v, wide)

	// OR with a narrow negative val sign-extends the val
	v, err = dynint.Or(wide, dynint.NewIntSigned(-1))
	test.ExpectSuccess(t, err)
	itest.EquateInts(t, v, -1)
}

func TestNot(t *testing.T) {
	v := dynint.NewIntUnsigned(0)
	err := v.Not()
	test.ExpectSuccess(t, err)
	itest.EquateInts(t, v, -1)

	err = v.Not()
	test.ExpectSuccess(t, err)
	itest.EquateInts(t, v, 0)

	v = dynint.NewIntSigned(100)
	err = v.Not()
	test.ExpectSuccess(t, err)
	itest.EquateInts(t, v, -101)
}

func TestDeMorgan(t *testing.T) {
	rnd := rand.New(rand.NewPCG(48, 0))

	for range 100 {
		x := rnd.Int64() - rnd.Int64()
		y := rnd.Int64() - rnd.Int64()

		a := dynint.NewIntSigned(x)
		b := dynint.NewIntSigned(y)

		// NOT (a AND b)
		lhs, err := dynint.And(a, b)
		test.ExpectSuccess(t, err)
		test.ExpectSuccess(t, lhs.Not())

		// (NOT a) OR (NOT b)
		na, err := dynint.Not(a)
		test.ExpectSuccess(t, err)
		nb, err := dynint.Not(b)
		test.ExpectSuccess(t, err)
		rhs, err := dynint.Or(na, nb)
		test.ExpectSuccess(t, err)

		test.ExpectEquality(t, cmp(t, lhs, rhs), 0)
		itest.EquateInts(t, lhs, ^(x&y))
	}
}

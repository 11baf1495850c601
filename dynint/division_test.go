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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ladle-gh/arbitrary/curated"
	"github.com/ladle-gh/arbitrary/dynint"
	itest "github.com/ladle-gh/arbitrary/dynint/test"
	"github.com/ladle-gh/arbitrary/test"
)

func TestDivideByZero(t *testing.T) {
	v := dynint.NewIntSigned(100)

	err := v.Div(dynint.Zero)
	test.ExpectSuccess(t, curated.Is(err, dynint.DivideByZero))
	itest.EquateInts(t, v, 100)

	err = v.Mod(dynint.Zero)
	test.ExpectSuccess(t, curated.Is(err, dynint.DivideByZero))
	itest.EquateInts(t, v, 100)
}

func TestDivShortCircuits(t *testing.T) {
	// zero dividend
	v := dynint.NewInt()
	test.ExpectSuccess(t, v.Div(dynint.NewIntSigned(7)))
	test.ExpectSuccess(t, v.IsZero())
	test.ExpectSuccess(t, v.Mod(dynint.NewIntSigned(7)))
	test.ExpectSuccess(t, v.IsZero())

	// dividend magnitude smaller than divisor
	v = dynint.NewIntSigned(3)
	test.ExpectSuccess(t, v.Div(dynint.NewIntSigned(7)))
	test.ExpectSuccess(t, v.IsZero())

	v = dynint.NewIntSigned(-3)
	test.ExpectSuccess(t, v.Mod(dynint.NewIntSigned(7)))
	itest.EquateInts(t, v, -3)

	// equal magnitudes
	v = dynint.NewIntSigned(7)
	test.ExpectSuccess(t, v.Div(dynint.NewIntSigned(7)))
	itest.EquateInts(t, v, 1)

	v = dynint.NewIntSigned(-7)
	test.ExpectSuccess(t, v.Div(dynint.NewIntSigned(7)))
	itest.EquateInts(t, v, -1)

	v = dynint.NewIntSigned(7)
	test.ExpectSuccess(t, v.Mod(dynint.NewIntSigned(-7)))
	test.ExpectSuccess(t, v.IsZero())
}

func TestDivTruncation(t *testing.T) {
	// truncation is toward zero
	v := dynint.NewIntSigned(-7)
	test.ExpectSuccess(t, v.Div(dynint.NewIntSigned(2)))
	itest.EquateInts(t, v, -3)

	v = dynint.NewIntSigned(-7)
	test.ExpectSuccess(t, v.Mod(dynint.NewIntSigned(2)))
	itest.EquateInts(t, v, -1)

	v = dynint.NewIntSigned(7)
	test.ExpectSuccess(t, v.Div(dynint.NewIntSigned(-2)))
	itest.EquateInts(t, v, -3)

	v = dynint.NewIntSigned(7)
	test.ExpectSuccess(t, v.Mod(dynint.NewIntSigned(-2)))
	itest.EquateInts(t, v, 1)
}

func TestDivWide(t *testing.T) {
	// the square of the largest machine integer, divided down again
	u := dynint.NewIntUnsigned(math.MaxUint64)

	m, err := dynint.Mul(u, u)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.SigBits(), 128)

	q, err := dynint.Div(m, u)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmp(t, q, u), 0)

	r, err := dynint.Mod(m, u)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, r.IsZero())

	// a power of two divided by a smaller power of two
	a, err := dynint.Lsh(dynint.One, 100)
	test.ExpectSuccess(t, err)
	b, err := dynint.Lsh(dynint.One, 60)
	test.ExpectSuccess(t, err)
	q, err = dynint.Div(a, b)
	test.ExpectSuccess(t, err)
	e, err := dynint.Lsh(dynint.One, 40)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmp(t, q, e), 0)
}

func TestDivisionIdentity(t *testing.T) {
	rnd := rand.New(rand.NewPCG(53, 0))

	for range 100 {
		x := rnd.Int64N(1<<40) - rnd.Int64N(1<<40)
		y := rnd.Int64N(1<<20) - rnd.Int64N(1<<20)
		if y == 0 {
			y = 1
		}

		a := dynint.NewIntSigned(x)
		b := dynint.NewIntSigned(y)

		q, err := dynint.Div(a, b)
		test.ExpectSuccess(t, err)
		r, err := dynint.Mod(a, b)
		test.ExpectSuccess(t, err)

		// machine division in Go truncates toward zero and gives the
		// remainder the sign of the dividend, the same rules as here
		itest.EquateInts(t, q, x/y)
		itest.EquateInts(t, r, x%y)

		// a = q*b + r
		qb, err := dynint.Mul(q, b)
		test.ExpectSuccess(t, err)
		sum, err := dynint.Add(qb, r)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, cmp(t, sum, a), 0)

		// |r| < |b|
		rabs, err := dynint.Abs(r)
		test.ExpectSuccess(t, err)
		babs, err := dynint.Abs(b)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, cmp(t, rabs, babs), -1)
	}
}

func TestMulOperandTooLarge(t *testing.T) {
	// the smaller magnitude operand of a multiplication is bounded by MaxMul
	big, err := dynint.Add(dynint.MaxMul, dynint.One)
	test.ExpectSuccess(t, err)

	v, err := dynint.NewIntCopy(big)
	test.ExpectSuccess(t, err)
	err = v.Mul(big)
	test.ExpectSuccess(t, curated.Is(err, dynint.MulOperandTooLarge))
}

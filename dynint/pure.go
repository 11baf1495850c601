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

// the pure form of every operation works on a copy of its first operand and
// applies the in-place form to it. operands are never mutated

func unary(val *Int, op func(*Int) error) (*Int, error) {
	cpy, err := NewIntCopy(val)
	if err != nil {
		return nil, err
	}
	if err := op(cpy); err != nil {
		return nil, err
	}
	return cpy, nil
}

func binary(lhs, rhs *Int, op func(*Int, *Int) error) (*Int, error) {
	cpy, err := NewIntCopy(lhs)
	if err != nil {
		return nil, err
	}
	if err := op(cpy, rhs); err != nil {
		return nil, err
	}
	return cpy, nil
}

func shifted(val *Int, shift uint, op func(*Int, uint) error) (*Int, error) {
	cpy, err := NewIntCopy(val)
	if err != nil {
		return nil, err
	}
	if err := op(cpy, shift); err != nil {
		return nil, err
	}
	return cpy, nil
}

// Not returns the bitwise complement of val.
func Not(val *Int) (*Int, error) { return unary(val, (*Int).Not) }

// Neg returns the negation of val.
func Neg(val *Int) (*Int, error) { return unary(val, (*Int).Neg) }

// Abs returns the absolute value of val.
func Abs(val *Int) (*Int, error) { return unary(val, (*Int).Abs) }

// Add returns the sum of the two integers.
func Add(lhs, rhs *Int) (*Int, error) { return binary(lhs, rhs, (*Int).Add) }

// Sub returns the difference of the two integers.
func Sub(lhs, rhs *Int) (*Int, error) { return binary(lhs, rhs, (*Int).Sub) }

// Mul returns the product of the two integers.
func Mul(lhs, rhs *Int) (*Int, error) { return binary(lhs, rhs, (*Int).Mul) }

// Div returns the quotient of the two integers, truncated toward zero.
func Div(lhs, rhs *Int) (*Int, error) { return binary(lhs, rhs, (*Int).Div) }

// Mod returns the remainder of the division of the two integers. The
// remainder takes the sign of the dividend.
func Mod(lhs, rhs *Int) (*Int, error) { return binary(lhs, rhs, (*Int).Mod) }

// And returns the bitwise conjunction of the two integers.
func And(lhs, rhs *Int) (*Int, error) { return binary(lhs, rhs, (*Int).And) }

// Or returns the bitwise disjunction of the two integers.
func Or(lhs, rhs *Int) (*Int, error) { return binary(lhs, rhs, (*Int).Or) }

// Xor returns the bitwise exclusive disjunction of the two integers.
func Xor(lhs, rhs *Int) (*Int, error) { return binary(lhs, rhs, (*Int).Xor) }

// Lsh returns val shifted left by the given number of bits, the vacated low
// bits filled with zero.
func Lsh(val *Int, shift uint) (*Int, error) { return shifted(val, shift, (*Int).Lsh) }

// SLsh returns val shifted left by the given number of bits, the vacated low
// bits filled with val's sign fill.
func SLsh(val *Int, shift uint) (*Int, error) { return shifted(val, shift, (*Int).SLsh) }

// Rsh returns val shifted right by the given number of bits. The shift is
// arithmetic.
func Rsh(val *Int, shift uint) (*Int, error) { return shifted(val, shift, (*Int).Rsh) }

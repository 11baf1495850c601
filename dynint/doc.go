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

// Package dynint implements a signed integer of unbounded magnitude. The
// integer is stored as a sequence of bitfields, least significant first, and
// is interpreted as a two's complement number over the full width of the
// buffer. The buffer grows as operations require more room. Extend never
// shrinks it, but Mul and Div replace it with a buffer sized for the result,
// which can be shorter.
//
// Every operation comes in two forms. The method form stores its result in
// the receiver:
//
//	v := dynint.NewIntSigned(100)
//	err := v.Add(dynint.One)
//
// The function form leaves its operands untouched and allocates a new integer
// for the result:
//
//	sum, err := dynint.Add(lhs, rhs)
//
// The Zero, One and MaxMul package values are shared, read-only integers.
// Using one of them as the target of a method is a programming error.
//
// An Int is not safe for concurrent mutation. Concurrent read-only access is
// fine.
package dynint

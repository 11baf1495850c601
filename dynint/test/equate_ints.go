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

// Package test contains a helper for testing the equality of an Int against
// a plain machine integer, or against another Int. Used by testing packages.
package test

import (
	"testing"

	"github.com/ladle-gh/arbitrary/dynint"
)

// EquateInts is used to test the value of an Int against an expected value.
// The expected value may be an int, int64, uint64 or another *dynint.Int.
func EquateInts(t *testing.T, value *dynint.Int, expectedValue interface{}) {
	t.Helper()

	switch expected := expectedValue.(type) {
	default:
		t.Fatalf("unhandled type for EquateInts (%T)", expectedValue)

	case int:
		v, err := value.CastSigned(8)
		if err != nil {
			t.Errorf("cast of Int failed (%v)", err)
			return
		}
		if v != int64(expected) {
			t.Errorf("unexpected Int value (%d wanted %d)", v, expected)
		}

	case int64:
		v, err := value.CastSigned(8)
		if err != nil {
			t.Errorf("cast of Int failed (%v)", err)
			return
		}
		if v != expected {
			t.Errorf("unexpected Int value (%d wanted %d)", v, expected)
		}

	case uint64:
		v, err := value.CastUnsigned(8)
		if err != nil {
			t.Errorf("cast of Int failed (%v)", err)
			return
		}
		if v != expected {
			t.Errorf("unexpected Int value (%d wanted %d)", v, expected)
		}

	case *dynint.Int:
		c, err := dynint.Cmp(value, expected)
		if err != nil {
			t.Errorf("comparison of Ints failed (%v)", err)
			return
		}
		if c != 0 {
			t.Errorf("unexpected Int value (%v wanted %v)", value, expected)
		}
	}
}

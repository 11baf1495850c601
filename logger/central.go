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

package logger

import "io"

// the maximum number of entries kept by the central logger
const maxCentral = 256

// central is the logger used by default. it is instantiated automatically
var central = NewLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(perm Permissions, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permissions, tag string, format string, args ...any) {
	central.Logf(perm, tag, format, args...)
}

// Clear empties the central logger.
func Clear() {
	central.Clear()
}

// Write the entire central log to the io.Writer.
func Write(w io.Writer) {
	central.Write(w)
}

// Tail writes the last N entries of the central log to the io.Writer.
func Tail(w io.Writer, number int) {
	central.Tail(w, number)
}

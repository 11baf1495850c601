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

// Package logger is the central log for the rest of the project. Log entries
// are made with the Log() and Logf() functions. Writers of log entries do not
// need to worry about how the entries will be presented.
//
// Every entry is made through a Permissions interface. The interface decides
// whether logging is currently allowed. Code that has no such gatekeeper can
// use the Allow value, which permits everything.
package logger

import (
	"fmt"
	"io"
)

// Permissions indicates whether the environment making a log request allows
// logging.
type Permissions interface {
	AllowLogging() bool
}

// allow is the simplest implementation of the Permissions interface. it
// always says yes
type allow bool

// AllowLogging implements the Permissions interface.
func (a allow) AllowLogging() bool {
	return bool(a)
}

// Allow can be used as the Permissions argument to Log() and Logf() when
// logging should happen unconditionally.
const Allow = allow(true)

// entry represents a single line in the log
type entry struct {
	tag    string
	detail string
}

// Logger is a capped collection of log entries. Once the cap is reached the
// oldest entries are lost.
type Logger struct {
	entries    []entry
	maxEntries int
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		entries:    make([]entry, 0, maxEntries),
		maxEntries: maxEntries,
	}
}

// Log adds an entry to the log. The detail argument can be a string, an error
// or anything else with a sensible %v representation.
func (l *Logger) Log(perm Permissions, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}

	var s string
	switch detail := detail.(type) {
	case error:
		s = detail.Error()
	case string:
		s = detail
	default:
		s = fmt.Sprintf("%v", detail)
	}

	if l.maxEntries > 0 && len(l.entries) >= l.maxEntries {
		l.entries = l.entries[1:]
	}
	l.entries = append(l.entries, entry{tag: tag, detail: s})
}

// Logf adds a formatted entry to the log.
func (l *Logger) Logf(perm Permissions, tag string, format string, args ...any) {
	if !perm.AllowLogging() {
		return
	}
	l.Log(perm, tag, fmt.Sprintf(format, args...))
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.entries = l.entries[:0]
}

// Write the entire log to the io.Writer.
func (l *Logger) Write(w io.Writer) {
	if w == nil {
		return
	}
	for _, e := range l.entries {
		fmt.Fprintf(w, "%s: %s\n", e.tag, e.detail)
	}
}

// Tail writes the last N entries to the io.Writer. A number larger than the
// size of the log writes everything.
func (l *Logger) Tail(w io.Writer, number int) {
	if w == nil {
		return
	}
	if number > len(l.entries) {
		number = len(l.entries)
	}
	if number < 0 {
		number = 0
	}
	for _, e := range l.entries[len(l.entries)-number:] {
		fmt.Fprintf(w, "%s: %s\n", e.tag, e.detail)
	}
}

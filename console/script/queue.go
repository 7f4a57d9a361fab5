// This file is part of Emuconsole.
//
// Emuconsole is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emuconsole is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emuconsole.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/emuconsole/curated"
)

// Sentinal error patterns.
const (
	NoSuchFile  = "script: no such file: %s"
	ScriptError = "script: %v"
)

// Line is a single command in the queue.
type Line struct {
	Entry string

	// Batch is true if the line was loaded from a script file
	Batch bool
}

// Queue normalises input into commands and dishes out those commands one at
// a time. Used by interactive terminals and scripts.
type Queue struct {
	lines []Line
}

// More returns true if there are lines remaining in the queue.
func (q *Queue) More() bool {
	return len(q.lines) > 0
}

// Next command in the queue.
func (q *Queue) Next() (Line, bool) {
	if len(q.lines) > 0 {
		ln := q.lines[0]
		q.lines = q.lines[1:]
		return ln, true
	}
	return Line{}, false
}

// Push input line into queue and return the first command. Input is normalised
// before the first command is returned. Returns io.EOF if the input contained
// no commands.
func (q *Queue) Push(input string) (Line, error) {
	q.lines = append(q.lines, split(input, false)...)
	if ln, ok := q.Next(); ok {
		return ln, nil
	}
	return Line{}, io.EOF
}

// Clear all lines from the queue.
func (q *Queue) Clear() {
	q.lines = q.lines[:0]
}

// split input into lines. commands are separated by newlines and by
// semi-colons that are not inside double quotes. empty lines and comments are
// removed
func split(input string, batch bool) []Line {
	var lines []Line

	add := func(s string) {
		s = strings.TrimSpace(s)
		if len(s) > 0 && !strings.HasPrefix(s, "#") {
			lines = append(lines, Line{Entry: s, Batch: batch})
		}
	}

	// replace windows and mac line endings with unix line endings
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	for _, l := range strings.Split(input, "\n") {
		// the rest of a comment line is ignored even if it contains a
		// semi-colon
		if strings.HasPrefix(strings.TrimSpace(l), "#") {
			continue
		}

		start := 0
		quoted := false
		for i := 0; i < len(l); i++ {
			switch l[i] {
			case '"':
				quoted = !quoted
			case ';':
				if !quoted {
					add(l[start:i])
					start = i + 1
				}
			}
		}
		add(l[start:])
	}

	return lines
}

// Load script into queue. The commands in the script are inserted before any
// lines already in the queue. This means that a script that loads another
// script will run the second script to completion before continuing.
func (q *Queue) Load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return curated.Errorf(NoSuchFile, filename)
		}
		return curated.Errorf(ScriptError, err)
	}
	defer f.Close()

	s, err := io.ReadAll(f)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}

	q.lines = append(split(string(s), true), q.lines...)

	return nil
}

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

package console

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/emuconsole/console/terminal"
)

// printLine prints a single line of text to the terminal. the string is
// formatted with the arguments for all styles except StyleHelp.
func (con *Console) printLine(sty terminal.Style, s string, a ...interface{}) {
	// help text can contain characters that look like formatting verbs
	if sty != terminal.StyleHelp {
		s = fmt.Sprintf(s, a...)
	}

	// remove all trailing newlines, and return if the resulting string is empty
	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	con.term.TermPrintLine(sty, s)
}

// styleWriter implements the io.Writer interface. it is useful for when an
// io.Writer is required and you want to direct the output to the terminal
// with a single style.
type styleWriter struct {
	con   *Console
	style terminal.Style
}

func (con *Console) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		con:   con,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	for _, s := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		wrt.con.term.TermPrintLine(wrt.style, s)
	}
	return len(p), nil
}

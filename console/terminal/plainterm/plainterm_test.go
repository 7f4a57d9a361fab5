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

package plainterm_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/emuconsole/console/terminal"
	"github.com/jetsetilly/emuconsole/console/terminal/plainterm"
	"github.com/jetsetilly/emuconsole/test"
)

func TestPlainTerminal(t *testing.T) {
	w := &test.Writer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("dump 0 16\r\necho\nlast"), w)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	var _ terminal.Terminal = pt
	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead(terminal.Prompt{Content: "test"}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "dump 0 16")

	s, err = pt.TermRead(terminal.Prompt{Content: "test"}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "echo")

	// last line is not terminated by a newline
	s, err = pt.TermRead(terminal.Prompt{Content: "test"}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "last")

	_, err = pt.TermRead(terminal.Prompt{Content: "test"}, nil)
	test.ExpectSuccess(t, errors.Is(err, io.EOF))

	// prompt is not output because the input is not a real terminal
	test.ExpectEquality(t, w.String(), "")
}

func TestPlainTerminalOutput(t *testing.T) {
	w := &test.Writer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), w)
	test.DemandSuccess(t, pt.Initialise())

	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectEquality(t, w.String(), "feedback\n* error\n")

	w.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectEquality(t, w.String(), "* error\n")
}

func TestPlainTerminalPassthrough(t *testing.T) {
	w := &test.Writer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("uart uart0\nabc\x1b"), w)
	test.DemandSuccess(t, pt.Initialise())

	s, err := pt.TermRead(terminal.Prompt{}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "uart uart0")

	// the passthrough reader continues from where the line reader stopped
	r, restore, err := pt.Passthrough()
	test.DemandSuccess(t, err)
	defer restore()

	b, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "abc\x1b")
}

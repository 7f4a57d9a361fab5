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

// Package plainterm implements the Terminal interface for the emuconsole. It's
// as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jetsetilly/emuconsole/console/terminal"
	"github.com/jetsetilly/emuconsole/curated"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input      io.Reader
	output     io.Writer
	reader     *bufio.Reader
	inputFile  *os.File
	realInput  bool
	realOutput bool
	silenced   bool

	crit sync.Mutex

	// newlines are output as carriage-return/newline pairs while the
	// terminal is in raw mode
	rawOutput bool
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. Nil values for input and output mean that stdin and
// stdout will be used.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  input,
		output: output,
	}
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	if pt.input == nil {
		pt.input = os.Stdin
	}
	if pt.output == nil {
		pt.output = os.Stdout
	}

	if f, ok := pt.input.(*os.File); ok {
		pt.inputFile = f
		pt.realInput = term.IsTerminal(int(f.Fd()))
	}
	if f, ok := pt.output.(*os.File); ok {
		pt.realOutput = term.IsTerminal(int(f.Fd()))
	}

	pt.reader = bufio.NewReader(pt.input)

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// RegisterTabCompletion adds an implementation of TabCompletion to the terminal.
func (pt *PlainTerminal) RegisterTabCompletion(terminal.TabCompletion) {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// Write implements the io.Writer interface.
func (pt *PlainTerminal) Write(p []byte) (int, error) {
	pt.crit.Lock()
	defer pt.crit.Unlock()

	if !pt.rawOutput {
		return pt.output.Write(p)
	}

	if _, err := pt.output.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = "* " + s
	}

	io.WriteString(pt, s+"\n")
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	// insert prompt into output stream
	if pt.realInput && !pt.silenced {
		io.WriteString(pt, prompt.String())
	}

	s, err := pt.reader.ReadString('\n')
	if err != nil {
		// return final line of input even if it isn't terminated by a newline
		if !errors.Is(err, io.EOF) || len(s) == 0 {
			return "", err
		}
	}

	// while we were waiting for the call to ReadString() to return we may
	// have received an interrupt event
	if events != nil {
		select {
		case <-events.IntEvents:
			return "", curated.Errorf(terminal.UserInterrupt)
		default:
		}
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}

// IsRealTerminal returns true if both input and output are connected to a
// terminal.
func (pt *PlainTerminal) IsRealTerminal() bool {
	return pt.realInput && pt.realOutput
}

// Passthrough implements the terminal.Terminal interface. If the input is a
// real terminal then it is put into raw mode until the returned function is
// called.
func (pt *PlainTerminal) Passthrough() (io.Reader, func(), error) {
	if !pt.realInput {
		return pt.reader, func() {}, nil
	}

	fd := int(pt.inputFile.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, err
	}

	pt.crit.Lock()
	pt.rawOutput = true
	pt.crit.Unlock()

	return pt.reader, func() {
		pt.crit.Lock()
		pt.rawOutput = false
		pt.crit.Unlock()
		_ = term.Restore(fd, state)
	}, nil
}

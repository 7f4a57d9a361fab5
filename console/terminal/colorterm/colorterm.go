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

// Package colorterm implements the Terminal interface for the emuconsole. It
// supports color output, history and tab completion.
package colorterm

import (
	"bufio"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/jetsetilly/emuconsole/console/terminal"
	"github.com/jetsetilly/emuconsole/console/terminal/colorterm/easyterm"
)

// maximum number of entries in the command history
const maxHistory = 100

// ColorTerminal implements the terminal.Terminal interface with a basic ANSI
// terminal. Input supports line editing, history and tab completion.
type ColorTerminal struct {
	easyterm.EasyTerm

	// runes read from the input by the reader goroutine
	runes chan readRune

	// sticky error from the input. once the input has failed there will be
	// nothing more from the runes channel
	inputErr error

	commandHistory []string
	tabCompletion  terminal.TabCompletion

	// serialises output from more than one goroutine
	crit sync.Mutex

	silenced bool
}

type readRune struct {
	r rune

	// the bytes the rune was decoded from. a byte that is not valid UTF-8 is
	// kept as it is
	raw []byte

	err error
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}

	ct.commandHistory = make([]string, 0, maxHistory)
	ct.runes = make(chan readRune)

	go ct.readInput(os.Stdin)

	return nil
}

// readInput sends everything read from the input to the runes channel. it
// returns when the input fails.
func (ct *ColorTerminal) readInput(input io.Reader) {
	r := bufio.NewReader(input)
	for {
		rr := decodeRune(r)
		ct.runes <- rr
		if rr.err != nil {
			return
		}
	}
}

func decodeRune(r *bufio.Reader) readRune {
	c, n, err := r.ReadRune()
	if err != nil {
		return readRune{err: err}
	}

	// ReadRune() replaces an invalid byte with utf8.RuneError. recover the
	// original byte
	if c == utf8.RuneError && n == 1 {
		_ = r.UnreadRune()
		b, err := r.ReadByte()
		return readRune{r: c, raw: []byte{b}, err: err}
	}

	return readRune{r: c, raw: utf8.AppendRune(nil, c)}
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// RegisterTabCompletion adds an implementation of TabCompletion to the terminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// readRune returns the next rune from the input. the events channels are
// monitored while waiting.
func (ct *ColorTerminal) readRune(events *terminal.ReadEvents) (rune, error) {
	rr, err := ct.next(events)
	return rr.r, err
}

func (ct *ColorTerminal) next(events *terminal.ReadEvents) (readRune, error) {
	if ct.inputErr != nil {
		return readRune{}, ct.inputErr
	}

	var intEvents chan os.Signal
	if events != nil {
		intEvents = events.IntEvents
	}

	select {
	case rr := <-ct.runes:
		if rr.err != nil {
			ct.inputErr = rr.err
		}
		return rr, rr.err
	case <-intEvents:
		return readRune{}, errInterrupt
	}
}

// Passthrough implements the terminal.Terminal interface. The terminal is
// put into passthrough mode until the returned function is called. Control
// characters such as ctrl-c are read as bytes and do not raise signals.
func (ct *ColorTerminal) Passthrough() (io.Reader, func(), error) {
	ct.PassthroughMode()
	return &passthrough{ct: ct}, ct.CanonicalMode, nil
}

// passthrough is an io.Reader that returns the bytes received by the reader
// goroutine exactly as they were read.
type passthrough struct {
	ct      *ColorTerminal
	pending []byte
}

func (p *passthrough) Read(b []byte) (int, error) {
	if len(p.pending) == 0 {
		rr, err := p.ct.next(nil)
		if err != nil {
			return 0, err
		}
		p.pending = append(p.pending, rr.raw...)
	}

	n := copy(b, p.pending)
	p.pending = p.pending[n:]
	return n, nil
}

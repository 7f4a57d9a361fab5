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

package colorterm

import (
	"io"
	"unicode"

	"github.com/jetsetilly/emuconsole/console/terminal"
	"github.com/jetsetilly/emuconsole/console/terminal/colorterm/easyterm"
	"github.com/jetsetilly/emuconsole/console/terminal/colorterm/easyterm/ansi"
	"github.com/jetsetilly/emuconsole/curated"
)

var errInterrupt = curated.Errorf(terminal.UserInterrupt)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.CBreakMode()
	defer ct.CanonicalMode()

	p := prompt.String()

	var input []rune
	cursor := 0
	history := len(ct.commandHistory)

	// the latest input is stored when we scroll through history. we don't
	// want to lose what we've typed in case the user wants to resume where
	// we left off
	var stored []rune

	// redraw the entire line for every key press. the cursor is moved back
	// from the end of the line to the correct position
	redraw := func() {
		ct.crit.Lock()
		defer ct.crit.Unlock()
		ct.TermPrint("\r")
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint(ansi.PenStyles["bold"])
		ct.TermPrint(p)
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(string(input))
		ct.TermPrint(ansi.CursorMove(cursor - len(input)))
	}

	setInput := func(s []rune) {
		input = append(input[:0], s...)
		cursor = len(input)
	}

	for {
		redraw()

		r, err := ct.readRune(events)
		if err != nil {
			ct.TermPrint("\n")
			return "", err
		}

		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := []rune(ct.tabCompletion.Complete(string(input[:cursor])))
				s = append(s, input[cursor:]...)
				cursor += len(s) - len(input)
				input = s
			}

		case easyterm.KeyInterrupt:
			// CTRL-C is only seen if signals are not being generated by the
			// terminal
			ct.TermPrint("\n")
			return "", errInterrupt

		case easyterm.KeyEndOfFile:
			// CTRL-D on an empty line ends the input
			if len(input) == 0 {
				ct.TermPrint("\n")
				return "", io.EOF
			}

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			_ = easyterm.SuspendProcess()
			ct.CBreakMode()

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			s := string(input)
			if len(s) > 0 && (len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s) {
				if len(ct.commandHistory) >= maxHistory {
					ct.commandHistory = ct.commandHistory[1:]
				}
				ct.commandHistory = append(ct.commandHistory, s)
			}
			ct.TermPrint("\n")
			return s, nil

		case easyterm.KeyEsc:
			r, err := ct.readRune(events)
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.EscHome:
				cursor = 0
			case easyterm.EscEnd:
				cursor = len(input)
			case easyterm.EscCursor:
				r, err := ct.readRune(events)
				if err != nil {
					return "", err
				}

				switch r {
				case easyterm.CursorUp:
					if history > 0 {
						if history == len(ct.commandHistory) {
							stored = append(stored[:0], input...)
						}
						history--
						setInput([]rune(ct.commandHistory[history]))
					}
				case easyterm.CursorDown:
					if history < len(ct.commandHistory)-1 {
						history++
						setInput([]rune(ct.commandHistory[history]))
					} else if history == len(ct.commandHistory)-1 {
						history++
						setInput(stored)
					}
				case easyterm.CursorForward:
					if cursor < len(input) {
						cursor++
					}
				case easyterm.CursorBackward:
					if cursor > 0 {
						cursor--
					}
				case easyterm.EscHome:
					cursor = 0
				case easyterm.EscEnd:
					cursor = len(input)
				case easyterm.CursorDelete:
					// consume the trailing tilde
					if _, err := ct.readRune(events); err != nil {
						return "", err
					}
					if cursor < len(input) {
						input = append(input[:cursor], input[cursor+1:]...)
						history = len(ct.commandHistory)
					}
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, 0)
				copy(input[cursor+1:], input[cursor:])
				input[cursor] = r
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}

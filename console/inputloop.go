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
	"errors"
	"io"

	"github.com/jetsetilly/emuconsole/console/terminal"
	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/logger"
)

// maximum number of scripts that can be started by other scripts before the
// user has had a chance to type anything.
const maxScriptDepth = 16

func (con *Console) prompt() terminal.Prompt {
	return terminal.Prompt{
		Content:   "emuconsole",
		Recording: con.scribe.IsActive(),
	}
}

// inputLoop reads commands from the queue, and from the terminal when the
// queue is empty, until the console stops running.
func (con *Console) inputLoop() error {
	for con.running {
		ln, ok := con.queue.Next()

		// the scripts have finished if the next line is not part of a script
		if !ok || !ln.Batch {
			con.endPlayback()
		}

		if !ok {
			input, err := con.term.TermRead(con.prompt(), &con.events)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				if curated.Is(err, terminal.UserInterrupt) {
					con.handleInterrupt()
					continue // for loop
				}
				if curated.Is(err, terminal.UserAbort) {
					return nil
				}
				return err
			}

			ln, err = con.queue.Push(input)
			if err != nil {
				// no commands in the input
				continue // for loop
			}
		}

		con.term.TermPrintLine(terminal.StyleEcho, ln.Entry)

		if err := con.scribe.WriteInput(ln.Entry); err != nil {
			con.printLine(terminal.StyleError, "%s", err)
		}

		if err := con.parseCommand(ln.Entry, ln.Batch); err != nil {
			con.scribe.Rollback()
			con.printLine(terminal.StyleError, "%s", err)

			// an error in a script stops the script
			if ln.Batch {
				con.clearScripts()
			}
		}
	}

	return nil
}

// handleInterrupt is called when the user presses ctrl-c while the terminal
// is waiting for input.
func (con *Console) handleInterrupt() {
	if con.scribe.IsActive() {
		con.printLine(terminal.StyleFeedback, "recording of %s ended", con.scribe.Filename())
		if err := con.scribe.EndSession(); err != nil {
			con.printLine(terminal.StyleError, "%s", err)
		}
		return
	}
	con.running = false
}

// startScript loads a script into the front of the queue.
func (con *Console) startScript(filename string) error {
	if con.playback >= maxScriptDepth {
		return curated.Errorf("script: too many nested scripts (%s)", filename)
	}

	if err := con.queue.Load(filename); err != nil {
		return err
	}

	con.playback++
	if err := con.scribe.StartPlayback(); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "console", "running script %s", filename)

	return nil
}

// endPlayback is called when there are no more lines from scripts in the
// queue.
func (con *Console) endPlayback() {
	for ; con.playback > 0; con.playback-- {
		if err := con.scribe.EndPlayback(); err != nil {
			con.printLine(terminal.StyleError, "%s", err)
		}
	}
}

// clearScripts removes all lines from the queue and ends all scripts.
func (con *Console) clearScripts() {
	con.queue.Clear()
	con.endPlayback()
}

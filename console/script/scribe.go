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
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/emuconsole/curated"
)

// ScribeError is the error pattern for all errors raised by the Scribe type.
const ScribeError = "script: scribe: %v"

// Scribe can be used again after a StartSession()/EndSession() cycle.
type Scribe struct {
	file       *os.File
	scriptfile string

	// the depth of script openings during the writing of a new script
	playbackDepth int

	inputLine string
}

// IsActive returns true if a script is currently being captured.
func (scr *Scribe) IsActive() bool {
	return scr.file != nil
}

// Filename returns the name of the script currently being captured.
func (scr *Scribe) Filename() string {
	return scr.scriptfile
}

// StartSession a new script. The file must not already exist.
func (scr *Scribe) StartSession(scriptfile string) error {
	if scr.IsActive() {
		return curated.Errorf(ScribeError, "already active")
	}

	_, err := os.Stat(scriptfile)
	if !errors.Is(err, os.ErrNotExist) {
		return curated.Errorf(ScribeError, fmt.Sprintf("file already exists (%s)", scriptfile))
	}

	scr.file, err = os.Create(scriptfile)
	if err != nil {
		return curated.Errorf(ScribeError, err)
	}
	scr.scriptfile = scriptfile

	return nil
}

// EndSession commits any outstanding input and closes the script file.
func (scr *Scribe) EndSession() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.file = nil
		scr.scriptfile = ""
		scr.playbackDepth = 0
		scr.inputLine = ""
	}()

	// make sure everything has been written to the output file
	err := scr.Commit()

	// if commit() causes an error, continue with the Close() operation and
	// return the commit() error if the close succeeds
	if errClose := scr.file.Close(); errClose != nil {
		return curated.Errorf(ScribeError, errClose)
	}

	return err
}

// StartPlayback indicates that a replayed script has begun.
func (scr *Scribe) StartPlayback() error {
	if !scr.IsActive() {
		return nil
	}
	err := scr.Commit()
	scr.playbackDepth++
	return err
}

// EndPlayback indicates that a replayed script has finished.
func (scr *Scribe) EndPlayback() error {
	if !scr.IsActive() {
		return nil
	}
	err := scr.Commit()
	if scr.playbackDepth > 0 {
		scr.playbackDepth--
	}
	return err
}

// Rollback undoes the most recent call to WriteInput().
func (scr *Scribe) Rollback() {
	scr.inputLine = ""
}

// WriteInput writes user-input to the open script file. The input is not
// written to the file until the next call to Commit(), WriteInput() or
// EndSession().
func (scr *Scribe) WriteInput(command string) error {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return nil
	}

	err := scr.Commit()
	if command != "" {
		scr.inputLine = fmt.Sprintf("%s\n", command)
	}
	return err
}

// Commit most recent call to WriteInput().
func (scr *Scribe) Commit() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.inputLine = ""
	}()

	if scr.inputLine != "" {
		n, err := io.WriteString(scr.file, scr.inputLine)
		if err != nil {
			return curated.Errorf(ScribeError, err)
		}
		if n != len(scr.inputLine) {
			return curated.Errorf(ScribeError, io.ErrShortWrite)
		}
	}

	return nil
}

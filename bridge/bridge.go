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

package bridge

import (
	"io"
	"sync"

	"github.com/jetsetilly/emuconsole/environment"
	"github.com/jetsetilly/emuconsole/hardware/bus"
)

// Sentinal error patterns.
const (
	InvalidArgument = "bridge: invalid argument: %s"
	IoError         = "bridge: %v"
	NotFound        = "bridge: peripheral %s not found or not a UART"
)

// syncWriter serialises writes to the underlying io.Writer.
type syncWriter struct {
	crit sync.Mutex
	w    io.Writer
}

func (sw *syncWriter) Write(p []byte) (int, error) {
	sw.crit.Lock()
	defer sw.crit.Unlock()
	return sw.w.Write(p)
}

// writeOpen writes p only if open is true. open must only be accessed with
// writeOpen() and shut().
func (sw *syncWriter) writeOpen(open *bool, p []byte) (int, error) {
	sw.crit.Lock()
	defer sw.crit.Unlock()
	if !*open {
		return 0, nil
	}
	return sw.w.Write(p)
}

// shut sets open to false. a writeOpen() that has already started will be
// complete when shut() returns.
func (sw *syncWriter) shut(open *bool) {
	sw.crit.Lock()
	defer sw.crit.Unlock()
	*open = false
}

// Bridge forwards console commands to the emulation.
type Bridge struct {
	bus    bus.Bus
	output *syncWriter
	env    environment.Environment
}

// NewBridge is the preferred method of initialisation for the Bridge type.
//
// If env is nil then the environment of the running process is used.
func NewBridge(b bus.Bus, output io.Writer, env environment.Environment) *Bridge {
	if env == nil {
		env = environment.OS{}
	}

	return &Bridge{
		bus:    b,
		output: &syncWriter{w: output},
		env:    env,
	}
}

// Output returns the io.Writer used by the bridge. Writes to the returned
// writer are serialised with all other output from the bridge.
func (br *Bridge) Output() io.Writer {
	return br.output
}

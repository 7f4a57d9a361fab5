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
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/emuconsole/bridge"
	"github.com/jetsetilly/emuconsole/console/commandline"
	"github.com/jetsetilly/emuconsole/console/script"
	"github.com/jetsetilly/emuconsole/console/terminal"
	"github.com/jetsetilly/emuconsole/environment"
	"github.com/jetsetilly/emuconsole/hardware/externals"
	"github.com/jetsetilly/emuconsole/hardware/machine"
	"github.com/jetsetilly/emuconsole/logger"
	"github.com/jetsetilly/emuconsole/prefs"
	"github.com/jetsetilly/emuconsole/statsview"
)

// Params for NewConsole().
type Params struct {
	Term      terminal.Terminal
	Machine   *machine.Machine
	Externals *externals.Manager

	// nil means the process environment
	Env environment.Environment

	// nil means the preferences will be loaded from the default file
	Prefs *Preferences
}

// Console is the interactive session. It owns the session counter and the
// bridge between the machine and the terminal.
type Console struct {
	term      terminal.Terminal
	machine   *machine.Machine
	externals *externals.Manager

	bridge  *bridge.Bridge
	counter bridge.Counter

	// peripherals of the machine and the external devices
	registry registries

	Prefs *Preferences

	// queue of commands waiting to be run. commands typed by the user and
	// commands from scripts
	queue script.Queue

	// records commands to a new script
	scribe script.Scribe

	// number of scripts started since the queue last contained only user
	// input
	playback int

	events terminal.ReadEvents

	running bool

	// stops the statsview server. nil if the server was never launched
	stopStats func()
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(p Params) (*Console, error) {
	con := &Console{
		term:      p.Term,
		machine:   p.Machine,
		externals: p.Externals,
		Prefs:     p.Prefs,
	}

	if con.externals == nil {
		con.externals = externals.NewManager()
	}

	con.registry = registries{con.machine, con.externals}

	if con.Prefs == nil {
		var err error
		con.Prefs, err = NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	con.bridge = bridge.NewBridge(con.machine.Bus(), con.term, p.Env)

	con.Prefs.EchoLog.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(con.printStyle(terminal.StyleLog), false)
		} else {
			logger.SetEcho(nil, false)
		}
		return nil
	})

	con.events.IntEvents = make(chan os.Signal, 1)

	return con, nil
}

// Start the console. The initScript is run before any input is read from the
// terminal. An empty string means there is no initialisation script.
//
// Returns when the QUIT command is used or when the terminal has no more
// input.
func (con *Console) Start(initScript string) error {
	if err := con.term.Initialise(); err != nil {
		return err
	}
	defer con.term.CleanUp()

	con.term.RegisterTabCompletion(commandline.NewTabCompletion(consoleCommands))

	// interrupt signals are delivered to the terminal
	signal.Notify(con.events.IntEvents, os.Interrupt)
	defer signal.Stop(con.events.IntEvents)

	// echo the log now that the terminal is ready
	if con.Prefs.EchoLog.Get().(bool) {
		logger.SetEcho(con.printStyle(terminal.StyleLog), true)
		defer logger.SetEcho(nil, false)
	}

	defer func() {
		if err := con.scribe.EndSession(); err != nil {
			con.printLine(terminal.StyleError, "%s", err)
		}
	}()

	if initScript != "" {
		if err := con.startScript(initScript); err != nil {
			logger.Logf(logger.Allow, "console", "error running init script: %v", err)
			con.printLine(terminal.StyleError, "%s", err)
		}
	}

	if con.stopStats != nil {
		defer con.stopStats()
	}

	con.running = true

	return con.inputLoop()
}

// Output returns the io.Writer used by the console's bridge.
func (con *Console) Output() io.Writer {
	return con.bridge.Output()
}

// LaunchStats starts the statsview server if it is available. The server is
// stopped when Start() returns. An empty address means the default address.
func (con *Console) LaunchStats(address string) bool {
	if !statsview.Available() {
		return false
	}
	con.stopStats = statsview.Launch(con.printStyle(terminal.StyleFeedback), address)
	return true
}

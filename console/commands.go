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
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/emuconsole/console/commandline"
	"github.com/jetsetilly/emuconsole/console/terminal"
	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/hardware/bus"
	"github.com/jetsetilly/emuconsole/hardware/externals/hostserial"
	"github.com/jetsetilly/emuconsole/hardware/memory"
	"github.com/jetsetilly/emuconsole/logger"
	"github.com/jetsetilly/emuconsole/paths"
)

// CommandError is the error pattern for errors found while processing a
// command that has passed validation.
const CommandError = "%s: %v"

// default baud rate for EXTERNAL OPEN.
const defaultBaud = 115200

// parseCommand validates the input and acts upon it. the batch argument
// indicates that the input is from a script.
func (con *Console) parseCommand(input string, batch bool) error {
	tokens := commandline.TokeniseInput(input)

	if err := consoleCommands.ValidateTokens(tokens); err != nil {
		return err
	}

	command, _ := tokens.Get()
	command = strings.ToUpper(command)

	if err := con.processTokens(command, tokens, batch); err != nil {
		if curated.IsAny(err) {
			return err
		}
		return curated.Errorf(CommandError, command, err)
	}

	return nil
}

// processTokens runs the command. the tokens have been validated and the
// command keyword has already been consumed.
func (con *Console) processTokens(command string, tokens *commandline.Tokens, batch bool) error {
	switch command {
	default:
		return fmt.Errorf("%s is not yet implemented", command)

	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			con.printLine(terminal.StyleHelp, consoleCommands.Help(keyword))
		} else {
			con.printLine(terminal.StyleHelp, consoleCommands.HelpOverview())
		}

	case cmdQuit:
		// never record the QUIT command
		con.scribe.Rollback()
		con.running = false

	case cmdDump:
		start, count, err := startAndCount(tokens)
		if err != nil {
			return err
		}

		width := con.Prefs.DumpWidth.Get().(int)
		if tok, ok := tokens.Get(); ok {
			w, err := commandline.ParseNumber(tok)
			if err != nil {
				return err
			}
			width = int(w)
		}

		return con.bridge.Dump(start, count, width)

	case cmdDumpFile:
		start, count, err := startAndCount(tokens)
		if err != nil {
			return err
		}
		filename, _ := tokens.Get()

		if err := con.bridge.DumpFile(start, count, filename); err != nil {
			return err
		}
		con.printLine(terminal.StyleFeedback, "%d bytes written to %s", count, filename)

	case cmdUART:
		name, _ := tokens.Get()
		return con.connectUART(con.registry, name)

	case cmdExternal:
		return con.external(tokens)

	case cmdSleep:
		tok, _ := tokens.Get()
		secs, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return err
		}
		return con.sleep(time.Duration(secs * float64(time.Second)))

	case cmdEcho:
		con.bridge.Echo(tokens.GetAll())

	case cmdNext:
		tok, ok := tokens.Get()
		if !ok {
			con.bridge.NextValue(&con.counter, 0)
			return nil
		}
		if strings.ToUpper(tok) == "RESET" {
			con.counter.Reset()
			con.printLine(terminal.StyleFeedback, "counter reset")
			return nil
		}
		offset, err := commandline.ParseNumber(tok)
		if err != nil {
			return err
		}
		con.bridge.NextValue(&con.counter, int(offset))

	case cmdGetEnv:
		name, _ := tokens.Get()
		con.bridge.GetEnviron(name)

	case cmdConsoleLog:
		con.bridge.ConsoleLog(tokens.GetAll()...)

	case cmdPeek:
		for tok, ok := tokens.Get(); ok; tok, ok = tokens.Get() {
			address, err := commandline.ParseAddress(tok)
			if err != nil {
				return err
			}
			d, err := con.machine.Bus().ReadBytes(address, 1)
			if err != nil {
				return err
			}
			con.printLine(terminal.StyleFeedback, "0x%08X -> 0x%02X", address, d[0])
		}

	case cmdPoke:
		tok, _ := tokens.Get()
		address, err := commandline.ParseAddress(tok)
		if err != nil {
			return err
		}

		var data []byte
		for tok, ok := tokens.Get(); ok; tok, ok = tokens.Get() {
			v, err := commandline.ParseNumber(tok)
			if err != nil {
				return err
			}
			if v < 0 || v > 0xff {
				return fmt.Errorf("value is not a byte (%s)", tok)
			}
			data = append(data, byte(v))
		}

		if err := con.machine.Bus().WriteBytes(address, data); err != nil {
			return err
		}
		con.printLine(terminal.StyleFeedback, "%d bytes written at 0x%08X", len(data), address)

	case cmdLoad:
		filename, _ := tokens.Get()
		tok, _ := tokens.Get()
		address, err := commandline.ParseAddress(tok)
		if err != nil {
			return err
		}
		n, err := memory.LoadFile(con.machine.Bus(), filename, address)
		if err != nil {
			return err
		}
		con.printLine(terminal.StyleFeedback, "%d bytes loaded at 0x%08X", n, address)

	case cmdPeripherals:
		con.printLine(terminal.StyleFeedback, con.machine.Peripherals())
		if s := con.externals.List(); s != "" {
			con.printLine(terminal.StyleFeedback, s)
		}

	case cmdMemMap:
		con.printLine(terminal.StyleFeedback, con.machine.SysBus.String())

	case cmdScript:
		return con.script(tokens, batch)

	case cmdLog:
		option, _ := tokens.Get()
		switch strings.ToUpper(option) {
		case "LAST":
			logger.Tail(con.printStyle(terminal.StyleLog), 1)
		case "RECENT":
			logger.WriteRecent(con.printStyle(terminal.StyleLog))
		case "CLEAR":
			logger.Clear()
		default:
			logger.Write(con.printStyle(terminal.StyleLog))
		}

	case cmdPrefs:
		option, _ := tokens.Get()
		switch strings.ToUpper(option) {
		case "SAVE":
			return con.Prefs.Save()
		case "LOAD":
			return con.Prefs.Load()
		case "SET":
			key, _ := tokens.Get()
			value, _ := tokens.Get()
			return con.Prefs.Set(key, value)
		default:
			con.printLine(terminal.StyleFeedback, con.Prefs.String())
		}

	case cmdMemViz:
		filename, _ := tokens.Get()
		filename, err := con.writeMemViz(filename)
		if err != nil {
			return err
		}
		con.printLine(terminal.StyleFeedback, "memviz written to %s", filename)
	}

	return nil
}

// startAndCount gets the first two arguments of the DUMP and DUMPFILE
// commands.
func startAndCount(tokens *commandline.Tokens) (uint64, int, error) {
	tok, _ := tokens.Get()
	start, err := commandline.ParseAddress(tok)
	if err != nil {
		return 0, 0, err
	}

	tok, _ = tokens.Get()
	count, err := commandline.ParseNumber(tok)
	if err != nil {
		return 0, 0, err
	}

	return start, int(count), nil
}

// sleep for the duration. the sleep ends early if the user interrupts.
func (con *Console) sleep(d time.Duration) error {
	done := make(chan struct{})
	finished := make(chan struct{})
	defer close(finished)

	go func() {
		select {
		case <-con.events.IntEvents:
			close(done)
		case <-finished:
		}
	}()

	completed, err := con.bridge.Sleep(d, done)
	if err != nil {
		return err
	}
	if !completed {
		con.printLine(terminal.StyleFeedback, "sleep interrupted")
	}
	return nil
}

func (con *Console) script(tokens *commandline.Tokens, batch bool) error {
	option, _ := tokens.Get()

	switch strings.ToUpper(option) {
	case "RECORD":
		if batch {
			return curated.Errorf("SCRIPT RECORD cannot be used in a script")
		}

		filename, ok := tokens.Get()
		if !ok {
			filename = paths.UniqueFilename("script", "")
		}

		if err := con.scribe.StartSession(filename); err != nil {
			return err
		}
		con.printLine(terminal.StyleFeedback, "recording to %s", filename)

	case "END":
		// the END command itself is not recorded
		con.scribe.Rollback()

		if !con.scribe.IsActive() {
			return curated.Errorf("script: no script is being recorded")
		}
		filename := con.scribe.Filename()
		if err := con.scribe.EndSession(); err != nil {
			return err
		}
		con.printLine(terminal.StyleFeedback, "recording of %s ended", filename)

	default:
		return con.startScript(option)
	}

	return nil
}

func (con *Console) external(tokens *commandline.Tokens) error {
	option, _ := tokens.Get()

	switch strings.ToUpper(option) {
	case "PORTS":
		ports, err := hostserial.Ports()
		if err != nil {
			return err
		}
		if len(ports) == 0 {
			con.printLine(terminal.StyleFeedback, "no serial ports found")
			return nil
		}
		con.printLine(terminal.StyleFeedback, strings.Join(ports, "\n"))

	case "OPEN":
		port, _ := tokens.Get()

		baud := defaultBaud
		if tok, ok := tokens.Get(); ok {
			b, err := commandline.ParseNumber(tok)
			if err != nil {
				return err
			}
			baud = int(b)
		}

		s, err := hostserial.Open(port, baud)
		if err != nil {
			return err
		}

		name := filepath.Base(port)
		if err := con.externals.Add(name, s); err != nil {
			s.Close()
			return err
		}
		con.printLine(terminal.StyleFeedback, "%s added as external device %s", port, name)

	case "CLOSE":
		name, _ := tokens.Get()
		if err := con.externals.Remove(name); err != nil {
			return err
		}
		con.printLine(terminal.StyleFeedback, "external device %s closed", name)

	case "CONNECT":
		name, _ := tokens.Get()
		return con.connectUART(con.externals, name)

	default:
		s := con.externals.List()
		if s == "" {
			s = "no external devices"
		}
		con.printLine(terminal.StyleFeedback, s)
	}

	return nil
}

// connectUART bridges the named device to the terminal. interrupt signals
// received while the bridge was running belong to the device session and
// are discarded.
func (con *Console) connectUART(reg bus.Registry, name string) error {
	defer con.drainInterrupts()
	_, err := con.bridge.ConnectUART(reg, name, con.term)
	return err
}

func (con *Console) drainInterrupts() {
	for {
		select {
		case <-con.events.IntEvents:
		default:
			return
		}
	}
}

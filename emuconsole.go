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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/jetsetilly/emuconsole/console"
	"github.com/jetsetilly/emuconsole/console/commandline"
	"github.com/jetsetilly/emuconsole/console/terminal"
	"github.com/jetsetilly/emuconsole/console/terminal/colorterm"
	"github.com/jetsetilly/emuconsole/console/terminal/plainterm"
	"github.com/jetsetilly/emuconsole/environment"
	"github.com/jetsetilly/emuconsole/hardware/externals"
	"github.com/jetsetilly/emuconsole/hardware/externals/hostserial"
	"github.com/jetsetilly/emuconsole/hardware/machine"
	"github.com/jetsetilly/emuconsole/hardware/memory"
	"github.com/jetsetilly/emuconsole/logger"
	"github.com/jetsetilly/emuconsole/modalflag"
	"github.com/jetsetilly/emuconsole/paths"
	"github.com/jetsetilly/emuconsole/prefs"
)

const defaultInitScript = "consoleInit"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch parses the arguments and runs the selected mode. the return value
// is the exit status of the program.
func launch(args []string, input *os.File, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("CONSOLE", "SCRIPT")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "CONSOLE":
		err = interactive(md, input, output)

	case "SCRIPT":
		err = batch(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags common to all modes that prepare the machine and the session.
type sessionFlags struct {
	ramBase   *uint64
	ramSize   *uint64
	uarts     *modalflag.StringList
	uartBase  *uint64
	echo      *bool
	load      *modalflag.StringList
	serial    *string
	baud      *int
	env       *modalflag.StringList
	prefs     *string
	prefsFile *string
	statsview *bool
	statsAddr *string
}

func addSessionFlags(md *modalflag.Modes) *sessionFlags {
	return &sessionFlags{
		ramBase:   md.AddUint64("rambase", machine.DefaultRAMBase, "base address of RAM"),
		ramSize:   md.AddUint64("ram", machine.DefaultRAMSize, "size of RAM in bytes"),
		uarts:     md.AddStringList("uart", []string{"uart0"}, "names of the UARTs to create"),
		uartBase:  md.AddUint64("uartbase", machine.DefaultUARTBase, "base address of the first UART"),
		echo:      md.AddBool("echo", false, "UARTs echo received characters"),
		load:      md.AddStringList("load", nil, "load file into memory before starting: file@address"),
		serial:    md.AddString("serial", "", "host serial port to open as an external device"),
		baud:      md.AddInt("baud", 115200, "baud rate of the host serial port"),
		env:       md.AddStringList("env", nil, "set environment variable for the session: NAME=VALUE"),
		prefs:     md.AddString("prefs", "", "override preferences for the session: key::value; key::value"),
		prefsFile: md.AddString("prefsfile", "", "preferences file to use instead of the default"),
		statsview: md.AddBool("statsview", false, "launch statsview server if available"),
		statsAddr: md.AddString("statsaddr", "", "address of the statsview server"),
	}
}

// session is the collection of objects created from the session flags.
type session struct {
	machine   *machine.Machine
	externals *externals.Manager
	prefs     *console.Preferences
	env       environment.Environment
}

func (s *session) close() {
	if err := s.externals.Close(); err != nil {
		logger.Log(logger.Allow, "emuconsole", err)
	}
	s.machine.Close()
}

func newSession(sf *sessionFlags) (*session, error) {
	if *sf.prefs != "" {
		prefs.PushCommandLineStack(*sf.prefs)
		defer prefs.PopCommandLineStack()
	}

	cfg := machine.Config{
		RAMBase:  *sf.ramBase,
		RAMSize:  *sf.ramSize,
		UARTs:    sf.uarts.Values(),
		UARTBase: *sf.uartBase,
		Echo:     *sf.echo,
	}

	m, err := machine.NewMachine(cfg)
	if err != nil {
		return nil, err
	}

	s := &session{
		machine:   m,
		externals: externals.NewManager(),
	}

	for _, l := range sf.load.Values() {
		fn, addr, ok := strings.Cut(l, "@")
		if !ok {
			s.close()
			return nil, fmt.Errorf("load: expected file@address: %s", l)
		}
		a, err := commandline.ParseAddress(addr)
		if err != nil {
			s.close()
			return nil, fmt.Errorf("load: %w", err)
		}
		n, err := memory.LoadFile(m.Bus(), fn, a)
		if err != nil {
			s.close()
			return nil, err
		}
		logger.Logf(logger.Allow, "emuconsole", "%d bytes loaded from %s at %#08x", n, fn, a)
	}

	if *sf.serial != "" {
		ser, err := hostserial.Open(*sf.serial, *sf.baud)
		if err != nil {
			s.close()
			return nil, err
		}
		if err := s.externals.Add(filepath.Base(*sf.serial), ser); err != nil {
			ser.Close()
			s.close()
			return nil, err
		}
	}

	s.prefs, err = console.NewPreferences(*sf.prefsFile)
	if err != nil {
		s.close()
		return nil, err
	}

	if vars := sf.env.Values(); len(vars) > 0 {
		s.env = environment.Overlay{
			Vars: environment.ParseAssignments(vars),
			Base: environment.OS{},
		}
	} else {
		s.env = environment.OS{}
	}

	return s, nil
}

func interactive(md *modalflag.Modes, input *os.File, output io.Writer) error {
	md.NewMode()

	defInitScript, err := paths.ResourcePath("", defaultInitScript)
	if err != nil {
		return err
	}

	sf := addSessionFlags(md)
	termType := md.AddString("term", "AUTO", "terminal type to use: AUTO, COLOR, PLAIN")
	initScript := md.AddString("initscript", defInitScript, "script to run on console start")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := newSession(sf)
	if err != nil {
		return err
	}
	defer s.close()

	// the default init script is optional
	if *initScript == defInitScript {
		if _, err := os.Stat(defInitScript); err != nil {
			*initScript = ""
		}
	}

	var trm terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(output, "! unknown terminal type (%s) defaulting to auto\n", *termType)
		fallthrough
	case "AUTO":
		if s.prefs.ColorTerm.Get().(bool) && term.IsTerminal(int(input.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = plainterm.NewPlainTerminal(input, output)
		}
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(input, output)
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	}

	return run(s, trm, sf, *initScript)
}

func batch(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	sf := addSessionFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if _, err := os.Stat(md.GetArg(0)); err != nil {
		return err
	}

	s, err := newSession(sf)
	if err != nil {
		return err
	}
	defer s.close()

	// the terminal has no input so the console ends when the script ends
	trm := plainterm.NewPlainTerminal(strings.NewReader(""), output)

	return run(s, trm, sf, md.GetArg(0))
}

func run(s *session, trm terminal.Terminal, sf *sessionFlags, initScript string) error {
	con, err := console.NewConsole(console.Params{
		Term:      trm,
		Machine:   s.machine,
		Externals: s.externals,
		Env:       s.env,
		Prefs:     s.prefs,
	})
	if err != nil {
		return err
	}

	if *sf.statsview && !con.LaunchStats(*sf.statsAddr) {
		logger.Log(logger.Allow, "emuconsole", "statsview not available in this build")
	}

	return con.Start(initScript)
}

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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are supplied with NewArgs() and Parse()
// is called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("console", "script")
//	ram := md.AddUint64("ram", 0x100000, "size of RAM")
//	_, _ = md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation. The first sub-mode added with AddSubModes() is
// the default mode. Sub-mode comparisons are case insensitive and the
// selected mode is returned in upper case by Mode():
//
//	switch md.Mode() {
//	case "CONSOLE":
//		runConsole(md)
//	case "SCRIPT":
//		runScript(md)
//	}
//
// A mode can then define its own flags by calling NewMode() followed by
// another call to Parse(). Arguments that are neither flags nor a sub-mode
// can be retrieved with RemainingArgs() or GetArg().
package modalflag

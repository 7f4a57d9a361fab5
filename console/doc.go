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

// Package console implements the interactive session of the emulation host.
// The Console type reads commands from a terminal or from a script, validates
// them against the command template and dispatches them.
//
// Most commands forward to the bridge package. For example, the DUMP command
// calls Bridge.Dump() and the UART command calls Bridge.ConnectUART() with
// the console's terminal as the source of input.
//
// Errors from commands are printed to the terminal and the session
// continues. Only an error from the terminal itself ends the session.
package console

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

// Package bridge implements the console commands that forward to the running
// emulation. The commands read memory through a bus.Bus and talk to
// peripherals through the bus.CharDevice capability.
//
// The Dump() function formats a range of memory as lines of hexadecimal and
// ASCII. For example, dumping four bytes with a row width of four:
//
//	0x00001000 | 41 00 42 7F | A.B.
//
// DumpFile() writes a range of memory to a file without any formatting.
//
// ConnectUART() bridges a character device to the user's terminal. Input from
// the user is forwarded to the device and characters received from the device
// are written to the output. The connection ends when the user presses the
// ESC key. There is no other way of cancelling the connection except for the
// input ending.
//
// The remaining functions are simple helpers: Echo(), Sleep(), NextValue(),
// GetEnviron() and ConsoleLog().
//
// All output is written to the io.Writer given to NewBridge(). Writes to the
// output are serialised so it is safe for the output to be written to by a
// device callback running in another goroutine.
package bridge

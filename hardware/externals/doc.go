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

// Package externals manages objects that are attached to the emulation but
// live outside of the emulated machine. A serial port on the host computer
// for example.
//
// Externals are retrieved by name with Manager.Get(). The Manager also
// implements the bus.Registry interface so that externals with the character
// device capability can be bridged to the terminal in the same way as a UART
// in the machine.
package externals

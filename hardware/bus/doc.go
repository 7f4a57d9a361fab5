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

// Package bus defines the interfaces through which the console reaches into a
// running emulation. The console never owns the objects behind these
// interfaces. The emulation host creates them and decides their lifetime.
//
// The Bus interface is the random-access view of the machine's address space
// used by the memory commands. The Registry interface resolves a peripheral
// name to a Peripheral. Whether a Peripheral can be used as a character device
// is decided by AsCharDevice() and never by a type conversion at the call
// site.
package bus

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

// Package memory implements the system bus of the emulated machine. The
// system bus maps regions of memory to base addresses:
//
//	0x00000000 +------------+
//	           |    RAM     |
//	           +------------+
//	           |  unmapped  |
//	0x10000000 +------------+
//	           |   uart0    |
//	           +------------+
//
// An access must lie entirely inside a single region. Anything else is an
// out of range error, including an access that starts inside a region and
// runs past its end.
//
// The RAM and ROM types are the basic memory regions. Peripherals with memory
// mapped registers implement the bus.Region interface and are mapped in the
// same way.
package memory

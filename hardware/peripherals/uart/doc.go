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

// Package uart implements a virtual serial port. The emulated machine sees a
// small block of memory mapped registers (see registers.go). The emulation
// host sees a bus.CharDevice.
//
// Characters transmitted by the machine are delivered to every subscriber.
// Delivery happens on a goroutine owned by the UART so subscribers must not
// assume they are called from the goroutine that subscribed. Characters
// written with WriteChar() are queued in the receive FIFO for the machine to
// read. In echo mode they are also sent straight back to the subscribers,
// which is useful when there is no program running on the machine.
package uart

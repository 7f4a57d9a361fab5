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

package uart

// Register offsets from the base address of the UART.
const (
	// write only. writing a byte transmits it
	RegTX = 0x00

	// read only. reading pops the next byte from the receive FIFO. zero is
	// returned if the FIFO is empty
	RegRX = 0x04

	// read only. see the Status bits below
	RegStatus = 0x08

	// total size of the register block
	RegisterSize = 0x10
)

// Status register bits.
const (
	StatusRXAvailable = 0x01
	StatusTXReady     = 0x02
)

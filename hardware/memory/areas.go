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

package memory

import (
	"errors"
	"sync"
)

// RAM is a bus.Region of read/write memory.
type RAM struct {
	crit   sync.Mutex
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(size uint64) *RAM {
	return &RAM{memory: make([]uint8, size)}
}

// PeripheralType implements the bus.Peripheral interface.
func (ram *RAM) PeripheralType() string {
	return "memory"
}

// Size implements the bus.Region interface.
func (ram *RAM) Size() uint64 {
	return uint64(len(ram.memory))
}

// ReadRegion implements the bus.Region interface.
func (ram *RAM) ReadRegion(offset uint64, data []byte) error {
	ram.crit.Lock()
	defer ram.crit.Unlock()
	copy(data, ram.memory[offset:])
	return nil
}

// WriteRegion implements the bus.Region interface.
func (ram *RAM) WriteRegion(offset uint64, data []byte) error {
	ram.crit.Lock()
	defer ram.crit.Unlock()
	copy(ram.memory[offset:], data)
	return nil
}

// ErrReadOnly is returned by the ROM type when it is written to.
var ErrReadOnly = errors.New("region is read only")

// ROM is a bus.Region of read only memory. The contents are fixed when the
// ROM is created.
type ROM struct {
	memory []uint8
}

// NewROM is the preferred method of initialisation for the ROM type. The
// data is copied.
func NewROM(data []byte) *ROM {
	rom := &ROM{memory: make([]uint8, len(data))}
	copy(rom.memory, data)
	return rom
}

// PeripheralType implements the bus.Peripheral interface.
func (rom *ROM) PeripheralType() string {
	return "memory (read only)"
}

// Size implements the bus.Region interface.
func (rom *ROM) Size() uint64 {
	return uint64(len(rom.memory))
}

// ReadRegion implements the bus.Region interface.
func (rom *ROM) ReadRegion(offset uint64, data []byte) error {
	copy(data, rom.memory[offset:])
	return nil
}

// WriteRegion implements the bus.Region interface.
func (rom *ROM) WriteRegion(_ uint64, _ []byte) error {
	return ErrReadOnly
}

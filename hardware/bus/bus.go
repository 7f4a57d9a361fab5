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

package bus

// Error patterns for bus access. The address value in each pattern is the
// first address of the failing access.
const (
	OutOfRange  = "bus: address out of range (%#08x)"
	DeviceError = "bus: device error at %#08x: %v"
)

// Bus is a random access, byte addressable view of memory.
type Bus interface {
	// ReadBytes returns count bytes starting at address. The returned slice
	// belongs to the caller.
	//
	// Errors are curated errors created with the OutOfRange or DeviceError
	// pattern.
	ReadBytes(address uint64, count uint32) ([]byte, error)
}

// WriteBus is implemented by buses that can be written to.
type WriteBus interface {
	Bus
	WriteBytes(address uint64, data []byte) error
}

// Region is a contiguous block of the address space serviced by a single
// device. Offsets are relative to the start of the region.
type Region interface {
	Size() uint64
	ReadRegion(offset uint64, data []byte) error
	WriteRegion(offset uint64, data []byte) error
}

// Peripheral is anything that can be registered by name with the emulation
// host.
type Peripheral interface {
	// a short human readable description of the peripheral type
	PeripheralType() string
}

// Registry resolves peripheral names.
type Registry interface {
	Lookup(name string) (Peripheral, bool)
}

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
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/hardware/bus"
)

// Error patterns returned by Map().
const (
	MapOverlap = "sysbus: %s overlaps %s"
	MapEmpty   = "sysbus: %s has zero size"
)

// Mapping is a region placed at an address on the system bus.
type Mapping struct {
	Name   string
	Base   uint64
	Region bus.Region
}

// Top is the last address in the mapping.
func (m Mapping) Top() uint64 {
	return m.Base + m.Region.Size() - 1
}

func (m Mapping) String() string {
	return fmt.Sprintf("%#08x - %#08x %s", m.Base, m.Top(), m.Name)
}

func (m Mapping) contains(address uint64) bool {
	return address >= m.Base && address <= m.Top()
}

// SystemBus is an implementation of the bus.WriteBus interface. It can be
// accessed by the emulation and by the console at the same time.
type SystemBus struct {
	crit     sync.RWMutex
	mappings []Mapping
}

// NewSystemBus is the preferred method of initialisation for the SystemBus
// type.
func NewSystemBus() *SystemBus {
	return &SystemBus{}
}

// PeripheralType implements the bus.Peripheral interface.
func (sb *SystemBus) PeripheralType() string {
	return "system bus"
}

// Map places the region at the base address.
func (sb *SystemBus) Map(name string, base uint64, region bus.Region) error {
	if region.Size() == 0 {
		return curated.Errorf(MapEmpty, name)
	}

	m := Mapping{Name: name, Base: base, Region: region}

	sb.crit.Lock()
	defer sb.crit.Unlock()

	for _, o := range sb.mappings {
		if m.Base <= o.Top() && o.Base <= m.Top() {
			return curated.Errorf(MapOverlap, name, o.Name)
		}
	}

	sb.mappings = append(sb.mappings, m)
	sort.Slice(sb.mappings, func(i, j int) bool {
		return sb.mappings[i].Base < sb.mappings[j].Base
	})

	return nil
}

// Mappings returns a copy of the current mappings, in address order.
func (sb *SystemBus) Mappings() []Mapping {
	sb.crit.RLock()
	defer sb.crit.RUnlock()
	m := make([]Mapping, len(sb.mappings))
	copy(m, sb.mappings)
	return m
}

func (sb *SystemBus) String() string {
	s := strings.Builder{}
	for _, m := range sb.Mappings() {
		s.WriteString(m.String())
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// find the mapping that contains the entire range. the critical section
// should be held by the caller
func (sb *SystemBus) find(address uint64, count uint64) (Mapping, error) {
	for _, m := range sb.mappings {
		if m.contains(address) {
			// the end address wrapping around is out of range
			if address+count < address {
				break
			}
			if count > 0 && !m.contains(address+count-1) {
				break
			}
			return m, nil
		}
	}
	return Mapping{}, curated.Errorf(bus.OutOfRange, address)
}

// ReadBytes implements the bus.Bus interface.
func (sb *SystemBus) ReadBytes(address uint64, count uint32) ([]byte, error) {
	sb.crit.RLock()
	defer sb.crit.RUnlock()

	m, err := sb.find(address, uint64(count))
	if err != nil {
		return nil, err
	}

	data := make([]byte, count)
	if err := m.Region.ReadRegion(address-m.Base, data); err != nil {
		return nil, curated.Errorf(bus.DeviceError, address, err)
	}
	return data, nil
}

// WriteBytes implements the bus.WriteBus interface.
func (sb *SystemBus) WriteBytes(address uint64, data []byte) error {
	sb.crit.RLock()
	defer sb.crit.RUnlock()

	m, err := sb.find(address, uint64(len(data)))
	if err != nil {
		return err
	}

	if err := m.Region.WriteRegion(address-m.Base, data); err != nil {
		return curated.Errorf(bus.DeviceError, address, err)
	}
	return nil
}

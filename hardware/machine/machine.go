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

package machine

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/emuconsole/hardware/bus"
	"github.com/jetsetilly/emuconsole/hardware/memory"
	"github.com/jetsetilly/emuconsole/hardware/peripherals/uart"
	"github.com/jetsetilly/emuconsole/logger"
)

// Default address map.
const (
	DefaultRAMBase  = 0x00000000
	DefaultRAMSize  = 0x00100000
	DefaultUARTBase = 0x10000000

	// distance between the register blocks of consecutive UARTs
	UARTStride = 0x1000
)

// Config describes the machine to create.
type Config struct {
	RAMBase uint64
	RAMSize uint64

	// names of the UARTs to create. the first UART is mapped at UARTBase and
	// the others follow at UARTStride intervals
	UARTs    []string
	UARTBase uint64

	// UARTs echo received characters back to the subscribers
	Echo bool
}

// DefaultConfig returns a Config with one UART named "uart0".
func DefaultConfig() Config {
	return Config{
		RAMBase:  DefaultRAMBase,
		RAMSize:  DefaultRAMSize,
		UARTs:    []string{"uart0"},
		UARTBase: DefaultUARTBase,
	}
}

// Machine is the root of the emulated machine's object graph.
type Machine struct {
	SysBus   *memory.SystemBus
	Registry *Registry

	uarts []*uart.UART
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine(cfg Config) (*Machine, error) {
	m := &Machine{
		SysBus:   memory.NewSystemBus(),
		Registry: NewRegistry(),
	}

	if err := m.Registry.Register("sysbus", m.SysBus); err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	if cfg.RAMSize > 0 {
		ram := memory.NewRAM(cfg.RAMSize)
		if err := m.SysBus.Map("ram", cfg.RAMBase, ram); err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
		if err := m.Registry.Register("ram", ram); err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
	}

	for i, name := range cfg.UARTs {
		u := uart.NewUART(name, cfg.Echo)
		m.uarts = append(m.uarts, u)

		if err := m.Registry.Register(name, u); err != nil {
			m.Close()
			return nil, fmt.Errorf("machine: %w", err)
		}

		base := cfg.UARTBase + uint64(i)*UARTStride
		if err := m.SysBus.Map(name, base, u); err != nil {
			m.Close()
			return nil, fmt.Errorf("machine: %w", err)
		}

		logger.Logf(logger.Allow, "machine", "%s mapped at %#08x", name, base)
	}

	return m, nil
}

// Close releases resources held by the machine's peripherals.
func (m *Machine) Close() {
	for _, u := range m.uarts {
		u.Close()
	}
}

// Lookup implements the bus.Registry interface.
func (m *Machine) Lookup(name string) (bus.Peripheral, bool) {
	return m.Registry.Lookup(name)
}

// Bus returns the bus used by the memory commands.
func (m *Machine) Bus() bus.WriteBus {
	return m.SysBus
}

// Peripherals returns a human readable list of the registered peripherals.
func (m *Machine) Peripherals() string {
	s := strings.Builder{}
	for _, n := range m.Registry.Names() {
		p, _ := m.Registry.Lookup(n)
		s.WriteString(fmt.Sprintf("%-10s %s", n, p.PeripheralType()))
		if _, ok := bus.AsCharDevice(p); ok {
			s.WriteString(" [char device]")
		}
		for _, mp := range m.SysBus.Mappings() {
			if mp.Name == n {
				s.WriteString(fmt.Sprintf(" @ %#08x", mp.Base))
			}
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

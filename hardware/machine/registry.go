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
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/hardware/bus"
)

// Error patterns returned by Register().
const (
	DuplicatePeripheral = "registry: peripheral %s already registered"
	InvalidName         = "registry: invalid peripheral name (%s)"
)

// Registry is an implementation of the bus.Registry interface. Names are case
// sensitive.
type Registry struct {
	crit        sync.Mutex
	peripherals map[string]bus.Peripheral
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	return &Registry{
		peripherals: make(map[string]bus.Peripheral),
	}
}

// Register a peripheral with a unique name. The name cannot contain white
// space.
func (reg *Registry) Register(name string, p bus.Peripheral) error {
	if name == "" || strings.ContainsAny(name, " \t\n") {
		return curated.Errorf(InvalidName, name)
	}

	reg.crit.Lock()
	defer reg.crit.Unlock()

	if _, ok := reg.peripherals[name]; ok {
		return curated.Errorf(DuplicatePeripheral, name)
	}
	reg.peripherals[name] = p
	return nil
}

// Lookup implements the bus.Registry interface.
func (reg *Registry) Lookup(name string) (bus.Peripheral, bool) {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	p, ok := reg.peripherals[name]
	return p, ok
}

// Names returns the names of all registered peripherals, sorted
// alphabetically.
func (reg *Registry) Names() []string {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	n := make([]string, 0, len(reg.peripherals))
	for k := range reg.peripherals {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

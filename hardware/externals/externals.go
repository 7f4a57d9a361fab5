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

package externals

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/hardware/bus"
	"github.com/jetsetilly/emuconsole/logger"
)

// Sentinal error patterns.
const (
	DuplicateExternal = "externals: %s already exists"
	UnknownExternal   = "externals: %s does not exist"
)

// External is anything that can be added to the Manager.
type External interface {
	bus.Peripheral
	Close() error
}

// Manager is a collection of named externals.
type Manager struct {
	crit      sync.Mutex
	externals map[string]External
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager() *Manager {
	return &Manager{
		externals: make(map[string]External),
	}
}

// Add an external to the manager.
func (mgr *Manager) Add(name string, ext External) error {
	mgr.crit.Lock()
	defer mgr.crit.Unlock()
	if _, ok := mgr.externals[name]; ok {
		return curated.Errorf(DuplicateExternal, name)
	}
	mgr.externals[name] = ext
	logger.Logf(logger.Allow, "externals", "added %s (%s)", name, ext.PeripheralType())
	return nil
}

// Get returns the named external. The second return value is false if there
// is no external with that name.
func (mgr *Manager) Get(name string) (External, bool) {
	mgr.crit.Lock()
	defer mgr.crit.Unlock()
	ext, ok := mgr.externals[name]
	return ext, ok
}

// Remove closes the named external and removes it from the manager. The
// external is removed even if closing it fails.
func (mgr *Manager) Remove(name string) error {
	mgr.crit.Lock()
	defer mgr.crit.Unlock()

	ext, ok := mgr.externals[name]
	if !ok {
		return curated.Errorf(UnknownExternal, name)
	}
	delete(mgr.externals, name)

	if err := ext.Close(); err != nil {
		return curated.Errorf("externals: %s: %v", name, err)
	}
	logger.Logf(logger.Allow, "externals", "removed %s", name)

	return nil
}

// Lookup implements the bus.Registry interface.
func (mgr *Manager) Lookup(name string) (bus.Peripheral, bool) {
	ext, ok := mgr.Get(name)
	if !ok {
		return nil, false
	}
	return ext, true
}

// Names returns the names of all externals, sorted alphabetically.
func (mgr *Manager) Names() []string {
	mgr.crit.Lock()
	defer mgr.crit.Unlock()
	n := make([]string, 0, len(mgr.externals))
	for k := range mgr.externals {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// List returns a human readable list of externals.
func (mgr *Manager) List() string {
	s := strings.Builder{}
	for _, n := range mgr.Names() {
		ext, _ := mgr.Get(n)
		s.WriteString(fmt.Sprintf("%-10s %s\n", n, ext.PeripheralType()))
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Close all externals. The first error encountered is returned but every
// external is closed regardless.
func (mgr *Manager) Close() error {
	mgr.crit.Lock()
	defer mgr.crit.Unlock()

	var first error
	for n, ext := range mgr.externals {
		if err := ext.Close(); err != nil {
			logger.Logf(logger.Allow, "externals", "closing %s: %v", n, err)
			if first == nil {
				first = err
			}
		}
	}
	mgr.externals = make(map[string]External)
	return first
}

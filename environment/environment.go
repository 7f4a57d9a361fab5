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

// Package environment provides the context in which console commands are run.
// Currently, the only context is access to environment variables.
package environment

import (
	"os"
	"sort"
	"strings"
)

// Environment is used to look up environment variables by name.
type Environment interface {
	// Lookup returns the value of the named variable. The second return value
	// is false if the variable does not exist. An empty value and a missing
	// variable are distinct.
	Lookup(name string) (string, bool)
}

// OS implements the Environment interface using the environment of the
// running process.
type OS struct{}

// Lookup implements the Environment interface.
func (_ OS) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Map implements the Environment interface with a simple map. Useful for
// testing and for scripts that need a fixed environment.
type Map map[string]string

// Lookup implements the Environment interface.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Overlay implements the Environment interface. Variables in the Map take
// precedence over variables in the underlying Environment.
type Overlay struct {
	Vars Map
	Base Environment
}

// Lookup implements the Environment interface.
func (o Overlay) Lookup(name string) (string, bool) {
	if v, ok := o.Vars.Lookup(name); ok {
		return v, true
	}
	if o.Base == nil {
		return "", false
	}
	return o.Base.Lookup(name)
}

// ParseAssignments creates a Map from a list of NAME=VALUE strings. Entries
// without an equals sign are given an empty value.
func ParseAssignments(assignments []string) Map {
	m := make(Map)
	for _, a := range assignments {
		k, v, _ := strings.Cut(a, "=")
		m[k] = v
	}
	return m
}

// Names returns the variable names in the Map, sorted alphabetically.
func (m Map) Names() []string {
	n := make([]string, 0, len(m))
	for k := range m {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

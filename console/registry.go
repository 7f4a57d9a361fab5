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

package console

import "github.com/jetsetilly/emuconsole/hardware/bus"

// registries searches each registry in turn. the first registry to know of
// the peripheral wins.
type registries []bus.Registry

func (r registries) Lookup(name string) (bus.Peripheral, bool) {
	for _, reg := range r {
		if reg == nil {
			continue
		}
		if p, ok := reg.Lookup(name); ok {
			return p, true
		}
	}
	return nil, false
}

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
	"os"

	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/hardware/bus"
)

// LoadFile copies the contents of a file onto the bus at the address. It
// returns the number of bytes loaded.
func LoadFile(wb bus.WriteBus, filename string, address uint64) (int, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, curated.Errorf("load: %v", err)
	}
	if err := wb.WriteBytes(address, data); err != nil {
		return 0, curated.Errorf("load: %v", err)
	}
	return len(data), nil
}

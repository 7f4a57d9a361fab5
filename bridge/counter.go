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

package bridge

import (
	"fmt"
)

// Counter is a simple incrementing value. It is owned by the console session
// and not shared between sessions.
//
// The zero value is ready to use and starts at zero.
type Counter struct {
	value int
}

// Next returns the current value plus the offset and then increments the
// counter. The offset does not affect the stored value.
func (c *Counter) Next(offset int) int {
	v := c.value + offset
	c.value++
	return v
}

// Reset the counter to zero.
func (c *Counter) Reset() {
	c.value = 0
}

// NextValue prints the next value of the counter plus the offset.
func (br *Bridge) NextValue(c *Counter, offset int) {
	fmt.Fprintf(br.output, "%d\n", c.Next(offset))
}

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

package bus_test

import (
	"testing"

	"github.com/jetsetilly/emuconsole/hardware/bus"
	"github.com/jetsetilly/emuconsole/test"
)

type plainPeripheral struct{}

func (plainPeripheral) PeripheralType() string { return "plain" }

type charPeripheral struct{ plainPeripheral }

func (charPeripheral) Subscribe(func(byte)) int { return 0 }
func (charPeripheral) Unsubscribe(int)          {}
func (charPeripheral) WriteChar(byte) error     { return nil }

type switchable struct {
	plainPeripheral
	enabled bool
}

func (s switchable) CharDevice() (bus.CharDevice, bool) {
	if s.enabled {
		return charPeripheral{}, true
	}
	return nil, false
}

func TestAsCharDevice(t *testing.T) {
	_, ok := bus.AsCharDevice(nil)
	test.ExpectFailure(t, ok)

	_, ok = bus.AsCharDevice(plainPeripheral{})
	test.ExpectFailure(t, ok)

	_, ok = bus.AsCharDevice(charPeripheral{})
	test.ExpectSuccess(t, ok)

	_, ok = bus.AsCharDevice(switchable{enabled: false})
	test.ExpectFailure(t, ok)

	c, ok := bus.AsCharDevice(switchable{enabled: true})
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, c != nil)
}

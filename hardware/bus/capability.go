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

// CharDevice is a peripheral that sends and receives single characters. A
// virtual serial port for example.
type CharDevice interface {
	// Subscribe registers a function to be called whenever a character is
	// received from the device. The returned value identifies the
	// subscription and must be passed to Unsubscribe().
	//
	// The callback function may be called from a goroutine other than the
	// one that called Subscribe().
	Subscribe(received func(byte)) int

	// Unsubscribe removes the subscription. Unsubscribing an unknown or
	// already removed subscription does nothing.
	Unsubscribe(id int)

	// WriteChar sends a character to the device.
	WriteChar(c byte) error
}

// CharDeviceCapability is implemented by peripherals that may or may not be
// usable as a character device, depending on how they are configured.
type CharDeviceCapability interface {
	CharDevice() (CharDevice, bool)
}

// AsCharDevice is the capability query for character devices. A peripheral
// is a character device if it implements CharDeviceCapability and says so,
// or if it implements the CharDevice interface directly.
func AsCharDevice(p Peripheral) (CharDevice, bool) {
	if p == nil {
		return nil, false
	}
	if c, ok := p.(CharDeviceCapability); ok {
		return c.CharDevice()
	}
	if c, ok := p.(CharDevice); ok {
		return c, true
	}
	return nil, false
}

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

package bridge_test

import (
	"sync"

	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/hardware/bus"
)

type read struct {
	address uint64
	count   uint32
}

// memory is an implementation of bus.Bus that records every read
type memory struct {
	base  uint64
	data  []byte
	reads []read

	// reads at or above this address return one byte fewer than requested.
	// zero means reads are never short
	shortFrom uint64
}

func newMemory(base uint64, data []byte) *memory {
	return &memory{base: base, data: data}
}

func (m *memory) ReadBytes(address uint64, count uint32) ([]byte, error) {
	if address < m.base || address+uint64(count) > m.base+uint64(len(m.data)) {
		return nil, curated.Errorf(bus.OutOfRange, address)
	}
	m.reads = append(m.reads, read{address: address, count: count})
	d := make([]byte, count)
	copy(d, m.data[address-m.base:])
	if m.shortFrom > 0 && address >= m.shortFrom && len(d) > 0 {
		d = d[:len(d)-1]
	}
	return d, nil
}

// registry is an implementation of bus.Registry
type registry map[string]bus.Peripheral

func (r registry) Lookup(name string) (bus.Peripheral, bool) {
	p, ok := r[name]
	return p, ok
}

// notUART is a peripheral without the character device capability
type notUART struct{}

func (_ notUART) PeripheralType() string {
	return "not a uart"
}

// device is an implementation of bus.CharDevice
type device struct {
	crit        sync.Mutex
	subscribers map[int]func(byte)
	nextID      int
	written     []byte

	// characters written to the device are sent straight back to the
	// subscribers
	echo bool

	// error returned by WriteChar()
	failure error

	// the most recent subscriber. it is not forgotten by Unsubscribe()
	retained func(byte)
}

func newDevice(echo bool) *device {
	return &device{
		subscribers: make(map[int]func(byte)),
		echo:        echo,
	}
}

func (d *device) PeripheralType() string {
	return "test device"
}

func (d *device) Subscribe(received func(byte)) int {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.nextID++
	d.subscribers[d.nextID] = received
	d.retained = received
	return d.nextID
}

func (d *device) Unsubscribe(id int) {
	d.crit.Lock()
	defer d.crit.Unlock()
	delete(d.subscribers, id)
}

func (d *device) WriteChar(c byte) error {
	if d.failure != nil {
		return d.failure
	}

	d.crit.Lock()
	d.written = append(d.written, c)
	d.crit.Unlock()

	if d.echo {
		d.send(c)
	}
	return nil
}

func (d *device) send(c byte) {
	d.crit.Lock()
	subs := make([]func(byte), 0, len(d.subscribers))
	for _, f := range d.subscribers {
		subs = append(subs, f)
	}
	d.crit.Unlock()

	for _, f := range subs {
		f(c)
	}
}

func (d *device) numSubscribers() int {
	d.crit.Lock()
	defer d.crit.Unlock()
	return len(d.subscribers)
}

func (d *device) writtenString() string {
	d.crit.Lock()
	defer d.crit.Unlock()
	return string(d.written)
}

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

package uart

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/emuconsole/logger"
)

// maximum number of bytes held in the receive FIFO. oldest bytes are
// discarded when the FIFO is full
const fifoSize = 256

// UART is an implementation of the bus.CharDevice and bus.Region interfaces.
type UART struct {
	name string

	crit sync.Mutex

	// receive FIFO. written to by WriteChar() and read by the machine
	rx []byte

	subscribers map[int]func(byte)
	nextID      int

	echo bool

	// count of bytes in each direction
	transmitted int
	received    int

	// characters waiting to be delivered to the subscribers
	delivery chan byte
	quit     chan bool
	done     chan bool

	closeOnce sync.Once
}

// NewUART is the preferred method of initialisation for the UART type. The
// UART should be closed with Close() when it is no longer required.
func NewUART(name string, echo bool) *UART {
	u := &UART{
		name:        name,
		echo:        echo,
		subscribers: make(map[int]func(byte)),
		delivery:    make(chan byte, fifoSize),
		quit:        make(chan bool),
		done:        make(chan bool),
	}
	go u.deliver()
	return u
}

// deliver is the UART's goroutine. it calls the subscribers for every byte
// sent to the delivery channel
func (u *UART) deliver() {
	defer close(u.done)
	for {
		select {
		case <-u.quit:
			return
		case c := <-u.delivery:
			u.crit.Lock()
			subs := make([]func(byte), 0, len(u.subscribers))
			for _, f := range u.subscribers {
				subs = append(subs, f)
			}
			u.crit.Unlock()

			for _, f := range subs {
				f(c)
			}
		}
	}
}

// Close stops the delivery goroutine. Characters not yet delivered are lost.
func (u *UART) Close() {
	u.closeOnce.Do(func() {
		close(u.quit)
		<-u.done
		logger.Logf(logger.Allow, "uart", "%s closed", u.name)
	})
}

func (u *UART) String() string {
	u.crit.Lock()
	defer u.crit.Unlock()
	return fmt.Sprintf("%s: tx=%d rx=%d fifo=%d subscribers=%d echo=%v",
		u.name, u.transmitted, u.received, len(u.rx), len(u.subscribers), u.echo)
}

// PeripheralType implements the bus.Peripheral interface.
func (u *UART) PeripheralType() string {
	return "uart"
}

// Subscribe implements the bus.CharDevice interface.
func (u *UART) Subscribe(received func(byte)) int {
	u.crit.Lock()
	defer u.crit.Unlock()
	u.nextID++
	u.subscribers[u.nextID] = received
	return u.nextID
}

// Unsubscribe implements the bus.CharDevice interface.
func (u *UART) Unsubscribe(id int) {
	u.crit.Lock()
	defer u.crit.Unlock()
	delete(u.subscribers, id)
}

// Subscribers returns the number of active subscriptions.
func (u *UART) Subscribers() int {
	u.crit.Lock()
	defer u.crit.Unlock()
	return len(u.subscribers)
}

// WriteChar implements the bus.CharDevice interface.
func (u *UART) WriteChar(c byte) error {
	u.crit.Lock()
	if len(u.rx) >= fifoSize {
		u.rx = u.rx[1:]
	}
	u.rx = append(u.rx, c)
	u.received++
	echo := u.echo
	u.crit.Unlock()

	if echo {
		u.Transmit(c)
	}
	return nil
}

// Transmit sends a character from the machine to the subscribers.
func (u *UART) Transmit(c byte) {
	u.crit.Lock()
	u.transmitted++
	u.crit.Unlock()

	select {
	case u.delivery <- c:
	case <-u.quit:
	}
}

// Size implements the bus.Region interface.
func (u *UART) Size() uint64 {
	return RegisterSize
}

// ReadRegion implements the bus.Region interface.
func (u *UART) ReadRegion(offset uint64, data []byte) error {
	u.crit.Lock()
	defer u.crit.Unlock()

	for i := range data {
		switch offset + uint64(i) {
		case RegRX:
			if len(u.rx) > 0 {
				data[i] = u.rx[0]
				u.rx = u.rx[1:]
			} else {
				data[i] = 0
			}
		case RegStatus:
			data[i] = StatusTXReady
			if len(u.rx) > 0 {
				data[i] |= StatusRXAvailable
			}
		default:
			data[i] = 0
		}
	}

	return nil
}

// WriteRegion implements the bus.Region interface.
func (u *UART) WriteRegion(offset uint64, data []byte) error {
	for i := range data {
		if offset+uint64(i) == RegTX {
			u.Transmit(data[i])
		}
	}
	return nil
}

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

// Package hostserial exposes a serial port on the host computer as an
// external with the character device capability.
package hostserial

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jetsetilly/emuconsole/logger"
	"go.bug.st/serial"
)

// how long a read of the serial port waits before checking whether the
// device has been closed
const readTimeout = 100 * time.Millisecond

// Serial implements the externals.External and bus.CharDevice interfaces.
type Serial struct {
	name string
	port io.ReadWriteCloser

	crit        sync.Mutex
	subscribers map[int]func(byte)
	nextID      int

	closeOnce sync.Once
	quit      chan bool
	done      chan bool
}

// Open the named serial port on the host computer.
func Open(portName string, baud int) (*Serial, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("hostserial: %w", err)
	}

	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("hostserial: %w", err)
	}

	return NewSerial(portName, port), nil
}

// Ports lists the serial ports available on the host computer.
func Ports() ([]string, error) {
	return serial.GetPortsList()
}

// NewSerial creates a Serial from an already open port. Reading from the port
// begins immediately.
func NewSerial(name string, port io.ReadWriteCloser) *Serial {
	s := &Serial{
		name:        name,
		port:        port,
		subscribers: make(map[int]func(byte)),
		quit:        make(chan bool),
		done:        make(chan bool),
	}
	go s.read()
	return s
}

func (s *Serial) read() {
	defer close(s.done)

	b := make([]byte, 64)
	for {
		n, err := s.port.Read(b)

		select {
		case <-s.quit:
			return
		default:
		}

		if err != nil {
			if err != io.EOF {
				logger.Logf(logger.Allow, "hostserial", "%s: %v", s.name, err)
			}
			return
		}

		// a read timeout returns zero bytes and no error
		if n == 0 {
			continue
		}

		s.crit.Lock()
		subs := make([]func(byte), 0, len(s.subscribers))
		for _, f := range s.subscribers {
			subs = append(subs, f)
		}
		s.crit.Unlock()

		for _, c := range b[:n] {
			for _, f := range subs {
				f(c)
			}
		}
	}
}

// PeripheralType implements the bus.Peripheral interface.
func (s *Serial) PeripheralType() string {
	return fmt.Sprintf("host serial port (%s)", s.name)
}

// Subscribe implements the bus.CharDevice interface.
func (s *Serial) Subscribe(received func(byte)) int {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.nextID++
	s.subscribers[s.nextID] = received
	return s.nextID
}

// Unsubscribe implements the bus.CharDevice interface.
func (s *Serial) Unsubscribe(id int) {
	s.crit.Lock()
	defer s.crit.Unlock()
	delete(s.subscribers, id)
}

// WriteChar implements the bus.CharDevice interface.
func (s *Serial) WriteChar(c byte) error {
	_, err := s.port.Write([]byte{c})
	if err != nil {
		return fmt.Errorf("hostserial: %w", err)
	}
	return nil
}

// Close implements the externals.External interface.
func (s *Serial) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.quit)
		err = s.port.Close()
		<-s.done
	})
	return err
}

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
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/hardware/bus"
	"github.com/jetsetilly/emuconsole/logger"
)

// the character that ends a UART connection
const escape = 27

// Passthrough is implemented by anything that can supply unbuffered input
// from the user, one byte at a time.
type Passthrough interface {
	// Passthrough returns a reader for the user's input and a function that
	// must be called to return the input to its normal state.
	Passthrough() (io.Reader, func(), error)
}

// ReaderPassthrough implements the Passthrough interface for a plain
// io.Reader.
type ReaderPassthrough struct {
	io.Reader
}

// Passthrough implements the Passthrough interface.
func (r ReaderPassthrough) Passthrough() (io.Reader, func(), error) {
	return r.Reader, func() {}, nil
}

// ConnectUART bridges the named peripheral to the user's terminal.
//
// If the peripheral does not exist or does not have the character device
// capability then a message is printed and the function returns false with
// a nil error. Otherwise, every character received from the device is
// written to the output and every byte of input is sent to the device.
//
// The connection ends when the ESC character is input. The ESC character is
// not sent to the device. The connection also ends if the input ends or if
// there is an error reading the input or writing to the device. In the error
// case the function returns true with the error.
func (br *Bridge) ConnectUART(reg bus.Registry, name string, input Passthrough) (bool, error) {
	var dev bus.CharDevice

	p, ok := reg.Lookup(name)
	if ok {
		dev, ok = bus.AsCharDevice(p)
	}
	if !ok {
		logger.Log(logger.Allow, "bridge", curated.Errorf(NotFound, name))
		fmt.Fprintf(br.output, "Peripheral %s not found or not a UART.\n", name)
		return false, nil
	}

	r, restore, err := input.Passthrough()
	if err != nil {
		return false, curated.Errorf(IoError, err)
	}
	defer restore()

	fmt.Fprintf(br.output, "Redirecting the input to %s, press <ESC> to quit...\n", name)
	logger.Logf(logger.Allow, "bridge", "connected to %s", name)

	// characters arriving after the user has pressed ESC are dropped. the
	// callback can still be running for a short time after Unsubscribe()
	open := true

	id := dev.Subscribe(func(c byte) {
		br.output.writeOpen(&open, []byte{c})
	})

	defer func() {
		dev.Unsubscribe(id)
		fmt.Fprintf(br.output, "Disconnected from %s\n", name)
		logger.Logf(logger.Allow, "bridge", "disconnected from %s", name)
	}()
	defer br.output.shut(&open)

	b := make([]byte, 1)
	for {
		n, err := r.Read(b)

		if n > 0 {
			if b[0] == escape {
				return true, nil
			}
			if err := dev.WriteChar(b[0]); err != nil {
				return true, err
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return true, nil
			}
			return true, curated.Errorf(IoError, err)
		}
	}
}

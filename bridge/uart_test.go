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
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/emuconsole/bridge"
	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/hardware/peripherals/uart"
	"github.com/jetsetilly/emuconsole/test"
)

const (
	connected    = "Redirecting the input to uart0, press <ESC> to quit...\n"
	disconnected = "Disconnected from uart0\n"
)

func input(s string) bridge.Passthrough {
	return bridge.ReaderPassthrough{Reader: strings.NewReader(s)}
}

func TestUARTEscapeOnly(t *testing.T) {
	dev := newDevice(false)
	w := &test.Writer{}
	br := bridge.NewBridge(newMemory(0, nil), w, nil)

	ok, err := br.ConnectUART(registry{"uart0": dev}, "uart0", input("\x1b"))
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)

	// ESC is never sent to the device
	test.ExpectEquality(t, dev.writtenString(), "")
	test.ExpectEquality(t, dev.numSubscribers(), 0)
	test.ExpectEquality(t, w.String(), connected+disconnected)
}

func TestUARTForwarding(t *testing.T) {
	dev := newDevice(false)
	br := bridge.NewBridge(newMemory(0, nil), &test.Writer{}, nil)

	// input after the ESC is not forwarded
	ok, err := br.ConnectUART(registry{"uart0": dev}, "uart0", input("abc\x1bdef"))
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dev.writtenString(), "abc")
	test.ExpectEquality(t, dev.numSubscribers(), 0)
}

func TestUARTReceiving(t *testing.T) {
	dev := newDevice(true)
	w := &test.Writer{}
	br := bridge.NewBridge(newMemory(0, nil), w, nil)

	ok, err := br.ConnectUART(registry{"uart0": dev}, "uart0", input("hi\x1b"))
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), connected+"hi"+disconnected)

	// characters from the device after disconnection are not output
	dev.send('x')
	test.ExpectEquality(t, w.String(), connected+"hi"+disconnected)
}

func TestUARTNotFound(t *testing.T) {
	w := &test.Writer{}
	br := bridge.NewBridge(newMemory(0, nil), w, nil)
	reg := registry{"ram": notUART{}}

	ok, err := br.ConnectUART(reg, "uart9", input("\x1b"))
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "Peripheral uart9 not found or not a UART.\n")

	w.Clear()
	ok, err = br.ConnectUART(reg, "ram", input("\x1b"))
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "Peripheral ram not found or not a UART.\n")
}

func TestUARTEndOfInput(t *testing.T) {
	dev := newDevice(false)
	w := &test.Writer{}
	br := bridge.NewBridge(newMemory(0, nil), w, nil)

	ok, err := br.ConnectUART(registry{"uart0": dev}, "uart0", input("ab"))
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dev.writtenString(), "ab")
	test.ExpectEquality(t, dev.numSubscribers(), 0)
	test.ExpectEquality(t, w.String(), connected+disconnected)
}

type failingReader struct{}

func (_ failingReader) Read(_ []byte) (int, error) {
	return 0, errors.New("input failure")
}

func TestUARTErrors(t *testing.T) {
	dev := newDevice(false)
	br := bridge.NewBridge(newMemory(0, nil), &test.Writer{}, nil)

	// read error
	ok, err := br.ConnectUART(registry{"uart0": dev}, "uart0", bridge.ReaderPassthrough{Reader: failingReader{}})
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, curated.Is(err, bridge.IoError))
	test.ExpectEquality(t, dev.numSubscribers(), 0)

	// write error. subscription is still removed
	dev.failure = errors.New("device failure")
	ok, err = br.ConnectUART(registry{"uart0": dev}, "uart0", input("a\x1b"))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, err, dev.failure)
	test.ExpectEquality(t, dev.numSubscribers(), 0)
}

type passthrough struct {
	r        io.Reader
	restored bool
}

func (p *passthrough) Passthrough() (io.Reader, func(), error) {
	return p.r, func() { p.restored = true }, nil
}

func TestUARTRestore(t *testing.T) {
	dev := newDevice(false)
	br := bridge.NewBridge(newMemory(0, nil), &test.Writer{}, nil)

	p := &passthrough{r: strings.NewReader("\x1b")}
	_, err := br.ConnectUART(registry{"uart0": dev}, "uart0", p)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, p.restored)

	// passthrough is not started if the peripheral cannot be found
	p = &passthrough{r: strings.NewReader("\x1b")}
	_, err = br.ConnectUART(registry{}, "uart0", p)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, p.restored)
}

func TestUARTConcurrentOutput(t *testing.T) {
	u := uart.NewUART("uart0", false)
	defer u.Close()

	w := &test.Writer{}
	br := bridge.NewBridge(newMemory(0, nil), w, nil)
	pr, pw := io.Pipe()

	type result struct {
		ok  bool
		err error
	}
	done := make(chan result)
	go func() {
		ok, err := br.ConnectUART(registry{"uart0": u}, "uart0", bridge.ReaderPassthrough{Reader: pr})
		done <- result{ok: ok, err: err}
	}()

	// wait for the connection to be established
	deadline := time.Now().Add(time.Second)
	for u.Subscribers() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("timeout waiting for connection")
		}
		time.Sleep(time.Millisecond)
	}

	// the machine transmits while the user types. the writes to the output
	// happen on the UART's goroutine
	for _, c := range []byte("guest") {
		u.Transmit(c)
	}
	pw.Write([]byte("user"))

	deadline = time.Now().Add(time.Second)
	for !strings.Contains(w.String(), "guest") {
		if time.Now().After(deadline) {
			t.Fatalf("timeout waiting for output")
		}
		time.Sleep(time.Millisecond)
	}

	pw.Write([]byte{27})

	select {
	case r := <-done:
		test.ExpectSuccess(t, r.ok)
		test.ExpectSuccess(t, r.err)
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for disconnection")
	}

	test.ExpectEquality(t, u.Subscribers(), 0)
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), disconnected))

	// user input arrived in the receive FIFO of the UART
	d := make([]byte, 1)
	for _, c := range []byte("user") {
		test.DemandSuccess(t, u.ReadRegion(uart.RegRX, d))
		test.ExpectEquality(t, d[0], c)
	}
}

// slowEscape returns ESC after a delay
type slowEscape struct {
	delay time.Duration
}

func (s slowEscape) Passthrough() (io.Reader, func(), error) {
	return s, func() {}, nil
}

func (s slowEscape) Read(b []byte) (int, error) {
	time.Sleep(s.delay)
	b[0] = 0x1b
	return 1, nil
}

func TestUARTNothingAfterDisconnect(t *testing.T) {
	dev := newDevice(false)
	w := &test.Writer{}
	br := bridge.NewBridge(newMemory(0, nil), w, nil)

	// the device delivers characters continuously from another goroutine
	stop := make(chan bool)
	finished := make(chan bool)
	go func() {
		defer close(finished)
		for {
			select {
			case <-stop:
				return
			default:
				dev.send('x')
				time.Sleep(time.Microsecond)
			}
		}
	}()

	ok, err := br.ConnectUART(registry{"uart0": dev}, "uart0", slowEscape{delay: 20 * time.Millisecond})
	close(stop)
	<-finished

	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), connected))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), disconnected))

	// a callback that was dispatched before the disconnection but runs after
	// it produces no output
	out := w.String()
	dev.retained('y')
	test.ExpectEquality(t, w.String(), out)
}

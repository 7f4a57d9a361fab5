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
	"testing"
	"time"

	"github.com/jetsetilly/emuconsole/bridge"
	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/environment"
	"github.com/jetsetilly/emuconsole/logger"
	"github.com/jetsetilly/emuconsole/test"
)

func TestEcho(t *testing.T) {
	w := &test.Writer{}
	br := bridge.NewBridge(newMemory(0, nil), w, nil)

	br.Echo([]string{})
	test.ExpectEquality(t, w.String(), "\n")

	w.Clear()
	br.Echo([]string{"hello world"})
	test.ExpectEquality(t, w.String(), "hello world\n")

	w.Clear()
	br.Echo([]string{"-n", "hello"})
	test.ExpectEquality(t, w.String(), "hello")

	w.Clear()
	br.Echo([]string{"hello", "world"})
	test.ExpectEquality(t, w.String(), bridge.EchoUsage+"\n")

	w.Clear()
	br.Echo([]string{"-n", "a", "b"})
	test.ExpectEquality(t, w.String(), bridge.EchoUsage+"\n")

	// a single "-n" is a string like any other
	w.Clear()
	br.Echo([]string{"-n"})
	test.ExpectEquality(t, w.String(), "-n\n")
}

func TestCounter(t *testing.T) {
	w := &test.Writer{}
	br := bridge.NewBridge(newMemory(0, nil), w, nil)

	var c bridge.Counter
	br.NextValue(&c, 0)
	br.NextValue(&c, 5)
	br.NextValue(&c, 0)
	test.ExpectEquality(t, w.String(), "0\n6\n2\n")

	// counters are independent of one another
	var d bridge.Counter
	test.ExpectEquality(t, d.Next(0), 0)
	test.ExpectEquality(t, c.Next(0), 3)

	c.Reset()
	test.ExpectEquality(t, c.Next(-1), -1)
}

func TestGetEnviron(t *testing.T) {
	w := &test.Writer{}
	env := environment.Map{"HOME": "/home/emu", "EMPTY": ""}
	br := bridge.NewBridge(newMemory(0, nil), w, env)

	test.ExpectSuccess(t, br.GetEnviron("HOME"))
	test.ExpectEquality(t, w.String(), "/home/emu\n")

	w.Clear()
	test.ExpectFailure(t, br.GetEnviron("MISSING"))
	test.ExpectEquality(t, w.String(), "")

	w.Clear()
	test.ExpectSuccess(t, br.GetEnviron("EMPTY"))
	test.ExpectEquality(t, w.String(), "\n")
}

func TestSleep(t *testing.T) {
	br := bridge.NewBridge(newMemory(0, nil), &test.Writer{}, nil)

	start := time.Now()
	ok, err := br.Sleep(10*time.Millisecond, nil)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, time.Since(start) >= 10*time.Millisecond)

	done := make(chan struct{})
	close(done)
	ok, err = br.Sleep(time.Hour, done)
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, err)

	_, err = br.Sleep(-time.Second, nil)
	test.ExpectSuccess(t, curated.Is(err, bridge.InvalidArgument))
}

func TestConsoleLog(t *testing.T) {
	br := bridge.NewBridge(newMemory(0, nil), &test.Writer{}, nil)

	br.ConsoleLog("hello", "world")
	w := &test.Writer{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "console: hello world\n")
}

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
	"io"
	"strings"
	"time"

	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/logger"
)

// EchoUsage is printed when Echo() is called with an unsupported combination
// of arguments.
const EchoUsage = "usage: echo [-n] [string]"

// Echo prints a string to the output. With no arguments a blank line is
// printed. With one argument the argument is printed on a line of its own. If
// there are two arguments and the first is "-n" then the second argument is
// printed without a trailing newline. Any other combination prints the usage
// message.
func (br *Bridge) Echo(args []string) {
	switch len(args) {
	case 0:
		io.WriteString(br.output, "\n")
	case 1:
		io.WriteString(br.output, args[0]+"\n")
	case 2:
		if args[0] == "-n" {
			io.WriteString(br.output, args[1])
			return
		}
		io.WriteString(br.output, EchoUsage+"\n")
	default:
		io.WriteString(br.output, EchoUsage+"\n")
	}
}

// Sleep for the specified duration. The done channel can be used to end the
// sleep early, in which case the function returns false. A nil channel is
// never ready.
func (br *Bridge) Sleep(d time.Duration, done <-chan struct{}) (bool, error) {
	if d < 0 {
		return false, curated.Errorf(InvalidArgument, fmt.Sprintf("negative duration (%v)", d))
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true, nil
	case <-done:
		return false, nil
	}
}

// GetEnviron prints the value of the named environment variable. Nothing is
// printed if the variable does not exist. The return value indicates whether
// the variable exists.
func (br *Bridge) GetEnviron(name string) bool {
	v, ok := br.env.Lookup(name)
	if ok {
		io.WriteString(br.output, v+"\n")
	}
	return ok
}

// ConsoleLog adds the text to the log of the host process. Multiple
// arguments are joined by a single space.
func (br *Bridge) ConsoleLog(text ...string) {
	logger.Log(logger.Allow, "console", strings.Join(text, " "))
}

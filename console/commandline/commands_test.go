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

package commandline_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/emuconsole/test"
)

func TestHelp(t *testing.T) {
	cmds := parseTemplate(t)

	helps := map[string]string{
		"DUMP": "Dump memory.",
		"HELP": "Show help.",
	}
	test.DemandSuccess(t, cmds.AddHelp("help", helps))

	// help cannot be added twice
	test.ExpectFailure(t, cmds.AddHelp("HELP", helps))

	test.ExpectSuccess(t, cmds.Validate("help"))
	test.ExpectSuccess(t, cmds.Validate("help dump"))
	test.ExpectSuccess(t, cmds.Validate("help help"))
	expectValidationError(t, cmds, "help foo", "no help for FOO")

	test.ExpectEquality(t, cmds.Help("dump"), "Dump memory.\n\n  Usage: DUMP <start> <count> (<width>)")
	test.ExpectEquality(t, cmds.Help("echo"), "no help for ECHO")
	test.ExpectEquality(t, cmds.Usage("script"), "SCRIPT [RECORD <new file>|END|<file>]")
	test.ExpectEquality(t, cmds.Usage("nothing"), "")

	// the help command is in sorted position
	test.ExpectEquality(t, strings.Join(cmds.Keywords(), " "), "DUMP ECHO EXTERNAL HELP LOG SCRIPT SLEEP TEST")

	// every command appears in the overview
	overview := cmds.HelpOverview()
	for _, k := range cmds.Keywords() {
		test.ExpectSuccess(t, strings.Contains(overview, k))
	}
}

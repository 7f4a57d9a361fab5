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
	"testing"

	"github.com/jetsetilly/emuconsole/console/commandline"
	"github.com/jetsetilly/emuconsole/test"
)

var template = []string{
	"DUMP %<start>N %<count>N (%<width>N)",
	"ECHO {%<text>S}",
	"SCRIPT [RECORD %<new file>F|END|%<file>F]",
	"EXTERNAL (LIST|CONNECT %<name>S)",
	"SLEEP %<seconds>P",
	"LOG (LAST|RECENT|CLEAR)",
	"TEST [a b|c (d|e)] {f g}",
}

func parseTemplate(t *testing.T) *commandline.Commands {
	t.Helper()
	cmds, err := commandline.ParseCommandTemplate(template)
	test.DemandSuccess(t, err)
	return cmds
}

func expectValidationError(t *testing.T, cmds *commandline.Commands, input string, msg string) {
	t.Helper()
	err := cmds.Validate(input)
	if test.ExpectFailure(t, err) {
		test.ExpectEquality(t, err.Error(), msg)
	}
}

func TestValidation_required(t *testing.T) {
	cmds := parseTemplate(t)

	test.ExpectSuccess(t, cmds.Validate("dump 0x10 4"))
	test.ExpectSuccess(t, cmds.Validate("DUMP $10 4 8"))
	test.ExpectSuccess(t, cmds.Validate("dump 0b1010 010"))
	expectValidationError(t, cmds, "dump 0x10", "count required")
	expectValidationError(t, cmds, "dump", "start required")
	expectValidationError(t, cmds, "dump foo 4", "unrecognised argument (foo) for DUMP")
	expectValidationError(t, cmds, "dump 0x10 4 8 9", "unrecognised argument (9) for DUMP")
}

func TestValidation_repeat(t *testing.T) {
	cmds := parseTemplate(t)

	test.ExpectSuccess(t, cmds.Validate("echo"))
	test.ExpectSuccess(t, cmds.Validate("echo hello"))
	test.ExpectSuccess(t, cmds.Validate("echo -n hello"))
	test.ExpectSuccess(t, cmds.Validate(`echo "hello world" and more`))

	test.ExpectSuccess(t, cmds.Validate("test c f g f g"))
	expectValidationError(t, cmds, "test c f", "G required")
	expectValidationError(t, cmds, "test a b f g f", "G required")
}

func TestValidation_branches(t *testing.T) {
	cmds := parseTemplate(t)

	test.ExpectSuccess(t, cmds.Validate("script end"))
	test.ExpectSuccess(t, cmds.Validate("script record out.txt"))
	test.ExpectSuccess(t, cmds.Validate("script in.txt"))
	expectValidationError(t, cmds, "script", "RECORD or END or file required")

	// the RECORD keyword is not accepted as a filename
	expectValidationError(t, cmds, "script record", "new file required")

	test.ExpectSuccess(t, cmds.Validate("external"))
	test.ExpectSuccess(t, cmds.Validate("external list"))
	test.ExpectSuccess(t, cmds.Validate("external CONNECT serial"))
	expectValidationError(t, cmds, "external connect", "name required")
	expectValidationError(t, cmds, "external list x", "unrecognised argument (x) for EXTERNAL")

	test.ExpectSuccess(t, cmds.Validate("log recent"))
	expectValidationError(t, cmds, "log foo", "unrecognised argument (foo) for LOG")

	test.ExpectSuccess(t, cmds.Validate("test a b"))
	test.ExpectSuccess(t, cmds.Validate("test c"))
	test.ExpectSuccess(t, cmds.Validate("test c d"))
	test.ExpectSuccess(t, cmds.Validate("test c e f g"))
	expectValidationError(t, cmds, "test a", "B required")
	expectValidationError(t, cmds, "test", "A or C required")
}

func TestValidation_placeholders(t *testing.T) {
	cmds := parseTemplate(t)

	test.ExpectSuccess(t, cmds.Validate("sleep 1"))
	test.ExpectSuccess(t, cmds.Validate("sleep 0.25"))
	expectValidationError(t, cmds, "sleep x", "unrecognised argument (x) for SLEEP")
}

func TestValidation_commands(t *testing.T) {
	cmds := parseTemplate(t)

	test.ExpectSuccess(t, cmds.Validate(""))
	test.ExpectSuccess(t, cmds.Validate("   "))
	expectValidationError(t, cmds, "foo", "unrecognised command (FOO)")
}

func TestValidation_tokensReset(t *testing.T) {
	cmds := parseTemplate(t)

	toks := commandline.TokeniseInput("dump 1 2")
	test.ExpectSuccess(t, cmds.ValidateTokens(toks))

	// the tokens can be used from the beginning after validation
	s, _ := toks.Get()
	test.ExpectEquality(t, s, "dump")
}

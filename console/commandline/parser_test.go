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

	"github.com/jetsetilly/emuconsole/console/commandline"
	"github.com/jetsetilly/emuconsole/test"
)

// expectEquality compares the parsed commands with the original template.
// the template is converted to uppercase apart from placeholder labels.
func expectEquality(t *testing.T, expected string, cmds *commandline.Commands) bool {
	t.Helper()
	return test.ExpectEquality(t, cmds.String(), expected)
}

// expectEquivalency runs the result of the parsed Commands back through the
// parser. if the results of the second pass are the same as the first then
// we've successfully parsed the original template.
func expectEquivalency(t *testing.T, cmds *commandline.Commands) bool {
	t.Helper()

	template := strings.Split(cmds.String(), "\n")
	again, err := commandline.ParseCommandTemplate(template)
	if !test.ExpectSuccess(t, err) {
		return false
	}
	return test.ExpectEquality(t, again.String(), cmds.String())
}

func TestParser_groups(t *testing.T) {
	for _, template := range []string{
		"TEST [1 [2] [3] [4] [5]]",
		"TEST (EGG|FOG|(NUG NOG)|BIG) (TUG)",
		"TEST (FOO|BAR (A|B C|D) BAZ)",
		"TEST [(FOO)|BAR]",
		"TEST (1 [2] [3] [4] [5])",
		"TEST {%<text>S}",
		"TEST {[A|B] %N}",
		"SCRIPT [RECORD %<new file>F|END|%<file>F]",
		"DUMP %<start>N %<count>N (%<width>N)",
		"TEST",
	} {
		cmds, err := commandline.ParseCommandTemplate([]string{template})
		if test.ExpectSuccess(t, err) {
			expectEquality(t, template, cmds)
			expectEquivalency(t, cmds)
		}
	}
}

func TestParser_caseNormalisation(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{"test (foo|%<Mixed Label>S)"})
	if test.ExpectSuccess(t, err) {
		expectEquality(t, "TEST (FOO|%<Mixed Label>S)", cmds)
	}
}

func TestParser_sorted(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{"ZEBRA", "APPLE %N", "MONKEY"})
	if test.ExpectSuccess(t, err) {
		expectEquality(t, "APPLE %N\nMONKEY\nZEBRA", cmds)
		test.ExpectEquality(t, strings.Join(cmds.Keywords(), ","), "APPLE,MONKEY,ZEBRA")
	}
}

func TestParser_badGroupings(t *testing.T) {
	for _, template := range []string{
		// optional groups must be closed
		"TEST (arg",

		// groups must be closed with the correct delimiter
		"TEST (arg]",

		// close without open
		"TEST arg)",

		// empty groups and branches
		"TEST ()",
		"TEST (a|)",
		"TEST (|a)",

		// alternatives outside of a group
		"TEST a|b",
	} {
		_, err := commandline.ParseCommandTemplate([]string{template})
		test.ExpectFailure(t, err)
	}
}

func TestParser_badPlaceholders(t *testing.T) {
	for _, template := range []string{
		"TEST %X",
		"TEST %",
		"TEST %<label",
		"TEST %<>N",
		"TEST %Nfoo",
	} {
		_, err := commandline.ParseCommandTemplate([]string{template})
		test.ExpectFailure(t, err)
	}
}

func TestParser_badDefinitions(t *testing.T) {
	var err error

	// empty definition
	_, err = commandline.ParseCommandTemplate([]string{""})
	test.ExpectFailure(t, err)

	// must begin with a keyword
	_, err = commandline.ParseCommandTemplate([]string{"%N TEST"})
	test.ExpectFailure(t, err)
	_, err = commandline.ParseCommandTemplate([]string{"(TEST)"})
	test.ExpectFailure(t, err)

	// duplicate commands
	_, err = commandline.ParseCommandTemplate([]string{"TEST", "test %N"})
	test.ExpectFailure(t, err)
}

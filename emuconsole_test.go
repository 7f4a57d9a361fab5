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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/emuconsole/test"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestScriptMode(t *testing.T) {
	dir := t.TempDir()
	bin := writeFile(t, dir, "data.bin", "hi")
	scr := writeFile(t, dir, "test.script", "DUMP 0x100 2 2\nGETENV EMUCONSOLE_TEST\nNEXT\nNEXT\n")

	w := &test.Writer{}
	status := launch([]string{
		"SCRIPT",
		"-prefsfile", filepath.Join(dir, "preferences"),
		"-load", fmt.Sprintf("%s@0x100", bin),
		"-env", "EMUCONSOLE_TEST=value",
		scr,
	}, nil, w)

	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, w.String(), "0x00000100 | 68 69 | hi\nvalue\n0\n1\n")
}

func TestScriptModeErrors(t *testing.T) {
	dir := t.TempDir()
	prefsFile := filepath.Join(dir, "preferences")

	// missing script
	w := &test.Writer{}
	status := launch([]string{"SCRIPT", "-prefsfile", prefsFile}, nil, w)
	test.ExpectEquality(t, status, 20)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in SCRIPT mode"))

	// script file does not exist
	w.Clear()
	status = launch([]string{"SCRIPT", "-prefsfile", prefsFile, filepath.Join(dir, "missing")}, nil, w)
	test.ExpectEquality(t, status, 20)

	// malformed load flag
	scr := writeFile(t, dir, "test.script", "NEXT\n")
	w.Clear()
	status = launch([]string{"SCRIPT", "-prefsfile", prefsFile, "-load", "data.bin", scr}, nil, w)
	test.ExpectEquality(t, status, 20)

	// unknown flag
	w.Clear()
	status = launch([]string{"-nosuchflag"}, nil, w)
	test.ExpectEquality(t, status, 10)
}

func TestScriptModeUARTs(t *testing.T) {
	dir := t.TempDir()
	scr := writeFile(t, dir, "test.script", "PERIPHERALS\n")

	w := &test.Writer{}
	status := launch([]string{
		"SCRIPT",
		"-prefsfile", filepath.Join(dir, "preferences"),
		"-uart", "a,b",
		scr,
	}, nil, w)

	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "a "))
	test.ExpectSuccess(t, strings.Contains(w.String(), "b "))
	test.ExpectFailure(t, strings.Contains(w.String(), "uart0"))
}

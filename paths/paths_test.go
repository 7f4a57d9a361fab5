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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/emuconsole/paths"
	"github.com/jetsetilly/emuconsole/test"
)

func TestResourcePath(t *testing.T) {
	// run the test from a temporary directory containing the local resource
	// directory
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".emuconsole", 0o700))

	pth, err := paths.ResourcePath("scripts", "init")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".emuconsole", "scripts", "init"))

	// sub-directory has been created
	info, err := os.Stat(filepath.Join(".emuconsole", "scripts"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".emuconsole", "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	m := regexp.MustCompile(`^memviz_\d{8}_\d{6}\.dot$`)
	test.ExpectSuccess(t, m.MatchString(paths.UniqueFilename("memviz", ".dot")))

	m = regexp.MustCompile(`^script_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, m.MatchString(paths.UniqueFilename("script", "")))
}

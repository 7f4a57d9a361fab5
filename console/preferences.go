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

package console

import (
	"fmt"

	"github.com/jetsetilly/emuconsole/paths"
	"github.com/jetsetilly/emuconsole/prefs"
)

// DefaultDumpWidth is the number of bytes per row printed by the DUMP command
// if no width is given.
const DefaultDumpWidth = 16

// Preferences for the console.
type Preferences struct {
	dsk *prefs.Disk

	// default width of the DUMP command
	DumpWidth prefs.Int

	// use the color terminal if the terminal is a real terminal
	ColorTerm prefs.Bool

	// print new log entries to the terminal as they are created
	EchoLog prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty filename means the preferences file in the
// resource directory.
func NewPreferences(filename string) (*Preferences, error) {
	p := &Preferences{}

	if filename == "" {
		var err error
		filename, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	// defaults
	p.SetDefaults()

	p.DumpWidth.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("dump width must be greater than zero")
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(filename)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("console.dumpwidth", &p.DumpWidth); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("console.colorterm", &p.ColorTerm); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("console.echolog", &p.EchoLog); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.DumpWidth.Set(DefaultDumpWidth)
	p.ColorTerm.Set(true)
	p.EchoLog.Set(false)
}

// Set the named preference. The value is not saved until Save() is called.
func (p *Preferences) Set(key string, value string) error {
	return p.dsk.Set(key, value)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

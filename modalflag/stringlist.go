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

package modalflag

import "strings"

// StringList is a flag value that can be specified more than once. Each value
// is also split on commas so "-uart a,b" is the same as "-uart a -uart b".
type StringList struct {
	values []string

	// the default values are replaced by the first Set()
	isDefault bool
}

func (sl *StringList) String() string {
	if sl == nil {
		return ""
	}
	return strings.Join(sl.values, ",")
}

// Set implements the flag.Value interface.
func (sl *StringList) Set(v string) error {
	if sl.isDefault {
		sl.values = sl.values[:0]
		sl.isDefault = false
	}
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			sl.values = append(sl.values, s)
		}
	}
	return nil
}

// Values returns a copy of the list.
func (sl *StringList) Values() []string {
	v := make([]string, len(sl.values))
	copy(v, sl.values)
	return v
}

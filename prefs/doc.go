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

// Package prefs stores console preferences. Preferences are typed values
// (Bool, String, Int, Float and Generic) that can be registered with a Disk
// instance. A Disk saves and loads its values from a plain text file, one
// preference per line in the form:
//
//	key :: value
//
// Values from more than one Disk instance can share the same file. Saving
// one Disk will not clobber the values saved by another.
//
// Preferences can also be specified on the command line with the -prefs
// flag. These values are pushed onto the command line stack and override
// the values loaded from disk.
package prefs

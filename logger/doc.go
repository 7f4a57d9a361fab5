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

// Package logger is the central log repository for emuconsole. Entries are
// tagged and repeated entries are folded into a single entry with a repeat
// count. A Permission must be supplied with every log request.
//
// The package level functions operate on the central logger. Individual
// Logger instances can be created with NewLogger() where a separate log is
// useful, such as in test code.
package logger

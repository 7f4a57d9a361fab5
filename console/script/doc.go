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

// Package script allows the console to record and replay scripts. Scripts are
// plain text files containing one command per line. Lines beginning with the
// # symbol are comments. Commands can also be separated by semi-colons.
//
// The Queue type holds lines waiting to be executed. Lines from a script are
// marked as being part of a batch. The Scribe type records commands entered
// by the user to a new script file. Commands from a script that is played
// back while recording are not recorded. Only the command that started the
// playback is recorded.
package script

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

// Package hardware is the base package for the emulated machine. The machine
// sub-package builds the address map from the bus, memory and peripherals
// sub-packages. External devices on the host computer are managed by the
// externals sub-package.
//
// There is no CPU. Memory and peripheral registers are accessed only by the
// console's commands.
package hardware

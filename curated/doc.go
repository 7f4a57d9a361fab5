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

// Package curated is a helper package for the plain Go language error type.
// Curated errors remember the formatting pattern they were created with. This
// allows a caller to ask whether an error is of a particular kind without
// resorting to string comparison of the final message.
//
// Patterns are usually exported as string constants by the package that
// raises the error. For example, the hardware/bus package exports the
// OutOfRange pattern:
//
//	const OutOfRange = "bus: address out of range (%#08x)"
//
// and raises it like this:
//
//	return curated.Errorf(bus.OutOfRange, address)
//
// A caller can then test for that pattern:
//
//	if curated.Is(err, bus.OutOfRange) {
//		fmt.Println("address not mapped")
//	}
//
// The Has() function is similar to Is() but checks the entire chain of
// curated errors. An error is part of the chain if it is used as a value in a
// curated error.
//
//	a := curated.Errorf(bus.OutOfRange, 0x1000)
//	b := curated.Errorf("dump: %v", a)
//
//	curated.Is(b, bus.OutOfRange)  // false
//	curated.Has(b, bus.OutOfRange) // true
//
// When the Error() function is called, adjacent duplicate parts of the
// message are removed. Parts are delimited by the sequence ": ". So,
// wrapping "dump: failed" in "dump: %v" results in the message "dump: failed"
// rather than "dump: dump: failed".
//
// Plain Go errors used as values are reachable with the standard library's
// errors.Is() and errors.As() functions because curated errors implement the
// Unwrap() method.
package curated

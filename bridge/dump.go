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

package bridge

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/hardware/bus"
	"github.com/jetsetilly/emuconsole/logger"
)

// DefaultDumpWidth is the number of bytes in each row of a dump if no width
// is specified.
const DefaultDumpWidth = 16

// DumpRow is a single row of a memory dump.
type DumpRow struct {
	Address uint64
	Data    []byte
}

// printable returns the byte as a character if it is in the printable ASCII
// range. Otherwise a placeholder is returned.
func printable(b byte) byte {
	if b >= 0x20 && b < 0x7f {
		return b
	}
	return '.'
}

// Format the row for output. The width argument is the number of bytes in a
// full row. Rows with less data than this are padded so that the columns
// line up with full rows.
func (r DumpRow) Format(width int) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%08X | ", r.Address))

	for i, b := range r.Data {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02X", b))
	}
	if pad := width - len(r.Data); pad > 0 {
		s.WriteString(strings.Repeat("   ", pad))
	}

	s.WriteString(" | ")
	for _, b := range r.Data {
		s.WriteByte(printable(b))
	}

	return s.String()
}

// String implements the fmt.Stringer interface.
func (r DumpRow) String() string {
	return r.Format(len(r.Data))
}

// Dump count bytes of memory starting at the start address. Each row of
// output contains width bytes, apart from the final row which contains only
// the remaining bytes.
//
// Memory is read one row at a time. Memory outside of the requested range is
// never read. If a read fails then the error is returned unchanged and no
// output is produced for that row.
func (br *Bridge) Dump(start uint64, count int, width int) error {
	if count <= 0 {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("count must be greater than zero (%d)", count))
	}
	if width <= 0 {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("width must be greater than zero (%d)", width))
	}
	if uint64(width) > math.MaxUint32 {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("width too large (%d)", width))
	}

	for offset := 0; offset < count; offset += width {
		n := min(width, count-offset)
		address := start + uint64(offset)

		data, err := br.bus.ReadBytes(address, uint32(n))
		if err != nil {
			logger.Logf(logger.Allow, "bridge", "dump: %v", err)
			return err
		}
		if len(data) != n {
			err := curated.Errorf(bus.DeviceError, address, fmt.Sprintf("read %d bytes of %d", len(data), n))
			logger.Logf(logger.Allow, "bridge", "dump: %v", err)
			return err
		}

		row := DumpRow{Address: address, Data: data}
		if _, err := io.WriteString(br.output, row.Format(width)+"\n"); err != nil {
			return curated.Errorf(IoError, err)
		}
	}

	return nil
}

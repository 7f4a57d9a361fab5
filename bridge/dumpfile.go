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
	"os"

	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/hardware/bus"
	"github.com/jetsetilly/emuconsole/logger"
)

// DumpFile writes count bytes of memory starting at the start address to the
// named file. Any existing file is overwritten. The file contains only the
// bytes read from memory.
//
// Memory is read in a single operation before the file is created. If the
// read fails then the file is not touched and the error is returned
// unchanged.
func (br *Bridge) DumpFile(start uint64, count int, filename string) (rerr error) {
	if count <= 0 {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("count must be greater than zero (%d)", count))
	}
	if uint64(count) > math.MaxUint32 {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("count too large (%d)", count))
	}

	data, err := br.bus.ReadBytes(start, uint32(count))
	if err != nil {
		logger.Logf(logger.Allow, "bridge", "dumpfile: %v", err)
		return err
	}
	if len(data) != count {
		err := curated.Errorf(bus.DeviceError, start, fmt.Sprintf("read %d bytes of %d", len(data), count))
		logger.Logf(logger.Allow, "bridge", "dumpfile: %v", err)
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(IoError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(IoError, err)
		}
	}()

	n, err := f.Write(data)
	if err != nil {
		return curated.Errorf(IoError, err)
	}
	if n != len(data) {
		return curated.Errorf(IoError, io.ErrShortWrite)
	}

	logger.Logf(logger.Allow, "bridge", "dumped %d bytes from %#08x to %s", n, start, filename)

	return nil
}

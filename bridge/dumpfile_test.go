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

package bridge_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/emuconsole/bridge"
	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/hardware/bus"
	"github.com/jetsetilly/emuconsole/test"
)

func TestDumpFile(t *testing.T) {
	mem := newMemory(0x4000, sequence(256))
	br := bridge.NewBridge(mem, &test.Writer{}, nil)

	filename := filepath.Join(t.TempDir(), "dump.bin")
	test.DemandSuccess(t, br.DumpFile(0x4010, 32, filename))

	// a single read of the entire range
	test.DemandEquality(t, len(mem.reads), 1)
	test.ExpectEquality(t, mem.reads[0], read{address: 0x4010, count: 32})

	// file contains exactly the bytes read from the bus
	expected, err := mem.ReadBytes(0x4010, 32)
	test.DemandSuccess(t, err)
	d, err := os.ReadFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(d, expected))
}

func TestDumpFileOverwrite(t *testing.T) {
	mem := newMemory(0, []byte{1, 2, 3, 4})
	br := bridge.NewBridge(mem, &test.Writer{}, nil)

	filename := filepath.Join(t.TempDir(), "dump.bin")
	test.DemandSuccess(t, os.WriteFile(filename, bytes.Repeat([]byte{0xff}, 100), 0o644))

	test.DemandSuccess(t, br.DumpFile(0, 4, filename))
	d, err := os.ReadFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(d, []byte{1, 2, 3, 4}))
}

func TestDumpFileReadError(t *testing.T) {
	mem := newMemory(0, sequence(16))
	br := bridge.NewBridge(mem, &test.Writer{}, nil)
	dir := t.TempDir()

	// file is not created if the bus read fails
	filename := filepath.Join(dir, "new.bin")
	err := br.DumpFile(8, 16, filename)
	test.ExpectSuccess(t, curated.Is(err, bus.OutOfRange))
	_, err = os.Stat(filename)
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))

	// an existing file is not touched
	filename = filepath.Join(dir, "existing.bin")
	test.DemandSuccess(t, os.WriteFile(filename, []byte("unchanged"), 0o644))
	err = br.DumpFile(8, 16, filename)
	test.ExpectSuccess(t, curated.Is(err, bus.OutOfRange))
	d, err := os.ReadFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "unchanged")
}

func TestDumpFileShortRead(t *testing.T) {
	mem := newMemory(0, sequence(16))
	mem.shortFrom = 4
	br := bridge.NewBridge(mem, &test.Writer{}, nil)

	// a file shorter than the count is never written
	filename := filepath.Join(t.TempDir(), "short.bin")
	err := br.DumpFile(4, 8, filename)
	test.ExpectSuccess(t, curated.Is(err, bus.DeviceError))
	_, err = os.Stat(filename)
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))
}

func TestDumpFileCreateError(t *testing.T) {
	mem := newMemory(0, sequence(16))
	br := bridge.NewBridge(mem, &test.Writer{}, nil)

	filename := filepath.Join(t.TempDir(), "missing", "dump.bin")
	err := br.DumpFile(0, 16, filename)
	test.ExpectSuccess(t, curated.Is(err, bridge.IoError))
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))
}

func TestDumpFileInvalidArguments(t *testing.T) {
	mem := newMemory(0, sequence(16))
	br := bridge.NewBridge(mem, &test.Writer{}, nil)

	filename := filepath.Join(t.TempDir(), "dump.bin")
	test.ExpectSuccess(t, curated.Is(br.DumpFile(0, 0, filename), bridge.InvalidArgument))
	test.ExpectEquality(t, len(mem.reads), 0)

	_, err := os.Stat(filename)
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))
}

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
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/emuconsole/bridge"
	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/hardware/bus"
	hwmemory "github.com/jetsetilly/emuconsole/hardware/memory"
	"github.com/jetsetilly/emuconsole/test"
)

func sequence(n int) []byte {
	d := make([]byte, n)
	for i := range d {
		d[i] = byte(i)
	}
	return d
}

func TestDumpExample(t *testing.T) {
	mem := newMemory(0x1000, []byte{0x41, 0x00, 0x42, 0x7f})
	w := &test.Writer{}
	br := bridge.NewBridge(mem, w, nil)

	test.ExpectSuccess(t, br.Dump(0x1000, 4, 4))
	test.ExpectEquality(t, w.String(), "0x00001000 | 41 00 42 7F | A.B.\n")

	test.DemandEquality(t, len(mem.reads), 1)
	test.ExpectEquality(t, mem.reads[0], read{address: 0x1000, count: 4})
}

func TestDumpRows(t *testing.T) {
	for _, width := range []int{1, 3, 4, 16} {
		for k := 1; k <= 4; k++ {
			count := k * width
			mem := newMemory(0x2000, sequence(count))
			w := &test.Writer{}
			br := bridge.NewBridge(mem, w, nil)

			test.DemandSuccess(t, br.Dump(0x2000, count, width))

			lines := strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
			test.DemandEquality(t, len(lines), k)
			test.DemandEquality(t, len(mem.reads), k)

			for i := range lines {
				address := uint64(0x2000 + i*width)
				test.ExpectSuccess(t, strings.HasPrefix(lines[i], fmt.Sprintf("0x%08X | ", address)))
				test.ExpectEquality(t, mem.reads[i], read{address: address, count: uint32(width)})
			}
		}
	}
}

func TestDumpPartialRow(t *testing.T) {
	// the memory is exactly the size of the dump. any read past the end of
	// the requested range would fail
	mem := newMemory(0x1000, sequence(10))
	w := &test.Writer{}
	br := bridge.NewBridge(mem, w, nil)

	test.DemandSuccess(t, br.Dump(0x1000, 10, 4))
	test.ExpectEquality(t, w.String(),
		"0x00001000 | 00 01 02 03 | ....\n"+
			"0x00001004 | 04 05 06 07 | ....\n"+
			"0x00001008 | 08 09       | ..\n")

	test.DemandEquality(t, len(mem.reads), 3)
	test.ExpectEquality(t, mem.reads[2], read{address: 0x1008, count: 2})

	// ceil(count/width) rows with the final row holding count mod width bytes
	for _, c := range []struct{ count, width int }{{1, 16}, {17, 16}, {7, 3}, {100, 9}} {
		mem := newMemory(0, sequence(c.count))
		br := bridge.NewBridge(mem, &test.Writer{}, nil)
		test.DemandSuccess(t, br.Dump(0, c.count, c.width))

		rows := (c.count + c.width - 1) / c.width
		test.DemandEquality(t, len(mem.reads), rows)

		last := mem.reads[len(mem.reads)-1]
		test.ExpectEquality(t, last.count, uint32(c.count%c.width))
		test.ExpectEquality(t, last.address+uint64(last.count), uint64(c.count))
	}
}

func TestDumpPrintable(t *testing.T) {
	mem := newMemory(0, []byte{0x1f, 0x20, 0x41, 0x7e, 0x7f, 0x80, 0xff, 0x00})
	w := &test.Writer{}
	br := bridge.NewBridge(mem, w, nil)

	test.DemandSuccess(t, br.Dump(0, 8, bridge.DefaultDumpWidth))
	test.ExpectEquality(t, w.String(), "0x00000000 | 1F 20 41 7E 7F 80 FF 00"+strings.Repeat("   ", 8)+" | . A~....\n")
}

func TestDumpInvalidArguments(t *testing.T) {
	mem := newMemory(0, sequence(16))
	w := &test.Writer{}
	br := bridge.NewBridge(mem, w, nil)

	test.ExpectSuccess(t, curated.Is(br.Dump(0, 0, 16), bridge.InvalidArgument))
	test.ExpectSuccess(t, curated.Is(br.Dump(0, -1, 16), bridge.InvalidArgument))
	test.ExpectSuccess(t, curated.Is(br.Dump(0, 16, 0), bridge.InvalidArgument))
	test.ExpectSuccess(t, curated.Is(br.Dump(0, 16, -4), bridge.InvalidArgument))

	test.ExpectEquality(t, len(mem.reads), 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestDumpReadError(t *testing.T) {
	mem := newMemory(0, sequence(8))
	w := &test.Writer{}
	br := bridge.NewBridge(mem, w, nil)

	// the third row is outside of the memory. the first two rows are output
	// but nothing is output for the third row
	err := br.Dump(0, 12, 4)
	test.ExpectSuccess(t, curated.Is(err, bus.OutOfRange))
	test.ExpectEquality(t, w.String(),
		"0x00000000 | 00 01 02 03 | ....\n"+
			"0x00000004 | 04 05 06 07 | ....\n")
}

func TestDumpShortRead(t *testing.T) {
	mem := newMemory(0, sequence(16))
	mem.shortFrom = 8
	w := &test.Writer{}
	br := bridge.NewBridge(mem, w, nil)

	// a row with fewer bytes than requested is an error and is not output
	err := br.Dump(0, 12, 4)
	test.ExpectSuccess(t, curated.Is(err, bus.DeviceError))
	test.ExpectEquality(t, w.String(),
		"0x00000000 | 00 01 02 03 | ....\n"+
			"0x00000004 | 04 05 06 07 | ....\n")
}

func TestDumpSystemBus(t *testing.T) {
	sb := hwmemory.NewSystemBus()
	ram := hwmemory.NewRAM(0x100)
	test.DemandSuccess(t, sb.Map("ram", 0x8000, ram))
	test.DemandSuccess(t, sb.WriteBytes(0x8010, []byte("Hello")))

	w := &test.Writer{}
	br := bridge.NewBridge(sb, w, nil)

	test.DemandSuccess(t, br.Dump(0x8010, 5, 8))
	test.ExpectEquality(t, w.String(), "0x00008010 | 48 65 6C 6C 6F          | Hello\n")

	// unmapped memory
	err := br.Dump(0x9000, 4, 4)
	test.ExpectSuccess(t, curated.Is(err, bus.OutOfRange))
}

func TestDumpRow(t *testing.T) {
	r := bridge.DumpRow{Address: 0xdeadbeef, Data: []byte("ok!")}
	test.ExpectEquality(t, r.String(), "0xDEADBEEF | 6F 6B 21 | ok!")
	test.ExpectEquality(t, r.Format(4), "0xDEADBEEF | 6F 6B 21    | ok!")
}

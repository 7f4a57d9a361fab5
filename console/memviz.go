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

package console

import (
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/emuconsole/curated"
	"github.com/jetsetilly/emuconsole/paths"
)

// MemVizError is the error pattern for the MEMVIZ command.
const MemVizError = "memviz: %v"

type vizMapping struct {
	Name   string
	Base   uint64
	Top    uint64
	Device string
}

type vizPeripheral struct {
	Name   string
	Device string
}

// the structure drawn by memviz. the machine itself is not drawn because the
// memory regions would produce a node for every byte
type vizMachine struct {
	Mappings    []vizMapping
	Peripherals []vizPeripheral
	Externals   []vizPeripheral
}

func (con *Console) vizMachine() *vizMachine {
	v := &vizMachine{}

	for _, m := range con.machine.SysBus.Mappings() {
		vm := vizMapping{Name: m.Name, Base: m.Base, Top: m.Top()}
		if p, ok := con.machine.Lookup(m.Name); ok {
			vm.Device = p.PeripheralType()
		}
		v.Mappings = append(v.Mappings, vm)
	}

	for _, n := range con.machine.Registry.Names() {
		p, _ := con.machine.Lookup(n)
		v.Peripherals = append(v.Peripherals, vizPeripheral{Name: n, Device: p.PeripheralType()})
	}

	for _, n := range con.externals.Names() {
		p, _ := con.externals.Lookup(n)
		v.Externals = append(v.Externals, vizPeripheral{Name: n, Device: p.PeripheralType()})
	}

	return v
}

// writeMemViz writes a graphviz file describing the machine. Returns the name
// of the file that has been written.
func (con *Console) writeMemViz(filename string) (_ string, rerr error) {
	if filename == "" {
		filename = paths.UniqueFilename("memviz", "dot")
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", curated.Errorf(MemVizError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(MemVizError, err)
		}
	}()

	memviz.Map(f, con.vizMachine())

	return filename, nil
}

package backend

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rlutz/gnetgo/pkg/netlist"
	"github.com/rlutz/gnetgo/pkg/util/assert"
)

func TestTedaxBackendEmitsExpectedRecords(t *testing.T) {
	nl := &netlist.Netlist{}

	net := &netlist.Net{Name: "VCC"}

	pkg := &netlist.Package{Refdes: "R1"}
	pin := &netlist.PackagePin{Package: pkg, Number: "1", Net: net}
	pkg.Pins = []*netlist.PackagePin{pin}

	net.Connections = []*netlist.PackagePin{pin}

	nl.Packages = []*netlist.Package{pkg}
	nl.Nets = []*netlist.Net{net}

	var buf bytes.Buffer

	err := TedaxBackend{}.Run(&buf, nl)
	assert.True(t, err == nil)

	out := buf.String()
	assert.True(t, strings.Contains(out, "tEDAx v1"))
	assert.True(t, strings.Contains(out, "begin netlist v1 netlist"))
	assert.True(t, strings.Contains(out, "conn VCC R1 1"))
	assert.True(t, strings.Contains(out, "end netlist"))
}

func TestEscapeTedaxEscapesSpecialCharacters(t *testing.T) {
	assert.Equal(t, `a\ b\\c\nd`, escapeTedax("a b\\c\nd"))
}

func TestTedaxBackendRejectsOverlongLine(t *testing.T) {
	nl := &netlist.Netlist{}

	pkg := &netlist.Package{Refdes: "R1"}

	net := &netlist.Net{Name: strings.Repeat("x", 600)}
	pin := &netlist.PackagePin{Package: pkg, Number: "1", Net: net}
	net.Connections = []*netlist.PackagePin{pin}

	nl.Packages = []*netlist.Package{pkg}
	nl.Nets = []*netlist.Net{net}

	var buf bytes.Buffer

	err := TedaxBackend{}.Run(&buf, nl)
	assert.True(t, err != nil)
}

package netlist

import (
	"testing"

	"github.com/rlutz/gnetgo/pkg/sch"
	"github.com/rlutz/gnetgo/pkg/util/assert"
)

// buildFixture makes a three-pin component c whose pins each sit alone on
// their own Net (no other component shares them), suitable for exercising
// bypass/discard without running the full Build pipeline.
func buildFixture(t *testing.T) (nl *Netlist, c *Component, neighbours []*Net) {
	t.Helper()

	nl = &Netlist{Reporter: &collectingReporter{}}

	bc := &sch.Component{}
	c = &Component{Blueprint: bc, Refdes: "U1", CPinsByNumber: make(map[string]*CPin)}

	sheet := &Sheet{Namespace: nil}
	c.Sheet = sheet

	for _, num := range []string{"1", "2", "3"} {
		bp := &sch.Pin{Component: bc, Number: num}
		bc.Pins = append(bc.Pins, bp)

		cp := &CPin{Component: c, Blueprint: bp}
		c.CPins = append(c.CPins, cp)
		c.CPinsByNumber[num] = cp

		ln := &LocalNet{Sheet: sheet, CPins: []*CPin{cp}}
		net := &Net{LocalNets: []*LocalNet{ln}, ComponentPins: []*CPin{cp}}
		ln.Net = net
		cp.LocalNet = ln

		nl.LocalNets = append(nl.LocalNets, ln)
		nl.Nets = append(nl.Nets, net)
		neighbours = append(neighbours, net)
	}

	nl.Components = []*Component{c}
	sheet.Components = []*Component{c}
	sheet.ComponentsByBlueprint = map[*sch.Component]*Component{bc: c}

	nl.PackagesByRefdes = map[string]*Package{
		"U1": {Refdes: "U1", Components: []*Component{c}},
	}
	nl.Packages = []*Package{nl.PackagesByRefdes["U1"]}

	return nl, c, neighbours
}

func TestBypassComponentMergesIntoNamedDestination(t *testing.T) {
	nl, c, nets := buildFixture(t)

	bypassComponent(nl, c, "1,2,3 as MERGED")

	assert.Equal(t, "MERGED", nets[0].Name)
	assert.Equal(t, 3, len(nets[0].ComponentPins))
	assert.Equal(t, 3, len(nets[0].LocalNets))
	assert.Equal(t, 1, len(nl.Nets))

	for _, cp := range c.CPins {
		assert.True(t, cp.LocalNet.Net == nets[0])
	}
}

func TestBypassComponentRejectsMalformedGroup(t *testing.T) {
	nl, c, _ := buildFixture(t)
	reporter := nl.Reporter.(*collectingReporter)

	bypassComponent(nl, c, "1,x,3")

	assert.True(t, len(reporter.diags) == 1)
	assert.Equal(t, CategorySAB, reporter.diags[0].Category)
}

func TestDiscardComponentDetachesEveryPinAndRemovesComponent(t *testing.T) {
	nl, c, nets := buildFixture(t)

	discardComponent(nl, c)

	assert.Equal(t, 0, len(nl.Components))
	assert.Equal(t, 0, len(nl.Sheets))

	for _, cp := range c.CPins {
		assert.True(t, cp.LocalNet == nil)
	}

	for _, n := range nets {
		assert.Equal(t, 0, len(n.ComponentPins))
	}

	_, ok := nl.PackagesByRefdes["U1"]
	assert.False(t, ok)
	assert.Equal(t, 0, len(nl.Packages))
}

func TestBypassThenDiscardLeavesMergedNetIntact(t *testing.T) {
	nl, c, nets := buildFixture(t)

	bypassComponent(nl, c, "1,2,3 as MERGED")
	discardComponent(nl, c)

	assert.Equal(t, "MERGED", nets[0].Name)
	assert.Equal(t, 0, len(nets[0].ComponentPins))
	assert.Equal(t, 0, len(nl.Components))
}

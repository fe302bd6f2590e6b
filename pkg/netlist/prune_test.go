package netlist

import (
	"testing"

	"github.com/rlutz/gnetgo/pkg/sch"
	"github.com/rlutz/gnetgo/pkg/util/assert"
)

// singlePinComponent builds a one-pin component instance with its own
// LocalNet wired onto net, for exercising finalizeNets without running the
// full Build pipeline.
func singlePinComponent(nl *Netlist, refdes string, net *Net) *Component {
	bc := &sch.Component{Refdes: &refdes}
	bp := &sch.Pin{Component: bc, Number: "1"}
	bc.Pins = []*sch.Pin{bp}

	c := &Component{Blueprint: bc, Refdes: refdes, CPinsByNumber: make(map[string]*CPin)}
	cp := &CPin{Component: c, Blueprint: bp}
	c.CPins = []*CPin{cp}
	c.CPinsByNumber["1"] = cp

	ln := &LocalNet{CPins: []*CPin{cp}, Net: net}
	cp.LocalNet = ln
	net.LocalNets = append(net.LocalNets, ln)

	nl.LocalNets = append(nl.LocalNets, ln)
	nl.Components = append(nl.Components, c)

	return c
}

func TestFinalizeNetsDoesNotPruneAnymore(t *testing.T) {
	nl := &Netlist{Reporter: &collectingReporter{}}
	net := &Net{Name: "N1"}
	singlePinComponent(nl, "R1", net)

	finalizeNets(nl)

	// finalizeNets must only flag, never drop: pruning is deferred to
	// pruneUnconnectedNets so the straddle exception can consult
	// post-packaging Connections.
	assert.Equal(t, 1, len(nl.Nets))
	assert.True(t, nl.Nets[0].IsUnconnectedPin)
}

func TestPruneUnconnectedNetsDropsSingleRealPin(t *testing.T) {
	nl := &Netlist{
		Nets: []*Net{{Name: "N1", IsUnconnectedPin: true}},
	}

	pruneUnconnectedNets(nl)

	assert.Equal(t, 0, len(nl.Nets))
}

func TestPruneUnconnectedNetsKeepsNetStraddlingMultipleConnections(t *testing.T) {
	straddling := &Net{Name: "N1", IsUnconnectedPin: true, Connections: make([]*PackagePin, 2)}
	trulyUnconnected := &Net{Name: "N2", IsUnconnectedPin: true, Connections: make([]*PackagePin, 1)}

	nl := &Netlist{Nets: []*Net{straddling, trulyUnconnected}}

	pruneUnconnectedNets(nl)

	assert.Equal(t, 1, len(nl.Nets))
	assert.True(t, nl.Nets[0] == straddling)
	assert.False(t, straddling.IsUnconnectedPin)
}

package netlist

import (
	"testing"

	"github.com/rlutz/gnetgo/pkg/sch"
	"github.com/rlutz/gnetgo/pkg/util/assert"
)

func refdesComponent(sheet *Sheet, refdes string) *Component {
	bc := &sch.Component{Refdes: &refdes}
	return &Component{Sheet: sheet, Blueprint: bc, CPinsByNumber: make(map[string]*CPin)}
}

func TestAssignRefdesMangleUsesSheetNamespace(t *testing.T) {
	sheet := &Sheet{Namespace: Namespace{"U1"}}
	c := refdesComponent(sheet, "R1")

	nl := &Netlist{
		Components: []*Component{c},
		Config: Config{
			RefdesMangle: BuildMangleFunc(MangleOptions{
				ChainSeparator: "/", ChainOrder: OrderAppend,
				AttachSeparator: "/", AttachOrder: OrderAppend,
			}),
		},
	}

	assignRefdes(nl)

	assert.Equal(t, "U1/R1", c.Refdes)
}

func TestAssignRefdesFlatPackageNamespaceSuppressesTag(t *testing.T) {
	sheetA := &Sheet{Namespace: Namespace{"U1"}}
	sheetB := &Sheet{Namespace: Namespace{"U2"}}

	a := refdesComponent(sheetA, "R1")
	b := refdesComponent(sheetB, "R1")

	nl := &Netlist{
		Components: []*Component{a, b},
		Config: Config{
			FlatPackageNamespace: true,
			RefdesMangle: BuildMangleFunc(MangleOptions{
				ChainSeparator: "/", ChainOrder: OrderAppend,
				AttachSeparator: "/", AttachOrder: OrderAppend,
			}),
		},
	}

	assignRefdes(nl)

	assert.Equal(t, "R1", a.Refdes)
	assert.Equal(t, "R1", b.Refdes)
}

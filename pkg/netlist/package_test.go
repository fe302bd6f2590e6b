package netlist

import (
	"testing"

	"github.com/rlutz/gnetgo/pkg/sch"
	"github.com/rlutz/gnetgo/pkg/util/assert"
)

func slotComponent(t *testing.T, sheet *Sheet, slot string) *Component {
	t.Helper()

	s := slot
	bc := &sch.Component{Slot: &s}
	bp := &sch.Pin{Component: bc, Number: "1"}
	bc.Pins = []*sch.Pin{bp}

	c := &Component{Sheet: sheet, Blueprint: bc, Refdes: "U1", CPinsByNumber: make(map[string]*CPin)}
	cp := &CPin{Component: c, Blueprint: bp}
	c.CPins = []*CPin{cp}
	c.CPinsByNumber["1"] = cp

	return c
}

func TestBuildPackagesGroupsByNamespaceAndRefdes(t *testing.T) {
	sheet := &Sheet{Namespace: Namespace{"U1"}}

	a := slotComponent(t, sheet, "1")
	b := slotComponent(t, sheet, "2")

	reporter := &collectingReporter{}
	pkgs := buildPackages([]*Component{a, b}, false, reporter)

	assert.Equal(t, 1, len(pkgs))
	assert.Equal(t, 2, len(pkgs[0].Components))
	assert.Equal(t, 0, len(reporter.diags))
}

func TestCheckSlotDuplicatesFlagsRepeatedSlot(t *testing.T) {
	sheet := &Sheet{Namespace: nil}

	a := slotComponent(t, sheet, "1")
	b := slotComponent(t, sheet, "1")

	reporter := &collectingReporter{}
	buildPackages([]*Component{a, b}, false, reporter)

	assert.Equal(t, 1, len(reporter.diags))
	assert.Equal(t, SeverityError, reporter.diags[0].Severity)
	assert.Equal(t, CategoryBlueprint, reporter.diags[0].Category)
}

func TestFlatPackageNamespaceCollapsesNamespace(t *testing.T) {
	sheetA := &Sheet{Namespace: Namespace{"U1"}}
	sheetB := &Sheet{Namespace: Namespace{"U2"}}

	a := slotComponent(t, sheetA, "1")
	b := slotComponent(t, sheetB, "2")

	reporter := &collectingReporter{}

	flat := buildPackages([]*Component{a, b}, true, reporter)
	assert.Equal(t, 1, len(flat))

	nested := buildPackages([]*Component{a, b}, false, reporter)
	assert.Equal(t, 2, len(nested))
}

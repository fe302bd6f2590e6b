package netlist

import (
	"testing"

	"github.com/rlutz/gnetgo/pkg/util/assert"
)

func TestParseSabParam(t *testing.T) {
	p, ok := ParseSabParam("Power:#3:Discard")
	assert.True(t, ok)
	assert.Equal(t, "power", p.Context)
	assert.Equal(t, ActionDiscard, p.Action)
	assert.True(t, p.Order != nil && *p.Order == 3)
	assert.Equal(t, "", p.Params)

	p, ok = ParseSabParam("test:bypass:1,2,3 as GND")
	assert.True(t, ok)
	assert.Equal(t, "test", p.Context)
	assert.True(t, p.Order == nil)
	assert.Equal(t, ActionBypass, p.Action)
	assert.Equal(t, "1,2,3 as GND", p.Params)

	p, ok = ParseSabParam("ctx:exec:myext:a:b:c")
	assert.True(t, ok)
	assert.Equal(t, ActionExec, p.Action)
	assert.Equal(t, "myext:a:b:c", p.Params)

	_, ok = ParseSabParam("ctx:unknownaction")
	assert.False(t, ok)

	_, ok = ParseSabParam("onlycontext")
	assert.False(t, ok)

	_, ok = ParseSabParam("ctx:#notanumber:discard")
	assert.False(t, ok)
}

func TestInsertSabEntryOrdering(t *testing.T) {
	entries := make(map[string][]*sabEntry)
	reporter := &collectingReporter{}

	one, two, three := 1, 2, 3

	insertSabEntry(&Netlist{Reporter: reporter}, entries, "ctx", &sabEntry{refdes: "unordered-a"})
	insertSabEntry(&Netlist{Reporter: reporter}, entries, "ctx", &sabEntry{refdes: "unordered-b"})
	insertSabEntry(&Netlist{Reporter: reporter}, entries, "ctx", &sabEntry{refdes: "ord-3", order: &three})
	insertSabEntry(&Netlist{Reporter: reporter}, entries, "ctx", &sabEntry{refdes: "ord-1", order: &one})
	insertSabEntry(&Netlist{Reporter: reporter}, entries, "ctx", &sabEntry{refdes: "ord-2", order: &two})

	list := entries["ctx"]

	var got []string
	for _, e := range list {
		got = append(got, e.refdes)
	}

	assert.Equal(t, []string{"ord-1", "ord-2", "ord-3", "unordered-a", "unordered-b"}, got)
}

func TestInsertSabEntryDuplicateOrderWarns(t *testing.T) {
	entries := make(map[string][]*sabEntry)
	reporter := &collectingReporter{}
	nl := &Netlist{Reporter: reporter}

	five, sameFive := 5, 5

	insertSabEntry(nl, entries, "ctx", &sabEntry{refdes: "first", order: &five})
	insertSabEntry(nl, entries, "ctx", &sabEntry{refdes: "second", order: &sameFive})

	assert.Equal(t, 2, len(entries["ctx"]))
	assert.True(t, len(reporter.diags) == 1)
	assert.Equal(t, CategorySAB, reporter.diags[0].Category)
}

type collectingReporter struct {
	diags []Diagnostic
}

func (r *collectingReporter) Report(d Diagnostic) {
	r.diags = append(r.diags, d)
}

package netlist

import (
	"testing"

	"github.com/rlutz/gnetgo/pkg/util/assert"
)

func appendOptions(sep string) MangleOptions {
	return MangleOptions{ChainSeparator: sep, ChainOrder: OrderAppend, AttachSeparator: sep, AttachOrder: OrderAppend}
}

func prependOptions(sep string) MangleOptions {
	return MangleOptions{ChainSeparator: sep, ChainOrder: OrderPrepend, AttachSeparator: sep, AttachOrder: OrderPrepend}
}

func TestBuildMangleFuncAppend(t *testing.T) {
	f := BuildMangleFunc(appendOptions("/"))

	assert.Equal(t, "R1", f("R1", nil))
	assert.Equal(t, "U1/R1", f("R1", Namespace{"U1"}))
	assert.Equal(t, "U1/U2/R1", f("R1", Namespace{"U1", "U2"}))
}

func TestBuildMangleFuncPrepend(t *testing.T) {
	f := BuildMangleFunc(prependOptions("-"))

	assert.Equal(t, "R1", f("R1", nil))
	assert.Equal(t, "R1-U1", f("R1", Namespace{"U1"}))
}

func TestBuildMangleFuncPrependReversesDeepChain(t *testing.T) {
	f := BuildMangleFunc(prependOptions("/"))

	assert.Equal(t, "R1/mid/outer", f("R1", Namespace{"outer", "mid"}))
}

func TestBuildMangleFuncNetnameUsesRefdesSeparatorForChain(t *testing.T) {
	f := BuildMangleFunc(MangleOptions{
		ChainSeparator:  "/",
		ChainOrder:      OrderAppend,
		AttachSeparator: ":",
		AttachOrder:     OrderAppend,
	})

	assert.Equal(t, "U1/R2:NAME", f("NAME", Namespace{"U1", "R2"}))
}

func TestIdentityMangleFunc(t *testing.T) {
	assert.Equal(t, "R1", IdentityMangleFunc("R1", Namespace{"U1", "U2"}))
}

func TestMangleIsPure(t *testing.T) {
	f := BuildMangleFunc(appendOptions("/"))

	a := f("R1", Namespace{"U1", "U2"})
	b := f("R1", Namespace{"U1", "U2"})

	assert.Equal(t, a, b)
}

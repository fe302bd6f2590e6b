package netlist

import (
	"strconv"
	"strings"
)

// SabAction is the action a sab-param entry requests for its component.
type SabAction int

// Valid SAB actions, grounded on xorn/src/gaf/sab.py's VALID_ACTIONS.
const (
	ActionDiscard SabAction = iota
	ActionBypass
	ActionExec
)

// SabParam is one parsed sab-param attribute, per spec.md §4.8's
// "context[:#order][:action][:params]" grammar.
type SabParam struct {
	Context string
	Order   *int
	Action  SabAction
	Params  string
}

// ExecFunc is the signature an exec action's named extension must
// implement. Python's original (xorn/src/gaf/sab_utils.py's exec_extern)
// dynamically imports a same-named module and calls its sab_process
// function; Go has no portable equivalent of imp.find_module, so
// extensions are registered ahead of time by name in an ExtensionRegistry
// instead (documented as a stdlib-forced deviation in DESIGN.md).
type ExecFunc func(nl *Netlist, context string, c *Component, params string)

// ExtensionRegistry maps an exec script name (params[0] before the next
// ':') to its ExecFunc.
type ExtensionRegistry map[string]ExecFunc

// ParseSabParam parses one sab-param attribute value, per spec.md §4.8,
// grounded on xorn/src/gaf/sab.py's parse_param. ok is false for anything
// malformed or carrying an unrecognized action, matching parse_param's
// warn-and-ignore behavior (the caller is expected to warn and skip).
func ParseSabParam(raw string) (SabParam, bool) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return SabParam{}, false
	}

	context := strings.ToLower(parts[0])
	idx := 1

	var order *int

	if strings.HasPrefix(parts[1], "#") {
		n, err := strconv.Atoi(parts[1][1:])
		if err != nil {
			return SabParam{}, false
		}

		order = &n
		idx = 2
	}

	if idx >= len(parts) {
		return SabParam{}, false
	}

	var action SabAction

	switch strings.ToLower(parts[idx]) {
	case "discard":
		action = ActionDiscard
	case "bypass":
		action = ActionBypass
	case "exec":
		action = ActionExec
	default:
		return SabParam{}, false
	}

	params := ""
	if idx+1 < len(parts) {
		params = strings.Join(parts[idx+1:], ":")
	}

	return SabParam{Context: context, Order: order, Action: action, Params: params}, true
}

type sabEntry struct {
	refdes    string
	order     *int
	action    SabAction
	params    string
	component *Component
}

// RunSAB runs the SAB rewriter over nl for the given ordered context list,
// per spec.md §4.8, grounded on xorn/src/gaf/sab.py's process. Components
// carrying a sab-param for a context not named in contexts are ignored.
func RunSAB(nl *Netlist, contexts []string, registry ExtensionRegistry) {
	active := make(map[string]bool, len(contexts))
	entries := make(map[string][]*sabEntry, len(contexts))
	seen := make(map[string]map[string]bool, len(contexts))

	for _, c := range contexts {
		if c != "" {
			active[c] = true
			seen[c] = make(map[string]bool)
		}
	}

	if len(active) == 0 {
		return
	}

	for _, c := range nl.Components {
		for _, raw := range c.Blueprint.GetAttributes("sab-param") {
			param, ok := ParseSabParam(raw)
			if !ok {
				warn(nl.Reporter, CategorySAB, c.Refdes, "malformed sab-param: "+raw)
				continue
			}

			if !active[param.Context] {
				continue
			}

			refdes := c.Refdes
			if c.Blueprint.Slot != nil {
				refdes += ":" + *c.Blueprint.Slot
			}

			if seen[param.Context][refdes] {
				warn(nl.Reporter, CategorySAB, refdes,
					"multiple sab-param for context "+param.Context+", extras ignored")

				continue
			}

			seen[param.Context][refdes] = true

			insertSabEntry(nl, entries, param.Context, &sabEntry{
				refdes:    refdes,
				order:     param.Order,
				action:    param.Action,
				params:    param.Params,
				component: c,
			})
		}
	}

	for _, context := range contexts {
		if context == "" {
			continue
		}

		for _, e := range entries[context] {
			if e.action == ActionExec {
				execComponent(nl, context, e, registry)
				continue
			}

			if e.action == ActionBypass {
				bypassComponent(nl, e.component, e.params)
			}

			discardComponent(nl, e.component)
		}
	}
}

// insertSabEntry inserts e into entries[context] in ascending order
// position, per xorn/src/gaf/sab.py's add_refdes: unordered entries (order
// == nil) are simply appended, but an ordered entry is inserted ahead of
// the first existing unordered entry or any entry with a higher order,
// which has the effect of always sorting ordered entries ahead of
// unordered ones.
func insertSabEntry(nl *Netlist, entries map[string][]*sabEntry, context string, e *sabEntry) {
	list := entries[context]

	if e.order == nil {
		entries[context] = append(list, e)
		return
	}

	for i, existing := range list {
		if existing.order != nil && *existing.order == *e.order {
			warn(nl.Reporter, CategorySAB, e.refdes,
				"both "+existing.refdes+" and "+e.refdes+" specify the same order for context "+context)

			continue
		}

		if existing.order == nil || *existing.order > *e.order {
			list = append(list[:i:i], append([]*sabEntry{e}, list[i:]...)...)
			entries[context] = list

			return
		}
	}

	entries[context] = append(list, e)
}

package backend

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rlutz/gnetgo/pkg/netlist"
)

// TedaxBackend emits the finished netlist in tEDAx interchange format,
// grounded on original_source/src/backend/gnet_tedax.py. Packages without a
// footprint/value/connections and nets without connections are dropped
// implicitly, since tEDAx creates entities on first reference.
type TedaxBackend struct{}

// Run implements Backend.
func (TedaxBackend) Run(out io.Writer, nl *netlist.Netlist) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	write := func(fields ...string) error {
		line := strings.Join(escapeAll(fields), " ")
		if len(line) >= 512 {
			return fmt.Errorf("output format limits lines to 511 characters (%d needed)", len(line))
		}

		_, err := w.WriteString(line + "\n")

		return err
	}

	if err := write("tEDAx", "v1"); err != nil {
		return err
	}

	if err := write("begin", "netlist", "v1", "netlist"); err != nil {
		return err
	}

	for _, pkg := range nl.Packages {
		if err := writeTedaxPackage(write, pkg); err != nil {
			return err
		}
	}

	for _, net := range nl.Nets {
		for _, pin := range net.Connections {
			if err := write("conn", net.Name, pin.Package.Refdes, pin.Number); err != nil {
				return err
			}
		}
	}

	return write("end", "netlist")
}

func writeTedaxPackage(write func(...string) error, pkg *netlist.Package) error {
	if fp := pkg.GetAttribute("footprint", ""); fp != "" {
		if err := write("footprint", pkg.Refdes, fp); err != nil {
			return err
		}
	}

	if v := pkg.GetAttribute("value", ""); v != "" {
		if err := write("value", pkg.Refdes, v); err != nil {
			return err
		}
	}

	if d := pkg.GetAttribute("device", ""); d != "" {
		if err := write("device", pkg.Refdes, d); err != nil {
			return err
		}
	}

	if fps := pkg.GetAttribute("footprints", ""); fps != "" {
		if err := write("comptag", pkg.Refdes, "footprints", fps); err != nil {
			return err
		}
	}

	for _, pin := range pkg.Pins {
		if label := pin.GetAttribute("pinlabel", ""); label != "" {
			if err := write("pinname", pkg.Refdes, pin.Number, label); err != nil {
				return err
			}
		}

		if seq := pin.GetAttribute("pinseq", ""); seq != "" {
			if err := write("pinidx", pkg.Refdes, pin.Number, seq); err != nil {
				return err
			}
		}
	}

	return nil
}

func escapeAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = escapeTedax(f)
	}

	return out
}

func escapeTedax(s string) string {
	var b strings.Builder

	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case ' ':
			b.WriteString(`\ `)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

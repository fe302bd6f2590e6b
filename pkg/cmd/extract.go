package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rlutz/gnetgo/pkg/backend"
	"github.com/rlutz/gnetgo/pkg/netlist"
	"github.com/rlutz/gnetgo/pkg/slib"
	"github.com/rlutz/gnetgo/pkg/symlib"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// extractCmd is the primary subcommand: extract a netlist from one or more
// top-level schematics and emit it through a named backend, per spec.md
// §6.2/§6.3.
var extractCmd = &cobra.Command{
	Use:   "extract [flags] schematic.sch...",
	Short: "Extract a netlist from one or more top-level schematics.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		backendName := GetString(cmd, "backend")

		run, ok := backend.ByName(backendName)
		if !ok {
			fmt.Printf("unknown backend %q\n", backendName)
			os.Exit(1)
		}

		cfg := configFromFlags(cmd)

		symbols := symlib.New()
		sources := slib.New(GetStringArray(cmd, "source-dir")...)

		nl, err := netlist.Build(cfg, args, symbols, sources)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		contexts := sabContexts(GetString(cmd, "sab-context"))
		if len(contexts) > 0 {
			netlist.RunSAB(nl, contexts, nil)
		}

		if nl.Failed && !cfg.IgnoreErrors {
			os.Exit(2)
		}

		out := os.Stdout

		if outfile := GetString(cmd, "output"); outfile != "" && outfile != "-" {
			f, err := os.Create(outfile)
			if err != nil {
				fmt.Println(err)
				os.Exit(3)
			}
			defer f.Close()

			if err := run.Run(f, nl); err != nil {
				fmt.Println(err)
				os.Exit(3)
			}

			return
		}

		if err := run.Run(out, nl); err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
	},
}

// configFromFlags builds a netlist.Config from extractCmd's flags, per
// spec.md §6.3.
func configFromFlags(cmd *cobra.Command) netlist.Config {
	cfg := netlist.DefaultConfig()

	cfg.TraverseHierarchy = GetFlag(cmd, "traverse-hierarchy") && !GetFlag(cmd, "dont-traverse-hierarchy")

	refdesSeparator := GetString(cmd, "hierarchy-refdes-separator")
	refdesOrder := orderFromFlag(GetString(cmd, "hierarchy-refdes-order"))
	netnameOrder := orderFromFlag(GetString(cmd, "hierarchy-netname-order"))

	if GetString(cmd, "hierarchy-refdes-mangle") == "no" {
		cfg.RefdesMangle = netlist.IdentityMangleFunc
	} else {
		cfg.RefdesMangle = netlist.BuildMangleFunc(netlist.MangleOptions{
			ChainSeparator:  refdesSeparator,
			ChainOrder:      refdesOrder,
			AttachSeparator: refdesSeparator,
			AttachOrder:     refdesOrder,
		})
	}

	if GetString(cmd, "hierarchy-netname-mangle") == "no" {
		cfg.NetnameMangle = netlist.IdentityMangleFunc
	} else {
		// The hierarchy chain is always joined with the refdes
		// separator/order, per spec.md §4.3; only the attachment of
		// the chain to the base net name uses the netname
		// separator/order.
		cfg.NetnameMangle = netlist.BuildMangleFunc(netlist.MangleOptions{
			ChainSeparator:  refdesSeparator,
			ChainOrder:      refdesOrder,
			AttachSeparator: GetString(cmd, "hierarchy-netname-separator"),
			AttachOrder:     netnameOrder,
		})
	}

	cfg.FlatNetattribNamespace = GetString(cmd, "hierarchy-netattrib-mangle") == "no" ||
		GetFlag(cmd, "flat-netattrib-namespace")
	cfg.FlatNetnameNamespace = GetFlag(cmd, "flat-netname-namespace")
	cfg.FlatPackageNamespace = GetFlag(cmd, "flat-package-namespace")

	cfg.PreferNetnameAttribute = GetString(cmd, "net-naming-priority") == "netname-attribute"
	cfg.DefaultNetName = GetString(cmd, "default-net-name")
	cfg.DefaultBusName = GetString(cmd, "default-bus-name")
	cfg.IgnoreErrors = GetFlag(cmd, "ignore-errors")
	cfg.Verbose = GetFlag(cmd, "verbose")

	return cfg
}

func orderFromFlag(v string) netlist.Order {
	if v == "prepend" {
		return netlist.OrderPrepend
	}

	return netlist.OrderAppend
}

// sabContexts parses --sab-context's comma-separated list, treating "none"
// (the default) and the empty string as "run no SAB pass".
func sabContexts(raw string) []string {
	if raw == "" || raw == "none" {
		return nil
	}

	var out []string

	for _, c := range strings.Split(raw, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}

	return out
}

func init() {
	extractCmd.Flags().StringP("backend", "g", "tedax", "backend to emit the netlist through: tedax|spice")
	extractCmd.Flags().StringP("output", "o", "-", "output file, or - for stdout")

	rootCmd.AddCommand(extractCmd)
}

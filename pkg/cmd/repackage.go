package cmd

import (
	"fmt"
	"os"

	"github.com/rlutz/gnetgo/pkg/backend"
	"github.com/rlutz/gnetgo/pkg/netlist"
	"github.com/rlutz/gnetgo/pkg/slib"
	"github.com/rlutz/gnetgo/pkg/symlib"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// repackageCmd demonstrates the Repackage entry point (spec.md §4.6/§5):
// it re-groups every component instance by its value= attribute instead of
// refdes, a common backend use case per
// original_source/xorn/src/backend/util_repackage.py's doc comment, then
// emits the alternative grouping through a normal Backend by assigning it
// to the extracted Netlist's Packages field before running the backend.
var repackageCmd = &cobra.Command{
	Use:   "repackage [flags] schematic.sch...",
	Short: "Re-group components by value= instead of refdes and emit the result.",
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

		if nl.Failed && !cfg.IgnoreErrors {
			os.Exit(2)
		}

		nl.Packages = netlist.Repackage(nl, func(c *netlist.Component) (string, bool) {
			value := c.Blueprint.GetAttribute("value", "")
			if value == "" {
				return "", false
			}

			return value, true
		})

		if err := run.Run(os.Stdout, nl); err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
	},
}

func init() {
	repackageCmd.Flags().StringP("backend", "g", "tedax", "backend to emit the netlist through: tedax|spice")

	rootCmd.AddCommand(repackageCmd)
}

package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gnetgo",
	Short: "A hierarchical schematic netlist extractor.",
	Long:  "gnetgo reads gEDA/gaf schematics and extracts a flattened, packaged netlist for a chosen backend.",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once to rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	// Hierarchy traversal (spec.md §6.3)
	rootCmd.PersistentFlags().Bool("traverse-hierarchy", true, "descend into composite components' sub-schematics")
	rootCmd.PersistentFlags().Bool("dont-traverse-hierarchy", false, "do not descend into composite components' sub-schematics")

	// Mangling (spec.md §4.7/§6.3)
	rootCmd.PersistentFlags().String("hierarchy-refdes-mangle", "yes", "mangle refdes across hierarchy: yes|no")
	rootCmd.PersistentFlags().String("hierarchy-netname-mangle", "yes", "mangle net names across hierarchy: yes|no")
	rootCmd.PersistentFlags().String("hierarchy-netattrib-mangle", "yes", "mangle net= names across hierarchy: yes|no")
	rootCmd.PersistentFlags().String("hierarchy-refdes-separator", "/", "separator joining namespace tags to a refdes")
	rootCmd.PersistentFlags().String("hierarchy-refdes-order", "append", "namespace tag position for refdes: append|prepend")
	rootCmd.PersistentFlags().String("hierarchy-netname-separator", "/", "separator joining namespace tags to a net name")
	rootCmd.PersistentFlags().String("hierarchy-netname-order", "append", "namespace tag position for net names: append|prepend")

	// Canonical net naming (spec.md §4.4/§6.3)
	rootCmd.PersistentFlags().String("net-naming-priority", "net-attribute", "which candidate wins ties: net-attribute|netname-attribute")
	rootCmd.PersistentFlags().String("default-net-name", "unnamed_net", "template for nets with no candidate name")
	rootCmd.PersistentFlags().String("default-bus-name", "unnamed_bus", "template for bus nets with no candidate name")

	// Namespace flattening, beyond the informational §6.3 list but needed
	// to exercise Config.FlatPackageNamespace/FlatNetnameNamespace/
	// FlatNetattribNamespace from the command line.
	rootCmd.PersistentFlags().Bool("flat-package-namespace", false, "ignore namespace when grouping instances into packages")
	rootCmd.PersistentFlags().Bool("flat-netname-namespace", false, "ignore namespace when unioning netname= candidates")
	rootCmd.PersistentFlags().Bool("flat-netattrib-namespace", false, "ignore namespace when unioning net= candidates")

	// Error policy and SAB (spec.md §6.3/§4.8)
	rootCmd.PersistentFlags().Bool("ignore-errors", false, "exit 0 even if netlist errors were reported")
	rootCmd.PersistentFlags().String("sab-context", "none", "comma-separated sab-param contexts to run, in order, or none")

	// Library search paths, used to resolve source= sub-schematics.
	rootCmd.PersistentFlags().StringArrayP("source-dir", "L", []string{}, "directory to search for source= sub-schematics")

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
}

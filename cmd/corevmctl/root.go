// Command corevmctl inspects the corevm heap/object/module runtime from
// the outside: it builds small in-process demo workloads (there is no
// bytecode or source file format this core parses — spec.md scopes that
// out) and reports on GC behavior, ArrayBuffer abstract operations, and
// module export resolution, structured exactly like the teacher's hivectl
// — a cobra root command with persistent --verbose/--quiet/--json/--no-color
// flags and shared printInfo/printError/printVerbose helpers.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "corevmctl",
	Short: "Inspect the corevm heap, GC, object model, and module registry",
	Long: `corevmctl drives the corevm runtime directly to exercise and report on
its heap allocator, garbage collector, ArrayBuffer abstract operations, and
module export resolution. It builds its own small in-process workloads
rather than reading an external file format.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func main() {
	execute()
}

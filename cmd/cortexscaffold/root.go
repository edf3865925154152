package main

import (
	"fmt"
	"os"

	"github.com/cortexscaffold/cortexscaffold/bootstrap"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cortexscaffold",
	Short: "Deterministic scaffolder for micromodular FastAPI projects",
	Long: `CortexScaffold generates FastAPI project skeletons.

The same name and module list always produce the same tree: one Python
module per feature with an init hook and a ping route, plus docs,
tests, configuration, and project metadata.

Quick start:
  cortexscaffold new                     # Interactive wizard
  cortexscaffold new --name "My API" --modules users,auth --yes

Management:
  cortexscaffold verify ./my-api         # Re-check an existing tree
  cortexscaffold history                 # Recent scaffold runs`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "cortexscaffold.yaml", "config file path")
}

// newApp wires the application from the configured file. Callers own
// the returned App and must Close it.
func newApp() (*bootstrap.App, error) {
	return bootstrap.New(cfgFile)
}

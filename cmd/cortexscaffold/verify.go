package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [dir]",
	Short: "Verify an existing project tree",
	Long: `Verify that a scaffolded project still has the structure its
project.json promises.

Checks:
  - project.json is present and parseable
  - every directory and file of the derived layout exists

Examples:
  cortexscaffold verify
  cortexscaffold verify ./my-api`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	spec, check, err := a.Service.VerifyProject(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Verifying %s (%s)...\n\n", spec.RawName, dir)

	if !check.OK {
		for _, missing := range check.Errors {
			fmt.Printf("  %s %s\n", crossMark, missing)
		}
		fmt.Println()
		return fmt.Errorf("%d entries missing", len(check.Errors))
	}

	fmt.Printf("  %s All entries present\n", checkMark)
	fmt.Println()
	fmt.Println("Project structure is complete.")
	return nil
}

const (
	checkMark = "\033[32m✓\033[0m"
	crossMark = "\033[31m✗\033[0m"
)

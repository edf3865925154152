package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent scaffold runs",
	Long: `Show recent scaffold runs from the local history database.

Examples:
  cortexscaffold history
  cortexscaffold history --limit=50`,
	RunE: runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	runs, err := a.Service.History(context.Background(), historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No scaffold runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tNAME\tPATH\tMODULES\tARTIFACTS\tSTATUS\tDURATION")
	fmt.Fprintln(w, "-------\t----\t----\t-------\t---------\t------\t--------")

	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Name,
			r.Path,
			strings.Join(r.Modules, ","),
			r.Artifacts,
			r.Status,
			r.Duration.Round(time.Millisecond),
		)
	}

	w.Flush()
	return nil
}

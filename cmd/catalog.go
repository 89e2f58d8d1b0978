package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/headgrade/headgrade/internal/checker"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the security header checks applied to every page",
	Run: func(cmd *cobra.Command, args []string) {
		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CHECK\tHEADER\tSEVERITY\tWEIGHT\tDESCRIPTION")
		for _, def := range checker.Catalog() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
				def.Name,
				def.Header,
				formatSeverityWithColor(def.Severity),
				def.Severity.Weight(),
				def.Description,
			)
		}
		if err := tw.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to flush catalog table: %v\n", err)
		}
	},
}

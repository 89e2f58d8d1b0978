package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/headgrade/headgrade/internal/checker"
)

var (
	gradeInput   string
	gradeFilter  string
	gradeSortKey string
	gradeSortDir string
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Evaluate crawled pages and print the score table",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		showChecks, _ := cmd.Flags().GetBool("checks")

		results, err := loadResults(gradeInput, gradeFilter, gradeSortKey, gradeSortDir)
		if err != nil {
			return err
		}

		switch format {
		case "table":
			printResultsTable(results)
			printSummary(results)
			if showChecks {
				for _, r := range results {
					printCheckBreakdown(r)
				}
			}
		case "json":
			out, err := checker.Export(results, checker.FormatJSON)
			if err != nil {
				return err
			}
			fmt.Println(out)
		case "summary":
			out, err := summarizeResultsJSON(results)
			if err != nil {
				return err
			}
			fmt.Println(out)
		default:
			return &UnsupportedFormatError{Format: format, Allowed: "table|json|summary"}
		}
		return nil
	},
}

func printResultsTable(results []checker.PageResult) {
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "URL\tSCORE\tGRADE\tPASS\tFAIL")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d\n",
			r.URL, r.Score, formatGradeWithColor(r.Grade()), r.PassCount, r.FailCount)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to flush results table: %v\n", err)
	}
}

func printSummary(results []checker.PageResult) {
	h := checker.Histogram(results)
	fmt.Println(colorInfo("Summary"))
	fmt.Printf("Pages: %d | Average score: %d | A: %s B: %s C: %s F: %s\n",
		len(results),
		checker.Average(results),
		colorSuccess(fmt.Sprintf("%d", h.A)),
		colorInfo(fmt.Sprintf("%d", h.B)),
		colorWarn(fmt.Sprintf("%d", h.C)),
		colorError(fmt.Sprintf("%d", h.F)),
	)
}

func printCheckBreakdown(r checker.PageResult) {
	fmt.Printf("\n%s %s (%d, %s)\n", colorInfo("Page:"), r.URL, r.Score, r.Grade())
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHECK\tSEVERITY\tRESULT\tDETAIL")
	for _, c := range r.Checks {
		status := colorSuccess("pass")
		if !c.Outcome.Pass {
			status = colorError("fail")
		}
		detail := c.Outcome.Detail
		if detail == "" {
			detail = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			c.Definition.Name, formatSeverityWithColor(c.Definition.Severity), status, detail)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to flush check table: %v\n", err)
	}
}

// summaryJSON is the machine-readable fleet summary used by tooling
// that wants aggregates without per-check payloads.
type summaryJSON struct {
	Pages     int                    `json:"pages"`
	Average   int                    `json:"average_score"`
	Histogram checker.GradeHistogram `json:"grades"`
}

func summarizeResultsJSON(results []checker.PageResult) (string, error) {
	payload, err := json.MarshalIndent(summaryJSON{
		Pages:     len(results),
		Average:   checker.Average(results),
		Histogram: checker.Histogram(results),
	}, jsonPrefix, jsonIndent)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func init() {
	gradeCmd.Flags().StringVarP(&gradeInput, "input", "i", "", "crawl output file to grade")
	_ = gradeCmd.MarkFlagRequired("input")
	gradeCmd.Flags().String("format", "table", "output format: table|json|summary")
	gradeCmd.Flags().Bool("checks", false, "print the per-check breakdown for every page")
	addViewFlags(gradeCmd.Flags(), &gradeFilter, &gradeSortKey, &gradeSortDir)
}

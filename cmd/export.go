package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/spf13/cobra"

	"github.com/headgrade/headgrade/internal/checker"
)

var (
	exportInput   string
	exportFilter  string
	exportSortKey string
	exportSortDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the graded result set to json, csv, md, or pdf",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		format = strings.ToLower(format)

		results, err := loadResults(exportInput, exportFilter, exportSortKey, exportSortDir)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println(colorWarn("Nothing to export: result set is empty after filtering."))
			return nil
		}

		if output == "" {
			output = filepath.Join(resultsDir, "security-report."+format)
		}

		var payload []byte
		switch format {
		case "json", "csv", "md":
			content, err := checker.Export(results, checker.ExportFormat(format))
			if err != nil {
				return err
			}
			payload = []byte(content)
		case "pdf":
			payload, err = buildPDFReport(results)
			if err != nil {
				return fmt.Errorf("failed to generate PDF report: %w", err)
			}
		default:
			return &UnsupportedFormatError{Format: format, Allowed: "json|csv|md|pdf"}
		}

		if output == "-" {
			fmt.Print(string(payload))
			return nil
		}
		if err := os.WriteFile(output, payload, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		fmt.Println(colorSuccess("Report generated."))
		fmt.Printf("%s %s\n", colorInfo("Output:"), output)
		fmt.Printf("%s %d\n", colorInfo("Pages:"), len(results))
		return nil
	},
}

// buildPDFReport renders the graded result set as a printable report.
// Unlike the core export formats, the PDF shape is presentation-only
// and carries the fleet summary plus per-page failing checks.
func buildPDFReport(results []checker.PageResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Security Header Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	h := checker.Histogram(results)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Pages: %d | Average score: %d", len(results), checker.Average(results)), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Grades: A=%d B=%d C=%d F=%d", h.A, h.B, h.C, h.F), "", 1, "", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Pages", "", 1, "", false, 0, "")
	pdf.Ln(1)

	const maxResults = 50
	for i, r := range results {
		if i == maxResults {
			pdf.SetFont("Arial", "I", 9)
			pdf.CellFormat(0, 6, fmt.Sprintf("... %d additional pages omitted ...", len(results)-maxResults), "", 1, "", false, 0, "")
			break
		}

		if pdf.GetY() > 250 {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(0, 7, fmt.Sprintf("%s - %d (%s)", r.URL, r.Score, r.Grade()), "", 1, "", true, 0, "")
		pdf.Ln(1)

		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("Checks passed: %d/%d", r.PassCount, r.PassCount+r.FailCount), "", 1, "", false, 0, "")

		for _, c := range r.Checks {
			if c.Outcome.Pass {
				continue
			}
			if pdf.GetY() > 270 {
				pdf.AddPage()
			}
			pdf.SetFont("Arial", "I", 8)
			detail := c.Outcome.Detail
			if detail == "" {
				detail = "failed"
			}
			pdf.MultiCell(0, 4, fmt.Sprintf("  - %s (%s): %s", c.Definition.Name, c.Definition.Severity, detail), "", "", false)
		}

		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "crawl output file to grade")
	_ = exportCmd.MarkFlagRequired("input")
	exportCmd.Flags().String("format", "json", "output format: json|csv|md|pdf")
	exportCmd.Flags().StringP("output", "o", "", "output file, - for stdout (default <results-dir>/security-report.<format>)")
	addViewFlags(exportCmd.Flags(), &exportFilter, &exportSortKey, &exportSortDir)
}

package checker

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ExportFormat names a supported export serialization.
type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatCSV      ExportFormat = "csv"
	FormatMarkdown ExportFormat = "md"
)

// ParseExportFormat validates a format supplied on the command line.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(s)) {
	case FormatJSON, FormatCSV, FormatMarkdown:
		return ExportFormat(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unsupported export format %q (use json|csv|md)", s)
}

type exportedCheck struct {
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Pass     bool   `json:"pass"`
	Value    string `json:"value"`
	Detail   string `json:"detail"`
}

type exportedPage struct {
	URL    string          `json:"url"`
	Score  int             `json:"score"`
	Grade  string          `json:"grade"`
	Checks []exportedCheck `json:"checks"`
}

// Export serializes an already filtered and sorted result set. The
// empty set always serializes to the empty string so callers can skip
// writing output files for it.
func Export(results []PageResult, format ExportFormat) (string, error) {
	if len(results) == 0 {
		return "", nil
	}
	switch format {
	case FormatJSON:
		return exportJSON(results)
	case FormatCSV:
		return exportCSV(results), nil
	case FormatMarkdown:
		return exportMarkdown(results), nil
	}
	return "", fmt.Errorf("unsupported export format %q", format)
}

func exportJSON(results []PageResult) (string, error) {
	pages := make([]exportedPage, 0, len(results))
	for _, r := range results {
		checks := make([]exportedCheck, 0, len(r.Checks))
		for _, c := range r.Checks {
			checks = append(checks, exportedCheck{
				Name:     c.Definition.Name,
				Severity: string(c.Definition.Severity),
				Pass:     c.Outcome.Pass,
				Value:    c.Outcome.Value,
				Detail:   c.Outcome.Detail,
			})
		}
		pages = append(pages, exportedPage{
			URL:    r.URL,
			Score:  r.Score,
			Grade:  r.Grade(),
			Checks: checks,
		})
	}

	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	return string(data), nil
}

func exportCSV(results []PageResult) string {
	var b strings.Builder
	b.WriteString("URL,Score,Grade,Pass,Fail\n")
	for _, r := range results {
		fmt.Fprintf(&b, "\"%s\",%d,%s,%d,%d\n", r.URL, r.Score, r.Grade(), r.PassCount, r.FailCount)
	}
	return b.String()
}

func exportMarkdown(results []PageResult) string {
	var b strings.Builder
	b.WriteString("| URL | Score | Grade | Pass | Fail |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, r := range results {
		fmt.Fprintf(&b, "| %s | %d | %s | %d | %d |\n",
			displayPath(r.URL), r.Score, r.Grade(), r.PassCount, r.FailCount)
	}
	return b.String()
}

// displayPath reduces a URL to its path portion for compact table rows,
// falling back to the raw string when it does not parse as a URL.
func displayPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	if u.Path == "" {
		return "/"
	}
	return u.Path
}

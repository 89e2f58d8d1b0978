package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/headgrade/headgrade/internal/checker"
)

// RunMetadata describes one crawl run stored alongside its pages.
type RunMetadata struct {
	RunID      string    `json:"run_id"`
	StartAt    time.Time `json:"started_at"`
	CompleteAt time.Time `json:"completed_at"`
	Seeds      []string  `json:"seeds"`
	TotalPages int       `json:"total_pages"`
}

// CrawlOutput is the on-disk shape written by the crawl command.
type CrawlOutput struct {
	Metadata RunMetadata         `json:"metadata"`
	Pages    []checker.PageInput `json:"pages"`
}

// loadPages reads crawled page records from path. Both the wrapped
// CrawlOutput document and a bare PageInput array are accepted, so
// output from external crawlers can be graded directly.
func loadPages(path string) ([]checker.PageInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var pages []checker.PageInput
		if err := json.Unmarshal(data, &pages); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return pages, nil
	}

	var output CrawlOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return output.Pages, nil
}

// loadResults aggregates the pages in path and applies the shared view
// flags (grade filter, sort key, direction).
func loadResults(path, grade, sortKey, sortDir string) ([]checker.PageResult, error) {
	pages, err := loadPages(path)
	if err != nil {
		return nil, err
	}

	results := checker.Aggregate(pages)
	if len(results) == 0 {
		return nil, &NoPagesError{Path: path}
	}

	key, err := checker.ParseSortKey(sortKey)
	if err != nil {
		return nil, err
	}
	dir, err := checker.ParseSortDir(sortDir)
	if err != nil {
		return nil, err
	}

	return checker.Sort(checker.FilterByGrade(results, grade), key, dir), nil
}

func addViewFlags(flags *pflag.FlagSet, grade, sortKey, sortDir *string) {
	flags.StringVar(grade, "grade", checker.GradeAll, "only include pages with this grade: all|A|B|C|F")
	flags.StringVar(sortKey, "sort", string(checker.SortByScore), "sort column: url|score|pass|fail")
	flags.StringVar(sortDir, "dir", string(checker.SortDesc), "sort direction: asc|desc")
}

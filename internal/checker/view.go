package checker

import (
	"fmt"
	"sort"
	"strings"
)

// SortKey selects the column results are ordered by.
type SortKey string

const (
	SortByURL   SortKey = "url"
	SortByScore SortKey = "score"
	SortByPass  SortKey = "pass"
	SortByFail  SortKey = "fail"
)

// SortDir selects ascending or descending order.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// GradeAll disables grade filtering.
const GradeAll = "all"

// ParseSortKey validates a sort key supplied on the command line.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(s)) {
	case SortByURL, SortByScore, SortByPass, SortByFail:
		return SortKey(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unsupported sort key %q (use url|score|pass|fail)", s)
}

// ParseSortDir validates a sort direction supplied on the command line.
func ParseSortDir(s string) (SortDir, error) {
	switch SortDir(strings.ToLower(s)) {
	case SortAsc, SortDesc:
		return SortDir(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unsupported sort direction %q (use asc|desc)", s)
}

// FilterByGrade keeps only results whose derived grade matches. The
// grade "all" (or empty) returns every result. A new slice is returned;
// the input is never mutated.
func FilterByGrade(results []PageResult, grade string) []PageResult {
	if grade == "" || strings.EqualFold(grade, GradeAll) {
		return append([]PageResult(nil), results...)
	}
	filtered := make([]PageResult, 0, len(results))
	for _, r := range results {
		if strings.EqualFold(r.Grade(), grade) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Sort returns a new slice ordered by the given key and direction. The
// sort is stable and never mutates the input sequence.
func Sort(results []PageResult, key SortKey, dir SortDir) []PageResult {
	sorted := append([]PageResult(nil), results...)
	less := lessFunc(key)
	if dir == SortDesc {
		inner := less
		less = func(a, b PageResult) bool { return inner(b, a) }
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func lessFunc(key SortKey) func(a, b PageResult) bool {
	switch key {
	case SortByScore:
		return func(a, b PageResult) bool { return a.Score < b.Score }
	case SortByPass:
		return func(a, b PageResult) bool { return a.PassCount < b.PassCount }
	case SortByFail:
		return func(a, b PageResult) bool { return a.FailCount < b.FailCount }
	default:
		return func(a, b PageResult) bool { return strings.Compare(a.URL, b.URL) < 0 }
	}
}

package checker

import "math"

// Aggregate evaluates and scores every page, preserving input order.
// Records without a URL are skipped; partial or streaming input is
// expected upstream, so a missing URL is not an error.
func Aggregate(pages []PageInput) []PageResult {
	results := make([]PageResult, 0, len(pages))
	for _, page := range pages {
		if page.URL == "" {
			continue
		}
		checks := Evaluate(page)
		passCount := 0
		for _, c := range checks {
			if c.Outcome.Pass {
				passCount++
			}
		}
		results = append(results, PageResult{
			URL:       page.URL,
			Headers:   page.Headers,
			Score:     Score(checks),
			Checks:    checks,
			PassCount: passCount,
			FailCount: len(checks) - passCount,
		})
	}
	return results
}

// Average returns the rounded mean score across results, 0 when empty.
func Average(results []PageResult) int {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	for _, r := range results {
		sum += r.Score
	}
	return int(math.Round(float64(sum) / float64(len(results))))
}

// GradeHistogram counts results per letter grade.
type GradeHistogram struct {
	A int `json:"A"`
	B int `json:"B"`
	C int `json:"C"`
	F int `json:"F"`
}

// Histogram tallies the derived grade of every result.
func Histogram(results []PageResult) GradeHistogram {
	var h GradeHistogram
	for _, r := range results {
		switch r.Grade() {
		case "A":
			h.A++
		case "B":
			h.B++
		case "C":
			h.C++
		default:
			h.F++
		}
	}
	return h
}

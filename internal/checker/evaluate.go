package checker

import "math"

// PageInput is one crawled page as delivered by the collector or any
// external crawl mechanism: the fetched URL, its response headers, and
// optionally the page markup as an opaque string.
type PageInput struct {
	URL     string    `json:"url"`
	Headers HeaderMap `json:"headers"`
	Content string    `json:"content,omitempty"`
}

// PageResult is the complete evaluation output for one page. Checks are
// ordered by catalog position; PassCount+FailCount always equals the
// catalog size.
type PageResult struct {
	URL       string
	Headers   HeaderMap
	Score     int
	Checks    []CheckResult
	PassCount int
	FailCount int
}

// Evaluate applies every catalog check, in catalog order, to the page's
// headers and content.
func Evaluate(page PageInput) []CheckResult {
	results := make([]CheckResult, 0, len(catalog))
	for _, def := range catalog {
		results = append(results, CheckResult{
			Definition: def,
			Outcome:    def.Evaluate(page.Headers, page.Content),
		})
	}
	return results
}

// Score converts check results into a weighted 0-100 score: the share
// of severity weight earned by passing checks, rounded half away from
// zero. An empty result set scores 0.
func Score(results []CheckResult) int {
	totalWeight := 0
	earnedWeight := 0
	for _, r := range results {
		w := r.Definition.Severity.Weight()
		totalWeight += w
		if r.Outcome.Pass {
			earnedWeight += w
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(float64(earnedWeight) * 100 / float64(totalWeight)))
}

// GradeFor maps a score to its letter grade using fixed thresholds.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 70:
		return "B"
	case score >= 50:
		return "C"
	default:
		return "F"
	}
}

// Grade returns the letter grade derived from the result's score.
func (r PageResult) Grade() string {
	return GradeFor(r.Score)
}

package checker

import (
	"reflect"
	"testing"
)

func TestAggregateSkipsRecordsWithoutURL(t *testing.T) {
	pages := []PageInput{
		{URL: "https://a.test/", Headers: HeaderMap{"x-frame-options": "DENY"}},
		{URL: "", Headers: HeaderMap{"x-frame-options": "DENY"}},
		{URL: "https://b.test/"},
	}

	results := Aggregate(pages)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].URL != "https://a.test/" || results[1].URL != "https://b.test/" {
		t.Errorf("input order not preserved: %s, %s", results[0].URL, results[1].URL)
	}
}

func TestAggregateCountsInvariant(t *testing.T) {
	pages := []PageInput{
		{URL: "https://a.test/"},
		{URL: "https://b.test/", Headers: HeaderMap{
			"strict-transport-security":    "max-age=63072000",
			"content-security-policy":      "default-src 'self'",
			"x-frame-options":              "DENY",
			"x-content-type-options":       "nosniff",
			"referrer-policy":              "no-referrer",
			"permissions-policy":           "geolocation=()",
			"x-xss-protection":             "0",
			"cross-origin-opener-policy":   "same-origin",
			"cross-origin-resource-policy": "same-origin",
		}},
	}

	for _, r := range Aggregate(pages) {
		if r.PassCount+r.FailCount != CatalogSize() {
			t.Errorf("%s: pass %d + fail %d != catalog size %d", r.URL, r.PassCount, r.FailCount, CatalogSize())
		}
		if r.Score < 0 || r.Score > 100 {
			t.Errorf("%s: score %d out of range", r.URL, r.Score)
		}
	}
}

func TestAggregateIdempotent(t *testing.T) {
	pages := []PageInput{
		{URL: "https://a.test/", Headers: HeaderMap{"x-content-type-options": "nosniff"}},
	}

	first := Aggregate(pages)
	second := Aggregate(pages)
	if len(first) != len(second) {
		t.Fatalf("result count changed between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Score != second[i].Score || first[i].PassCount != second[i].PassCount {
			t.Errorf("result %d differs between identical runs", i)
		}
		if !reflect.DeepEqual(first[i].Checks, second[i].Checks) {
			t.Errorf("result %d check outcomes differ between identical runs", i)
		}
	}
}

func TestAverage(t *testing.T) {
	if got := Average(nil); got != 0 {
		t.Errorf("empty set must average 0, got %d", got)
	}

	results := []PageResult{{Score: 90}, {Score: 71}}
	if got := Average(results); got != 81 {
		t.Errorf("expected 81 (80.5 rounds up), got %d", got)
	}
}

func TestHistogram(t *testing.T) {
	results := []PageResult{
		{Score: 95}, {Score: 90}, {Score: 75}, {Score: 55}, {Score: 10},
	}

	h := Histogram(results)
	want := GradeHistogram{A: 2, B: 1, C: 1, F: 1}
	if h != want {
		t.Errorf("histogram = %+v, want %+v", h, want)
	}
}

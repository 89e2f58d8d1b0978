package checker

import "testing"

func TestEvaluateCatalogOrder(t *testing.T) {
	page := PageInput{URL: "https://example.test/", Headers: HeaderMap{}}

	results := Evaluate(page)
	if len(results) != CatalogSize() {
		t.Fatalf("expected %d results, got %d", CatalogSize(), len(results))
	}
	for i, def := range Catalog() {
		if results[i].Definition.Name != def.Name {
			t.Errorf("position %d: expected %s, got %s", i, def.Name, results[i].Definition.Name)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	allPass := make([]CheckResult, 0, len(catalog))
	allFail := make([]CheckResult, 0, len(catalog))
	for _, def := range catalog {
		allPass = append(allPass, CheckResult{Definition: def, Outcome: CheckOutcome{Pass: true}})
		allFail = append(allFail, CheckResult{Definition: def, Outcome: CheckOutcome{Pass: false}})
	}

	if got := Score(allPass); got != 100 {
		t.Errorf("all passing checks must score 100, got %d", got)
	}
	if got := Score(allFail); got != 0 {
		t.Errorf("all failing checks must score 0, got %d", got)
	}
	if got := Score(nil); got != 0 {
		t.Errorf("empty result set must score 0, got %d", got)
	}
}

func TestScoreRounding(t *testing.T) {
	// One passing critical check out of one critical and one high:
	// 30/50 = 60 exactly; one passing high out of the same pair:
	// 20/50 = 40. A passing critical out of critical+medium rounds
	// 30/45*100 = 66.67 up to 67.
	critical := CheckDefinition{Name: "a", Severity: SeverityCritical}
	high := CheckDefinition{Name: "b", Severity: SeverityHigh}
	medium := CheckDefinition{Name: "c", Severity: SeverityMedium}

	results := []CheckResult{
		{Definition: critical, Outcome: CheckOutcome{Pass: true}},
		{Definition: medium, Outcome: CheckOutcome{Pass: false}},
	}
	if got := Score(results); got != 67 {
		t.Errorf("expected 67 after rounding 66.67, got %d", got)
	}

	results = []CheckResult{
		{Definition: critical, Outcome: CheckOutcome{Pass: false}},
		{Definition: high, Outcome: CheckOutcome{Pass: true}},
	}
	if got := Score(results); got != 40 {
		t.Errorf("expected 40, got %d", got)
	}
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89, "B"},
		{70, "B"},
		{69, "C"},
		{50, "C"},
		{49, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.score); got != tt.want {
			t.Errorf("GradeFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestEvaluateEndToEnd(t *testing.T) {
	page := PageInput{
		URL: "https://a.test/",
		Headers: HeaderMap{
			"strict-transport-security": "max-age=31536000",
			"content-security-policy":   "default-src 'self'",
			"x-frame-options":           "DENY",
			"x-content-type-options":    "nosniff",
			"referrer-policy":           "no-referrer",
		},
	}

	results := Evaluate(page)
	passCount := 0
	for _, r := range results {
		if r.Outcome.Pass {
			passCount++
		}
	}
	if passCount != 6 {
		t.Fatalf("expected 6 passing checks (HTTPS, HSTS, CSP, XFO, XCTO, Referrer), got %d", passCount)
	}

	// Earned weight: HTTPS+HSTS+CSP critical (3x30), XFO high (20),
	// XCTO+Referrer medium (2x15) = 140 out of 185 total.
	score := Score(results)
	if score != 76 {
		t.Errorf("expected score 76, got %d", score)
	}
	if GradeFor(score) != "B" {
		t.Errorf("expected grade B, got %s", GradeFor(score))
	}
}

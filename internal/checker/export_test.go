package checker

import (
	"encoding/json"
	"strings"
	"testing"
)

func exportFixture() []PageResult {
	pages := []PageInput{
		{URL: "https://a.test/login", Headers: HeaderMap{
			"strict-transport-security": "max-age=31536000",
			"content-security-policy":   "default-src 'self'",
			"x-frame-options":           "DENY",
			"x-content-type-options":    "nosniff",
			"referrer-policy":           "no-referrer",
		}},
		{URL: "https://b.test/", Headers: HeaderMap{}},
	}
	return Aggregate(pages)
}

func TestExportEmptySet(t *testing.T) {
	for _, format := range []ExportFormat{FormatJSON, FormatCSV, FormatMarkdown} {
		out, err := Export(nil, format)
		if err != nil {
			t.Errorf("%s: unexpected error %v", format, err)
		}
		if out != "" {
			t.Errorf("%s: empty input must export to empty string, got %q", format, out)
		}
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	results := exportFixture()

	out, err := Export(results, FormatJSON)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.HasPrefix(out, "[\n  {") {
		t.Errorf("expected 2-space pretty printed array, got prefix %q", out[:10])
	}

	var parsed []struct {
		URL    string `json:"url"`
		Score  int    `json:"score"`
		Grade  string `json:"grade"`
		Checks []struct {
			Name     string `json:"name"`
			Severity string `json:"severity"`
			Pass     bool   `json:"pass"`
		} `json:"checks"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(parsed) != len(results) {
		t.Fatalf("expected %d entries, got %d", len(results), len(parsed))
	}
	for i, entry := range parsed {
		if entry.URL != results[i].URL {
			t.Errorf("entry %d: url %q != %q", i, entry.URL, results[i].URL)
		}
		if entry.Score != results[i].Score {
			t.Errorf("entry %d: score %d != %d", i, entry.Score, results[i].Score)
		}
		if entry.Grade != results[i].Grade() {
			t.Errorf("entry %d: grade %q != %q", i, entry.Grade, results[i].Grade())
		}
		for j, c := range entry.Checks {
			if c.Pass != results[i].Checks[j].Outcome.Pass {
				t.Errorf("entry %d check %d: pass flag mismatch", i, j)
			}
		}
	}
}

func TestExportCSV(t *testing.T) {
	results := exportFixture()

	out, err := Export(results, FormatCSV)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "URL,Score,Grade,Pass,Fail" {
		t.Errorf("unexpected header row %q", lines[0])
	}
	if len(lines) != len(results)+1 {
		t.Fatalf("expected %d rows, got %d", len(results)+1, len(lines))
	}
	if !strings.HasPrefix(lines[1], "\"https://a.test/login\",") {
		t.Errorf("url must be double-quoted verbatim, got %q", lines[1])
	}
	if strings.Count(lines[1], "\"") != 2 {
		t.Errorf("only the url field is quoted: %q", lines[1])
	}
}

func TestExportMarkdown(t *testing.T) {
	results := exportFixture()

	out, err := Export(results, FormatMarkdown)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "| URL | Score | Grade | Pass | Fail |" {
		t.Errorf("unexpected header row %q", lines[0])
	}
	if lines[1] != "| --- | --- | --- | --- | --- |" {
		t.Errorf("missing separator row, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "| /login |") {
		t.Errorf("URL column should show only the path portion, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "| / |") {
		t.Errorf("root URL should render as /, got %q", lines[3])
	}
}

func TestDisplayPathFallback(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://a.test/deep/path", "/deep/path"},
		{"https://a.test", "/"},
		{"not a url", "not a url"},
		{"::broken::", "::broken::"},
	}
	for _, tt := range tests {
		if got := displayPath(tt.raw); got != tt.want {
			t.Errorf("displayPath(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseExportFormat(t *testing.T) {
	if _, err := ParseExportFormat("JSON"); err != nil {
		t.Errorf("format parsing should be case-insensitive: %v", err)
	}
	if _, err := ParseExportFormat("xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

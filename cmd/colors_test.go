package cmd

import (
	"testing"

	"github.com/fatih/color"

	"github.com/headgrade/headgrade/internal/checker"
)

func disableColor(t *testing.T) {
	t.Helper()
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = original
	})
}

func TestFormatGradeWithColor(t *testing.T) {
	disableColor(t)

	tests := []struct {
		name  string
		grade string
		want  string
	}{
		{name: "top grade", grade: "A", want: "A"},
		{name: "passing grade", grade: "B", want: "B"},
		{name: "weak grade", grade: "C", want: "C"},
		{name: "failing grade", grade: "F", want: "F"},
		{name: "unknown passthrough", grade: "X", want: "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatGradeWithColor(tt.grade); got != tt.want {
				t.Fatalf("formatGradeWithColor(%q) = %q, want %q", tt.grade, got, tt.want)
			}
		})
	}
}

func TestFormatSeverityWithColor(t *testing.T) {
	disableColor(t)

	for _, severity := range []checker.Severity{
		checker.SeverityCritical,
		checker.SeverityHigh,
		checker.SeverityMedium,
		checker.SeverityLow,
	} {
		if got := formatSeverityWithColor(severity); got != string(severity) {
			t.Errorf("formatSeverityWithColor(%s) = %q", severity, got)
		}
	}
}

package cmd

import (
	"github.com/fatih/color"

	"github.com/headgrade/headgrade/internal/checker"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

func formatGradeWithColor(grade string) string {
	switch grade {
	case "A":
		return colorSuccess(grade)
	case "B":
		return colorInfo(grade)
	case "C":
		return colorWarn(grade)
	case "F":
		return colorError(grade)
	default:
		return grade
	}
}

func formatSeverityWithColor(severity checker.Severity) string {
	switch severity {
	case checker.SeverityCritical:
		return colorError(string(severity))
	case checker.SeverityHigh:
		return colorWarn(string(severity))
	case checker.SeverityMedium:
		return colorInfo(string(severity))
	default:
		return string(severity)
	}
}

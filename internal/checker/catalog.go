package checker

import (
	"regexp"
	"strconv"
	"strings"
)

// Severity classifies the risk weight of a check.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// severityWeights binds each severity class to its scoring weight.
// The weights are a catalog-wide constant, not tunable per check.
var severityWeights = map[Severity]int{
	SeverityCritical: 30,
	SeverityHigh:     20,
	SeverityMedium:   15,
	SeverityLow:      10,
}

// Weight returns the scoring weight for the severity, 0 for unknown values.
func (s Severity) Weight() int {
	return severityWeights[s]
}

// CheckOutcome is the result of evaluating a single check against one page.
// Absence of a header is always modeled as a failed outcome with a detail
// string, never as an error.
type CheckOutcome struct {
	Pass   bool   `json:"pass"`
	Value  string `json:"value,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// CheckDefinition describes one entry of the security check catalog.
// Definitions are immutable and stateless; Evaluate must be a pure
// function of the supplied headers and content.
type CheckDefinition struct {
	Name        string
	Header      string
	Description string
	Severity    Severity
	Evaluate    func(headers HeaderMap, content string) CheckOutcome
}

// CheckResult pairs a catalog entry with its outcome for one page.
type CheckResult struct {
	Definition CheckDefinition
	Outcome    CheckOutcome
}

const (
	// maxValueLength caps header values echoed into outcomes; longer
	// values are cut and marked with an ellipsis.
	maxValueLength = 80

	// hstsMinMaxAge is one year in seconds, the floor below which an
	// HSTS max-age is flagged as advisory.
	hstsMinMaxAge = 31536000
)

var hstsMaxAgePattern = regexp.MustCompile(`max-age=(\d+)`)

// catalog is the fixed, ordered set of security header checks. Order is
// significant for display and export; scoring is order-independent.
var catalog = []CheckDefinition{
	{
		Name:        "HTTPS",
		Header:      "(URL scheme)",
		Description: "Page served over an encrypted transport",
		Severity:    SeverityCritical,
		Evaluate:    checkHTTPS,
	},
	{
		Name:        "Strict-Transport-Security",
		Header:      "Strict-Transport-Security",
		Description: "Forces browsers to keep using HTTPS for future visits",
		Severity:    SeverityCritical,
		Evaluate:    checkStrictTransportSecurity,
	},
	{
		Name:        "Content-Security-Policy",
		Header:      "Content-Security-Policy",
		Description: "Restricts the sources a page may load content from",
		Severity:    SeverityCritical,
		Evaluate:    checkContentSecurityPolicy,
	},
	{
		Name:        "X-Frame-Options",
		Header:      "X-Frame-Options",
		Description: "Controls whether the page may be embedded in a frame",
		Severity:    SeverityHigh,
		Evaluate:    checkFrameOptions,
	},
	{
		Name:        "X-Content-Type-Options",
		Header:      "X-Content-Type-Options",
		Description: "Disables MIME type sniffing",
		Severity:    SeverityMedium,
		Evaluate:    checkContentTypeOptions,
	},
	{
		Name:        "Referrer-Policy",
		Header:      "Referrer-Policy",
		Description: "Limits referrer information sent with outgoing requests",
		Severity:    SeverityMedium,
		Evaluate:    checkReferrerPolicy,
	},
	{
		Name:        "Permissions-Policy",
		Header:      "Permissions-Policy",
		Description: "Restricts access to powerful browser features",
		Severity:    SeverityMedium,
		Evaluate:    checkPermissionsPolicy,
	},
	{
		Name:        "X-XSS-Protection",
		Header:      "X-XSS-Protection",
		Description: "Legacy reflected-XSS filter toggle",
		Severity:    SeverityLow,
		Evaluate:    checkXSSProtection,
	},
	{
		Name:        "Cross-Origin-Opener-Policy",
		Header:      "Cross-Origin-Opener-Policy",
		Description: "Isolates the browsing context from cross-origin windows",
		Severity:    SeverityLow,
		Evaluate:    checkOpenerPolicy,
	},
	{
		Name:        "Cross-Origin-Resource-Policy",
		Header:      "Cross-Origin-Resource-Policy",
		Description: "Controls which origins may embed the resource",
		Severity:    SeverityLow,
		Evaluate:    checkResourcePolicy,
	},
}

// Catalog returns a copy of the check catalog in evaluation order.
func Catalog() []CheckDefinition {
	out := make([]CheckDefinition, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogSize is the number of checks applied to every page.
func CatalogSize() int {
	return len(catalog)
}

// truncateValue cuts long header values for display, appending an
// ellipsis marker when anything was removed.
func truncateValue(value string) string {
	runes := []rune(value)
	if len(runes) <= maxValueLength {
		return value
	}
	return string(runes[:maxValueLength]) + "..."
}

func checkHTTPS(_ HeaderMap, _ string) CheckOutcome {
	// Scheme enforcement happens in the collector; pages reach the
	// evaluator only after a successful HTTPS fetch.
	return CheckOutcome{
		Pass:   true,
		Detail: "verified via crawl URL scheme",
	}
}

func checkStrictTransportSecurity(headers HeaderMap, _ string) CheckOutcome {
	value, ok := headers.Find("Strict-Transport-Security")
	if !ok {
		return CheckOutcome{Pass: false, Detail: "header missing"}
	}

	// Presence alone passes; a short max-age is advisory only.
	maxAge := 0
	if m := hstsMaxAgePattern.FindStringSubmatch(value); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			maxAge = n
		}
	}

	outcome := CheckOutcome{Pass: true, Value: truncateValue(value)}
	if maxAge < hstsMinMaxAge {
		outcome.Detail = "max-age below one year (31536000 seconds)"
	}
	return outcome
}

func checkContentSecurityPolicy(headers HeaderMap, _ string) CheckOutcome {
	value, ok := headers.Find("Content-Security-Policy")
	if !ok {
		return CheckOutcome{
			Pass:   false,
			Detail: "header missing; pages are more exposed to XSS and injection attacks",
		}
	}

	outcome := CheckOutcome{Pass: true, Value: truncateValue(value)}
	if strings.Contains(value, "unsafe-inline") || strings.Contains(value, "unsafe-eval") {
		outcome.Detail = "policy allows unsafe-inline or unsafe-eval sources"
	}
	return outcome
}

func checkFrameOptions(headers HeaderMap, _ string) CheckOutcome {
	value, ok := headers.Find("X-Frame-Options")
	if !ok {
		return CheckOutcome{
			Pass:   false,
			Detail: "header missing; page can be framed by other sites (clickjacking risk)",
		}
	}
	return CheckOutcome{Pass: true, Value: value}
}

func checkContentTypeOptions(headers HeaderMap, _ string) CheckOutcome {
	value, ok := headers.Find("X-Content-Type-Options")
	if !ok {
		return CheckOutcome{Pass: false, Detail: "header missing"}
	}
	if !strings.EqualFold(value, "nosniff") {
		return CheckOutcome{
			Pass:   false,
			Value:  value,
			Detail: "value should be exactly 'nosniff'",
		}
	}
	return CheckOutcome{Pass: true, Value: value}
}

func checkReferrerPolicy(headers HeaderMap, _ string) CheckOutcome {
	value, ok := headers.Find("Referrer-Policy")
	if !ok {
		return CheckOutcome{Pass: false, Detail: "header missing"}
	}
	return CheckOutcome{Pass: true, Value: value}
}

func checkPermissionsPolicy(headers HeaderMap, _ string) CheckOutcome {
	value, ok := headers.Find("Permissions-Policy")
	if !ok {
		// Older deployments still ship the draft-era name.
		value, ok = headers.Find("Feature-Policy")
	}
	if !ok {
		return CheckOutcome{Pass: false, Detail: "header missing"}
	}
	return CheckOutcome{Pass: true, Value: truncateValue(value)}
}

func checkXSSProtection(headers HeaderMap, _ string) CheckOutcome {
	value, ok := headers.Find("X-XSS-Protection")
	if !ok {
		return CheckOutcome{
			Pass:   false,
			Detail: "header missing; legacy control superseded by Content-Security-Policy",
		}
	}
	return CheckOutcome{Pass: true, Value: value}
}

func checkOpenerPolicy(headers HeaderMap, _ string) CheckOutcome {
	value, ok := headers.Find("Cross-Origin-Opener-Policy")
	if !ok {
		return CheckOutcome{Pass: false, Detail: "header missing"}
	}
	return CheckOutcome{Pass: true, Value: value}
}

func checkResourcePolicy(headers HeaderMap, _ string) CheckOutcome {
	value, ok := headers.Find("Cross-Origin-Resource-Policy")
	if !ok {
		return CheckOutcome{Pass: false, Detail: "header missing"}
	}
	return CheckOutcome{Pass: true, Value: value}
}

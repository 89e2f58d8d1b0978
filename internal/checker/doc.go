// Package checker evaluates HTTP response headers collected for a set
// of crawled pages against a fixed catalog of security header checks.
//
// Architecture overview:
//
//   - HeaderMap.Find gives case-insensitive access to the headers the
//     collector captured for one page.
//   - The catalog is a fixed, ordered slice of CheckDefinition values,
//     each carrying a pure evaluation function. Evaluate applies the
//     whole catalog to one PageInput in catalog order.
//   - Score folds check outcomes into a weighted 0-100 score; GradeFor
//     derives the letter grade (A/B/C/F) from fixed thresholds.
//   - Aggregate runs Evaluate+Score across all pages, skipping records
//     without a URL; Average and Histogram summarize the fleet.
//   - FilterByGrade and Sort are pure view transformations over
//     aggregated results; Export serializes the shaped set to JSON,
//     CSV, or Markdown.
//
// Every function here is synchronous and free of I/O: absence of a
// header is modeled as a failed outcome with a detail string, never as
// an error, so the evaluation path has no fault branches at all. Pages
// are independent, results are immutable once produced, and re-running
// any operation on the same input yields identical output.
package checker

package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Aggregate merges every validator's results for one file into a single
// report: flatten, dedupe, bucket by severity, sort by line, and render the
// human-readable message. The output does not depend on the order validators
// completed, only on the order results are passed in.
func Aggregate(file string, results []ValidationResult) *AggregateReport {
	var all []Issue
	for _, r := range results {
		for _, issue := range append(append([]Issue{}, r.Errors...), r.Warnings...) {
			if issue.Source == "" {
				issue.Source = r.Source
			}
			all = append(all, issue)
		}
	}

	all = Dedupe(all)

	report := &AggregateReport{File: file}
	for _, issue := range all {
		switch issue.Severity {
		case SeverityCritical, SeverityError:
			report.Critical = append(report.Critical, issue)
		case SeverityRequired, SeverityWarning:
			report.Warnings = append(report.Warnings, issue)
		default:
			report.Style = append(report.Style, issue)
		}
	}

	sortByLine(report.Critical)
	sortByLine(report.Warnings)
	sortByLine(report.Style)

	report.Passed = len(report.Critical) == 0
	report.TotalIssues = len(all)
	report.Summary = buildSummary(report)
	report.Message = FormatReport(report)
	return report
}

// sortByLine orders issues by ascending line; file-level issues (line 0)
// sort first. The sort is stable so dedupe's first-wins order survives ties.
func sortByLine(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Line < issues[j].Line
	})
}

func buildSummary(r *AggregateReport) string {
	var parts []string
	if n := len(r.Critical); n > 0 {
		parts = append(parts, pluralize(n, "critical issue"))
	}
	if n := len(r.Warnings); n > 0 {
		parts = append(parts, pluralize(n, "warning"))
	}
	if n := len(r.Style); n > 0 {
		parts = append(parts, pluralize(n, "style issue"))
	}
	if len(parts) == 0 {
		return "No issues found"
	}
	return strings.Join(parts, ", ")
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// FormatReport renders the multi-section plain-text message attached to a
// report: pass/fail banner, one section per non-empty bucket, trailing
// summary, and an auto-fix call to action when any blocking or warning issue
// is fixable.
func FormatReport(r *AggregateReport) string {
	var b strings.Builder

	if r.Passed {
		fmt.Fprintf(&b, "✓ %s passed validation\n", r.File)
	} else {
		fmt.Fprintf(&b, "✗ %s failed validation\n", r.File)
	}

	writeSection(&b, "Critical (must fix)", r.Critical)
	writeSection(&b, "Warnings", r.Warnings)
	writeSection(&b, "Style", r.Style)

	fmt.Fprintf(&b, "\n%s\n", r.Summary)

	if anyFixable(r.Critical) || anyFixable(r.Warnings) {
		b.WriteString("Run 'nugate fix <file>' to apply automatic fixes.\n")
	}

	return b.String()
}

func writeSection(b *strings.Builder, title string, issues []Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, issue := range issues {
		b.WriteString("  " + FormatIssue(issue) + "\n")
	}
}

// FormatIssue renders one issue as "Line <n>: <message> [fix: <suggestion>]".
// File-level issues omit the line prefix.
func FormatIssue(issue Issue) string {
	var b strings.Builder
	if issue.Line > 0 {
		fmt.Fprintf(&b, "Line %d: ", issue.Line)
	}
	b.WriteString(issue.Message)
	if issue.Suggestion != "" {
		fmt.Fprintf(&b, " [fix: %s]", issue.Suggestion)
	}
	return b.String()
}

func anyFixable(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Fixable {
			return true
		}
	}
	return false
}

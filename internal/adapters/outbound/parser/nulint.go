package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nugate/nugate/internal/domain"
)

// NuLint parses linter output. Two shapes are produced depending on the
// linter's reporter:
//
//	script.nu:12:5: warning: unused variable `x`
//	[error] pipeline has no consumer (line 7)
//
// Bare `line:col` lines update the most recently opened issue, and
// help/hint/"did you mean" lines attach to it as a suggestion.
type NuLint struct{}

func (NuLint) Name() string { return "nulint" }

var (
	nulintPathRe    = regexp.MustCompile(`^(.+?):(\d+):(\d+):\s*(?:(error|warning|info):\s*)?(.+)$`)
	nulintTaggedRe  = regexp.MustCompile(`^\[(error|warning|info)\]\s+(.+?)(?:\s+\(line\s+(\d+)\))?$`)
	nulintBareLocRe = regexp.MustCompile(`^\s*(\d+):(\d+)\s*$`)
	nulintSuggestRe = regexp.MustCompile(`^\s*(?:help|hint|did you mean)[:,]?\s*(.+)$`)
)

func (NuLint) Parse(raw string) []domain.Issue {
	var a acc

	for _, line := range splitLines(raw) {
		if isDecoration(line) {
			continue
		}
		switch {
		case nulintPathRe.MatchString(line):
			m := nulintPathRe.FindStringSubmatch(line)
			lineNo, _ := strconv.Atoi(m[2])
			col, _ := strconv.Atoi(m[3])
			severity := domain.SeverityWarning
			if m[4] != "" {
				severity = domain.MapToolSeverity(m[4])
			}
			a.openIssue(domain.Issue{
				Severity: severity,
				Rule:     "lint_violation",
				Line:     lineNo,
				Column:   col,
				Message:  strings.TrimSpace(m[5]),
				Category: domain.CategoryGuideline,
			})

		case nulintTaggedRe.MatchString(line):
			m := nulintTaggedRe.FindStringSubmatch(line)
			lineNo, _ := strconv.Atoi(m[3])
			a.openIssue(domain.Issue{
				Severity: domain.MapToolSeverity(m[1]),
				Rule:     "lint_violation",
				Line:     lineNo,
				Message:  strings.TrimSpace(m[2]),
				Category: domain.CategoryGuideline,
			})

		case nulintBareLocRe.MatchString(line):
			m := nulintBareLocRe.FindStringSubmatch(line)
			lineNo, _ := strconv.Atoi(m[1])
			col, _ := strconv.Atoi(m[2])
			a.setLocation(lineNo, col)

		case nulintSuggestRe.MatchString(line):
			m := nulintSuggestRe.FindStringSubmatch(line)
			a.attachSuggestion(strings.TrimSpace(m[1]))
		}
	}

	return a.issues
}

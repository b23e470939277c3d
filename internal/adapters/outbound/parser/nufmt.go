package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nugate/nugate/internal/domain"
)

// NuFmt parses the formatter's check-mode output: freeform warning/error
// lines, optionally trailed by a line number, plus diff headers:
//
//	Warning: inconsistent indentation (line 14)
//	Diff in /tmp/script.nu at line 3:
//	error: could not parse input
//
// Formatting findings are fixable: the formatter's write mode applies them.
type NuFmt struct{}

func (NuFmt) Name() string { return "nufmt" }

var (
	nufmtDiffRe    = regexp.MustCompile(`^Diff in .+ at line (\d+):`)
	nufmtWarnRe    = regexp.MustCompile(`^(?:Warning|warning):\s*(.+?)(?:\s+\(line\s+(\d+)\))?$`)
	nufmtErrorRe   = regexp.MustCompile(`^(?:Error|error):\s*(.+?)(?:\s+\(line\s+(\d+)\))?$`)
	nufmtSuggestRe = regexp.MustCompile(`^\s*(?:help|hint):\s*(.+)$`)
)

func (NuFmt) Parse(raw string) []domain.Issue {
	var a acc

	for _, line := range splitLines(raw) {
		switch {
		case nufmtDiffRe.MatchString(line):
			m := nufmtDiffRe.FindStringSubmatch(line)
			lineNo, _ := strconv.Atoi(m[1])
			a.openIssue(domain.Issue{
				Severity: domain.SeverityWarning,
				Rule:     "format_violation",
				Line:     lineNo,
				Message:  "file is not formatted",
				Category: domain.CategoryStyle,
				Fixable:  true,
			})

		case nufmtErrorRe.MatchString(line):
			m := nufmtErrorRe.FindStringSubmatch(line)
			lineNo, _ := strconv.Atoi(m[2])
			a.openIssue(domain.Issue{
				Severity: domain.SeverityCritical,
				Rule:     "format_error",
				Line:     lineNo,
				Message:  strings.TrimSpace(m[1]),
				Category: domain.CategoryStyle,
			})

		case nufmtWarnRe.MatchString(line):
			m := nufmtWarnRe.FindStringSubmatch(line)
			lineNo, _ := strconv.Atoi(m[2])
			a.openIssue(domain.Issue{
				Severity: domain.SeverityWarning,
				Rule:     "format_violation",
				Line:     lineNo,
				Message:  strings.TrimSpace(m[1]),
				Category: domain.CategoryStyle,
				Fixable:  true,
			})

		case nufmtSuggestRe.MatchString(line):
			m := nufmtSuggestRe.FindStringSubmatch(line)
			a.attachSuggestion(strings.TrimSpace(m[1]))
		}
	}

	return a.issues
}

// Package parser converts the heterogeneous text output of external analysis
// tools into canonical issues. Each tool dialect tries an ordered list of
// pattern rules per line; the first rule that matches wins. When nothing was
// extracted but the tool exited non-zero, a single generic issue is
// synthesized so a failure is never silently dropped.
package parser

import (
	"strings"

	"github.com/nugate/nugate/internal/adapters/outbound/toolrunner"
	"github.com/nugate/nugate/internal/domain"
)

// Dialect parses one tool's output format.
type Dialect interface {
	Name() string
	Parse(raw string) []domain.Issue
}

const fallbackExcerptLen = 300

// FromInvocation converts a finished tool invocation into issues: absence
// degrades to a single info notice, a timeout to a single blocking failure,
// and unrecognized failure output to the dialect's generic fallback issue.
func FromInvocation(d Dialect, inv toolrunner.Invocation) []domain.Issue {
	if inv.Missing {
		return []domain.Issue{{
			Severity: domain.SeverityInfo,
			Rule:     "tool_missing",
			Message:  inv.Tool + " is not installed; skipping this check",
			Category: domain.CategoryReference,
			Source:   inv.Tool,
		}}
	}
	if inv.TimedOut {
		return []domain.Issue{{
			Severity: domain.SeverityCritical,
			Rule:     inv.Tool + "_timeout",
			Message:  inv.Tool + " timed out",
			Category: domain.CategoryReference,
			Source:   inv.Tool,
		}}
	}

	issues := d.Parse(inv.Output())
	for i := range issues {
		if issues[i].Source == "" {
			issues[i].Source = inv.Tool
		}
	}

	if len(issues) == 0 && inv.Failed() {
		issues = append(issues, Fallback(d.Name(), inv.Output(), inv.Tool))
	}
	return issues
}

// Fallback synthesizes the single generic issue emitted when a failing
// tool's output matched no dialect rule.
func Fallback(dialect, raw, source string) domain.Issue {
	return domain.Issue{
		Severity: domain.SeverityCritical,
		Rule:     dialect + "_error",
		Message:  truncate(strings.TrimSpace(raw), fallbackExcerptLen),
		Category: domain.CategorySyntax,
		Source:   source,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// acc is the explicit accumulator threaded through a dialect's line fold. It
// tracks the currently open issue so follow-up lines (help text, bare
// locations) can attach to it.
type acc struct {
	issues []domain.Issue
	open   bool
}

// openIssue closes any current issue and starts a new one.
func (a *acc) openIssue(issue domain.Issue) {
	a.issues = append(a.issues, issue)
	a.open = true
}

// current returns the issue follow-up lines attach to, or nil when no issue
// is open.
func (a *acc) current() *domain.Issue {
	if !a.open || len(a.issues) == 0 {
		return nil
	}
	return &a.issues[len(a.issues)-1]
}

// attachSuggestion appends help text to the open issue's suggestion rather
// than replacing it; multiple hint lines accumulate.
func (a *acc) attachSuggestion(text string) {
	cur := a.current()
	if cur == nil || text == "" {
		return
	}
	if cur.Suggestion == "" {
		cur.Suggestion = text
		return
	}
	cur.Suggestion += " " + text
}

// setLocation updates the open issue's position; a bare location line never
// starts a new issue.
func (a *acc) setLocation(line, col int) {
	if cur := a.current(); cur != nil {
		cur.Line = line
		cur.Column = col
	}
}

// decorationRunes are the box-drawing characters tools use for visual
// framing; lines made only of these carry no diagnostic content.
const decorationRunes = "─│╭╮╰╯┬┴├┤·×╳ \t"

func isDecoration(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	for _, r := range line {
		if !strings.ContainsRune(decorationRunes, r) {
			return false
		}
	}
	return true
}

// splitLines returns the non-blank lines of raw output.
func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

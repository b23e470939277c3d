package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nugate/nugate/internal/domain"
)

// NuCheck parses the box-drawn diagnostic blocks emitted by the syntax
// checker, e.g.:
//
//	Error: nu::parser::parse_mismatch
//
//	  × Type mismatch during operation.
//	   ╭─[/tmp/script.nu:3:12]
//	 3 │ def main [] { 1 + "a" }
//	   ·             ──┬──
//	   ·               ╰── expected int
//	   ╰────
//	  help: change the right-hand side to an int
type NuCheck struct{}

func (NuCheck) Name() string { return "nucheck" }

var (
	nucheckHeaderRe   = regexp.MustCompile(`^(Error|Warning)(?::\s*([\w:]+))?\s*$`)
	nucheckInlineRe   = regexp.MustCompile(`^(Error|Warning):\s+(.+)$`)
	nucheckMessageRe  = regexp.MustCompile(`^\s*×\s*(.+)$`)
	nucheckLocationRe = regexp.MustCompile(`╭─\[.*?:(\d+):(\d+)\]`)
	nucheckHelpRe     = regexp.MustCompile(`^\s*(?:help|hint):\s*(.+)$`)
)

func (NuCheck) Parse(raw string) []domain.Issue {
	var a acc

	for _, line := range splitLines(raw) {
		switch {
		case nucheckLocationRe.MatchString(line):
			m := nucheckLocationRe.FindStringSubmatch(line)
			lineNo, _ := strconv.Atoi(m[1])
			col, _ := strconv.Atoi(m[2])
			a.setLocation(lineNo, col)

		case nucheckHelpRe.MatchString(line):
			m := nucheckHelpRe.FindStringSubmatch(line)
			a.attachSuggestion(strings.TrimSpace(m[1]))

		case nucheckHeaderRe.MatchString(line):
			m := nucheckHeaderRe.FindStringSubmatch(line)
			a.openIssue(nucheckIssue(m[1], m[2], ""))

		case nucheckInlineRe.MatchString(line):
			m := nucheckInlineRe.FindStringSubmatch(line)
			if code := strings.TrimSpace(m[2]); strings.HasPrefix(code, "nu::") {
				a.openIssue(nucheckIssue(m[1], code, ""))
			} else {
				a.openIssue(nucheckIssue(m[1], "", code))
			}

		case nucheckMessageRe.MatchString(line):
			m := nucheckMessageRe.FindStringSubmatch(line)
			if cur := a.current(); cur != nil && cur.Message == "" {
				cur.Message = strings.TrimSpace(m[1])
			}

		default:
			// Code excerpts and box framing carry no diagnostic content.
		}
	}

	// Headers that never received a message line still count as issues.
	issues := a.issues
	for i := range issues {
		if issues[i].Message == "" {
			issues[i].Message = issues[i].Rule
		}
	}
	return issues
}

func nucheckIssue(level, code, message string) domain.Issue {
	rule := "syntax_error"
	if code != "" {
		rule = code
	}
	severity := domain.SeverityCritical
	if level == "Warning" {
		severity = domain.SeverityWarning
	}
	return domain.Issue{
		Severity: severity,
		Rule:     rule,
		Message:  message,
		Category: domain.CategorySyntax,
	}
}

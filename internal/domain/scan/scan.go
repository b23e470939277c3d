// Package scan implements the heuristic passes that run against script
// content without invoking any external tool. Each pass is an independent
// walk over the line list; severities come from the domain rule table.
package scan

import (
	"github.com/nugate/nugate/internal/domain"
)

// Source is the validator name attached to heuristic issues.
const Source = "heuristics"

type pass func(content string, cfg domain.GateConfig) []domain.Issue

// passes runs in a fixed order so repeated scans of identical content yield
// identical output.
var passes = []pass{
	ScanAnnotations,
	ScanDocs,
	ScanHelpFlag,
	ScanSecrets,
	ScanDeprecated,
	ScanStyle,
}

// Run executes every heuristic pass against the content, dropping issues for
// rules disabled in config.
func Run(content string, cfg domain.GateConfig) []domain.Issue {
	var issues []domain.Issue
	for _, p := range passes {
		for _, issue := range p(content, cfg) {
			if cfg.RuleDisabled(issue.Rule) {
				continue
			}
			issues = append(issues, issue)
		}
	}
	return issues
}

// newIssue builds an issue with severity, category, and fixability resolved
// from the rule table.
func newIssue(rule string, line int, message, suggestion string) domain.Issue {
	info := domain.Rule(rule)
	return domain.Issue{
		Severity:   info.Severity,
		Rule:       rule,
		Line:       line,
		Message:    message,
		Suggestion: suggestion,
		Category:   info.Category,
		Source:     Source,
		Fixable:    info.Fixable,
	}
}

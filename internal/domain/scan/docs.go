package scan

import (
	"fmt"
	"strings"

	"github.com/nugate/nugate/internal/domain"
)

// docWindow is how many lines above a declaration are searched for a doc
// comment before giving up.
const docWindow = 10

// ScanDocs requires a `#` doc comment directly above every exported command.
// The backward walk skips blank lines and stops at the first line that is
// neither blank nor a comment.
func ScanDocs(content string, _ domain.GateConfig) []domain.Issue {
	lines := splitLines(content)
	var issues []domain.Issue

	for _, d := range Decls(content) {
		if !d.Exported {
			continue
		}
		if hasDocComment(lines, d.Line) {
			continue
		}
		issues = append(issues, newIssue(
			"missing_doc", d.Line,
			fmt.Sprintf("command %q has no documentation comment", d.Name),
			fmt.Sprintf("add a `# ...` comment above `def %s` describing what it does", d.Name),
		))
	}

	return issues
}

func hasDocComment(lines []string, declLine int) bool {
	// declLine is 1-indexed; start at the line above the declaration.
	for i := declLine - 2; i >= 0 && i >= declLine-2-docWindow; i-- {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		return strings.HasPrefix(trimmed, "#")
	}
	return false
}

// ScanHelpFlag requires the `main` entry point, when present, to expose a
// --help flag parameter.
func ScanHelpFlag(content string, _ domain.GateConfig) []domain.Issue {
	for _, d := range Decls(content) {
		if d.Name != "main" {
			continue
		}
		if d.HasFlag("--help") {
			return nil
		}
		return []domain.Issue{newIssue(
			"missing_help_flag", d.Line,
			"main command does not expose a --help flag",
			"add `--help (-h)` to the main parameter list",
		)}
	}
	return nil
}

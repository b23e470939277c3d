package scan

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/nugate/nugate/internal/domain"
)

type deprecation struct {
	old         string
	replacement string
	re          *regexp.Regexp
}

// deprecations is sorted by command name so scan output is deterministic.
var deprecations = func() []deprecation {
	olds := make([]string, 0, len(domain.DeprecatedCommands))
	for old := range domain.DeprecatedCommands {
		olds = append(olds, old)
	}
	sort.Strings(olds)

	out := make([]deprecation, 0, len(olds))
	for _, old := range olds {
		out = append(out, deprecation{
			old:         old,
			replacement: domain.DeprecatedCommands[old],
			re:          regexp.MustCompile(`(^|[\s(|;{])` + regexp.QuoteMeta(old) + `($|[\s)|;}])`),
		})
	}
	return out
}()

// ScanDeprecated flags usage of removed or renamed built-in commands.
func ScanDeprecated(content string, _ domain.GateConfig) []domain.Issue {
	var issues []domain.Issue

	for i, line := range splitLines(content) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		for _, dep := range deprecations {
			if !dep.re.MatchString(line) {
				continue
			}
			issues = append(issues, newIssue(
				"deprecated_api", i+1,
				fmt.Sprintf("%q is deprecated", dep.old),
				fmt.Sprintf("use %s instead", dep.replacement),
			))
		}
	}

	return issues
}

package scan

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nugate/nugate/internal/domain"
)

// assignmentRe matches `let name =`, `mut name =`, `const name =`, and bare
// `name =` assignments, capturing the left-hand identifier.
var assignmentRe = regexp.MustCompile(`^\s*(?:let\s+|mut\s+|const\s+)?([A-Za-z_][\w-]*)\s*=`)

var quotedLiteralRe = regexp.MustCompile(`["'][^"']+["']`)

// ScanSecrets flags assignments of quoted literals to credential-looking
// identifiers. Lines that reference $env are exempt: reading a secret from
// the environment is the pattern this rule pushes toward.
func ScanSecrets(content string, cfg domain.GateConfig) []domain.Issue {
	keywords := cfg.AllSecretKeywords()
	var issues []domain.Issue

	for i, line := range splitLines(content) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.Contains(line, "$env") {
			continue
		}
		m := assignmentRe.FindStringSubmatch(line)
		if m == nil || !quotedLiteralRe.MatchString(line) {
			continue
		}

		ident := strings.ToLower(m[1])
		for _, kw := range keywords {
			if strings.Contains(ident, kw) {
				issues = append(issues, newIssue(
					"hardcoded_secret", i+1,
					fmt.Sprintf("possible hardcoded secret assigned to %q", m[1]),
					fmt.Sprintf("read the value from the environment, e.g. `let %s = $env.%s`", m[1], strings.ToUpper(m[1])),
				))
				break
			}
		}
	}

	return issues
}

package scan

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"

	"github.com/nugate/nugate/internal/domain"
)

// ScanStyle covers the non-blocking cosmetic rules: line length, trailing
// whitespace, and command naming.
func ScanStyle(content string, cfg domain.GateConfig) []domain.Issue {
	var issues []domain.Issue

	maxLen := cfg.MaxLineLength
	if maxLen == 0 {
		maxLen = domain.DefaultConfig().MaxLineLength
	}

	for i, line := range splitLines(content) {
		if n := len([]rune(line)); n > maxLen {
			issues = append(issues, newIssue(
				"line_too_long", i+1,
				fmt.Sprintf("line is %d characters (max %d)", n, maxLen),
				"",
			))
		}
		if line != "" && strings.TrimRight(line, " \t") != line {
			issues = append(issues, newIssue(
				"trailing_whitespace", i+1,
				"line has trailing whitespace",
				"",
			))
		}
	}

	for _, d := range Decls(content) {
		if !hasUpper(d.Name) {
			continue
		}
		issues = append(issues, newIssue(
			"command_naming", d.Line,
			fmt.Sprintf("command name %q is not snake_case", d.Name),
			fmt.Sprintf("rename to %q", toSnake(d.Name)),
		))
	}

	return issues
}

func hasUpper(name string) bool {
	for _, r := range name {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func toSnake(name string) string {
	words := camelcase.Split(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

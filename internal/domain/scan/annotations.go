package scan

import (
	"fmt"
	"strings"

	"github.com/nugate/nugate/internal/domain"
)

// ScanAnnotations checks that every exported command declares a return type
// and that every positional parameter carries a `name: type` annotation.
func ScanAnnotations(content string, _ domain.GateConfig) []domain.Issue {
	var issues []domain.Issue

	for _, d := range Decls(content) {
		if !d.Exported {
			continue
		}

		if !d.HasReturnType() {
			issues = append(issues, newIssue(
				"missing_return_type", d.Line,
				fmt.Sprintf("command %q has no return type annotation", d.Name),
				fmt.Sprintf("declare the output shape, e.g. `def %s []: nothing -> string`", d.Name),
			))
		}

		for _, param := range d.PositionalParams() {
			if strings.Contains(param, ":") {
				continue
			}
			issues = append(issues, newIssue(
				"missing_param_type", d.Line,
				fmt.Sprintf("parameter %q of command %q has no type annotation", param, d.Name),
				fmt.Sprintf("annotate the parameter, e.g. `%s: string`", param),
			))
		}
	}

	return issues
}

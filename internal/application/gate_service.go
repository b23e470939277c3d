package application

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nugate/nugate/internal/adapters/outbound/parser"
	"github.com/nugate/nugate/internal/adapters/outbound/toolrunner"
	"github.com/nugate/nugate/internal/domain"
	"github.com/nugate/nugate/internal/domain/scan"
)

// GateService implements the pre-write gate: a strictly sequential,
// short-circuiting pipeline. Syntax runs first because the structural
// heuristics assume parseable, line-numbered source; on malformed input they
// would produce misleading results.
type GateService struct {
	runner *toolrunner.Runner
	cfg    domain.GateConfig
}

func NewGateService(runner *toolrunner.Runner, cfg domain.GateConfig) *GateService {
	return &GateService{runner: runner, cfg: cfg}
}

// Evaluate decides whether the proposed content may be written to filePath.
// Evaluation never fails: every internal problem degrades to either an
// approval (out of scope) or a denial with a formatted reason.
func (s *GateService) Evaluate(ctx context.Context, filePath, content string) *domain.GateDecision {
	// 1. Empty content and non-governed files are out of scope for the gate.
	if content == "" || !s.cfg.Governs(filePath) {
		return domain.Approve()
	}

	// 2. Syntax first, short-circuiting on any blocking issue.
	if syntaxIssues := s.checkSyntax(ctx, content); hasBlocking(syntaxIssues) {
		return domain.Deny(formatSyntaxErrors(blockingOnly(syntaxIssues)))
	}

	// 3. Structural heuristics against the proposed content.
	issues := scan.Run(content, s.cfg)

	// 4. Missing types and docs block; style and info do not.
	if hasBlocking(issues) {
		return domain.Deny(formatViolations(issues))
	}

	// 5. Approve.
	return domain.Approve()
}

// checkSyntax runs the syntax tool against a temp copy of the proposed
// content. A missing tool or an unwritable temp file skips the stage rather
// than blocking the write.
func (s *GateService) checkSyntax(ctx context.Context, content string) []domain.Issue {
	tmp, err := os.CreateTemp("", "nugate-*.nu")
	if err != nil {
		return nil
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return nil
	}
	tmp.Close()

	tc := s.cfg.Tool("syntax")
	inv := s.runner.Run(ctx, toolrunner.Spec{
		Name:    tc.Bin,
		Bin:     tc.Bin,
		Args:    tc.Args,
		Timeout: tc.Timeout(),
	}, tmp.Name())
	if inv.Missing {
		return nil
	}

	return parser.FromInvocation(parser.NuCheck{}, inv)
}

func hasBlocking(issues []domain.Issue) bool {
	for _, issue := range issues {
		if domain.Blocking(issue.Severity) {
			return true
		}
	}
	return false
}

func blockingOnly(issues []domain.Issue) []domain.Issue {
	var out []domain.Issue
	for _, issue := range issues {
		if domain.Blocking(issue.Severity) {
			out = append(out, issue)
		}
	}
	return out
}

// formatSyntaxErrors renders the denial message for the syntax stage. Only
// syntax issues appear: no structural heuristic ran.
func formatSyntaxErrors(issues []domain.Issue) string {
	var b strings.Builder
	b.WriteString("Syntax errors must be fixed before this file can be written:\n")
	for _, issue := range issues {
		b.WriteString("  " + domain.FormatIssue(issue) + "\n")
	}
	return b.String()
}

// formatViolations renders the structural denial message, grouped by
// severity with fix suggestions attached.
func formatViolations(issues []domain.Issue) string {
	groups := []struct {
		title      string
		severities []string
	}{
		{"Critical", []string{domain.SeverityCritical, domain.SeverityError}},
		{"Required", []string{domain.SeverityRequired}},
		{"Warnings", []string{domain.SeverityWarning}},
	}

	var b strings.Builder
	b.WriteString("Guideline violations must be fixed before this file can be written:\n")
	for _, g := range groups {
		var section []domain.Issue
		for _, issue := range issues {
			for _, sev := range g.severities {
				if issue.Severity == sev {
					section = append(section, issue)
				}
			}
		}
		if len(section) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", g.title)
		for _, issue := range section {
			b.WriteString("  " + domain.FormatIssue(issue) + "\n")
		}
	}
	return b.String()
}

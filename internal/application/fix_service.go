package application

import (
	"context"

	"github.com/nugate/nugate/internal/adapters/outbound/toolrunner"
	"github.com/nugate/nugate/internal/domain"
)

// FixService applies the only remediation this system performs itself:
// delegating to the external formatter's write mode, then re-checking. All
// other fixes stay suggestions.
type FixService struct {
	runner  *toolrunner.Runner
	reports *ReportService
	cfg     domain.GateConfig
}

func NewFixService(runner *toolrunner.Runner, reports *ReportService, cfg domain.GateConfig) *FixService {
	return &FixService{runner: runner, reports: reports, cfg: cfg}
}

// Fix checks the file, runs the formatter in write mode, and checks again.
// The write is sequenced strictly after the before-check completes, so no
// writer ever runs concurrently with the validators.
func (s *FixService) Fix(ctx context.Context, filePath string) *domain.FixOutcome {
	outcome := &domain.FixOutcome{File: filePath}
	outcome.Before = s.reports.Check(ctx, filePath)

	tc := s.cfg.Tool("format")
	inv := s.runner.Run(ctx, toolrunner.Spec{
		Name:    tc.Bin,
		Bin:     tc.Bin,
		Args:    writeModeArgs(tc.Args),
		Timeout: tc.Timeout(),
	}, filePath)
	outcome.FormatterRan = !inv.Missing && !inv.TimedOut

	outcome.After = s.reports.Check(ctx, filePath)
	return outcome
}

// writeModeArgs strips the check-only flag so the formatter rewrites the
// file in place.
func writeModeArgs(args []string) []string {
	var out []string
	for _, a := range args {
		if a == "--check" || a == "--diff" {
			continue
		}
		out = append(out, a)
	}
	return out
}

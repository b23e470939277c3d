package application

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/nugate/nugate/internal/adapters/outbound/parser"
	"github.com/nugate/nugate/internal/adapters/outbound/toolrunner"
	"github.com/nugate/nugate/internal/domain"
	"github.com/nugate/nugate/internal/domain/scan"
)

// ReportService implements the post-write path: the four tool-backed
// validators plus the heuristic scanners run concurrently against the
// persisted file, and their results are aggregated into one report once all
// of them complete. Results land in fixed slots so the report never depends
// on completion order.
type ReportService struct {
	runner *toolrunner.Runner
	cfg    domain.GateConfig
}

func NewReportService(runner *toolrunner.Runner, cfg domain.GateConfig) *ReportService {
	return &ReportService{runner: runner, cfg: cfg}
}

// Check validates a persisted file and returns the aggregate report. It
// never fails outright: file errors and validator failures all surface as
// issues inside the report.
func (s *ReportService) Check(ctx context.Context, filePath string) *domain.AggregateReport {
	if !s.cfg.Governs(filePath) {
		return fileErrorReport(filePath, fmt.Sprintf("%s is not a governed script file", filePath))
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fileErrorReport(filePath, fmt.Sprintf("cannot read %s: %v", filePath, err))
	}
	content := string(data)

	validators := []struct {
		name    string
		dialect parser.Dialect
	}{
		{"syntax", parser.NuCheck{}},
		{"lint", parser.NuLint{}},
		{"format", parser.NuFmt{}},
		{"ide", parser.NewIDE(content)},
	}

	results := make([]domain.ValidationResult, len(validators)+1)

	g, gctx := errgroup.WithContext(ctx)
	for i, v := range validators {
		g.Go(func() error {
			tc := s.cfg.Tool(v.name)
			inv := s.runner.Run(gctx, toolrunner.Spec{
				Name:    tc.Bin,
				Bin:     tc.Bin,
				Args:    tc.Args,
				Timeout: tc.Timeout(),
			}, filePath)
			results[i] = toResult(v.name, filePath, parser.FromInvocation(v.dialect, inv))
			return nil
		})
	}
	g.Go(func() error {
		results[len(validators)] = toResult(scan.Source, filePath, scan.Run(content, s.cfg))
		return nil
	})

	// Join barrier: aggregation starts only after every validator finished.
	_ = g.Wait()

	return domain.Aggregate(filePath, results)
}

// toResult wraps a validator's issues into an immutable ValidationResult,
// splitting blocking issues from the rest.
func toResult(source, file string, issues []domain.Issue) domain.ValidationResult {
	result := domain.ValidationResult{Source: source, File: file}
	for _, issue := range issues {
		if domain.Blocking(issue.Severity) {
			result.Errors = append(result.Errors, issue)
		} else {
			result.Warnings = append(result.Warnings, issue)
		}
	}
	return result
}

// fileErrorReport builds the single-issue report for an unreadable or
// non-governed target.
func fileErrorReport(filePath, message string) *domain.AggregateReport {
	return domain.Aggregate(filePath, []domain.ValidationResult{{
		Source: "nugate",
		File:   filePath,
		Errors: []domain.Issue{{
			Severity: domain.SeverityCritical,
			Rule:     "file_error",
			Message:  message,
			Category: domain.CategoryReference,
			Source:   "nugate",
		}},
	}})
}

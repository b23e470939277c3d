package application

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nugate/nugate/internal/adapters/outbound/gitinfo"
	"github.com/nugate/nugate/internal/adapters/outbound/history"
	"github.com/nugate/nugate/internal/adapters/outbound/scanner"
	"github.com/nugate/nugate/internal/domain"
)

// CheckService runs the post-write pipeline over every governed script in a
// tree and records the run in the project's check history.
type CheckService struct {
	scanner *scanner.FileScanner
	reports *ReportService
	git     *gitinfo.GitInfoAdapter
	history *history.FileHistory
}

func NewCheckService(
	sc *scanner.FileScanner,
	reports *ReportService,
	git *gitinfo.GitInfoAdapter,
	hist *history.FileHistory,
) *CheckService {
	return &CheckService{scanner: sc, reports: reports, git: git, history: hist}
}

// CheckProject walks projectPath for governed scripts and checks each one.
// Files are processed in walk order; each file's validators still fan out
// internally.
func (s *CheckService) CheckProject(ctx context.Context, projectPath string, cfg domain.GateConfig) (*domain.ProjectReport, error) {
	files, rootPath, err := s.scanner.Scan(projectPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	project := &domain.ProjectReport{
		Path:      rootPath,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Passed:    true,
	}

	for _, f := range files {
		report := s.reports.Check(ctx, filepath.Join(rootPath, f))
		report.File = f
		project.Reports = append(project.Reports, report)
		project.TotalIssues += report.TotalIssues
		if !report.Passed {
			project.Passed = false
		}
	}

	if s.git.IsGitRepo(rootPath) {
		if hash, err := s.git.CommitHash(rootPath); err == nil {
			project.CommitHash = hash
		}
	}

	// History is best effort; a read-only checkout must not fail the check.
	_ = s.history.Save(rootPath, domain.CheckEntry{
		Timestamp:    project.Timestamp,
		CommitHash:   project.CommitHash,
		FilesChecked: len(project.Reports),
		TotalIssues:  project.TotalIssues,
		Passed:       project.Passed,
	})

	return project, nil
}

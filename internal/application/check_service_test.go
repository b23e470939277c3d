package application_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nugate/nugate/internal/adapters/outbound/gitinfo"
	"github.com/nugate/nugate/internal/adapters/outbound/history"
	"github.com/nugate/nugate/internal/adapters/outbound/scanner"
	"github.com/nugate/nugate/internal/application"
	"github.com/nugate/nugate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckService(cfg domain.GateConfig) *application.CheckService {
	return application.NewCheckService(
		scanner.New(),
		newReportService(cfg),
		gitinfo.New(),
		history.New(),
	)
}

func writeScript(t *testing.T, root, rel, content string) {
	t.Helper()
	fp := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte(content), 0644))
}

func TestCheckProject(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "clean.nu",
		"# Greets the user.\nexport def greet [name: string]: nothing -> string { $name }\n")
	writeScript(t, dir, filepath.Join("scripts", "broken.nu"),
		"export def deploy [target] { }\n")
	writeScript(t, dir, filepath.Join("vendor", "ignored.nu"), "def x [] { }\n")

	cfg := missingToolsConfig()
	project, err := newCheckService(cfg).CheckProject(context.Background(), dir, cfg)
	require.NoError(t, err)

	require.Len(t, project.Reports, 2)
	assert.False(t, project.Passed)
	assert.NotEmpty(t, project.Timestamp)

	byFile := map[string]*domain.AggregateReport{}
	for _, r := range project.Reports {
		byFile[r.File] = r
	}

	clean, ok := byFile["clean.nu"]
	require.True(t, ok, "report files should be relative to the project root")
	assert.True(t, clean.Passed)

	broken, ok := byFile[filepath.Join("scripts", "broken.nu")]
	require.True(t, ok)
	assert.False(t, broken.Passed)
}

func TestCheckProject_RecordsHistory(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.nu", "export def f [x] { }\n")

	cfg := missingToolsConfig()
	project, err := newCheckService(cfg).CheckProject(context.Background(), dir, cfg)
	require.NoError(t, err)

	entries, err := history.New().Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, project.Timestamp, entries[0].Timestamp)
	assert.Equal(t, 1, entries[0].FilesChecked)
	assert.Equal(t, project.TotalIssues, entries[0].TotalIssues)
	assert.False(t, entries[0].Passed)
}

func TestCheckProject_EmptyTree(t *testing.T) {
	cfg := missingToolsConfig()
	project, err := newCheckService(cfg).CheckProject(context.Background(), t.TempDir(), cfg)
	require.NoError(t, err)

	assert.True(t, project.Passed)
	assert.Empty(t, project.Reports)
	assert.Zero(t, project.TotalIssues)
	assert.Empty(t, project.CommitHash, "a plain directory has no commit hash")
}

func TestCheckProject_MissingPath(t *testing.T) {
	cfg := missingToolsConfig()
	_, err := newCheckService(cfg).CheckProject(context.Background(), filepath.Join(t.TempDir(), "nope"), cfg)
	assert.Error(t, err)
}

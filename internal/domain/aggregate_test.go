package domain_test

import (
	"testing"

	"github.com/nugate/nugate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Buckets(t *testing.T) {
	results := []domain.ValidationResult{
		{Source: "syntax", Errors: []domain.Issue{
			{Severity: domain.SeverityCritical, Line: 2, Message: "unexpected token"},
		}},
		{Source: "heuristics", Warnings: []domain.Issue{
			{Severity: domain.SeverityRequired, Line: 4, Message: "command has no documentation comment"},
			{Severity: domain.SeverityWarning, Line: 6, Message: "possible hardcoded secret"},
			{Severity: domain.SeverityInfo, Line: 8, Message: "line has trailing whitespace"},
		}},
	}

	report := domain.Aggregate("deploy.nu", results)

	assert.False(t, report.Passed)
	assert.Len(t, report.Critical, 1)
	// Required buckets with warnings in the report; it blocks pre-write only.
	assert.Len(t, report.Warnings, 2)
	assert.Len(t, report.Style, 1)
	assert.Equal(t, 4, report.TotalIssues)
}

func TestAggregate_PassedOnlyBlockedByCritical(t *testing.T) {
	results := []domain.ValidationResult{
		{Source: "heuristics", Warnings: []domain.Issue{
			{Severity: domain.SeverityWarning, Line: 1, Message: "a warning"},
			{Severity: domain.SeverityStyle, Line: 2, Message: "a style nit"},
		}},
	}

	report := domain.Aggregate("ok.nu", results)
	assert.True(t, report.Passed)
	assert.Equal(t, "1 warning, 1 style issue", report.Summary)
}

func TestAggregate_SingleWarningSummary(t *testing.T) {
	report := domain.Aggregate("x.nu", []domain.ValidationResult{
		{Source: "heuristics", Warnings: []domain.Issue{
			{Severity: domain.SeverityWarning, Line: 3, Message: "possible hardcoded secret"},
		}},
	})

	assert.Equal(t, "1 warning", report.Summary)
}

func TestAggregate_SortsByLineWithinBucket(t *testing.T) {
	results := []domain.ValidationResult{
		{Source: "lint", Errors: []domain.Issue{
			{Severity: domain.SeverityError, Line: 9, Message: "late"},
			{Severity: domain.SeverityError, Line: 2, Message: "early"},
			{Severity: domain.SeverityError, Message: "file-level"},
		}},
	}

	report := domain.Aggregate("x.nu", results)
	require.Len(t, report.Critical, 3)
	assert.Equal(t, "file-level", report.Critical[0].Message)
	assert.Equal(t, "early", report.Critical[1].Message)
	assert.Equal(t, "late", report.Critical[2].Message)
}

func TestAggregate_FillsSourceFromResult(t *testing.T) {
	results := []domain.ValidationResult{
		{Source: "format", Warnings: []domain.Issue{
			{Severity: domain.SeverityWarning, Line: 1, Message: "diff at line 1"},
		}},
	}

	report := domain.Aggregate("x.nu", results)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "format", report.Warnings[0].Source)
}

func TestAggregate_DedupesAcrossValidators(t *testing.T) {
	results := []domain.ValidationResult{
		{Source: "syntax", Errors: []domain.Issue{
			{Severity: domain.SeverityCritical, Line: 3, Message: "unexpected closing brace"},
		}},
		{Source: "ide", Errors: []domain.Issue{
			{Severity: domain.SeverityCritical, Line: 3, Message: "Unexpected closing brace"},
		}},
	}

	report := domain.Aggregate("x.nu", results)
	require.Len(t, report.Critical, 1)
	assert.Equal(t, "syntax", report.Critical[0].Source)
	assert.Equal(t, 1, report.TotalIssues)
}

func TestAggregate_CleanFile(t *testing.T) {
	report := domain.Aggregate("clean.nu", []domain.ValidationResult{
		{Source: "syntax"}, {Source: "lint"},
	})

	assert.True(t, report.Passed)
	assert.Equal(t, "No issues found", report.Summary)
	assert.Contains(t, report.Message, "✓ clean.nu passed validation")
}

func TestAggregate_Deterministic(t *testing.T) {
	results := []domain.ValidationResult{
		{Source: "syntax", Errors: []domain.Issue{
			{Severity: domain.SeverityCritical, Line: 2, Message: "bad token"},
		}},
		{Source: "heuristics", Warnings: []domain.Issue{
			{Severity: domain.SeverityWarning, Line: 5, Message: "deprecated"},
		}},
	}

	first := domain.Aggregate("x.nu", results)
	second := domain.Aggregate("x.nu", results)
	assert.Equal(t, first, second)
}

func TestFormatReport_Sections(t *testing.T) {
	report := domain.Aggregate("deploy.nu", []domain.ValidationResult{
		{Source: "syntax", Errors: []domain.Issue{
			{Severity: domain.SeverityCritical, Line: 2, Message: "unexpected token", Suggestion: "remove it"},
		}},
		{Source: "heuristics", Warnings: []domain.Issue{
			{Severity: domain.SeverityWarning, Line: 5, Message: "\"fetch\" is deprecated", Fixable: true},
		}},
	})

	msg := report.Message
	assert.Contains(t, msg, "✗ deploy.nu failed validation")
	assert.Contains(t, msg, "Critical (must fix):")
	assert.Contains(t, msg, "Line 2: unexpected token [fix: remove it]")
	assert.Contains(t, msg, "Warnings:")
	assert.Contains(t, msg, "nugate fix")
}

func TestFormatReport_NoFixHintWhenNothingFixable(t *testing.T) {
	report := domain.Aggregate("x.nu", []domain.ValidationResult{
		{Source: "heuristics", Warnings: []domain.Issue{
			{Severity: domain.SeverityWarning, Line: 1, Message: "not fixable"},
		}},
	})

	assert.NotContains(t, report.Message, "nugate fix")
}

func TestFormatIssue_FileLevelOmitsLine(t *testing.T) {
	s := domain.FormatIssue(domain.Issue{Message: "cannot read file"})
	assert.Equal(t, "cannot read file", s)

	s = domain.FormatIssue(domain.Issue{Line: 12, Message: "bad", Suggestion: "good"})
	assert.Equal(t, "Line 12: bad [fix: good]", s)
}

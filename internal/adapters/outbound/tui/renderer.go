package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nugate/nugate/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats one file's aggregate report for terminal output.
func RenderReport(report *domain.AggregateReport) string {
	var b strings.Builder

	b.WriteString("  ")
	if report.Passed {
		b.WriteString(passStyle.Render("✓"))
	} else {
		b.WriteString(failStyle.Render("✗"))
	}
	b.WriteString(" " + titleStyle.Render(report.File))
	b.WriteString("  " + dimStyle.Render(report.Summary))
	b.WriteString("\n")

	renderBucket(&b, errorTagStyle.Render("critical"), report.Critical)
	renderBucket(&b, warnTagStyle.Render("warning "), report.Warnings)
	renderBucket(&b, infoTagStyle.Render("style   "), report.Style)

	return b.String()
}

func renderBucket(b *strings.Builder, tag string, issues []domain.Issue) {
	for _, issue := range issues {
		b.WriteString("      " + tag + " " + dimStyle.Render(domain.FormatIssue(issue)))
		if issue.Source != "" {
			b.WriteString(" " + faintStyle.Render("("+issue.Source+")"))
		}
		b.WriteString("\n")
	}
}

// RenderProject formats a batch check over a tree.
func RenderProject(project *domain.ProjectReport) string {
	var b strings.Builder

	b.WriteString("\n  " + headerStyle.Render("nugate") + "  " + dimStyle.Render(project.Path))
	if project.CommitHash != "" {
		hash := project.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		b.WriteString("  " + faintStyle.Render(hash))
	}
	b.WriteString("\n  " + separatorLine + "\n\n")

	if len(project.Reports) == 0 {
		b.WriteString("  " + dimStyle.Render("No scripts found.") + "\n")
		return b.String()
	}

	failed := 0
	for _, report := range project.Reports {
		b.WriteString(RenderReport(report))
		if !report.Passed {
			failed++
		}
	}

	b.WriteString("\n  " + separatorLine + "\n")
	line := fmt.Sprintf("%d file(s) checked, %d issue(s)", len(project.Reports), project.TotalIssues)
	if project.Passed {
		b.WriteString("  " + passStyle.Render("✓ "+line) + "\n")
	} else {
		b.WriteString("  " + failStyle.Render(fmt.Sprintf("✗ %s, %d file(s) failed", line, failed)) + "\n")
	}

	return b.String()
}

// RenderHistory formats past check runs for terminal output.
func RenderHistory(entries []domain.CheckEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No check history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Check History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		status := passStyle.Render("pass")
		if !e.Passed {
			status = failStyle.Render("fail")
		}

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			status,
			warnStyle.Render(fmt.Sprintf("%d issue(s) in %d file(s)", e.TotalIssues, e.FilesChecked)),
		)
	}

	return b.String()
}

package parser

import (
	"encoding/json"
	"strings"

	"github.com/nugate/nugate/internal/domain"
)

// IDE parses the IDE-diagnostics stream: one JSON object per line, each
// diagnostic carrying a byte-offset span that is resolved to a 1-indexed
// line and column against the target file content.
//
//	{"type":"diagnostic","severity":"Error","message":"...","span":{"start":52,"end":55}}
type IDE struct {
	lineStarts []int
}

// NewIDE builds an IDE dialect for the given file content; the content is
// only used for offset-to-position resolution.
func NewIDE(content string) *IDE {
	starts := []int{0}
	for i, r := range content {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &IDE{lineStarts: starts}
}

func (*IDE) Name() string { return "ide" }

type ideDiagnostic struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Span     *struct {
		Start int `json:"start"`
		End   int `json:"end"`
	} `json:"span"`
}

func (p *IDE) Parse(raw string) []domain.Issue {
	var issues []domain.Issue

	for _, line := range splitLines(raw) {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "{") {
			continue
		}
		var diag ideDiagnostic
		if err := json.Unmarshal([]byte(line), &diag); err != nil {
			// Malformed JSON lines are skipped; a wholly unparseable failing
			// run is covered by the generic fallback.
			continue
		}
		if diag.Type != "" && diag.Type != "diagnostic" {
			continue
		}
		if diag.Message == "" {
			continue
		}

		issue := domain.Issue{
			Severity: domain.MapToolSeverity(diag.Severity),
			Rule:     "ide_diagnostic",
			Message:  diag.Message,
			Category: domain.CategorySyntax,
		}
		if diag.Span != nil {
			issue.Line, issue.Column = p.position(diag.Span.Start)
		}
		issues = append(issues, issue)
	}

	return issues
}

// position converts a byte offset into a 1-indexed line and column. Offsets
// past the end of the content resolve to the last line.
func (p *IDE) position(offset int) (line, col int) {
	if offset < 0 {
		return 0, 0
	}
	lo, hi := 0, len(p.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if p.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - p.lineStarts[lo] + 1
}

package domain

// Issue represents a single defect or suggestion found in a script.
type Issue struct {
	Severity   string `json:"severity"`
	Rule       string `json:"rule"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Category   string `json:"category"`
	Source     string `json:"source,omitempty"`
	Fixable    bool   `json:"fixable"`
}

const (
	SeverityCritical = "critical"
	SeverityError    = "error"
	SeverityRequired = "required"
	SeverityWarning  = "warning"
	SeverityStyle    = "style"
	SeverityInfo     = "info"
)

// severityRank orders severities from most to least blocking.
var severityRank = map[string]int{
	SeverityCritical: 0,
	SeverityError:    1,
	SeverityRequired: 2,
	SeverityWarning:  3,
	SeverityStyle:    4,
	SeverityInfo:     5,
}

// SeverityRank returns a numeric rank for sorting severities (lower is more
// severe). Unknown severities sort last.
func SeverityRank(severity string) int {
	if r, ok := severityRank[severity]; ok {
		return r
	}
	return len(severityRank)
}

// Blocking reports whether an issue of the given severity denies a pre-write.
func Blocking(severity string) bool {
	switch severity {
	case SeverityCritical, SeverityError, SeverityRequired:
		return true
	}
	return false
}

const (
	CategorySyntax    = "syntax"
	CategoryType      = "type"
	CategoryReference = "reference"
	CategoryGuideline = "guideline"
	CategoryStyle     = "style"
)

// ValidationResult is the output of one validator run against one file.
type ValidationResult struct {
	Source   string  `json:"source"`
	File     string  `json:"file"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// AggregateReport is the merged outcome of every validator for one file.
type AggregateReport struct {
	Passed      bool    `json:"passed"`
	File        string  `json:"file"`
	Critical    []Issue `json:"critical"`
	Warnings    []Issue `json:"warnings"`
	Style       []Issue `json:"style"`
	Summary     string  `json:"summary"`
	TotalIssues int     `json:"total_issues"`
	Message     string  `json:"message"`
}

// GateDecision is the terminal result of a pre-write evaluation.
type GateDecision struct {
	Action  string `json:"action"`
	Message string `json:"message,omitempty"`
}

const (
	ActionApprove = "approve"
	ActionDeny    = "deny"
)

// Approve returns an approving decision.
func Approve() *GateDecision {
	return &GateDecision{Action: ActionApprove}
}

// Deny returns a denying decision carrying the formatted violations.
func Deny(message string) *GateDecision {
	return &GateDecision{Action: ActionDeny, Message: message}
}

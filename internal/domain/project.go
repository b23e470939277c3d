package domain

// ProjectReport aggregates per-file reports for a batch check over a tree.
type ProjectReport struct {
	Path        string             `json:"path"`
	CommitHash  string             `json:"commit_hash,omitempty"`
	Timestamp   string             `json:"timestamp"`
	Reports     []*AggregateReport `json:"reports"`
	Passed      bool               `json:"passed"`
	TotalIssues int                `json:"total_issues"`
}

package domain

// CheckEntry is one recorded batch-check run, persisted for trend display.
type CheckEntry struct {
	Timestamp    string `json:"timestamp"`
	CommitHash   string `json:"commit_hash,omitempty"`
	FilesChecked int    `json:"files_checked"`
	TotalIssues  int    `json:"total_issues"`
	Passed       bool   `json:"passed"`
}

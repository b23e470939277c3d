package domain

// FixOutcome reports the effect of a delegated formatter fix on one file.
type FixOutcome struct {
	File         string           `json:"file"`
	FormatterRan bool             `json:"formatter_ran"`
	Before       *AggregateReport `json:"before"`
	After        *AggregateReport `json:"after"`
}

// IssuesFixed returns how many issues the fix removed (negative when the
// formatter introduced new findings).
func (o *FixOutcome) IssuesFixed() int {
	if o.Before == nil || o.After == nil {
		return 0
	}
	return o.Before.TotalIssues - o.After.TotalIssues
}

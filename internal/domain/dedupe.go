package domain

import "strings"

const dedupePrefixLen = 50

// Dedupe collapses issues that describe the same defect on the same line.
// The key is (line, lowercased message prefix); the first occurrence wins and
// input order is preserved, so validators iterated in a fixed sequence yield
// reproducible output.
func Dedupe(issues []Issue) []Issue {
	type key struct {
		line   int
		prefix string
	}

	seen := make(map[key]bool, len(issues))
	out := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		k := key{line: issue.Line, prefix: normalizeMessage(issue.Message)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, issue)
	}
	return out
}

func normalizeMessage(msg string) string {
	msg = strings.ToLower(strings.TrimSpace(msg))
	if len(msg) > dedupePrefixLen {
		msg = msg[:dedupePrefixLen]
	}
	return msg
}

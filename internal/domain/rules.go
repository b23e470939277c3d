package domain

// RuleInfo describes the static defaults for one heuristic rule. The rule
// table is the single authoritative source of severity and fixability for
// scanner-produced issues; tool-derived issues carry severities translated
// from the tool's own vocabulary instead.
type RuleInfo struct {
	Severity    string
	Category    string
	Fixable     bool
	Description string
}

var ruleTable = map[string]RuleInfo{
	"missing_return_type": {
		Severity:    SeverityCritical,
		Category:    CategoryType,
		Description: "exported command lacks a return-type annotation",
	},
	"missing_param_type": {
		Severity:    SeverityCritical,
		Category:    CategoryType,
		Description: "positional parameter lacks a type annotation",
	},
	"missing_doc": {
		Severity:    SeverityRequired,
		Category:    CategoryGuideline,
		Description: "exported command has no doc comment",
	},
	"missing_help_flag": {
		Severity:    SeverityRequired,
		Category:    CategoryGuideline,
		Description: "main command does not expose a --help flag",
	},
	"hardcoded_secret": {
		Severity:    SeverityWarning,
		Category:    CategoryGuideline,
		Description: "credential-looking literal assigned outside $env",
	},
	"deprecated_api": {
		Severity:    SeverityWarning,
		Category:    CategoryReference,
		Fixable:     true,
		Description: "usage of a removed or renamed built-in command",
	},
	"line_too_long": {
		Severity:    SeverityStyle,
		Category:    CategoryStyle,
		Description: "line exceeds the configured maximum length",
	},
	"command_naming": {
		Severity:    SeverityInfo,
		Category:    CategoryStyle,
		Description: "command name does not follow kebab/snake convention",
	},
	"trailing_whitespace": {
		Severity:    SeverityInfo,
		Category:    CategoryStyle,
		Fixable:     true,
		Description: "line has trailing whitespace",
	},
}

// Rule returns the static info for a rule identifier. Unknown rules default
// to a non-blocking guideline warning so that a stale identifier can never
// block a write.
func Rule(id string) RuleInfo {
	if info, ok := ruleTable[id]; ok {
		return info
	}
	return RuleInfo{Severity: SeverityWarning, Category: CategoryGuideline}
}

// Rules returns every known rule identifier in a stable, sorted order.
func Rules() []string {
	ids := make([]string, 0, len(ruleTable))
	for id := range ruleTable {
		ids = append(ids, id)
	}
	sortStrings(ids)
	return ids
}

func sortStrings(ss []string) {
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && ss[j] < ss[j-1]; j-- {
			ss[j], ss[j-1] = ss[j-1], ss[j]
		}
	}
}

// SecretKeywords are the identifier fragments that mark an assignment as a
// potential credential leak.
var SecretKeywords = []string{
	"api_key", "apikey", "password", "passwd", "secret",
	"token", "bearer", "credential", "private_key", "auth",
}

// DeprecatedCommands maps removed Nushell built-ins to their replacements.
var DeprecatedCommands = map[string]string{
	"str collect":   "str join",
	"fetch":         "http get",
	"post":          "http post",
	"build-string":  "string interpolation",
	"benchmark":     "timeit",
	"str to-int":    "into int",
	"str to-float":  "into float",
	"date to-table": "date now | into record",
}

// MapToolSeverity translates an external tool's severity vocabulary into the
// canonical set: error -> critical, warning -> warning, everything else is
// a style notice.
func MapToolSeverity(s string) string {
	switch s {
	case "error", "Error", "ERROR":
		return SeverityCritical
	case "warning", "Warning", "WARNING", "warn":
		return SeverityWarning
	default:
		return SeverityStyle
	}
}

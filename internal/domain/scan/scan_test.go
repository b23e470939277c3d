package scan_test

import (
	"strings"
	"testing"

	"github.com/nugate/nugate/internal/domain"
	"github.com/nugate/nugate/internal/domain/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleLines(issues []domain.Issue, rule string) []int {
	var lines []int
	for _, i := range issues {
		if i.Rule == rule {
			lines = append(lines, i.Line)
		}
	}
	return lines
}

func TestScanAnnotations_MissingReturnType(t *testing.T) {
	issues := scan.ScanAnnotations("export def greet [name: string] { }", domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, "missing_return_type", issues[0].Rule)
	assert.Equal(t, domain.SeverityCritical, issues[0].Severity)
	assert.Equal(t, 1, issues[0].Line)
	assert.Contains(t, issues[0].Message, "greet")
	assert.NotEmpty(t, issues[0].Suggestion)
}

func TestScanAnnotations_MissingParamType(t *testing.T) {
	issues := scan.ScanAnnotations("export def greet [name]: nothing -> string { }", domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, "missing_param_type", issues[0].Rule)
	assert.Contains(t, issues[0].Message, `"name"`)
}

func TestScanAnnotations_SkipsUnexported(t *testing.T) {
	issues := scan.ScanAnnotations("def helper [x] { $x }", domain.DefaultConfig())
	assert.Empty(t, issues)
}

func TestScanAnnotations_CleanDecl(t *testing.T) {
	issues := scan.ScanAnnotations("export def greet [name: string]: nothing -> string { }", domain.DefaultConfig())
	assert.Empty(t, issues)
}

func TestScanDocs_MissingDoc(t *testing.T) {
	issues := scan.ScanDocs("export def greet []: nothing -> string { }", domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, "missing_doc", issues[0].Rule)
	assert.Equal(t, domain.SeverityRequired, issues[0].Severity)
}

func TestScanDocs_CommentAboveSatisfies(t *testing.T) {
	content := "# Greets the user by name.\nexport def greet []: nothing -> string { }"
	assert.Empty(t, scan.ScanDocs(content, domain.DefaultConfig()))
}

func TestScanDocs_BlankLinesSkipped(t *testing.T) {
	content := "# Greets the user.\n\n\nexport def greet []: nothing -> string { }"
	assert.Empty(t, scan.ScanDocs(content, domain.DefaultConfig()))
}

func TestScanDocs_CodeAboveDoesNotCount(t *testing.T) {
	content := "let x = 1\nexport def greet []: nothing -> string { }"
	issues := scan.ScanDocs(content, domain.DefaultConfig())
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Line)
}

func TestScanHelpFlag_MainWithoutHelp(t *testing.T) {
	issues := scan.ScanHelpFlag("def main [] { }", domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, "missing_help_flag", issues[0].Rule)
}

func TestScanHelpFlag_MainWithHelp(t *testing.T) {
	assert.Empty(t, scan.ScanHelpFlag("def main [--help (-h)] { }", domain.DefaultConfig()))
}

func TestScanHelpFlag_NoMainNoIssue(t *testing.T) {
	assert.Empty(t, scan.ScanHelpFlag("export def greet [] { }", domain.DefaultConfig()))
}

func TestScanSecrets_HardcodedLiteral(t *testing.T) {
	issues := scan.ScanSecrets(`let api_key = "sk-12345"`, domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, "hardcoded_secret", issues[0].Rule)
	assert.Contains(t, issues[0].Suggestion, "$env.API_KEY")
}

func TestScanSecrets_EnvReferenceExempt(t *testing.T) {
	assert.Empty(t, scan.ScanSecrets(`let api_key = $env.API_KEY`, domain.DefaultConfig()))
}

func TestScanSecrets_NonSecretIdent(t *testing.T) {
	assert.Empty(t, scan.ScanSecrets(`let greeting = "hello"`, domain.DefaultConfig()))
}

func TestScanSecrets_CommentIgnored(t *testing.T) {
	assert.Empty(t, scan.ScanSecrets(`# let password = "hunter2"`, domain.DefaultConfig()))
}

func TestScanSecrets_ConfigKeywords(t *testing.T) {
	cfg := domain.GateConfig{SecretKeywords: []string{"passphrase"}}
	issues := scan.ScanSecrets(`let gpg_passphrase = "open sesame"`, cfg)
	require.Len(t, issues, 1)
}

func TestScanDeprecated(t *testing.T) {
	content := "ls | str collect\nfetch https://example.com\n"
	issues := scan.ScanDeprecated(content, domain.DefaultConfig())

	require.Len(t, issues, 2)
	assert.Equal(t, []int{1, 2}, ruleLines(issues, "deprecated_api"))
	assert.Contains(t, issues[0].Suggestion, "str join")
	assert.Contains(t, issues[1].Suggestion, "http get")
	assert.True(t, issues[0].Fixable)
}

func TestScanDeprecated_WordBoundary(t *testing.T) {
	// "prefetch" must not match "fetch".
	assert.Empty(t, scan.ScanDeprecated("prefetch $url", domain.DefaultConfig()))
}

func TestScanStyle_LineTooLong(t *testing.T) {
	content := strings.Repeat("x", 121)
	issues := scan.ScanStyle(content, domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, "line_too_long", issues[0].Rule)
	assert.Contains(t, issues[0].Message, "121")
}

func TestScanStyle_ConfiguredMax(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.MaxLineLength = 40
	issues := scan.ScanStyle(strings.Repeat("y", 41), cfg)
	require.Len(t, issues, 1)
}

func TestScanStyle_TrailingWhitespace(t *testing.T) {
	issues := scan.ScanStyle("print hello   \n", domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, "trailing_whitespace", issues[0].Rule)
	assert.True(t, issues[0].Fixable)
}

func TestScanStyle_CommandNaming(t *testing.T) {
	issues := scan.ScanStyle("def fetchData [] { }", domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, "command_naming", issues[0].Rule)
	assert.Contains(t, issues[0].Suggestion, "fetch_data")
}

func TestRun_FiltersDisabledRules(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.DisabledRules = []string{"missing_doc", "missing_return_type"}

	issues := scan.Run("export def greet [name: string] { }", cfg)
	assert.Empty(t, ruleLines(issues, "missing_doc"))
	assert.Empty(t, ruleLines(issues, "missing_return_type"))
}

func TestRun_FixedPassOrder(t *testing.T) {
	content := "export def fetchData [url] {\n    fetch $url\n}\n"

	first := scan.Run(content, domain.DefaultConfig())
	second := scan.Run(content, domain.DefaultConfig())
	assert.Equal(t, first, second)

	// Annotation issues precede deprecation issues regardless of line order.
	rules := make([]string, len(first))
	for i, issue := range first {
		rules[i] = issue.Rule
	}
	assert.Contains(t, rules, "missing_return_type")
	assert.Contains(t, rules, "deprecated_api")
}

func TestRun_SourceTag(t *testing.T) {
	issues := scan.Run("export def greet [] { }", domain.DefaultConfig())
	require.NotEmpty(t, issues)
	for _, issue := range issues {
		assert.Equal(t, scan.Source, issue.Source)
	}
}

package scan

import (
	"regexp"
	"strings"
)

// Decl is one `def` declaration found in a script, with enough of its
// signature text to check annotations without a full parse.
type Decl struct {
	Line      int // 1-indexed line of the `def` keyword
	Name      string
	Exported  bool   // `export def ...` or the `main` entry point
	Signature string // text from `def` up to the opening body brace
	Params    string // raw text inside the parameter brackets
}

var declRe = regexp.MustCompile(`^\s*(export\s+)?def(\s+--env|\s+--wrapped)*\s+(?:"([^"]+)"|'([^']+)'|([\w-]+))`)

// Decls extracts every command declaration from the script. Signatures may
// span multiple lines; accumulation stops at the opening body brace.
func Decls(content string) []Decl {
	lines := splitLines(content)
	var decls []Decl

	for i := 0; i < len(lines); i++ {
		m := declRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		name := m[3]
		if name == "" {
			name = m[4]
		}
		if name == "" {
			name = m[5]
		}

		d := Decl{
			Line:     i + 1,
			Name:     name,
			Exported: m[1] != "" || name == "main",
		}

		// Gather the signature up to the body brace, spanning lines when the
		// parameter list is written vertically.
		var sig strings.Builder
		for j := i; j < len(lines) && j < i+40; j++ {
			line := lines[j]
			if idx := bodyBraceIndex(line); idx >= 0 {
				sig.WriteString(line[:idx])
				break
			}
			sig.WriteString(line)
			sig.WriteString("\n")
		}
		d.Signature = sig.String()
		d.Params = paramText(d.Signature)
		decls = append(decls, d)
	}

	return decls
}

// bodyBraceIndex returns the index of the body-opening brace in a line, or
// -1. A brace before the parameter brackets close does not count.
func bodyBraceIndex(line string) int {
	depth := 0
	for i, r := range line {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case '{':
			// On continuation lines the closing ] of a vertical parameter
			// list leaves depth negative before the body brace appears.
			if depth <= 0 {
				return i
			}
		case '#':
			return -1
		}
	}
	return -1
}

// paramText returns the raw text between the signature's outermost brackets.
func paramText(sig string) string {
	start := strings.Index(sig, "[")
	if start < 0 {
		return ""
	}
	depth := 0
	for i := start; i < len(sig); i++ {
		switch sig[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return sig[start+1 : i]
			}
		}
	}
	return sig[start+1:]
}

// HasReturnType reports whether the signature carries a `-> type` marker
// after the parameter list.
func (d Decl) HasReturnType() bool {
	after := d.Signature
	if idx := strings.LastIndex(after, "]"); idx >= 0 {
		after = after[idx+1:]
	}
	return strings.Contains(after, "->")
}

// PositionalParams returns the positional parameter entries of the
// declaration: flags, rest parameters, blanks, and comment lines are
// filtered out, and default values are stripped.
func (d Decl) PositionalParams() []string {
	var params []string
	for _, entry := range splitParams(d.Params) {
		entry = strings.TrimSpace(entry)
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		if strings.HasPrefix(entry, "-") || strings.HasPrefix(entry, "...") {
			continue
		}
		if eq := strings.Index(entry, "="); eq >= 0 {
			entry = strings.TrimSpace(entry[:eq])
		}
		params = append(params, entry)
	}
	return params
}

// HasFlag reports whether the parameter list declares the given long flag.
func (d Decl) HasFlag(flag string) bool {
	for _, entry := range splitParams(d.Params) {
		entry = strings.TrimSpace(entry)
		if strings.HasPrefix(entry, flag) {
			return true
		}
	}
	return false
}

// splitParams breaks the raw parameter text into entries. Nushell accepts
// both comma- and newline-separated parameter lists.
func splitParams(raw string) []string {
	var entries []string
	for _, line := range strings.Split(raw, "\n") {
		// Inline comments terminate the entry, not the list.
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		for _, entry := range strings.Split(line, ",") {
			if strings.TrimSpace(entry) != "" {
				entries = append(entries, entry)
			}
		}
	}
	return entries
}

func splitLines(content string) []string {
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

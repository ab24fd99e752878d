package config

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	CanFix      bool

	// Options holds the rule's default option values.
	Options map[string]any
}

// TemplateHeader is written at the top of generated configuration files.
const TemplateHeader = `# cjkspacing configuration
# Keys under rules may be a rule ID (CJK001) or a rule name.
`

// GenerateTemplate renders a commented configuration file documenting every
// rule in rules with its default settings.
func GenerateTemplate(rules []RuleInfo) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(TemplateHeader)
	buf.WriteString(`
# Markdown flavor used to locate emphasis and code: commonmark or gfm
flavor: gfm

# Default severity for all rules: error, warning, or info
severity_default: warning

# File patterns to skip (glob patterns)
ignore:
  - "node_modules/**"

# Extra extensions treated as Markdown
# extensions:
#   - .mdx

rules:
`)

	sorted := slices.Clone(rules)
	slices.SortFunc(sorted, func(a, b RuleInfo) int { return strings.Compare(a.ID, b.ID) })

	for _, rule := range sorted {
		fmt.Fprintf(&buf, "\n  # %s: %s\n", rule.ID, rule.Name)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(rule.Description, commentWrapWidth))
		if rule.CanFix {
			buf.WriteString("  # Auto-fix: yes\n")
		}
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", rule.Enabled)
		fmt.Fprintf(&buf, "    severity: %s\n", rule.Severity)

		if len(rule.Options) == 0 {
			continue
		}
		opts, err := encodeOptions(rule.Options)
		if err != nil {
			return nil, fmt.Errorf("encode options for %s: %w", rule.ID, err)
		}
		buf.WriteString("    options:\n")
		for _, line := range strings.Split(strings.TrimRight(opts, "\n"), "\n") {
			buf.WriteString("      " + line + "\n")
		}
	}

	return buf.Bytes(), nil
}

func encodeOptions(opts map[string]any) (string, error) {
	out, err := yaml.Marshal(opts)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

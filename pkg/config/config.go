// Package config defines the configuration types shared by the cjkspacing
// loader, lint engine and CLI. The types are plain data; loading and merging
// live in internal/configloader.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid reports whether s is a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled,omitempty"`
	Severity *string        `yaml:"severity,omitempty"`
	AutoFix  *bool          `yaml:"auto_fix,omitempty"`
	Options  map[string]any `yaml:"options,omitempty"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// IsValid reports whether f is a supported output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "space-between-cjk-and-latin"
	RuleFormatID       RuleFormat = "id"       // "CJK001"
	RuleFormatCombined RuleFormat = "combined" // "CJK001/space-between-cjk-and-latin"
)

// Flavor specifies the Markdown flavor used to locate emphasis and code.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Config is the root configuration structure for cjkspacing.
type Config struct {
	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default,omitempty"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules,omitempty"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore,omitempty"`

	// Extensions lists additional file extensions treated as Markdown.
	Extensions []string `yaml:"extensions,omitempty"`

	// CLI-level options (not persisted to config files).

	// Fix enables auto-fixing of issues.
	Fix bool `yaml:"-"`

	// DryRun shows what would be fixed without making changes.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-"`

	// Workers is the number of files processed concurrently (0 = GOMAXPROCS).
	Workers int `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Flavor:          FlavorGFM,
		SeverityDefault: string(SeverityWarning),
		Rules:           make(map[string]RuleConfig),
		Format:          FormatText,
		RuleFormat:      RuleFormatCombined,
	}
}

// RuleOptions returns the options map configured for the rule with the given
// ID or name, or nil when none is set. The ID takes precedence.
func (c *Config) RuleOptions(id, name string) map[string]any {
	if c == nil {
		return nil
	}
	if rc, ok := c.Rules[id]; ok && rc.Options != nil {
		return rc.Options
	}
	if rc, ok := c.Rules[name]; ok {
		return rc.Options
	}
	return nil
}

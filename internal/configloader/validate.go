package configloader

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/lint"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.CJK001.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules or options).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) errorf(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration against the rules in registry.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	switch cfg.Flavor {
	case "", config.FlavorCommonMark, config.FlavorGFM:
	default:
		result.errorf("flavor", cfg.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	}

	if cfg.SeverityDefault != "" && !config.Severity(cfg.SeverityDefault).IsValid() {
		result.errorf("severity_default", cfg.SeverityDefault,
			"invalid severity %q; must be one of: error, warning, info", cfg.SeverityDefault)
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.errorf("format", cfg.Format, "invalid format %q; must be one of: text, json, diff", cfg.Format)
	}

	if cfg.Workers < 0 {
		result.errorf("workers", cfg.Workers, "workers must be >= 0 (0 means auto)")
	}

	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.errorf(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	for i, ext := range cfg.Extensions {
		if ext == "" || strings.ContainsAny(ext, `/\`) {
			result.errorf(fmt.Sprintf("extensions[%d]", i), ext, "invalid extension %q", ext)
		}
	}

	validateRules(cfg, registry, result)

	return result
}

// validateRules checks rule keys, severities and options. Option values
// must have the type of the rule's default for that option.
func validateRules(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	for _, key := range slices.Sorted(maps.Keys(cfg.Rules)) {
		ruleCfg := cfg.Rules[key]
		field := "rules." + key

		if ruleCfg.Severity != nil && !config.Severity(*ruleCfg.Severity).IsValid() {
			result.errorf(field+".severity", *ruleCfg.Severity,
				"invalid severity %q; must be one of: error, warning, info", *ruleCfg.Severity)
		}

		var rule lint.Rule
		if registry != nil {
			rule, _ = registry.Get(key)
		}
		if rule == nil {
			result.warnf(field, key, "unknown rule %q; it will be ignored", key)
			continue
		}

		defaults := rule.DefaultOptions()
		for _, name := range slices.Sorted(maps.Keys(ruleCfg.Options)) {
			value := ruleCfg.Options[name]
			def, known := defaults[name]
			if !known {
				result.warnf(field+".options."+name, value, "unknown option %q for rule %s", name, rule.ID())
				continue
			}
			if fmt.Sprintf("%T", def) != fmt.Sprintf("%T", value) {
				result.errorf(field+".options."+name, value, "option %q must be a %T, got %T", name, def, value)
			}
		}
	}
}

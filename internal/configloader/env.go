package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/cjkspacing/pkg/config"
)

// envVarPrefix is the prefix for all cjkspacing environment variables.
const envVarPrefix = "CJKSPACING_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines one environment variable and the field it sets.
type envMapping struct {
	suffix      string
	field       string
	typ         envFieldType
	description string
}

// envMappings lists the supported variables (without prefix).
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = []envMapping{
	{"FLAVOR", "flavor", envTypeString, "Markdown flavor: commonmark or gfm"},
	{"SEVERITY_DEFAULT", "severity_default", envTypeString, "Default severity: error, warning, or info"},
	{"FIX", "fix", envTypeBool, "Enable auto-fix: true or false"},
	{"DRY_RUN", "dry_run", envTypeBool, "Dry-run mode: true or false"},
	{"WORKERS", "workers", envTypeInt, "Number of files processed concurrently (0 = auto)"},
	{"FORMAT", "format", envTypeString, "Output format: text, json, or diff"},
	{"IGNORE", "ignore", envTypeSlice, "Comma-separated list of ignore patterns"},
	{"EXTENSIONS", "extensions", envTypeSlice, "Comma-separated list of extra Markdown extensions"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with CJKSPACING_ (e.g., CJKSPACING_FLAVOR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, mapping := range envMappings {
		envVar := envVarPrefix + mapping.suffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		switch mapping.field {
		case "flavor":
			cfg.Flavor = config.Flavor(value)
		case "severity_default":
			cfg.SeverityDefault = value
		case "format":
			cfg.Format = config.OutputFormat(value)
		}
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		switch mapping.field {
		case "fix":
			cfg.Fix = b
		case "dry_run":
			cfg.DryRun = b
		}
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		cfg.Workers = i
	case envTypeSlice:
		parts := parseSliceValue(value)
		switch mapping.field {
		case "ignore":
			cfg.Ignore = parts
		case "extensions":
			cfg.Extensions = parts
		}
	}
	return nil
}

// parseSliceValue parses a comma-separated string into a slice of trimmed,
// non-empty elements.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for _, mapping := range envMappings {
		vars[envVarPrefix+mapping.suffix] = mapping.description
	}
	return vars
}

// Package configloader resolves the effective configuration: it discovers
// config files, merges them in precedence order, applies environment and
// CLI overrides, normalizes rule keys and validates the result.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/cjkspacing/internal/logging"
	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/lint"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config

	// Registry is used to normalize and validate rule keys.
	// Defaults to lint.DefaultRegistry.
	Registry *lint.Registry
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (CJKSPACING_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.cjkspacing.yml, searched upward)
//  5. User config ($XDG_CONFIG_HOME/cjkspacing/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	registry := opts.Registry
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	layers := []*config.Config{config.NewConfig()}

	files := []struct {
		path string
		skip bool
		kind string
	}{
		{paths.User, opts.IgnoreUserConfig, "user"},
		{paths.Project, opts.IgnoreProjectConfig, "project"},
		{paths.Explicit, false, "explicit"},
	}

	for _, file := range files {
		if file.path == "" || file.skip {
			continue
		}

		cfg, err := loadConfigFile(file.path, registry, result)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", file.kind, err)
		}
		logger.Debug("loaded config", logging.FieldConfig, file.path)

		layers = append(layers, cfg)
		result.LoadedFrom = append(result.LoadedFrom, file.path)
	}

	cfg := MergeAll(layers...)

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cli := opts.CLIConfig.Clone()
		normalizeRuleKeys(cli, registry, result)
		cfg = merge(cfg, cli)
	}

	validation := Validate(cfg, registry)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile reads one YAML config file and normalizes its rule keys.
// Validation errors found in the file alone are reported with its path.
func loadConfigFile(path string, registry *lint.Registry, result *LoadResult) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	normalizeRuleKeys(cfg, registry, result)

	validation := Validate(cfg, registry)
	if !validation.Valid() {
		verr := validation.Errors[0]
		verr.FilePath = path
		return nil, &verr
	}

	return cfg, nil
}

// normalizeRuleKeys rewrites rule names to rule IDs so that layers keyed
// differently still merge. Unknown keys are kept for validation to report.
// When one file names the same rule twice, the entry keyed by ID wins.
func normalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	if len(cfg.Rules) == 0 || registry == nil {
		return
	}

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	for key, ruleCfg := range cfg.Rules {
		rule, ok := registry.Get(key)
		if !ok {
			normalized[key] = ruleCfg
			continue
		}

		id := rule.ID()
		if _, dup := cfg.Rules[id]; dup && key != id {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("rule %s is configured as both %q and %q; using %q", id, key, id, id))
			continue
		}
		normalized[id] = ruleCfg
	}

	cfg.Rules = normalized
}

// Package cli provides the Cobra command structure for cjkspacing.
package cli

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cjkspacing/internal/configloader"
	"github.com/yaklabco/cjkspacing/internal/logging"
	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/lint"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root cjkspacing command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "cjkspacing",
		Short: "Keep a single space between CJK and Latin text in Markdown",
		Long: `cjkspacing checks and fixes the spacing between Chinese, Japanese or Korean
text and English words, numbers and English-like punctuation in Markdown files.

Code, math, HTML, links, wiki-links, tags, images and front matter are left
untouched, and spacing around bold and italic markers is normalized.

` + envHelp(),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand(flags))
	rootCmd.AddCommand(newFormatCommand(flags))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(flags.color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}

// envHelp lists the supported environment variables for the root help text.
func envHelp() string {
	vars := configloader.ListEnvVars()

	var b strings.Builder
	b.WriteString("Environment variables:\n")
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		fmt.Fprintf(&b, "  %-29s %s\n", name, vars[name])
	}
	return b.String()
}

// loadConfig resolves the configuration for a command run from workDir,
// logging loader warnings.
func loadConfig(ctx context.Context, flags *globalFlags, workDir string, cli *config.Config) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: flags.configPath,
		CLIConfig:    cli,
		Registry:     lint.DefaultRegistry,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPaths, result.LoadedFrom)
	}

	return result.Config, nil
}

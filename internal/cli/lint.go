package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cjkspacing/internal/logging"
	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/lint"
	_ "github.com/yaklabco/cjkspacing/pkg/lint/rules" // Register built-in rules
	goldmarkparser "github.com/yaklabco/cjkspacing/pkg/parser/goldmark"
	"github.com/yaklabco/cjkspacing/pkg/reporter"
	"github.com/yaklabco/cjkspacing/pkg/runner"
)

type lintFlags struct {
	fix        bool
	dryRun     bool
	format     string
	flavor     string
	workers    int
	ignore     []string
	include    []string
	noContext  bool
	compact    bool
	statistics bool
	vendored   bool
	ruleFormat string
}

func newLintCommand(global *globalFlags) *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check or fix CJK spacing in Markdown files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, global, flags)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Check Markdown files for missing or extra spaces between CJK text and
English words or numbers.

By default, checks every Markdown file under the current directory, skipping
hidden and vendored directories. Specify paths to check specific files or
directories.

Examples:
  cjkspacing lint                    # Check current directory
  cjkspacing lint docs/              # Check docs directory
  cjkspacing lint README.md          # Check a single file
  cjkspacing lint --fix              # Fix files in place
  cjkspacing lint --dry-run          # Show the fixes as a diff summary
  cjkspacing lint --format diff      # Print a unified diff of the fixes
  cjkspacing lint --format json      # Output as JSON for CI`

func runLint(cmd *cobra.Command, args []string, global *globalFlags, flags *lintFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := loadConfig(ctx, global, workDir, cliConfig(cmd, flags))
	if err != nil {
		return err
	}

	// The diff format needs the fixed content, so it implies a dry run.
	if cfg.Format == config.FormatDiff {
		cfg.DryRun = true
	}
	if cfg.DryRun {
		cfg.Fix = true
	}

	logger.Debug("configuration resolved",
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldFix, cfg.Fix,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldWorkers, cfg.Workers,
	)

	engine := lint.NewEngine(goldmarkparser.New(string(cfg.Flavor)), lint.DefaultRegistry)
	lintRunner := runner.New(lint.NewPipeline(engine))

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir
	runOpts.Include = flags.include
	runOpts.IncludeVendored = flags.vendored

	result, err := lintRunner.Run(ctx, runOpts)
	if errors.Is(err, runner.ErrNoFiles) {
		logger.Warn("no Markdown files found", logging.FieldPaths, runOpts.Paths)
		return nil
	}
	if err != nil {
		return fmt.Errorf("lint run failed: %w", err)
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return err
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       global.color,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Statistics:  flags.statistics,
		Compact:     flags.compact,
		RuleFormat:  cfg.RuleFormat,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasErrors() {
		return fmt.Errorf("%d file(s) could not be processed", result.Stats.FilesErrored)
	}
	if resultHasIssues(result) {
		return ErrIssuesFound
	}

	return nil
}

// cliConfig collects the flags the user actually set into a config layer.
func cliConfig(cmd *cobra.Command, flags *lintFlags) *config.Config {
	cfg := &config.Config{
		Fix:     flags.fix,
		DryRun:  flags.dryRun,
		Workers: flags.workers,
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if changed("flavor") {
		cfg.Flavor = config.Flavor(flags.flavor)
	}
	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}
	if changed("ignore") {
		cfg.Ignore = flags.ignore
	}

	return cfg
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().BoolVar(&flags.fix, "fix", false, "fix files in place")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "compute fixes without writing files")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "gfm", "Markdown flavor: commonmark, gfm")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "number of files processed concurrently (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "only check files matching these glob patterns")
	cmd.Flags().BoolVar(&flags.vendored, "include-vendored", false, "also check vendored directories")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output (json)")
	cmd.Flags().BoolVar(&flags.statistics, "statistics", false, "print detailed run statistics")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "combined",
		"rule identifier format in output: name, id, or combined")
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/cjkspacing/internal/logging"
	"github.com/yaklabco/cjkspacing/pkg/cjk"
	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/lint"
	"github.com/yaklabco/cjkspacing/pkg/lint/rules"
	"github.com/yaklabco/cjkspacing/pkg/mask"
	goldmarkparser "github.com/yaklabco/cjkspacing/pkg/parser/goldmark"
)

// errInteractiveInput is returned when format would block on a terminal.
var errInteractiveInput = errors.New("no input: pipe Markdown into stdin or pass a file")

type formatFlags struct {
	flavor string
	check  bool
}

func newFormatCommand(global *globalFlags) *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Fix CJK spacing in Markdown read from stdin or a file",
		Long: `Read Markdown from a file (or stdin when no file or "-" is given), fix the
spacing between CJK and Latin text, and write the result to stdout.
The source file is never modified, which makes format suitable as an
editor filter.

Examples:
  cjkspacing format < README.md      # Print the fixed document
  cjkspacing format docs/intro.md    # Same, reading the file directly
  cjkspacing format --check notes.md # Exit 1 if the file needs fixing`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, global, flags)
		},
	}

	cmd.Flags().StringVar(&flags.flavor, "flavor", "gfm", "Markdown flavor: commonmark, gfm")
	cmd.Flags().BoolVar(&flags.check, "check", false, "print nothing; exit 1 if the input would change")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string, global *globalFlags, flags *formatFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	input, err := readFormatInput(cmd, args)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	layer := &config.Config{}
	if cmd.Flags().Changed("flavor") {
		layer.Flavor = config.Flavor(flags.flavor)
	}
	cfg, err := loadConfig(ctx, global, workDir, layer)
	if err != nil {
		return err
	}

	text := string(input)
	output := text

	switch {
	case !ruleEnabled(cfg):
		logger.Debug("rule disabled, copying input", logging.FieldRule, ruleID)
	case mask.ContainsToken(text) || cjk.ContainsPlaceholder(text):
		logger.Debug("input contains placeholder text, copying input", logging.FieldRule, ruleID)
	default:
		opts := spacingOptions(cfg)
		output = rules.Format(text, opts, goldmarkparser.New(string(cfg.Flavor)))
	}

	if flags.check {
		if output != text {
			return ErrIssuesFound
		}
		return nil
	}

	if _, err := io.WriteString(cmd.OutOrStdout(), output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// readFormatInput reads the named file, or stdin for no argument or "-".
func readFormatInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return content, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errInteractiveInput
	}

	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return content, nil
}

// ruleID is the spacing rule format applies.
const ruleID = "CJK001"

// ruleEnabled reports whether the spacing rule is enabled in cfg.
func ruleEnabled(cfg *config.Config) bool {
	rule, ok := lint.DefaultRegistry.Get(ruleID)
	if !ok {
		return false
	}
	for _, resolved := range lint.ResolveRules(lint.DefaultRegistry, cfg) {
		if resolved.Rule.ID() == rule.ID() {
			return resolved.Enabled
		}
	}
	return false
}

// spacingOptions reads the spacing rule's options from cfg.
func spacingOptions(cfg *config.Config) cjk.SpacingOptions {
	opts := cjk.SpacingOptions{
		EnglishLikeAfterCJK:  cjk.DefaultEnglishLikeAfterCJK,
		EnglishLikeBeforeCJK: cjk.DefaultEnglishLikeBeforeCJK,
	}

	rule, ok := lint.DefaultRegistry.Get(ruleID)
	if !ok {
		return opts
	}
	configured := cfg.RuleOptions(rule.ID(), rule.Name())
	if v, ok := configured[rules.OptionEnglishLikeAfterCJK].(string); ok {
		opts.EnglishLikeAfterCJK = v
	}
	if v, ok := configured[rules.OptionEnglishLikeBeforeCJK].(string); ok {
		opts.EnglishLikeBeforeCJK = v
	}
	return opts
}

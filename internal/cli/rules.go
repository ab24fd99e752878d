package cli

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules and their options",
		Long: `List the available rules with their IDs, descriptions, default severity,
whether they can fix issues, and their configurable options.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := ruleInfos(lint.DefaultRegistry)

			switch flags.format {
			case string(config.FormatJSON):
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(toRuleJSON(infos)); err != nil {
					return fmt.Errorf("encode rules: %w", err)
				}
				return nil
			case string(config.FormatText):
				printRules(cmd, infos, config.RuleFormat(flags.ruleFormat))
				return nil
			default:
				return fmt.Errorf("invalid format %q: must be text or json", flags.format)
			}
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "combined",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

// ruleJSON is the JSON shape of one rule.
type ruleJSON struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Severity    string         `json:"severity"`
	Fixable     bool           `json:"fixable"`
	Options     map[string]any `json:"options,omitempty"`
}

func toRuleJSON(infos []config.RuleInfo) []ruleJSON {
	out := make([]ruleJSON, 0, len(infos))
	for _, info := range infos {
		out = append(out, ruleJSON{
			ID:          info.ID,
			Name:        info.Name,
			Description: info.Description,
			Severity:    string(info.Severity),
			Fixable:     info.CanFix,
			Options:     info.Options,
		})
	}
	return out
}

func printRules(cmd *cobra.Command, infos []config.RuleInfo, format config.RuleFormat) {
	out := cmd.OutOrStdout()
	for _, info := range infos {
		fixable := "no"
		if info.CanFix {
			fixable = "yes"
		}

		fmt.Fprintf(out, "%s\n", config.FormatRuleID(format, info.ID, info.Name))
		fmt.Fprintf(out, "  %s\n", info.Description)
		fmt.Fprintf(out, "  severity: %s, fixable: %s\n", info.Severity, fixable)
		for _, key := range slices.Sorted(maps.Keys(info.Options)) {
			fmt.Fprintf(out, "  %s: %q\n", key, info.Options[key])
		}
	}
}

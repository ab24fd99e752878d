package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/cjkspacing/pkg/config"
)

func TestFormatRuleID(t *testing.T) {
	t.Parallel()

	const (
		id   = "CJK001"
		name = "space-between-cjk-and-latin"
	)

	tests := []struct {
		name     string
		format   config.RuleFormat
		ruleName string
		want     string
	}{
		{"name format", config.RuleFormatName, name, name},
		{"id format", config.RuleFormatID, name, id},
		{"combined format", config.RuleFormatCombined, name, id + "/" + name},
		{"empty name falls back to id", config.RuleFormatName, "", id},
		{"unknown defaults to combined", config.RuleFormat(""), name, id + "/" + name},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, config.FormatRuleID(tt.format, id, tt.ruleName))
		})
	}
}

func TestSeverityAndFormatValidity(t *testing.T) {
	t.Parallel()

	assert.True(t, config.SeverityError.IsValid())
	assert.False(t, config.Severity("fatal").IsValid())
	assert.True(t, config.FormatDiff.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())
}

func TestRuleOptions(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Nil(t, cfg.RuleOptions("CJK001", "space-between-cjk-and-latin"))

	cfg.Rules["space-between-cjk-and-latin"] = config.RuleConfig{
		Options: map[string]any{"english-like-after-cjk": "+"},
	}
	assert.Equal(t, "+", cfg.RuleOptions("CJK001", "space-between-cjk-and-latin")["english-like-after-cjk"])

	cfg.Rules["CJK001"] = config.RuleConfig{
		Options: map[string]any{"english-like-after-cjk": "-"},
	}
	assert.Equal(t, "-", cfg.RuleOptions("CJK001", "space-between-cjk-and-latin")["english-like-after-cjk"])

	var nilCfg *config.Config
	assert.Nil(t, nilCfg.RuleOptions("CJK001", ""))
}

package main

import (
	"github.com/openclaw/unitmeta/pkg/logger"
	"github.com/openclaw/unitmeta/pkg/presenter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultLogLevel = "warn"

// Output formats for descriptors
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// cliConfig is the decoded viper configuration shared by all commands
type cliConfig struct {
	LogLevel  string   `mapstructure:"log_level"`
	LogFormat string   `mapstructure:"log_format"`
	Output    string   `mapstructure:"output"`
	Color     string   `mapstructure:"color"`
	Quiet     bool     `mapstructure:"quiet"`
	SkillDirs []string `mapstructure:"skill_dirs"`
	HookDirs  []string `mapstructure:"hook_dirs"`
}

func setConfigDefaults() {
	viper.SetDefault("log_level", defaultLogLevel)
	viper.SetDefault("log_format", logger.FormatText)
	viper.SetDefault("output", formatJSON)
	viper.SetDefault("color", "auto")
	viper.SetDefault("quiet", false)
}

func loadConfig() (*cliConfig, error) {
	var cfg cliConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configuration values no command can act on
func (c *cliConfig) Validate() error {
	switch c.Output {
	case formatJSON, formatYAML:
	default:
		return errors.Errorf("invalid output format %q, must be one of: %s, %s", c.Output, formatJSON, formatYAML)
	}
	switch c.LogFormat {
	case logger.FormatText, logger.FormatJSON:
	default:
		return errors.Errorf("invalid log format %q, must be one of: %s, %s", c.LogFormat, logger.FormatText, logger.FormatJSON)
	}
	return nil
}

// newPresenter writes to the command's streams. Quiet silences informational
// messages only; errors and diagnostics still reach stderr.
func newPresenter(cmd *cobra.Command, cfg *cliConfig) *presenter.TerminalPresenter {
	p := presenter.NewWithOptions(cmd.OutOrStdout(), cmd.ErrOrStderr(), presenter.ParseColorMode(cfg.Color))
	p.SetQuiet(cfg.Quiet)
	return p
}

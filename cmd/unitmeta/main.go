package main

import (
	"os"

	"github.com/openclaw/unitmeta/pkg/logger"
	"github.com/openclaw/unitmeta/pkg/presenter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	viper.SetEnvPrefix("UNITMETA")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.openclaw/unitmeta")
	viper.AddConfigPath(".")

	setConfigDefaults()

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "unitmeta",
	Short: "Inspect skill and hook frontmatter",
	Long: `unitmeta normalizes the frontmatter of openclaw skills (SKILL.md) and
hooks (HOOK.md) into structured descriptors: requirements, install
instructions, invocation policy and identity keys.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return logger.Configure(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func main() {
	rootCmd.PersistentFlags().String("log-level", defaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", logger.FormatText, "Log format (text or json)")
	rootCmd.PersistentFlags().StringP("output", "o", formatJSON, "Output format (json or yaml)")
	rootCmd.PersistentFlags().String("color", "auto", "Color output (auto, always, never)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational messages")
	rootCmd.PersistentFlags().StringSlice("skill-dir", nil, "Skill directories to search, in precedence order")
	rootCmd.PersistentFlags().StringSlice("hook-dir", nil, "Hook directories to search, in precedence order")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("skill_dirs", rootCmd.PersistentFlags().Lookup("skill-dir"))
	viper.BindPFlag("hook_dirs", rootCmd.PersistentFlags().Lookup("hook-dir"))

	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(pluginCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}

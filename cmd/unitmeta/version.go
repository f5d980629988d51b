package main

import (
	"fmt"

	"github.com/openclaw/unitmeta/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version information of unitmeta in the configured output format.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		info := version.Get()
		if cfg.Output == formatJSON {
			out, err := info.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}
		return render(cmd.OutOrStdout(), cfg.Output, info)
	},
}

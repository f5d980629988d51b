package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/openclaw/unitmeta/pkg/plugins"
	"github.com/openclaw/unitmeta/pkg/presenter"
	"github.com/spf13/cobra"
)

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Inspect installed plugin bundles",
	Long:  `Inspect plugin bundles installed under .openclaw/plugins and ~/.openclaw/plugins.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var pluginListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed plugins and the units they ship",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		discovery, err := plugins.NewDiscovery()
		if err != nil {
			return err
		}
		return runPluginList(cmd.OutOrStdout(), newPresenter(cmd, cfg), discovery)
	},
}

func init() {
	pluginCmd.AddCommand(pluginListCmd)
}

func runPluginList(w io.Writer, p presenter.Presenter, discovery *plugins.Discovery) error {
	installed := discovery.Installed()
	if len(installed) == 0 {
		p.Info("No plugins installed")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLOCATION\tSKILLS\tHOOKS")
	fmt.Fprintln(tw, "----\t--------\t------\t-----")
	for _, plugin := range installed {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", plugin.Name, plugin.Scope, joinOrDash(plugin.Skills), joinOrDash(plugin.Hooks))
	}
	return tw.Flush()
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

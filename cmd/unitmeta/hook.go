package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/openclaw/unitmeta/pkg/hooks"
	"github.com/openclaw/unitmeta/pkg/presenter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// HookListConfig holds the flags of hook list
type HookListConfig struct {
	Filter string
	Event  string
}

// NewHookListConfig creates a HookListConfig with default values
func NewHookListConfig() *HookListConfig {
	return &HookListConfig{
		Filter: "",
		Event:  "",
	}
}

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Inspect openclaw hooks",
	Long:  `List discovered hooks and inspect the normalized metadata of HOOK.md files.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var hookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered hooks",
	Long: `List the hooks found in the configured hook directories. With --event only
enabled hooks subscribed to that event are listed.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runHookList(cmd.OutOrStdout(), newPresenter(cmd, cfg), cfg.HookDirs, getHookListConfigFromFlags(cmd))
	},
}

var hookInspectCmd = newInspectCmd(hookDomain)

func init() {
	defaults := NewHookListConfig()
	hookListCmd.Flags().String("filter", defaults.Filter, "Only list hooks whose key matches this glob")
	hookListCmd.Flags().String("event", defaults.Event, "Only list enabled hooks subscribed to this event")

	hookCmd.AddCommand(hookListCmd)
	hookCmd.AddCommand(hookInspectCmd)
}

func getHookListConfigFromFlags(cmd *cobra.Command) *HookListConfig {
	config := NewHookListConfig()
	if filter, err := cmd.Flags().GetString("filter"); err == nil {
		config.Filter = filter
	}
	if event, err := cmd.Flags().GetString("event"); err == nil {
		config.Event = event
	}
	return config
}

func hookDiscoveryOptions(dirs []string) []hooks.DiscoveryOption {
	if len(dirs) == 0 {
		return []hooks.DiscoveryOption{hooks.WithDefaultDirs()}
	}
	return []hooks.DiscoveryOption{hooks.WithHookDirs(dirs...)}
}

func runHookList(w io.Writer, p presenter.Presenter, dirs []string, config *HookListConfig) error {
	match, err := keyMatcher(config.Filter)
	if err != nil {
		return err
	}

	manager, err := hooks.NewManager(hookDiscoveryOptions(dirs)...)
	if err != nil {
		return errors.Wrap(err, "failed to discover hooks")
	}

	var selected []*hooks.Entry
	if config.Event != "" {
		selected = manager.GetHooks(config.Event)
	} else {
		for _, key := range manager.Keys() {
			selected = append(selected, manager.Entries()[key])
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := 0
	for _, entry := range selected {
		if !match(entry.Key()) {
			continue
		}
		if rows == 0 {
			fmt.Fprintln(tw, "KEY\tNAME\tENABLED\tEVENTS\tDESCRIPTION")
			fmt.Fprintln(tw, "---\t----\t-------\t------\t-----------")
		}
		rows++
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			entry.Key(),
			entry.Hook.Name,
			strconv.FormatBool(entry.Invocation.Enabled),
			strings.Join(entry.Events(), ","),
			truncate(entry.Hook.Description, 60),
		)
	}

	if rows == 0 {
		p.Info("No hooks found")
		return nil
	}
	return tw.Flush()
}

package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/openclaw/unitmeta/pkg/presenter"
	"github.com/openclaw/unitmeta/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// SkillListConfig holds the flags of skill list
type SkillListConfig struct {
	Filter string
	Only   []string
}

// NewSkillListConfig creates a SkillListConfig with default values
func NewSkillListConfig() *SkillListConfig {
	return &SkillListConfig{
		Filter: "",
		Only:   nil,
	}
}

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Inspect openclaw skills",
	Long:  `List discovered skills and inspect the normalized metadata of SKILL.md files.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered skills",
	Long: `List the skills found in the configured skill directories, keyed by their
resolved skill key. Earlier directories take precedence.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runSkillList(cmd.OutOrStdout(), newPresenter(cmd, cfg), cfg.SkillDirs, getSkillListConfigFromFlags(cmd))
	},
}

var skillInspectCmd = newInspectCmd(skillDomain)

func init() {
	defaults := NewSkillListConfig()
	skillListCmd.Flags().String("filter", defaults.Filter, "Only list skills whose key matches this glob")
	skillListCmd.Flags().StringSlice("only", defaults.Only, "Only list the skills with these keys")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillInspectCmd)
}

func getSkillListConfigFromFlags(cmd *cobra.Command) *SkillListConfig {
	config := NewSkillListConfig()
	if filter, err := cmd.Flags().GetString("filter"); err == nil {
		config.Filter = filter
	}
	if only, err := cmd.Flags().GetStringSlice("only"); err == nil {
		config.Only = only
	}
	return config
}

func skillDiscovery(dirs []string) (*skills.Discovery, error) {
	if len(dirs) == 0 {
		return skills.NewDiscovery(skills.WithDefaultDirs())
	}
	return skills.NewDiscovery(skills.WithSkillDirs(dirs...))
}

func runSkillList(w io.Writer, p presenter.Presenter, dirs []string, config *SkillListConfig) error {
	match, err := keyMatcher(config.Filter)
	if err != nil {
		return err
	}

	discovery, err := skillDiscovery(dirs)
	if err != nil {
		return errors.Wrap(err, "failed to initialize skill discovery")
	}

	entries, err := discovery.DiscoverSkills()
	if err != nil {
		return errors.Wrap(err, "failed to discover skills")
	}
	if len(config.Only) > 0 {
		entries = skills.FilterByAllowlist(entries, config.Only)
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		if match(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		p.Info("No skills found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tUSER\tMODEL\tDESCRIPTION")
	fmt.Fprintln(tw, "---\t----\t----\t-----\t-----------")
	for _, key := range keys {
		entry := entries[key]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			key,
			entry.Skill.Name,
			strconv.FormatBool(entry.Invocation.UserInvocable),
			strconv.FormatBool(!entry.Invocation.DisableModelInvocation),
			truncate(entry.Skill.Description, 60),
		)
	}
	return tw.Flush()
}

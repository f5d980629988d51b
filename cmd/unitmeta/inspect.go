package main

import (
	"context"
	"fmt"
	"io"

	"github.com/openclaw/unitmeta/pkg/logger"
	"github.com/openclaw/unitmeta/pkg/presenter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errStrict = errors.New("metadata problems found")

// InspectConfig holds the flags of the inspect subcommands
type InspectConfig struct {
	Strict bool
}

// NewInspectConfig creates an InspectConfig with default values
func NewInspectConfig() *InspectConfig {
	return &InspectConfig{Strict: false}
}

func newInspectCmd(domain unitDomain) *cobra.Command {
	defaults := NewInspectConfig()

	cmd := &cobra.Command{
		Use:   "inspect <path|dir|glob>...",
		Short: fmt.Sprintf("Print the normalized descriptor of %s files", domain.fileName),
		Long: fmt.Sprintf(`Resolve one or more %[1]s files and print the normalized descriptor.
Arguments may be %[1]s files, %[2]s directories, or doublestar patterns.

Examples:
  unitmeta %[2]s inspect ./%[2]ss/github
  unitmeta %[2]s inspect '%[2]ss/**/%[1]s' --strict -o yaml`, domain.fileName, domain.name),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			config := NewInspectConfig()
			if strict, err := cmd.Flags().GetBool("strict"); err == nil {
				config.Strict = strict
			}
			return runInspect(cmd.Context(), cmd.OutOrStdout(), newPresenter(cmd, cfg), cfg.Output, domain, args, config)
		},
	}
	cmd.Flags().Bool("strict", defaults.Strict, "Report dropped fields and install entries and exit non-zero when any exist")
	return cmd
}

func runInspect(ctx context.Context, w io.Writer, p presenter.Presenter, format string, domain unitDomain, args []string, config *InspectConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}

	paths, err := expandPaths(args, domain.fileName)
	if err != nil {
		return err
	}

	var (
		descriptors []*descriptor
		failed      int
		flagged     int
	)
	for _, path := range paths {
		unitCtx := logger.WithUnit(ctx, domain.name, path)

		d, err := domain.inspect(path)
		if err != nil {
			p.Error(err, path)
			failed++
			continue
		}

		for _, msg := range d.Diagnostics {
			logger.G(unitCtx).WithField("key", d.Key).Debug(msg)
		}
		if len(d.Diagnostics) > 0 {
			flagged++
			if config.Strict {
				p.Diagnostics(path, d.Diagnostics)
			}
		}
		descriptors = append(descriptors, d)
	}

	switch len(descriptors) {
	case 0:
	case 1:
		if err := render(w, format, descriptors[0]); err != nil {
			return err
		}
	default:
		if err := render(w, format, descriptors); err != nil {
			return err
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d %s file(s) failed to load", failed, len(paths), domain.fileName)
	}
	if config.Strict && flagged > 0 {
		return errors.Wrapf(errStrict, "%d %s file(s)", flagged, domain.fileName)
	}
	return nil
}

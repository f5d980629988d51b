package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fsnotify/fsnotify"
	"github.com/openclaw/unitmeta/pkg/hooks"
	"github.com/openclaw/unitmeta/pkg/logger"
	"github.com/openclaw/unitmeta/pkg/skills"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// WatchConfig holds configuration for the watch command
type WatchConfig struct {
	DebounceTime int
}

// NewWatchConfig creates a new WatchConfig with default values
func NewWatchConfig() *WatchConfig {
	return &WatchConfig{DebounceTime: 200}
}

// Validate validates the WatchConfig and returns an error if invalid
func (c *WatchConfig) Validate() error {
	if c.DebounceTime < 0 {
		return errors.Errorf("debounce time cannot be negative: %d", c.DebounceTime)
	}
	return nil
}

var watchCmd = &cobra.Command{
	Use:   "watch <SKILL.md|HOOK.md|unit-dir>",
	Short: "Re-resolve a unit file whenever it changes",
	Long: `Watch a SKILL.md or HOOK.md file and print a unified diff of its normalized
descriptor every time the file is saved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		config := getWatchConfigFromFlags(cmd)
		if err := config.Validate(); err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		w, err := newUnitWatcher(args[0], cfg.Output, time.Duration(config.DebounceTime)*time.Millisecond)
		if err != nil {
			return err
		}

		p := newPresenter(cmd, cfg)
		fmt.Fprint(cmd.OutOrStdout(), w.Current())
		p.Info(fmt.Sprintf("Watching %s... Press Ctrl+C to stop", w.path))

		return w.Run(ctx, cmd.OutOrStdout())
	},
}

func init() {
	defaults := NewWatchConfig()
	watchCmd.Flags().IntP("debounce", "d", defaults.DebounceTime, "Debounce time in milliseconds for file change events")
}

func getWatchConfigFromFlags(cmd *cobra.Command) *WatchConfig {
	config := NewWatchConfig()
	if debounceTime, err := cmd.Flags().GetInt("debounce"); err == nil {
		config.DebounceTime = debounceTime
	}
	return config
}

// unitWatcher re-renders one unit file on change and reports the difference
// against the previous rendering
type unitWatcher struct {
	path     string
	domain   unitDomain
	format   string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	last     string
}

func newUnitWatcher(path, format string, debounce time.Duration) (*unitWatcher, error) {
	path, err := resolveUnitFile(path)
	if err != nil {
		return nil, err
	}
	domain, err := domainForPath(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}
	// Editors often replace files on save, so the directory is watched
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", filepath.Dir(path))
	}

	w := &unitWatcher{
		path:     path,
		domain:   domain,
		format:   format,
		debounce: debounce,
		watcher:  watcher,
	}
	w.last = w.snapshot()
	return w, nil
}

// resolveUnitFile makes path absolute and maps a unit directory to the unit
// file it holds
func resolveUnitFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrapf(err, "failed to stat %s", path)
	}
	if !info.IsDir() {
		return abs, nil
	}
	for _, name := range []string{skills.FileName, hooks.FileName} {
		candidate := filepath.Join(abs, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.Errorf("%s contains neither %s nor %s", path, skills.FileName, hooks.FileName)
}

// Current returns the latest rendering of the unit
func (w *unitWatcher) Current() string {
	return w.last
}

func (w *unitWatcher) snapshot() string {
	d, err := w.domain.inspect(w.path)
	if err != nil {
		return fmt.Sprintf("error: %v\n", err)
	}
	out, err := renderString(w.format, d)
	if err != nil {
		return fmt.Sprintf("error: %v\n", err)
	}
	return out
}

// refresh re-renders the unit and writes the diff when the rendering changed
func (w *unitWatcher) refresh(out io.Writer) bool {
	next := w.snapshot()
	diff := descriptorDiff(w.path, w.last, next)
	if diff == "" {
		return false
	}
	fmt.Fprint(out, diff)
	w.last = next
	return true
}

// Run processes file events until ctx is done
func (w *unitWatcher) Run(ctx context.Context, out io.Writer) error {
	defer w.watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			logger.G(ctx).WithField("file", event.Name).WithField("operation", event.Op.String()).Debug("unit file changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.refresh(out)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.G(ctx).WithError(err).Error("error watching unit file")
		}
	}
}

// descriptorDiff returns a unified diff between two renderings, or "" when
// they are equal
func descriptorDiff(path, before, after string) string {
	if before == after {
		return ""
	}
	return udiff.Unified(path, path, before, after)
}

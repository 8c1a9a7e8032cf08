package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	ifc "github.com/yacobolo/fontcss/internal/fontcss"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Sync, then sync again whenever fonts change",
	Long: `Run sync once, then watch the font directory and every family directory.
Adding, renaming or removing font files triggers another sync after the
debounce window. Stop with Ctrl+C.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", 300*time.Millisecond, "Quiet period before re-syncing")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	config := buildConfig()
	con := ifc.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), config)

	if err := runSync(cmd); err != nil {
		return err
	}

	debounce := k.Duration("watch.debounce")
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}

	con.Infof("Watching %s (Ctrl+C to stop)", config.FontsDir)
	return watchFonts(ctx, config.FontsDir, debounce, con, func() {
		if err := runSync(cmd); err != nil {
			con.Errorf("%v", err)
		}
	})
}

// watchFonts calls onChange after every burst of filesystem events under root.
// It returns when ctx is done.
func watchFonts(ctx context.Context, root string, debounce time.Duration, con *ifc.Console, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(root); err != nil {
		return fmt.Errorf("watching %s: %w", root, err)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("listing %s: %w", root, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			if err := watcher.Add(filepath.Join(root, e.Name())); err != nil {
				con.Warnf("not watching %s: %v", e.Name(), err)
			}
		}
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			// New family directories join the watch set
			if event.Op.Has(fsnotify.Create) && filepath.Dir(event.Name) == filepath.Clean(root) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						con.Warnf("not watching %s: %v", event.Name, err)
					}
				}
			}
			con.Verbosef("%s %s", event.Op, event.Name)
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			con.Warnf("watch error: %v", err)

		case <-timer.C:
			onChange()
		}
	}
}

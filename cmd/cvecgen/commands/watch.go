package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/cvecgen/am"
	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/logger"
)

// WatchCmd regenerates on config changes
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever the config file changes",
	Long: `Generate every configured unit, then watch the config file and
regenerate each time it is saved. Stops on Ctrl-C.

Invalid edits are reported and skipped; the previous output stays in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runWatch(ctx, cmd.OutOrStdout(), cfg)
	},
}

func runWatch(ctx context.Context, out io.Writer, cfg *am.Config) error {
	path := cfg.Source()
	if path == "" {
		return errors.WithHint(
			errors.NewNotFoundError("no config file to watch"),
			"create "+am.ProjectConfigName+" or pass --config")
	}

	if err := runGenerate(ctx, out, cfg, generateOptions{}); err != nil {
		return err
	}

	watcher, err := am.NewConfigWatcher(path)
	if err != nil {
		return err
	}

	log := logger.ComponentLogger("watch")
	watcher.OnReload(func(next *am.Config) error {
		if err := next.Validate(); err != nil {
			fmt.Fprintf(out, "%s %s\n", pterm.Red("✗"), err)
			return err
		}
		return runGenerate(ctx, out, next, generateOptions{})
	})
	watcher.Start()

	fmt.Fprintf(out, "%s Watching %s\n", pterm.Gray("→"), path)
	<-ctx.Done()

	log.Infow("Stopping config watcher", logger.FieldConfig, path)
	return watcher.Stop()
}

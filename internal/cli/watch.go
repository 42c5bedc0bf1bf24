package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gedstore/internal/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload the document whenever another program changes it",
		Long: `Watch reloads the document after each change made by another program,
prints its counts and, when a mirror is configured, refreshes the mirror.
Runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reload := func() {
				uow, err := a.open()
				if err != nil {
					a.log.Error().Err(err).Msg("reload failed")
					return
				}
				if a.mirror != nil {
					if err := a.mirror.Sync(ctx, uow.Snapshot()); err != nil {
						a.log.Error().Err(err).Msg("mirror sync failed")
					}
				}
				printStats(cmd.OutOrStdout(), uow.Snapshot())
			}
			reload()

			w := watcher.New(a.cfg.Document.Path, reload).
				WithDebounce(a.cfg.Watch.Debounce.Duration()).
				WithLogger(a.log.Logger)
			if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

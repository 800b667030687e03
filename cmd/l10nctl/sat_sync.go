package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/platform/app"
	"github.com/SscSPs/l10n_addons/internal/platform/config"
)

var satSyncCmd = &cobra.Command{
	Use:   "sat-sync",
	Short: "Synchronize the SAT state of sent and cancelled CFDI documents",
	Long: `Queries the SAT status service for every sent or cancelled document whose SAT state is
not final yet, and stores the answers.

Without --every the command runs once. With --every it keeps running and synchronizes at the
given interval until interrupted.`,
	Example: `  # One-shot synchronization of every pending document
  l10nctl sat-sync

  # Two documents only
  l10nctl sat-sync --document 5b7c... --document 9e01...

  # Every 30 minutes
  l10nctl sat-sync --every 30m`,
	RunE: runSATSync,
}

func init() {
	rootCmd.AddCommand(satSyncCmd)

	satSyncCmd.Flags().StringSlice("document", nil, "Document id to synchronize (repeatable, default: every pending document)")
	satSyncCmd.Flags().Duration("every", 0, "Run periodically at this interval (e.g. 1h); 0 runs once")
}

func runSATSync(cmd *cobra.Command, args []string) error {
	documentIDs, _ := cmd.Flags().GetStringSlice("document")
	every, _ := cmd.Flags().GetDuration("every")
	if every < 0 {
		return fmt.Errorf("--every must not be negative")
	}
	if cfg.StorageBackend == config.StorageMemory {
		logger.Warn("In-memory storage has no documents outside the server process")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger, false)
	if err != nil {
		return err
	}
	defer application.Close()

	return syncLoop(ctx, application.Services.EDIDocument, documentIDs, every, logger)
}

// syncLoop runs one synchronization, then one per interval until ctx is done. Failed runs are
// logged and the loop goes on; a one-shot run returns its error.
func syncLoop(ctx context.Context, edi portssvc.EDIDocumentSvcFacade, documentIDs []string, every time.Duration, logger *slog.Logger) error {
	run := func() error {
		res, err := edi.FetchAndUpdateSATStatus(ctx, documentIDs)
		if err != nil {
			logger.Error("SAT synchronization failed", slog.String("error", err.Error()))
			return err
		}
		logger.Info("SAT synchronization done", slog.Int("checked", res.Checked), slog.Int("updated", res.Updated))
		return nil
	}

	if every == 0 {
		return run()
	}

	_ = run()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("SAT synchronization stopped")
			return nil
		case <-ticker.C:
			_ = run()
		}
	}
}

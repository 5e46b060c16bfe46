package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jekabolt/sellerboard-kpi/internal/store"
	"github.com/spf13/cobra"
)

var checkStoreCmd = &cobra.Command{
	Use:   "check-store",
	Short: "Check the database connection and print what is stored per account",
	RunE:  runCheckStore,
}

func runCheckStore(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("couldn't connect to mysql: %w", err)
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		return err
	}
	stats, err := db.Performance().Stats(ctx)
	if err != nil {
		return err
	}
	for _, st := range stats {
		logger.InfoContext(ctx, "stored records",
			slog.String("account", st.Account),
			slog.Int64("records", st.Records),
			slog.String("first_date", st.FirstDate.String),
			slog.String("last_date", st.LastDate.String),
		)
	}
	statuses, err := db.ImportStatus().GetImportStatuses(ctx)
	if err != nil {
		return err
	}
	for _, st := range statuses {
		logger.InfoContext(ctx, "last import",
			slog.String("account", st.Account),
			slog.String("status", string(st.Status)),
			slog.String("run_id", st.RunID),
			slog.Time("finished_at", st.FinishedAt),
			slog.String("error", st.ErrorMessage.String),
		)
	}
	logger.InfoContext(ctx, "store is reachable", slog.Int("accounts", len(stats)))
	return nil
}

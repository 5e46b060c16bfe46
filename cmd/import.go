package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jekabolt/sellerboard-kpi/app"
	"github.com/jekabolt/sellerboard-kpi/internal/store"
	"github.com/spf13/cobra"
)

var (
	importAccount string

	importCmd = &cobra.Command{
		Use:   "import",
		Short: "Import the current Sellerboard reports once and print the run summary",
		RunE:  runImport,
	}
)

func init() {
	importCmd.Flags().StringVarP(&importAccount, "account", "a", "", "import only this account")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("couldn't connect to mysql: %w", err)
	}
	defer db.Close()

	summary, runErr := app.NewImporter(cfg, db, nil).Run(ctx, importAccount)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return err
	}
	return runErr
}

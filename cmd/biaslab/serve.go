package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tordrt/biaslab"
	"github.com/tordrt/biaslab/internal/content"
	"github.com/tordrt/biaslab/internal/lessonplan"
	"github.com/tordrt/biaslab/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

const defaultServeStore = "memory://"

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := content.Load()
	if err != nil {
		return err
	}

	url := cfg.StoreURL
	if url == "" {
		url = defaultServeStore
	}
	store, err := biaslab.OpenStore(ctx, url)
	if err != nil {
		return err
	}
	defer closeStore(store)

	srv := server.New(server.Config{
		Addr:            cfg.Addr,
		Seed:            cfg.Seed,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger, store, catalog, lessonplan.NewBuilder())

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

func closeStore(store lessonplan.Store) {
	if err := store.Close(); err != nil {
		logger.Warn("failed to close lesson plan store", "error", err)
	}
}

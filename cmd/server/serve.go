package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Clark-Hu/movienest/internal/catalog"
	"github.com/Clark-Hu/movienest/internal/config"
	httpserver "github.com/Clark-Hu/movienest/internal/http"
	"github.com/Clark-Hu/movienest/internal/view"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MovieNest web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "optional config file (yaml, toml or json)")
	return cmd
}

func runServe(parent context.Context, configPath string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	logger := log.New(os.Stdout, "[movienest] ", log.LstdFlags|log.Lshortfile)

	views, err := view.New()
	if err != nil {
		return fmt.Errorf("load views: %w", err)
	}

	server := httpserver.New(cfg, catalog.Default(), views, logger)

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.Start()
	}()

	var runErr error
	select {
	case err := <-serverErrCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), server.ShutdownTimeout())
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
		runErr = fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serverErrCh; err != nil && runErr == nil {
		runErr = fmt.Errorf("server error: %w", err)
	}
	return runErr
}

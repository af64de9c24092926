package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rbaliev/dfakit"
	fileStore "github.com/rbaliev/dfakit/internal/adapters/file"
	httpAdapter "github.com/rbaliev/dfakit/internal/adapters/http"
	redisStore "github.com/rbaliev/dfakit/internal/adapters/redis"
	"github.com/rbaliev/dfakit/internal/config"
	"github.com/rbaliev/dfakit/internal/logging"
	"github.com/rbaliev/dfakit/pkg/adapters/memory"
	"github.com/rbaliev/dfakit/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP validation and automaton API",
	Long:  `Starts the dfakit engine in server mode, exposing a JSON API over HTTP with Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		port, _ := cmd.Flags().GetString("port")
		debug, _ := cmd.Flags().GetBool("debug")

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if port != "" {
			cfg.Listen = ":" + port
		}

		store, closeStore, err := buildStore(cfg.Store)
		if err != nil {
			return fmt.Errorf("store: %w", err)
		}
		defer closeStore()

		handler := httpAdapter.NewHandler(
			dfakit.NewURLValidator(),
			dfakit.NewHeuristicValidator(),
			store,
			logger,
		)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting dfakit server", "addr", srv.Addr, "store", cfg.Store.Backend)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("could not stop server: %w", err)
				}
			}
			logger.Info("dfakit server stopped")
		}
		return nil
	},
}

// buildStore wires the configured store backend.
func buildStore(cfg config.StoreConfig) (ports.AutomatonStore, func(), error) {
	switch cfg.Backend {
	case "memory":
		return memory.NewStore(), func() {}, nil
	case "redis":
		store := redisStore.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB,
			redisStore.WithTTL(time.Duration(cfg.Redis.TTL)))
		return store, func() { _ = store.Close() }, nil
	case "file", "":
		return fileStore.NewStore(cfg.Path), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config)")
	serveCmd.Flags().StringP("config", "c", "dfakit.yaml", "Path to the configuration file")
}

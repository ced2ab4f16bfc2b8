package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jenkins-cicd/hello-server/internal/logging"
	"github.com/jenkins-cicd/hello-server/internal/server"
	"github.com/jenkins-cicd/hello-server/internal/version"
)

var (
	appConfig *config
	closeLog  = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:          "hello-server",
	Short:        "Hello server with health and readiness probes",
	Version:      version.Detailed(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, closer, err := logging.Setup(cfg.Log)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		closeLog = closer

		if cfg.portErr != nil {
			slog.Warn("invalid PORT, using default", "error", cfg.portErr, "port", server.DefaultPort)
		}

		appConfig = cfg
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := server.New(appConfig.Server)
		if err != nil {
			return err
		}

		defer slog.Info("Bye!")
		return s.Start(cmd.Context())
	},
}

func main() {
	// real environment wins over .env
	_ = godotenv.Load()

	// Setup root context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if closeErr := closeLog(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "close log file: %v\n", closeErr)
	}
	if err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/flightpath/internal/server"
)

var (
	flagAddr      string
	flagLogLevel  string
	flagLogFormat string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve projections over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (default from config)")
	serveCmd.Flags().StringVar(&flagLogFormat, "log-format", "", "Log format: text or json (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, p, err := loadPlan()
	if err != nil {
		return err
	}

	sc := cfg.Server
	if flagAddr != "" {
		sc.Addr = flagAddr
	}
	if flagLogLevel != "" {
		sc.LogLevel = flagLogLevel
	}
	if flagLogFormat != "" {
		sc.LogFormat = flagLogFormat
	}

	log, err := newLogger(sc.LogLevel, sc.LogFormat, os.Stderr)
	if err != nil {
		return err
	}

	svc := server.New(server.Config{
		Addr:     sc.Addr,
		Defaults: p,
		Catalog:  cfg.Catalog(),
	}, log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yyoonchul/murmur-blog/internal/app"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the background comment generator",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	log, cfg, err := setup()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, log, cfg)
	if err != nil {
		log.Error("app init failed", "error", err)
		log.Sync()
		return err
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("server stopped", "error", err)
		return err
	}
	log.Info("server stopped")
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yyoonchul/murmur-blog/internal/app"
	"github.com/yyoonchul/murmur-blog/internal/platform/envutil"
	"github.com/yyoonchul/murmur-blog/internal/platform/logger"
)

var (
	dataDir string
	logMode string

	rootCmd = &cobra.Command{
		Use:   "murmur",
		Short: "Local-first blog backend with AI reader personas",
		Long: `Murmur serves a small blog API and answers every post with comments
from a cast of AI personas, each with its own voice.`,
		SilenceUsage: true,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (overrides DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&logMode, "log-mode", "", "development or production (overrides LOG_MODE)")

	rootCmd.AddCommand(serveCmd, initCmd, generateCmd)
}

// setup builds the logger and config shared by every command.
func setup() (*logger.Logger, app.Config, error) {
	if dataDir != "" {
		if err := os.Setenv("DATA_DIR", dataDir); err != nil {
			return nil, app.Config{}, err
		}
	}
	mode := logMode
	if mode == "" {
		mode = envutil.String("LOG_MODE", "development")
	}
	log, err := logger.New(mode)
	if err != nil {
		return nil, app.Config{}, fmt.Errorf("init logger: %w", err)
	}
	return log, app.LoadConfig(log), nil
}

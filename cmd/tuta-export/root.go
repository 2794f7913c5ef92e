package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutaexport/tuta-export/internal/config"
	"github.com/tutaexport/tuta-export/internal/logging"
)

// exitFunc is the function called to end the process on failure. Tests
// replace it so a failing command doesn't tear down the test binary.
var exitFunc = os.Exit

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "tuta-export",
	Short: "Export a Tutanota mailbox to local EML files",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	if err := config.BindGlobalFlags(rootCmd, v); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(listFoldersCmd)
	rootCmd.AddCommand(downloadCmd)
}

// Execute runs the root command and exits non-zero on failure. It is
// the sole entry point called from main.
func Execute() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}

func loadGlobalConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.LoadGlobal(v)
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := logging.New(os.Stderr, cfg.Verbosity, cfg.LogFilter)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

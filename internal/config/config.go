package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// defaultHost is the production Tutanota API host; there is no flag to
// change it today, but it is kept as a named constant rather than
// scattered string literals, the way the teacher names its defaults.
const defaultHost = "https://app.tuta.com"

const defaultConcurrentDownloads = 5

// Config is the fully resolved configuration for one CLI invocation.
type Config struct {
	Username string
	Password string
	Host     string

	Verbosity     int
	LogFilter     string
	DebugDumpJSON string

	Folder              string
	Path                string
	ConcurrentDownloads int
	IgnoreNewMails      bool
}

// BindGlobalFlags registers the top-level persistent flags (shared by
// every subcommand) on cmd and binds them into v.
func BindGlobalFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.PersistentFlags()
	flags.String("username", "", "Tutanota account email address")
	flags.String("password", "", "Tutanota account password")
	flags.CountP("verbose", "v", "increase log verbosity (repeatable)")
	flags.String("log-filter", "", "explicit log level, overrides -v")
	flags.String("debug-dump-json-to", "", "directory to dump raw server JSON responses into")

	for _, name := range []string{"username", "password", "verbose", "log-filter", "debug-dump-json-to"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	v.SetEnvPrefix("tuta_export")
	v.AutomaticEnv()
	if err := v.BindEnv("username", "TUTANOTA_CLI_USERNAME"); err != nil {
		return fmt.Errorf("bind env username: %w", err)
	}
	if err := v.BindEnv("password", "TUTANOTA_CLI_PASSWORD"); err != nil {
		return fmt.Errorf("bind env password: %w", err)
	}
	return nil
}

// BindDownloadFlags registers the download subcommand's flags on cmd
// and binds them into v.
func BindDownloadFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.Flags()
	flags.String("folder", "", "name of the folder to export")
	flags.String("path", "", "target directory for exported mails")
	flags.Int("concurrent-downloads", defaultConcurrentDownloads, "number of mails to download concurrently")
	flags.Bool("ignore-new-mails", false, "stop once a mail received after the run started is reached")

	for _, name := range []string{"folder", "path", "concurrent-downloads", "ignore-new-mails"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// LoadGlobal resolves the flags shared by every subcommand.
func LoadGlobal(v *viper.Viper) (Config, error) {
	cfg := Config{
		Username:      v.GetString("username"),
		Password:      v.GetString("password"),
		Host:          defaultHost,
		Verbosity:     v.GetInt("verbose"),
		LogFilter:     v.GetString("log-filter"),
		DebugDumpJSON: v.GetString("debug-dump-json-to"),
	}
	if cfg.Username == "" || cfg.Password == "" {
		return Config{}, ErrMissingCredentials
	}
	return cfg, nil
}

// LoadDownload resolves the download command's flags on top of an
// already-loaded global Config.
func LoadDownload(v *viper.Viper, cfg Config) (Config, error) {
	cfg.Folder = v.GetString("folder")
	cfg.Path = v.GetString("path")
	cfg.ConcurrentDownloads = v.GetInt("concurrent-downloads")
	cfg.IgnoreNewMails = v.GetBool("ignore-new-mails")

	var errs []error
	if cfg.Folder == "" {
		errs = append(errs, ErrMissingFolder)
	}
	if cfg.Path == "" {
		errs = append(errs, ErrMissingPath)
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

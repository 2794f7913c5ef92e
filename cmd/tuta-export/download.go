package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tutaexport/tuta-export/internal/config"
	"github.com/tutaexport/tuta-export/internal/export"
	"github.com/tutaexport/tuta-export/internal/session"
	"github.com/tutaexport/tuta-export/internal/transport"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download every mail in a folder as EML files",
	RunE: func(cmd *cobra.Command, args []string) error {
		global, logger, err := loadGlobalConfig()
		if err != nil {
			return err
		}
		cfg, err := config.LoadDownload(v, global)
		if err != nil {
			return err
		}
		return withSession(cfg, logger, func(ctx context.Context, client *transport.Client, s *session.Session) error {
			_, err := export.Run(ctx, client, cfg.Host, s, export.Config{
				Folder:              cfg.Folder,
				TargetDir:           cfg.Path,
				ConcurrentDownloads: cfg.ConcurrentDownloads,
				IgnoreNewMails:      cfg.IgnoreNewMails,
			}, logger)
			return err
		})
	},
}

func init() {
	if err := config.BindDownloadFlags(downloadCmd, v); err != nil {
		panic(err)
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutaexport/tuta-export/internal/folders"
	"github.com/tutaexport/tuta-export/internal/session"
	"github.com/tutaexport/tuta-export/internal/transport"
)

var listFoldersCmd = &cobra.Command{
	Use:   "list-folders",
	Short: "Print every mail folder name, one per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadGlobalConfig()
		if err != nil {
			return err
		}
		return withSession(cfg, logger, func(ctx context.Context, client *transport.Client, s *session.Session) error {
			items, err := folders.List(ctx, client, cfg.Host, s)
			if err != nil {
				return err
			}
			for item := range items {
				if item.Err != nil {
					return item.Err
				}
				fmt.Fprintln(cmd.OutOrStdout(), item.Value.Name)
			}
			return nil
		})
	},
}

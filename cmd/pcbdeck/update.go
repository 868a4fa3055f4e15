package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcbdeck/pcbdeck/internal/config"
	"github.com/pcbdeck/pcbdeck/internal/ui/panels"
	"github.com/pcbdeck/pcbdeck/internal/update"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace the running binary with the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := config.DefaultUpdateRepo
		if cfg, err := config.Load(); err == nil {
			repo = cfg.Update.Repo
		}

		rel, err := update.Apply(panels.Version, repo)
		if err != nil {
			return err
		}
		fmt.Printf("Updated to %s\n", rel.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

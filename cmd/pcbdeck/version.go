package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcbdeck/pcbdeck/internal/config"
	"github.com/pcbdeck/pcbdeck/internal/ui/panels"
	"github.com/pcbdeck/pcbdeck/internal/update"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and check for a newer release",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pcbdeck version %s\n", panels.Version)

		if panels.Version == "dev" {
			fmt.Println("Development build; update check skipped.")
			return
		}

		repo := config.DefaultUpdateRepo
		if cfg, err := config.Load(); err == nil {
			repo = cfg.Update.Repo
		}

		rel, err := update.Check(panels.Version, repo)
		if err != nil {
			fmt.Printf("Update check failed: %v\n", err)
			return
		}
		if rel != nil {
			fmt.Printf("Update available: %s. Run \"pcbdeck update\" to install.\n", rel.Version)
		} else {
			fmt.Println("You are up to date.")
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

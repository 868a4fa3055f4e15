package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcbdeck/pcbdeck/internal/locate"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print the detected kicad-cli path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := locate.Locate()
		if errors.Is(err, locate.ErrNotFound) {
			return fmt.Errorf("kicad-cli not found; install KiCad or set kicad.cli in pcbdeck.yaml")
		}
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

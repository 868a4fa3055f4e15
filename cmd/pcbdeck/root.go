package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pcbdeck/pcbdeck/internal/bus"
	"github.com/pcbdeck/pcbdeck/internal/config"
	"github.com/pcbdeck/pcbdeck/internal/locate"
	"github.com/pcbdeck/pcbdeck/internal/logging"
	"github.com/pcbdeck/pcbdeck/internal/process"
	"github.com/pcbdeck/pcbdeck/internal/ui"
	"github.com/pcbdeck/pcbdeck/internal/ui/panels"
	"github.com/pcbdeck/pcbdeck/internal/update"
)

var (
	flagInput   string
	flagProject string
)

var rootCmd = &cobra.Command{
	Use:   "pcbdeck",
	Short: "Terminal front end for the PCB BOM converter and KiCad export scripts",
	Long: `pcbdeck drives two board production scripts from one terminal UI:
a BOM CSV converter for assembly-house uploads, and a KiCad export
pipeline that runs design checks and produces fabrication outputs.

Fill in a form, press enter, and watch the merged script output stream
into the log panel.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagInput, "input", "", "prefill the BOM form's input CSV path")
	rootCmd.PersistentFlags().StringVar(&flagProject, "project", "", "prefill the KiCad form's project path")
}

func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logFile, err := logging.Open()
	if err == nil {
		defer logFile.Close()
	}

	b := bus.New()
	defer b.Close()
	ctrl := process.NewController(b, logger, cfg.UI.LogBufferLines)

	app := ui.NewApp(cfg, ctrl, logger)
	if cfg.KiCad.CLI == "" {
		if path, err := locate.Locate(); err == nil {
			app.PrefillKiCadCLI(path)
		}
	}
	if flagInput != "" {
		app.PrefillBOMInput(flagInput)
	}
	if flagProject != "" {
		app.PrefillKiCadProject(flagProject)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := ui.Forward(ctx, b, p); err != nil {
			logger.Error().Err(err).Msg("output forwarding stopped")
		}
	}()

	if cfg.Update.CheckOnStartup == nil || *cfg.Update.CheckOnStartup {
		go func() {
			rel, err := update.Check(panels.Version, cfg.Update.Repo)
			if err != nil || rel == nil {
				return
			}
			p.Send(ui.UpdateAvailableMsg{Version: rel.Version})
		}()
	}

	_, err = p.Run()
	return err
}

package main

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fentz26/jobsummary/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive summary panel",
	RunE:  runTUI,
}

var (
	tuiJobID    string
	tuiJobType  string
	tuiSimulate bool
)

func init() {
	tuiCmd.Flags().StringVar(&tuiJobID, "job", "", "Job ID to select initially")
	tuiCmd.Flags().StringVar(&tuiJobType, "type", "", "Only list jobs of this type")
	tuiCmd.Flags().BoolVar(&tuiSimulate, "simulate", false, "Randomly drift job counts to mimic live updates")
}

func runTUI(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	// Logs must not reach the alt screen.
	if e.cfg.LogFile != "" {
		f, err := tea.LogToFile(e.cfg.LogFile, "jobsummary")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if tuiSimulate {
		go simulate(ctx, e.store, e.cfg.RefreshInterval)
	}

	app := tui.New(e.store, e.prefs, tui.Options{
		BarWidth:        e.cfg.BarWidth,
		InlineWidth:     e.cfg.InlineWidth,
		RefreshInterval: e.cfg.RefreshInterval,
		JobID:           tuiJobID,
		JobType:         tuiJobType,
	})
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

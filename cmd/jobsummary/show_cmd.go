package main

import (
	"fmt"

	"github.com/fentz26/jobsummary/internal/summary"
	"github.com/fentz26/jobsummary/internal/tui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [job-id]",
	Short: "Print the summary panel for a job",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showToggle bool

func init() {
	showCmd.Flags().BoolVar(&showToggle, "toggle", false, "Toggle expand/collapse before printing")
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	w, err := e.store.GetWorkload(args[0])
	if err != nil {
		return err
	}
	if w == nil {
		return fmt.Errorf("job %s not found", args[0])
	}

	collapse := summary.NewCollapse(e.prefs)
	panel := tui.NewSummaryModel(w, collapse, e.cfg.BarWidth, e.cfg.InlineWidth)
	if showToggle {
		panel.Update(tui.ToggleMsg{})
		if err := collapse.Err(); err != nil {
			return fmt.Errorf("save summary state: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), panel.View())
	return nil
}

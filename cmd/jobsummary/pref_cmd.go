package main

import (
	"fmt"

	"github.com/fentz26/jobsummary/internal/summary"
	"github.com/spf13/cobra"
)

var prefCmd = &cobra.Command{
	Use:   "pref",
	Short: "Inspect the persisted expand/collapse state",
}

var prefGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored value and the resulting state",
	RunE:  runPrefGet,
}

var prefToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the stored state",
	RunE:  runPrefToggle,
}

var prefClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored value (panels start expanded)",
	RunE:  runPrefClear,
}

func init() {
	prefCmd.AddCommand(prefGetCmd, prefToggleCmd, prefClearCmd)
}

func runPrefGet(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	v, ok, err := e.prefs.Get(summary.ExpandKey)
	if err != nil {
		return err
	}
	stored := "<unset>"
	if ok {
		stored = fmt.Sprintf("%q", v)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (%s)\n", summary.ExpandKey, stored, summary.NewCollapse(e.prefs).State())
	return nil
}

func runPrefToggle(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	c := summary.NewCollapse(e.prefs)
	state := c.Toggle()
	if err := c.Err(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Summary %s\n", state)
	return nil
}

func runPrefClear(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if mem, ok := e.prefs.(*summary.MemoryStore); ok {
		mem.Clear()
	} else if err := e.store.DeletePref(summary.ExpandKey); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Cleared")
	return nil
}

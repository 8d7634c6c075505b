package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/fentz26/jobsummary/internal/nomadjson"
	"github.com/fentz26/jobsummary/internal/sample"
	"github.com/fentz26/jobsummary/internal/summary"
	"github.com/spf13/cobra"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage the local job catalog",
}

var jobImportCmd = &cobra.Command{
	Use:   "import [file|-]",
	Short: "Import jobs from a Nomad /v1/jobs JSON payload",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobImport,
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs",
	RunE:  runJobList,
}

var jobSeedCmd = &cobra.Command{
	Use:   "seed [count]",
	Short: "Add sample jobs",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJobSeed,
}

var jobRmCmd = &cobra.Command{
	Use:   "rm [job-id]",
	Short: "Remove a job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobRm,
}

var (
	jobType  string
	seedSeed int64
)

func init() {
	jobCmd.AddCommand(jobImportCmd, jobListCmd, jobSeedCmd, jobRmCmd)

	jobListCmd.Flags().StringVar(&jobType, "type", "", "Filter by job type (service, batch, system)")
	jobSeedCmd.Flags().Int64Var(&seedSeed, "seed", 0, "Random seed (default: current time)")
}

func runJobImport(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open payload: %w", err)
		}
		defer f.Close()
		r = f
	}

	workloads, err := nomadjson.DecodeWorkloads(r)
	if err != nil {
		return err
	}
	for i := range workloads {
		if err := e.store.UpsertWorkload(&workloads[i]); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d job(s)\n", len(workloads))
	return nil
}

func runJobList(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	workloads, err := e.store.ListWorkloads(jobType)
	if err != nil {
		return err
	}
	if len(workloads) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No jobs found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tMODE\tTOTAL")
	for i := range workloads {
		wl := &workloads[i]
		b := summary.Resolve(wl)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			truncate(wl.ID, 36), truncate(wl.DisplayName(), 40), wl.Type, b.Mode(), summary.Total(b.Entries()))
	}
	return w.Flush()
}

func runJobSeed(cmd *cobra.Command, args []string) error {
	n := 6
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return fmt.Errorf("count must be a positive integer, got %q", args[0])
		}
		n = v
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	seed := seedSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	for _, wl := range sample.NewGenerator(seed).Mix(n) {
		wl := wl
		if err := e.store.UpsertWorkload(&wl); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %d sample job(s)\n", n)
	return nil
}

func runJobRm(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.store.DeleteWorkload(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s\n", args[0])
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

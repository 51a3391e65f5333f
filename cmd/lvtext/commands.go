package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtext/internal/batch"
)

// single evaluates one job and prints its output on its own line.
func (a *app) single(cmd *cobra.Command, j batch.Job) error {
	out, err := batch.Eval(j, a.settings)
	if err != nil {
		a.log.Debug().Str("op", string(j.Op)).Err(err).Msg("rejected")
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "encode TEXT",
		Short:   "Run-length encode lowercase letters and spaces",
		Example: `  lvtext encode "heloooooooo there"   # hel8o there`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.single(cmd, batch.Job{Op: batch.OpEncode, Input: args[0]})
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "decode TEXT",
		Short:   "Expand a run-length encoded string",
		Example: `  lvtext decode "f2otl2ose"   # footloose`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.single(cmd, batch.Job{Op: batch.OpDecode, Input: args[0]})
		},
	}
}

func newFindCmd(a *app) *cobra.Command {
	var k uint
	cmd := &cobra.Command{
		Use:     "find TEXT",
		Short:   "Longest substring whose characters each occur at least k times in TEXT",
		Example: `  lvtext find --k 2 aabxbba   # aab`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.single(cmd, batch.Job{Op: batch.OpFind, Input: args[0], K: k})
		},
	}
	cmd.Flags().UintVarP(&k, "k", "k", 1, "minimum whole-text frequency")
	return cmd
}

func newReformatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "reformat DATE",
		Short:   "Normalize Y-M-D, M/D/Y, MONTH DAY, YEAR or MON DAY, YEAR to YYYY-MM-DD",
		Example: `  lvtext reformat "January 15, 2022"   # 2022-01-15`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.single(cmd, batch.Job{Op: batch.OpReformat, Input: args[0]})
		},
	}
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers int
		output  string
	)
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate a YAML or TOML job file concurrently",
		Long: `Reads a job file with a top-level "jobs" list. Each job has an op
(encode, decode, find, reformat), an input, an optional id and, for find, k.

Per-job failures are reported in the output; the command fails only when the
file cannot be loaded or the run is interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := batch.LoadJobs(args[0])
			if err != nil {
				return err
			}
			if workers == 0 {
				workers = a.cfg.Batch.Workers
			}
			if output == "" {
				output = a.cfg.Batch.Output
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", workers)
			}

			r := batch.NewRunner(
				batch.WithWorkers(workers),
				batch.WithLogger(a.log),
				batch.WithSettings(a.settings),
			)
			rep, err := r.Run(cmd.Context(), jobs)
			if err != nil {
				return err
			}
			return batch.WriteReport(cmd.OutOrStdout(), rep, output)
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent jobs (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "json or yaml (default from config)")
	return cmd
}

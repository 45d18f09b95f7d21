package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Korupama/euit-datatools/pkg/expander"
	"github.com/Korupama/euit-datatools/pkg/job"
)

type expandOptions struct {
	source  string
	output  string
	seed    int64
	idStart int
	idEnd   int
}

func newExpandCmd(a *app) *cobra.Command {
	opts := &expandOptions{}

	cmd := &cobra.Command{
		Use:   "expand-scores",
		Short: "Synthesize study results for additional students",
		Long: `Reads the sample study result CSV and appends, for every new student id,
a copy of all source rows with the student id replaced and every non-empty
score (diem_qua_trinh, diem_giua_ki, diem_thuc_hanh, diem_cuoi_ki) resampled
between 5 and 10 in steps of 0.5. Output is deterministic for a given seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.sync()
			return runExpand(cmd, a, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.source, "source", "", "source CSV (default from EXPAND_SOURCE)")
	flags.StringVar(&opts.output, "output", "", "output CSV (default from EXPAND_OUTPUT)")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed (default from EXPAND_SEED)")
	flags.IntVar(&opts.idStart, "id-start", 0, "first new student id (default from EXPAND_ID_START)")
	flags.IntVar(&opts.idEnd, "id-end", 0, "last new student id, inclusive (default from EXPAND_ID_END)")

	return cmd
}

func runExpand(cmd *cobra.Command, a *app, opts *expandOptions) error {
	cfg := *a.cfg.Expand
	flags := cmd.Flags()
	if flags.Changed("source") {
		if err := requireNonEmpty("source", opts.source); err != nil {
			return err
		}
		cfg.SourcePath = opts.source
	}
	if flags.Changed("output") {
		if err := requireNonEmpty("output", opts.output); err != nil {
			return err
		}
		cfg.OutputPath = opts.output
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("id-start") {
		cfg.IDs.Start = opts.idStart
	}
	if flags.Changed("id-end") {
		cfg.IDs.End = opts.idEnd
	}

	exp, err := expander.New(&cfg, a.logger)
	if err != nil {
		return err
	}

	var written int
	j := job.NewJob("expand-scores", cfg.SourcePath, cfg.OutputPath)
	_, err = job.Run(cmd.Context(), a.logger, j, func(ctx context.Context, result *job.Result) error {
		n, err := exp.Expand(ctx, cfg.SourcePath, cfg.OutputPath)
		if err != nil {
			return err
		}
		written = n
		result.RowsRead = int64(n / (1 + cfg.IDs.Len()))
		result.RowsWritten = int64(n)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", written, cfg.OutputPath)
	return nil
}

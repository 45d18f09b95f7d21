package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Korupama/euit-datatools/pkg/job"
	"github.com/Korupama/euit-datatools/pkg/regulations"
)

type regulationsOptions struct {
	dir    string
	output string
	table  string
}

func newRegulationsCmd(a *app) *cobra.Command {
	opts := &regulationsOptions{}

	cmd := &cobra.Command{
		Use:   "regulations-sql",
		Short: "Generate van_ban upserts from the regulation PDFs",
		Long: `Lists the PDF files of the documents directory and prints one
INSERT ... ON CONFLICT (ten_van_ban) DO UPDATE statement per file, in file
name order. A YYYY-MM-DD (or YYYY_MM_DD) date in the file name becomes the
issuance date. Exits non-zero when the directory is missing or empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.sync()
			return runRegulations(cmd, a, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.dir, "dir", "", "documents directory (default from REGULATIONS_DOCUMENTS_DIR)")
	flags.StringVarP(&opts.output, "output", "o", "-", "output file, - for stdout")
	flags.StringVar(&opts.table, "table", "", "target table (default from REGULATIONS_TABLE)")

	return cmd
}

func runRegulations(cmd *cobra.Command, a *app, opts *regulationsOptions) error {
	cfg := *a.cfg.Regulations
	flags := cmd.Flags()
	if flags.Changed("dir") {
		if err := requireNonEmpty("dir", opts.dir); err != nil {
			return err
		}
		cfg.DocumentsDir = opts.dir
	}
	if flags.Changed("table") {
		if err := requireNonEmpty("table", opts.table); err != nil {
			return err
		}
		cfg.Table = opts.table
	}

	gen, err := regulations.NewGenerator(&cfg, a.logger)
	if err != nil {
		return err
	}

	j := job.NewJob("regulations-sql", cfg.DocumentsDir, opts.output)
	_, err = job.Run(cmd.Context(), a.logger, j, func(ctx context.Context, result *job.Result) error {
		statements, err := gen.Generate(ctx, cfg.DocumentsDir, result)
		if err != nil {
			return err
		}
		result.RowsRead = int64(len(statements))

		var buf bytes.Buffer
		if err := gen.WriteScript(&buf, statements); err != nil {
			return err
		}
		if err := writeOutput(cmd.OutOrStdout(), opts.output, buf.Bytes()); err != nil {
			return err
		}
		result.RowsWritten = int64(len(statements))
		return nil
	})
	return err
}

// writeOutput writes data to stdout for "-" and to the named file otherwise
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "-" || path == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("%w to stdout: %w", job.ErrOutput, err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w %s: %w", job.ErrOutput, path, err)
	}
	return nil
}

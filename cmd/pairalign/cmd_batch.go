package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers int
		full    bool
	)

	cmd := &cobra.Command{
		Use:   "batch FILE|-",
		Short: "Align every \"[id] seq1 seq2\" line of FILE (or stdin) concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			pairs, err := batch.ReadPairs(in)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}

			start := time.Now()
			results, err := batch.Run(cmd.Context(), pairs, batch.Options{
				Method:  a.cfg.method(),
				Scheme:  a.cfg.Scoring.Build,
				Workers: workers,
				Full:    full,
			})
			if err != nil {
				return err
			}
			a.logger.Info("batch done", "pairs", len(results), "workers", workers, "elapsed", time.Since(start))

			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Alignment == nil {
					if _, err := fmt.Fprintf(out, "%s\t%d\n", r.ID, r.Score); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintf(out, "> %s\n%s\n", r.ID, r.Alignment); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent alignments (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&full, "full", false, "print full alignments instead of scores")

	return cmd
}

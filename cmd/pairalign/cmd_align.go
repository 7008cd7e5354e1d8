package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// alignmentJSON is the --json rendering of one alignment.
type alignmentJSON struct {
	Method string `json:"method"`
	Seq1   string `json:"seq1"`
	Tags   string `json:"tags"`
	Seq2   string `json:"seq2"`
	Score  int    `json:"score"`
}

func newAlignCmd(a *app) *cobra.Command {
	var asJSON, fromFASTA bool

	cmd := &cobra.Command{
		Use:   "align SEQ1 SEQ2",
		Short: "Print the optimal alignment of two sequences",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq1, seq2, err := readPair(args, fromFASTA)
			if err != nil {
				return err
			}
			al, err := a.aligner()
			if err != nil {
				return err
			}
			al.LoadSequences(seq1, seq2)

			res, err := al.Alignment()
			if err != nil {
				return err
			}
			a.logger.Info("aligned", "method", al.Method(), "len1", len(seq1), "len2", len(seq2), "score", res.Score)

			out := cmd.OutOrStdout()
			if !asJSON {
				_, err = fmt.Fprintln(out, res)
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")

			return enc.Encode(alignmentJSON{
				Method: al.Method().String(),
				Seq1:   string(res.Gapped1),
				Tags:   string(res.Tags),
				Seq2:   string(res.Gapped2),
				Score:  res.Score,
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the alignment as JSON")
	cmd.Flags().BoolVar(&fromFASTA, "fasta", false, "treat SEQ1 and SEQ2 as FASTA file paths")

	return cmd
}

func newScoreCmd(a *app) *cobra.Command {
	var fromFASTA bool

	cmd := &cobra.Command{
		Use:   "score SEQ1 SEQ2",
		Short: "Print the optimal alignment score in linear space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq1, seq2, err := readPair(args, fromFASTA)
			if err != nil {
				return err
			}
			al, err := a.aligner()
			if err != nil {
				return err
			}
			al.LoadSequences(seq1, seq2)

			score, err := al.Score()
			if err != nil {
				return err
			}
			a.logger.Info("scored", "method", al.Method(), "len1", len(seq1), "len2", len(seq2), "score", score)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), score)

			return err
		},
	}
	cmd.Flags().BoolVar(&fromFASTA, "fasta", false, "treat SEQ1 and SEQ2 as FASTA file paths")

	return cmd
}

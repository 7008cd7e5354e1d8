package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/align"
)

// app holds the state shared by all subcommands.
type app struct {
	configPath string
	local      bool
	logLevel   string

	cfg    Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pairalign",
		Short: "Global and local pairwise sequence alignment",
		Long: `pairalign aligns pairs of sequences with Needleman-Wunsch (global)
or Smith-Waterman (local) and prints the alignment or its score.

Sequences are given literally or, with --fasta, as FASTA file paths.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.local, "local", "l", false, "use local (Smith-Waterman) alignment")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newAlignCmd(a), newScoreCmd(a), newBatchCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(a.logLevel))); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.local {
		cfg.Method = align.Local.String()
	}
	a.cfg = cfg
	a.logger.Debug("configured",
		"config", a.configPath,
		"method", cfg.Method,
		"scoring", cfg.Scoring.Type,
		"workers", cfg.Workers)

	return nil
}

// aligner builds a byte aligner for the configured method and scheme.
func (a *app) aligner() (*align.Aligner[byte, byte], error) {
	scheme, err := a.cfg.Scoring.Build()
	if err != nil {
		return nil, err
	}
	al := align.NewBytes(a.cfg.method())
	if err := al.SetScoringScheme(scheme); err != nil {
		return nil, err
	}

	return al, nil
}

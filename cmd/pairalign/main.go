// Command pairalign aligns pairs of sequences from the command line.
//
// Usage:
//
//	pairalign align GATTACA GCATGCA
//	pairalign align --local --json HEAGAWGHEE PAWHEAE
//	pairalign score --fasta a.fa b.fa
//	pairalign batch --workers 8 --full pairs.txt
//	pairalign --config pairalign.yaml batch -
//
// Config file (YAML):
//
//	method: global        # global | local
//	workers: 4
//	scoring:
//	  type: matrix        # basic | matrix
//	  matrix: blosum62
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

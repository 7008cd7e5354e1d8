// Package batch aligns many sequence pairs concurrently.
//
// Every pair gets its own align.Aligner, so no engine is ever shared between
// goroutines; the worker count bounds how many DP matrices are alive at once.
//
// Input format (ReadPairs):
//
//	# id is optional; without it the 1-based line number is used
//	GATTACA  GCATGCA
//	p2  ACGT  AGT
//
// Results come back in input order. The first failure cancels the pairs that
// have not started and is returned wrapped with the pair ID.
package batch

// Package parallel runs independent per-row work over a batch.
//
// A Runner executes fn(i) exactly once for every row i in [0, n). Small
// batches run inline on the calling goroutine. Larger batches are cut into
// fixed-size chunks that a bounded errgroup drains, so a slow chunk does not
// hold back idle workers.
//
// Callers must only write state owned by row i from fn(i); the Runner provides
// no other synchronization.
package parallel

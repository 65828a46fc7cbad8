// Package batch evaluates one vector operation over many pairs of vectors
// with bounded concurrency.
//
//	e := batch.New(batch.WithConcurrency(4))
//	dots, err := batch.Dots(ctx, e, pairs)
//
// Results are returned in input order. The first failure cancels the
// remaining work and is reported as a *PairError carrying the index of the
// failing pair.
package batch

// Package testutil provides testing utilities for euclid.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Vector(3, -10, 10)      // uniform coordinates in [-10, 10)
//	w := rng.IntVector(3, 5)         // integer coordinates in [-5, 5]
//	u := rng.UnitVector(4)           // uniform on the unit sphere
//	z := rng.NonZeroVector(2, -1, 1) // never the zero vector
//
// Integer vectors keep sums and products exact, which suits properties
// stated with exact equality.
package testutil

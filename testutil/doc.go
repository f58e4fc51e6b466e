// Package testutil provides testing utilities for natset.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG with element generators for the
// distributions a sparse bit set cares about, and a map-backed reference
// set to check results against.
//
// # Element Generation
//
//	rng := testutil.NewRNG(seed)
//	rng.Dense(1000, 4096)              // uniform over a small universe
//	rng.Clustered(1000, 1<<20, 4, 100) // 4 clusters, +/-100 around each center
//	rng.Sparse(1000, 1<<40)            // mostly one element per slice
//
// # Reference Model
//
//	m := testutil.NewModel(xs)
//	m.Sorted() // ascending distinct elements
package testutil

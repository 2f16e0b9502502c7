// Package testutil provides testing utilities for trajmap.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator and a reference model of the
// sparse trajectory container that produces random, always-valid operation
// sequences together with the expected outcome.
//
// # Random Operation Sequences
//
//	rng := testutil.NewRNG(seed)
//	model := testutil.NewModel()
//	for range 1000 {
//	    op := model.Next(rng, 4) // picks a valid op over trajectories 0..3 and applies it
//	    // replay op against the container under test
//	}
//
// # Ground Truth
//
//	want := model.Entries() // ascending (trajectory, index) pairs
package testutil

// Package testutil provides testing utilities for uuidudf.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe generator of UUID test data.
//
// # Random UUID Generation
//
//	rng := testutil.NewRNG(seed)
//	u := rng.UUID(4)                 // random version-4 UUID
//	texts := rng.UUIDStrings(100, 7) // canonical text, version 7
//	mixed := rng.MixedCase(texts[0]) // same UUID, random letter case
package testutil

// Package kernel provides core domain primitives shared by the devbook aggregates.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//   - DateRange: an inclusive from/to pair of calendar dates
//
// These primitives are immutable and safe for concurrent use.
package kernel

// Package workload provides the fixed micro-workloads timed by the harness.
//
// This package uses ONLY the Go standard library. Workloads are pure
// integer computations with inputs baked in at construction, so every run
// of a given Workload measures exactly the same work.
//
// Core invariants:
// - Workload functions are deterministic and side-effect free
// - Inputs are fixed per Workload; a run never takes parameters
// - The Fib workload is intentionally the unoptimized exponential algorithm
package workload

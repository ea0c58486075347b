// Package recbench measures raw runtime overheads (function-call cost,
// tight-loop arithmetic) with fixed micro-workloads and a thin wall-clock
// timing harness. The canonical workload is naive double-recursive
// Fibonacci at n=30.
package recbench

import (
	"io"

	"github.com/comalice/recbench/internal/timing"
	"github.com/comalice/recbench/internal/workload"
)

// Workload is a named, fixed unit of work.
type Workload = workload.Workload

// Measurement records one timed workload run.
type Measurement = timing.Measurement

// Fib returns the n-th Fibonacci number by naive double recursion.
// Negative inputs are returned unchanged.
func Fib(n int) int {
	return workload.Fib(n)
}

// SumLoop sums the integers in [0, n) with a plain counted loop.
func SumLoop(n int) int64 {
	return workload.SumLoop(n)
}

// Workloads returns the canonical fixed workload set, in run order.
func Workloads() []Workload {
	return workload.Defaults()
}

// Run times one workload and prints the three-line report to out.
func Run(out io.Writer, w Workload) (Measurement, error) {
	return timing.Run(out, w)
}

package workload

import "fmt"

// Workload is a named, fixed unit of work. The name feeds the harness
// banner ("Running Go <Name>...") and identifies the workload in reports.
type Workload struct {
	Name string
	Run  func() int64
}

// Fib returns the n-th Fibonacci number by naive double recursion, where
// Fib(0)=0 and Fib(1)=1. The exponential algorithm is the point: it
// measures raw function-call overhead, not arithmetic.
//
// Negative inputs fall through the base case and are returned unchanged.
func Fib(n int) int {
	if n < 2 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}

// SumLoop sums the integers in [0, n) with a plain counted loop.
func SumLoop(n int) int64 {
	var sum int64
	for i := 0; i < n; i++ {
		sum += int64(i)
	}
	return sum
}

// FibWorkload returns the recursive Fibonacci workload for a fixed n.
func FibWorkload(n int) Workload {
	return Workload{
		Name: fmt.Sprintf("Fib(%d)", n),
		Run:  func() int64 { return int64(Fib(n)) },
	}
}

// LoopWorkload returns the counted-sum workload for a fixed n.
func LoopWorkload(n int) Workload {
	return Workload{
		Name: loopName(n),
		Run:  func() int64 { return SumLoop(n) },
	}
}

// loopName abbreviates whole millions, so LoopWorkload(1_000_000) banners
// as "Loop(1M)".
func loopName(n int) string {
	if n > 0 && n%1_000_000 == 0 {
		return fmt.Sprintf("Loop(%dM)", n/1_000_000)
	}
	return fmt.Sprintf("Loop(%d)", n)
}

// Defaults returns the canonical fixed workload set, in run order.
func Defaults() []Workload {
	return []Workload{
		FibWorkload(30),
		LoopWorkload(1_000_000),
	}
}

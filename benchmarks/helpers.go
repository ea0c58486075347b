// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

// Sink receives benchmark results so the compiler cannot discard the
// measured work.
var Sink int64

// vary nudges the input by the low bit of the previous result, defeating
// constant folding without changing the measured shape.
func vary(n int, prev int64) int {
	return n + int(prev&1)
}

// The fib binary times one naive recursive Fibonacci run at n=30 and
// prints the banner, result, and elapsed wall-clock seconds.
package main

import (
	"fmt"
	"os"

	"github.com/comalice/recbench/internal/timing"
	"github.com/comalice/recbench/internal/workload"
)

func main() {
	if _, err := timing.Run(os.Stdout, workload.FibWorkload(30)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

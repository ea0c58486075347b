// The loop binary times one million-iteration counted sum and prints the
// banner, result, and elapsed wall-clock seconds.
package main

import (
	"fmt"
	"os"

	"github.com/comalice/recbench/internal/timing"
	"github.com/comalice/recbench/internal/workload"
)

func main() {
	if _, err := timing.Run(os.Stdout, workload.LoopWorkload(1_000_000)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// The bench binary runs every default workload through the timing harness
// and can persist a machine-readable report of the run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/comalice/recbench/internal/report"
	"github.com/comalice/recbench/internal/timing"
	"github.com/comalice/recbench/internal/workload"
)

func main() {
	reportDir := flag.String("report", "", "directory to write a run report into (disabled when empty)")
	format := flag.String("format", "yaml", "report format: json or yaml")
	flag.Parse()

	var measurements []timing.Measurement
	for i, w := range workload.Defaults() {
		if i > 0 {
			fmt.Println()
		}
		m, err := timing.Run(os.Stdout, w)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		measurements = append(measurements, m)
	}

	if *reportDir == "" {
		return
	}
	w, err := newWriter(*format, *reportDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	name := "run-" + time.Now().UTC().Format("20060102T150405Z")
	if err := w.Save(context.Background(), name, report.New(measurements)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newWriter(format, dir string) (report.Writer, error) {
	switch format {
	case "json":
		return report.NewJSONWriter(dir)
	case "yaml":
		return report.NewYAMLWriter(dir)
	default:
		return nil, fmt.Errorf("unknown report format %q (want json or yaml)", format)
	}
}

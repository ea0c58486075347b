// Package timing implements the wall-clock harness: it banners a workload,
// times a single invocation, and prints the result and elapsed seconds.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/comalice/recbench/internal/workload"
)

// Measurement records one timed workload run.
type Measurement struct {
	Workload string        `json:"workload" yaml:"workload"`
	Result   int64         `json:"result" yaml:"result"`
	Started  time.Time     `json:"started" yaml:"started"`
	Elapsed  time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// Seconds returns the elapsed time in seconds.
func (m Measurement) Seconds() float64 {
	return m.Elapsed.Seconds()
}

// Run prints the banner for w, times a single invocation, and prints the
// result and elapsed wall-clock seconds to out. time.Now carries Go's
// monotonic clock, so the elapsed value is immune to wall-clock steps.
//
// Output is exactly three lines, in order:
//
//	Running Go <name>...
//	Result: <integer>
//	Time: <seconds>s
//
// with the elapsed seconds formatted to six fractional digits.
func Run(out io.Writer, w workload.Workload) (Measurement, error) {
	if w.Run == nil {
		return Measurement{}, fmt.Errorf("workload %q has no run function", w.Name)
	}
	if _, err := fmt.Fprintf(out, "Running Go %s...\n", w.Name); err != nil {
		return Measurement{}, fmt.Errorf("write banner: %w", err)
	}
	started := time.Now()
	res := w.Run()
	elapsed := time.Since(started)
	if _, err := fmt.Fprintf(out, "Result: %d\n", res); err != nil {
		return Measurement{}, fmt.Errorf("write result: %w", err)
	}
	if _, err := fmt.Fprintf(out, "Time: %.6fs\n", elapsed.Seconds()); err != nil {
		return Measurement{}, fmt.Errorf("write elapsed: %w", err)
	}
	return Measurement{
		Workload: w.Name,
		Result:   res,
		Started:  started,
		Elapsed:  elapsed,
	}, nil
}

package report

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/comalice/recbench/internal/timing"
)

func sampleReport() Report {
	return New([]timing.Measurement{
		{
			Workload: "Fib(30)",
			Result:   832040,
			Started:  time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
			Elapsed:  4 * time.Millisecond,
		},
		{
			Workload: "Loop(1M)",
			Result:   499999500000,
			Started:  time.Date(2026, 8, 23, 12, 0, 1, 0, time.UTC),
			Elapsed:  310 * time.Microsecond,
		},
	})
}

func checkRoundTrip(t *testing.T, saved, loaded Report) {
	t.Helper()
	if loaded.GoVersion != saved.GoVersion {
		t.Errorf("GoVersion = %q, want %q", loaded.GoVersion, saved.GoVersion)
	}
	if !loaded.Started.Equal(saved.Started) {
		t.Errorf("Started = %v, want %v", loaded.Started, saved.Started)
	}
	if len(loaded.Measurements) != len(saved.Measurements) {
		t.Fatalf("got %d measurements, want %d", len(loaded.Measurements), len(saved.Measurements))
	}
	for i, m := range loaded.Measurements {
		want := saved.Measurements[i]
		if m.Workload != want.Workload {
			t.Errorf("measurement %d workload = %q, want %q", i, m.Workload, want.Workload)
		}
		if m.Result != want.Result {
			t.Errorf("measurement %d result = %d, want %d", i, m.Result, want.Result)
		}
		if m.Elapsed != want.Elapsed {
			t.Errorf("measurement %d elapsed = %v, want %v", i, m.Elapsed, want.Elapsed)
		}
	}
}

func TestJSONWriter_SaveLoad(t *testing.T) {
	w, err := NewJSONWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	saved := sampleReport()
	if err := w.Save(ctx, "run-1", saved); err != nil {
		t.Fatal(err)
	}
	loaded, err := w.Load(ctx, "run-1")
	if err != nil {
		t.Fatal(err)
	}
	checkRoundTrip(t, saved, loaded)
}

func TestYAMLWriter_SaveLoad(t *testing.T) {
	w, err := NewYAMLWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	saved := sampleReport()
	if err := w.Save(ctx, "run-1", saved); err != nil {
		t.Fatal(err)
	}
	loaded, err := w.Load(ctx, "run-1")
	if err != nil {
		t.Fatal(err)
	}
	checkRoundTrip(t, saved, loaded)
}

func TestLoad_Missing(t *testing.T) {
	ctx := context.Background()

	jw, err := NewJSONWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := jw.Load(ctx, "absent"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("JSON Load(absent) error = %v, want os.ErrNotExist", err)
	}

	yw, err := NewYAMLWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := yw.Load(ctx, "absent"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("YAML Load(absent) error = %v, want os.ErrNotExist", err)
	}
}

// Package report persists machine-readable run reports to disk.
// Implements JSON and YAML writers; the timed binaries themselves never
// write files, only the suite runner does.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comalice/recbench/internal/timing"
)

// Report is one suite run: when it started, which Go built it, and the
// per-workload measurements in run order.
type Report struct {
	Started      time.Time            `json:"started" yaml:"started"`
	GoVersion    string               `json:"go_version" yaml:"go_version"`
	Measurements []timing.Measurement `json:"measurements" yaml:"measurements"`
}

// New builds a Report for the given measurements, stamped with the current
// time and runtime.Version().
func New(measurements []timing.Measurement) Report {
	return Report{
		Started:      time.Now().UTC(),
		GoVersion:    runtime.Version(),
		Measurements: measurements,
	}
}

// Writer saves and loads named run reports.
type Writer interface {
	Save(ctx context.Context, name string, r Report) error
	Load(ctx context.Context, name string) (Report, error)
}

// JSONWriter is a stdlib-only file-based report writer using JSON.
type JSONWriter struct {
	dir string
}

// NewJSONWriter creates a JSONWriter, ensuring the directory exists.
func NewJSONWriter(dir string) (*JSONWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONWriter{dir: dir}, nil
}

func (w *JSONWriter) Save(ctx context.Context, name string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	fn := filepath.Join(w.dir, name+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (w *JSONWriter) Load(ctx context.Context, name string) (Report, error) {
	fn := filepath.Join(w.dir, name+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Report{}, fmt.Errorf("report %q: %w", name, os.ErrNotExist)
		}
		return Report{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return r, nil
}

// YAMLWriter is a file-based report writer using YAML serialization.
type YAMLWriter struct {
	dir string
}

// NewYAMLWriter creates a YAMLWriter, ensuring the directory exists.
func NewYAMLWriter(dir string) (*YAMLWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLWriter{dir: dir}, nil
}

func (w *YAMLWriter) Save(ctx context.Context, name string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	fn := filepath.Join(w.dir, name+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (w *YAMLWriter) Load(ctx context.Context, name string) (Report, error) {
	fn := filepath.Join(w.dir, name+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Report{}, fmt.Errorf("report %q: %w", name, os.ErrNotExist)
		}
		return Report{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return r, nil
}

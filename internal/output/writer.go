package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hostdni/host-aggregator/internal/model"
)

// Writer serializes an entry list to a file in one output format.
type Writer interface {
	Write(entries []model.Entry, path string) error
	Ext() string
}

// ForFormat returns the writer for an output format name.
func ForFormat(format string) (Writer, error) {
	switch format {
	case "csv":
		return &CSVWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "yaml":
		return &YAMLWriter{}, nil
	default:
		return nil, fmt.Errorf("no writer for format %q", format)
	}
}

// WriteAll writes the entry list in every requested format, producing a
// timestamped file plus an overwritten latest.<ext> alias per format.
// It returns the paths written. The output directory is created if absent.
func WriteAll(entries []model.Entry, dir string, formats []string, now time.Time) ([]string, error) {
	var written []string

	for _, format := range formats {
		w, err := ForFormat(format)
		if err != nil {
			return written, err
		}

		timestamped := filepath.Join(dir, TimestampedName(w.Ext(), now))
		latest := filepath.Join(dir, "latest."+w.Ext())

		for _, path := range []string{timestamped, latest} {
			if err := w.Write(entries, path); err != nil {
				return written, fmt.Errorf("write %s: %w", path, err)
			}
			log.Printf("output: wrote %d entries to %s", len(entries), path)
			written = append(written, path)
		}
	}

	return written, nil
}

// TimestampedName builds the per-run output filename for an extension.
func TimestampedName(ext string, now time.Time) string {
	return fmt.Sprintf("host_entries_%s.%s", now.Format("20060102_150405"), ext)
}

// create makes the parent directory if needed and opens the file for writing.
func create(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

// ---------------------------------------------------------------------------
// CSV Writer
// ---------------------------------------------------------------------------

// CSVWriter writes entries as CSV with a fixed "entry,category" header.
type CSVWriter struct{}

func (w *CSVWriter) Ext() string { return "csv" }

func (w *CSVWriter) Write(entries []model.Entry, path string) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"entry", "category"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Hostname, e.Category}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ---------------------------------------------------------------------------
// JSON Writer
// ---------------------------------------------------------------------------

// JSONWriter writes entries as a JSON array with 2-space indentation.
// Non-ASCII hostnames are written as-is, not escaped.
type JSONWriter struct{}

func (w *JSONWriter) Ext() string { return "json" }

func (w *JSONWriter) Write(entries []model.Entry, path string) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(entries)
}

// ---------------------------------------------------------------------------
// YAML Writer
// ---------------------------------------------------------------------------

// YAMLWriter writes entries as a block-style YAML list of mappings.
type YAMLWriter struct{}

func (w *YAMLWriter) Ext() string { return "yaml" }

func (w *YAMLWriter) Write(entries []model.Entry, path string) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	if err := enc.Encode(entries); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

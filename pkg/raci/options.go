// Package raci infers a canonical responsibility-matrix model from an
// arbitrary tabular grid: roles, categorized capabilities, RACI
// assignments, maturity scores, and a validation report.
package raci

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"raciboard/pkg/raci/parser"
)

// Options configures a parse. All fields hold heuristic thresholds the
// classifier chain evaluates; the defaults match the tuned values and
// most callers never change them.
type Options struct {
	Scan       parser.ScanParams       `yaml:"scan"`
	Classifier parser.ClassifierParams `yaml:"classifier"`
	Orient     parser.OrientParams     `yaml:"orient"`
}

// DefaultOptions returns the standard inference thresholds.
func DefaultOptions() Options {
	return Options{
		Scan:       parser.DefaultScanParams(),
		Classifier: parser.DefaultClassifierParams(),
		Orient:     parser.DefaultOrientParams(),
	}
}

// LoadTuning overlays the options with values from a YAML tuning file.
// Fields absent from the file keep their current values.
func (o *Options) LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	return nil
}

// Package config loads YAML batch files of named rotation sequences.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"zappem.net/pub/math/dcm/factor"
	"zappem.net/pub/math/dcm/rotation"
)

// DefaultPrecision is the number of decimal places used when a file
// does not set one.
const DefaultPrecision = 6

// File is the top level of a batch file.
type File struct {
	Precision int        `yaml:"precision"`
	Degrees   bool       `yaml:"degrees"`
	Sequences []Sequence `yaml:"sequences"`
}

// Sequence is one named rotation sequence. Exactly one of Angles and
// Symbols is set: Angles selects the numeric pipeline, Symbols the
// symbolic one.
type Sequence struct {
	Name      string    `yaml:"name"`
	Axes      string    `yaml:"axes"`
	Angles    []float64 `yaml:"angles"`
	Symbols   []string  `yaml:"symbols"`
	Transpose bool      `yaml:"transpose"`
}

// Symbolic reports whether s names its angles.
func (s Sequence) Symbolic() bool {
	return len(s.Symbols) != 0
}

// ParsedAxes returns the axes of s.
func (s Sequence) ParsedAxes() ([]rotation.Axis, error) {
	return rotation.ParseAxes(s.Axes)
}

// Radians returns the numeric angles of s in radians.
func (s Sequence) Radians(degrees bool) []float64 {
	rs := make([]float64, len(s.Angles))
	for i, a := range s.Angles {
		if degrees {
			a = rotation.Radians(a)
		}
		rs[i] = a
	}
	return rs
}

// Loader reads and validates batch files.
type Loader struct{}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, parses and validates the batch file at path.
func (l *Loader) Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	f, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a batch file held in memory. Unknown keys
// are rejected.
func (l *Loader) Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := l.Validate(&f); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &f, nil
}

// Validate checks f and fills in defaults.
func (l *Loader) Validate(f *File) error {
	switch {
	case f.Precision < 0:
		return fmt.Errorf("precision must not be negative: %d", f.Precision)
	case f.Precision == 0:
		f.Precision = DefaultPrecision
	}
	if len(f.Sequences) == 0 {
		return fmt.Errorf("at least one sequence must be defined")
	}
	seen := make(map[string]bool)
	for i, s := range f.Sequences {
		if s.Name == "" {
			return fmt.Errorf("sequence %d: name is required", i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("sequence %q: duplicate name", s.Name)
		}
		seen[s.Name] = true
		if err := l.validateSequence(s); err != nil {
			return fmt.Errorf("sequence %q: %w", s.Name, err)
		}
	}
	return nil
}

// validateSequence checks a single sequence.
func (l *Loader) validateSequence(s Sequence) error {
	if s.Axes == "" {
		return fmt.Errorf("axes are required")
	}
	axes, err := s.ParsedAxes()
	if err != nil {
		return err
	}
	n := len(s.Angles)
	if s.Symbolic() {
		if n != 0 {
			return fmt.Errorf("only one of angles or symbols may be given")
		}
		n = len(s.Symbols)
	} else if n == 0 {
		return fmt.Errorf("one of angles or symbols is required")
	}
	if n != len(axes) {
		return fmt.Errorf("%w: %d axes, %d angles", rotation.ErrLengthMismatch, len(axes), n)
	}
	for i, a := range s.Angles {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("rotation %d: %w: %v", i+1, rotation.ErrInvalidAngle, a)
		}
	}
	for i, sym := range s.Symbols {
		if !factor.ValidSymbol(sym) {
			return fmt.Errorf("rotation %d: %w: %q is not a symbol", i+1, rotation.ErrInvalidAngle, sym)
		}
	}
	return nil
}

package journey

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const FileVersion = "1.0"

// File is the on-disk shape of a journey.
type File struct {
	Version  string     `yaml:"version"`
	Sections []Keyframe `yaml:"sections"`
}

// Encode writes the journey as YAML.
func Encode(w io.Writer, j *Journey) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Version: FileVersion, Sections: j.Keyframes()}); err != nil {
		return err
	}
	return enc.Close()
}

// Decode reads and validates a YAML journey.
func Decode(r io.Reader) (*Journey, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode journey: %w", err)
	}
	if f.Version != "" && f.Version != FileVersion {
		return nil, fmt.Errorf("unsupported journey version %q", f.Version)
	}
	return New(f.Sections)
}

// WriteFile writes a journey to a YAML file
func WriteFile(j *Journey, path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, j); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ReadFile reads a journey from a YAML file
func ReadFile(path string) (*Journey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	j, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return j, nil
}

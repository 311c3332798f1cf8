package automaton

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalMachine converts a machine to indented JSON bytes.
func MarshalMachine(m *Machine) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteMachine(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteMachine writes a machine as JSON to an io.Writer.
func WriteMachine(m *Machine, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteMachineFile writes a machine to a JSON file.
// The file is created with 0644 permissions.
func WriteMachineFile(m *Machine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteMachine(m, f)
}

// ReadMachine decodes a JSON machine from an io.Reader.
func ReadMachine(r io.Reader) (*Machine, error) {
	var m Machine
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &m, nil
}

// ReadMachineYAML decodes a YAML machine from an io.Reader.
func ReadMachineYAML(r io.Reader) (*Machine, error) {
	var m Machine
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &m, nil
}

// ReadMachineFile reads a machine definition from a file, choosing the
// decoder by extension: .yaml and .yml are parsed as YAML, everything else
// as JSON.
func ReadMachineFile(path string) (*Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadMachineYAML(f)
	default:
		return ReadMachine(f)
	}
}

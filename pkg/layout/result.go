package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/statecanvas/statecanvas/pkg/automaton"
)

// Layout modes stored in serialized results.
const (
	ModeFresh   = "fresh"
	ModeLayered = "layered"
)

// Position is a 2D canvas coordinate for one state. Positions are created
// fresh per layout call and owned by the caller.
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Result is the serialization format for a computed layout. It pairs the
// position map with the canvas dimensions and the flattened edges so
// renderers can draw the diagram without re-reading the machine.
type Result struct {
	Mode      string              `json:"mode" bson:"mode"`
	Width     float64             `json:"width" bson:"width"`
	Height    float64             `json:"height" bson:"height"`
	Start     string              `json:"start,omitempty" bson:"start,omitempty"`
	Positions map[string]Position `json:"positions" bson:"positions"`
	Edges     []automaton.Edge    `json:"edges,omitempty" bson:"edges,omitempty"`
}

// NewResult assembles a serializable Result from a machine and its computed
// positions.
func NewResult(mode string, m *automaton.Machine, positions map[string]Position, opts *Options) Result {
	n := opts.normalized()
	return Result{
		Mode:      mode,
		Width:     n.Width,
		Height:    n.Height,
		Start:     m.Start,
		Positions: positions,
		Edges:     m.Edges(),
	}
}

// MarshalResult converts a result to indented JSON bytes.
func MarshalResult(r Result) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// WriteResult writes a result as JSON to an io.Writer.
func WriteResult(r Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteResultFile writes a result to a JSON file with 0644 permissions.
func WriteResultFile(r Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(r, f)
}

// ReadResult decodes a result from an io.Reader.
func ReadResult(rd io.Reader) (Result, error) {
	var r Result
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return Result{}, fmt.Errorf("decode: %w", err)
	}
	return r, nil
}

// ReadResultFile reads a result from a JSON file.
func ReadResultFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadResult(f)
}

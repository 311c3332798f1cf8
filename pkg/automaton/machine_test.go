package automaton

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEdgesFlattening(t *testing.T) {
	tests := []struct {
		name    string
		machine Machine
		want    []Edge
	}{
		{
			name: "multiple symbols collapse to one edge",
			machine: Machine{
				States: []string{"A", "B"},
				Transitions: map[string]map[string][]string{
					"A": {"0": {"B"}, "1": {"B"}},
				},
			},
			want: []Edge{{From: "A", To: "B"}},
		},
		{
			name: "self-loop retained",
			machine: Machine{
				States: []string{"A"},
				Transitions: map[string]map[string][]string{
					"A": {"x": {"A"}},
				},
			},
			want: []Edge{{From: "A", To: "A"}},
		},
		{
			name: "dangling endpoints dropped",
			machine: Machine{
				States: []string{"A"},
				Transitions: map[string]map[string][]string{
					"A":     {"x": {"ghost"}},
					"ghost": {"y": {"A"}},
				},
			},
			want: nil,
		},
		{
			name: "sorted by from then to",
			machine: Machine{
				States: []string{"C", "B", "A"},
				Transitions: map[string]map[string][]string{
					"C": {"x": {"A"}},
					"A": {"x": {"C", "B"}},
				},
			},
			want: []Edge{{From: "A", To: "B"}, {From: "A", To: "C"}, {From: "C", To: "A"}},
		},
		{
			name:    "empty machine",
			machine: Machine{},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.machine.Edges()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Edges() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasSelfLoop(t *testing.T) {
	m := Machine{
		States: []string{"A", "B"},
		Transitions: map[string]map[string][]string{
			"A": {"x": {"A"}},
			"B": {"x": {"A"}},
		},
	}
	if !m.HasSelfLoop("A") {
		t.Error("HasSelfLoop(A) = false, want true")
	}
	if m.HasSelfLoop("B") {
		t.Error("HasSelfLoop(B) = true, want false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		machine Machine
		wantErr error
	}{
		{
			name:    "empty machine is valid",
			machine: Machine{},
		},
		{
			name: "valid machine",
			machine: Machine{
				States: []string{"A", "B"},
				Start:  "A",
				Transitions: map[string]map[string][]string{
					"A": {"x": {"B"}},
				},
			},
		},
		{
			name:    "empty state ID",
			machine: Machine{States: []string{"A", ""}},
			wantErr: ErrEmptyStateID,
		},
		{
			name:    "duplicate state",
			machine: Machine{States: []string{"A", "A"}},
			wantErr: ErrDuplicateState,
		},
		{
			name:    "unknown start",
			machine: Machine{States: []string{"A"}, Start: "Z"},
			wantErr: ErrUnknownStart,
		},
		{
			name: "dangling target",
			machine: Machine{
				States: []string{"A"},
				Transitions: map[string]map[string][]string{
					"A": {"x": {"ghost"}},
				},
			},
			wantErr: ErrDanglingTransition,
		},
		{
			name: "dangling source",
			machine: Machine{
				States: []string{"A"},
				Transitions: map[string]map[string][]string{
					"ghost": {"x": {"A"}},
				},
			},
			wantErr: ErrDanglingTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.machine.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := &Machine{
		States: []string{"A", "B"},
		Start:  "A",
		Transitions: map[string]map[string][]string{
			"A": {"x": {"B"}},
		},
	}

	cp := m.Clone()
	cp.States[0] = "Z"
	cp.Transitions["A"]["x"][0] = "Z"

	if m.States[0] != "A" {
		t.Error("mutating clone states affected original")
	}
	if m.Transitions["A"]["x"][0] != "B" {
		t.Error("mutating clone transitions affected original")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	m := &Machine{
		States: []string{"q0", "q1"},
		Start:  "q0",
		Transitions: map[string]map[string][]string{
			"q0": {"a": {"q1"}},
		},
	}

	data, err := MarshalMachine(m)
	if err != nil {
		t.Fatalf("MarshalMachine: %v", err)
	}

	got, err := ReadMachine(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadMachine: %v", err)
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, m)
	}
}

func TestReadMachineYAML(t *testing.T) {
	src := `
states: [q0, q1]
start: q0
transitions:
  q0:
    a: [q1]
`
	m, err := ReadMachineYAML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadMachineYAML: %v", err)
	}
	if m.Start != "q0" || len(m.States) != 2 {
		t.Errorf("unexpected machine: %+v", m)
	}
	if got := m.Edges(); len(got) != 1 || got[0] != (Edge{From: "q0", To: "q1"}) {
		t.Errorf("Edges() = %v", got)
	}
}

func TestReadMachineFileByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "m.json")
	m := &Machine{States: []string{"A"}}
	if err := WriteMachineFile(m, jsonPath); err != nil {
		t.Fatalf("WriteMachineFile: %v", err)
	}
	got, err := ReadMachineFile(jsonPath)
	if err != nil {
		t.Fatalf("ReadMachineFile(json): %v", err)
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("json file round trip mismatch: %+v", got)
	}

	if _, err := ReadMachineFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("ReadMachineFile on missing file should error")
	}
}

package pipeline

import (
	"context"
	"time"

	"github.com/statecanvas/statecanvas/pkg/automaton"
	"github.com/statecanvas/statecanvas/pkg/errors"
	"github.com/statecanvas/statecanvas/pkg/observability"
)

// Load reads and validates a machine definition. When opts.Machine is set it
// is validated directly; otherwise the definition is read from
// opts.MachinePath (JSON or YAML by extension).
func Load(ctx context.Context, opts Options) (*automaton.Machine, error) {
	source := opts.MachinePath
	if opts.Machine != nil {
		source = "inline"
	}

	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, source)

	m, err := loadMachine(opts)
	stateCount := 0
	if m != nil {
		stateCount = len(m.States)
	}
	observability.Pipeline().OnLoadComplete(ctx, source, stateCount, time.Since(start), err)

	return m, err
}

func loadMachine(opts Options) (*automaton.Machine, error) {
	m := opts.Machine
	if m == nil {
		read, err := automaton.ReadMachineFile(opts.MachinePath)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMachine, err, "read machine from %s", opts.MachinePath)
		}
		m = read
	}

	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMachine, err, "validate machine")
	}
	return m, nil
}

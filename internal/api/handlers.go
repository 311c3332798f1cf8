package api

import (
	"encoding/json"
	"net/http"

	"github.com/statecanvas/statecanvas/pkg/errors"
	"github.com/statecanvas/statecanvas/pkg/layout"
	"github.com/statecanvas/statecanvas/pkg/pipeline"
)

// maxBodySize bounds request bodies. Machine definitions are small; a
// megabyte covers automata far beyond what the layout engine targets.
const maxBodySize = 1 << 20

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatPDF:  "application/pdf",
}

// decodeOptions parses the request body into pipeline options.
// File paths are rejected: the API accepts inline machines only.
func decodeOptions(r *http.Request) (pipeline.Options, error) {
	var opts pipeline.Options
	body := http.MaxBytesReader(nil, r.Body, maxBodySize)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	if opts.MachinePath != "" {
		return opts, errors.New(errors.ErrCodeInvalidInput, "machine_path is not accepted; send the machine inline")
	}
	if opts.Machine == nil {
		return opts, errors.New(errors.ErrCodeInvalidInput, "machine is required")
	}
	if mode := r.URL.Query().Get("mode"); mode != "" {
		opts.Mode = mode
	}
	return opts, nil
}

// handleLayout computes a layout for the posted machine and returns it as JSON.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeOptions(r)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	opts.SetLayoutDefaults()
	if err := pipeline.ValidateMode(opts.Mode); err != nil {
		writeError(w, s.logger, err)
		return
	}

	m, err := s.runner.Load(r.Context(), opts)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	res, err := s.runner.ComputeLayout(r.Context(), m, opts)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	data, err := layout.MarshalResult(res)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleRender runs the full pipeline and returns a single rendered artifact.
// The format query parameter selects the output (default svg).
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeOptions(r)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}
	if theme := r.URL.Query().Get("theme"); theme != "" {
		opts.Theme = theme
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[format])
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

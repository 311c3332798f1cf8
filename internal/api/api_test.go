package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/statecanvas/statecanvas/pkg/automaton"
	"github.com/statecanvas/statecanvas/pkg/cache"
	"github.com/statecanvas/statecanvas/pkg/layout"
	"github.com/statecanvas/statecanvas/pkg/pipeline"
)

func testServer() *Server {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
	return NewServer(runner, logger)
}

func machineBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"machine": &automaton.Machine{
			States: []string{"idle", "running", "done"},
			Start:  "idle",
			Transitions: map[string]map[string][]string{
				"idle":    {"go": {"running"}},
				"running": {"stop": {"done"}},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(testServer().Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got["status"] != "ok" {
		t.Errorf("status = %q, want ok", got["status"])
	}
}

func TestLayoutEndpoint(t *testing.T) {
	srv := httptest.NewServer(testServer().Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/layout", "application/json", bytes.NewReader(machineBody(t)))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}

	var res layout.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Mode != pipeline.ModeFresh {
		t.Errorf("mode = %q, want fresh", res.Mode)
	}
	for _, id := range []string{"idle", "running", "done"} {
		if _, ok := res.Positions[id]; !ok {
			t.Errorf("missing position for %s", id)
		}
	}
}

func TestLayoutEndpointModeQuery(t *testing.T) {
	srv := httptest.NewServer(testServer().Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/layout?mode=layered", "application/json", bytes.NewReader(machineBody(t)))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var res layout.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Mode != pipeline.ModeLayered {
		t.Errorf("mode = %q, want layered", res.Mode)
	}
}

func TestLayoutEndpointErrors(t *testing.T) {
	srv := httptest.NewServer(testServer().Router())
	defer srv.Close()

	tests := []struct {
		name       string
		body       string
		query      string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed json",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "missing machine",
			body:       `{"mode":"fresh"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "machine path rejected",
			body:       `{"machine_path":"/etc/passwd"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "undeclared start state",
			body:       `{"machine":{"states":["a"],"start":"missing"}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_MACHINE",
		},
		{
			name:       "invalid mode",
			body:       `{"machine":{"states":["a"]}}`,
			query:      "?mode=diagonal",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_MODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/v1/layout"+tt.query, "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var got errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatal(err)
			}
			if got.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", got.Error.Code, tt.wantCode)
			}
			if got.Error.Message == "" {
				t.Error("expected non-empty error message")
			}
		})
	}
}

func TestRenderEndpointSVG(t *testing.T) {
	srv := httptest.NewServer(testServer().Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/render", "application/json", bytes.NewReader(machineBody(t)))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q, want image/svg+xml", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(body, []byte("<svg")) {
		t.Error("response does not look like SVG")
	}
}

func TestRenderEndpointDOT(t *testing.T) {
	srv := httptest.NewServer(testServer().Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/render?format=dot", "application/json", bytes.NewReader(machineBody(t)))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(body, []byte(`"idle" -> "running";`)) {
		t.Errorf("dot output missing edge, got:\n%s", body)
	}
}

func TestRenderEndpointInvalidFormat(t *testing.T) {
	srv := httptest.NewServer(testServer().Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/render?format=gif", "application/json", bytes.NewReader(machineBody(t)))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var got errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Error.Code != "INVALID_FORMAT" {
		t.Errorf("code = %q, want INVALID_FORMAT", got.Error.Code)
	}
}

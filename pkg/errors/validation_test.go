package errors

import (
	"testing"
)

func TestValidateStateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "q0", false},
		{"valid with dash", "state-a", false},
		{"valid with underscore", "state_a", false},
		{"valid with dot", "accept.final", false},
		{"valid with space", "wait for input", false},
		{"valid unicode", "état", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStateID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMachineFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid json", "traffic.json", false},
		{"valid yaml", "login.yaml", false},
		{"valid yml", "parser.yml", false},

		{"empty", "", true},
		{"with path /", "path/to/file", true},
		{"with path \\", "path\\to\\file", true},
		{"hidden file", ".hidden", true},
		{"hidden file long", ".secret.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMachineFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMachineFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"svg", "svg", false},
		{"png", "png", false},
		{"dot", "dot", false},
		{"json", "json", false},

		{"empty", "", true},
		{"pdf", "pdf", false},
		{"unknown", "gif", true},
		{"uppercase", "SVG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormat(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"fresh", "fresh", false},
		{"layered", "layered", false},

		{"empty", "", true},
		{"unknown", "radial", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "machines/login.json", false},
		{"valid nested", "out/render/diagram.svg", false},
		{"valid filename only", "README.md", false},
		{"valid with dots", "v1.2.3/machine.json", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidMachine,
		ErrCodeInvalidState,
		ErrCodeInvalidFormat,
		ErrCodeInvalidMode,
		ErrCodeInvalidOptions,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeLayoutNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
		ErrCodeTimeout,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}

package pipeline

import (
	"testing"
)

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	if err := ValidateFormats([]string{"SVG"}); err == nil {
		t.Error("Format match is case-sensitive")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{"fresh", false},
		{"layered", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateMode(tt.mode)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateMode(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
		}
	}
}

func TestValidateTheme(t *testing.T) {
	tests := []struct {
		theme   string
		wantErr bool
	}{
		{"light", false},
		{"dark", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateTheme(tt.theme)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTheme(%q) error = %v, wantErr %v", tt.theme, err, tt.wantErr)
		}
	}
}

func TestOptionsValidateForLoad(t *testing.T) {
	// Missing machine and path
	opts := Options{}
	if err := opts.ValidateForLoad(); err == nil {
		t.Error("Missing machine/machine_path should fail")
	}

	// Valid with path
	opts = Options{MachinePath: "machines/login.json"}
	if err := opts.ValidateForLoad(); err != nil {
		t.Errorf("Valid path options should pass: %v", err)
	}

	// Logger default applied
	if opts.Logger == nil {
		t.Error("ValidateForLoad should set a default logger")
	}
}

func TestOptionsIsFresh(t *testing.T) {
	opts := Options{}
	if !opts.IsFresh() {
		t.Error("Empty mode should be fresh")
	}

	opts.Mode = ModeFresh
	if !opts.IsFresh() {
		t.Error("fresh mode should be fresh")
	}

	opts.Mode = ModeLayered
	if opts.IsFresh() {
		t.Error("layered mode should not be fresh")
	}
}

func TestOptionsIsLayered(t *testing.T) {
	opts := Options{}
	if opts.IsLayered() {
		t.Error("Empty mode should not be layered")
	}

	opts.Mode = ModeLayered
	if !opts.IsLayered() {
		t.Error("layered mode should be layered")
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{MachinePath: "machines/login.json"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	if opts.Mode != DefaultMode {
		t.Errorf("Mode should be %s, got %s", DefaultMode, opts.Mode)
	}
	if opts.Theme != DefaultTheme {
		t.Errorf("Theme should be %s, got %s", DefaultTheme, opts.Theme)
	}

	originalMode := opts.Mode
	originalTheme := opts.Theme

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.Mode != originalMode {
		t.Error("Mode changed on second call")
	}
	if opts.Theme != originalTheme {
		t.Error("Theme changed on second call")
	}
}

func TestOptionsValidateAndSetDefaultsRejectsBadMode(t *testing.T) {
	opts := Options{MachinePath: "m.json", Mode: "radial"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Unknown mode should fail validation")
	}
}

func TestSetLayoutDefaults(t *testing.T) {
	opts := Options{}
	opts.SetLayoutDefaults()

	if opts.Mode != DefaultMode {
		t.Errorf("Mode should be %s, got %s", DefaultMode, opts.Mode)
	}
	if opts.Width != DefaultWidth {
		t.Errorf("Width should be %f, got %f", DefaultWidth, opts.Width)
	}
	if opts.Height != DefaultHeight {
		t.Errorf("Height should be %f, got %f", DefaultHeight, opts.Height)
	}
	if opts.Seed != DefaultSeed {
		t.Errorf("Seed should be %d, got %d", DefaultSeed, opts.Seed)
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Theme != DefaultTheme {
		t.Errorf("Theme should be %s, got %s", DefaultTheme, opts.Theme)
	}
}

func TestLayoutKeyOptsIncludeMode(t *testing.T) {
	a := Options{Mode: ModeFresh, Width: 1200}
	b := Options{Mode: ModeLayered, Width: 1200}
	if a.LayoutKeyOpts() == b.LayoutKeyOpts() {
		t.Error("different modes should yield different key opts")
	}
}

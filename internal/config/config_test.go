package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/frustum/pkg/frustum"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test shape defaults
	if cfg.Shape.Height != 2 {
		t.Errorf("expected height 2, got %v", cfg.Shape.Height)
	}
	if cfg.Shape.TopRadius != 1 || cfg.Shape.BottomRadius != 1 {
		t.Errorf("expected radii 1/1, got %v/%v", cfg.Shape.TopRadius, cfg.Shape.BottomRadius)
	}
	if cfg.Shape.Slices != frustum.DefaultSlices {
		t.Errorf("expected %d slices, got %d", frustum.DefaultSlices, cfg.Shape.Slices)
	}

	// Test viewer defaults
	if cfg.Viewer.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Viewer.Width)
	}
	if cfg.Viewer.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Viewer.Height)
	}
	if !cfg.Viewer.VSync {
		t.Error("expected vsync to be true by default")
	}
	if !cfg.Viewer.ShowBounds {
		t.Error("expected show_bounds to be true by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	// The default shape must build.
	opts, err := cfg.Shape.Options()
	if err != nil {
		t.Fatalf("default shape options: %v", err)
	}
	if opts.VertexFormat != frustum.DefaultVertexFormat {
		t.Errorf("expected default vertex format, got %v", opts.VertexFormat)
	}
	if _, err := frustum.New(opts); err != nil {
		t.Errorf("default shape does not validate: %v", err)
	}
}

func TestShapeOptions(t *testing.T) {
	tests := []struct {
		name    string
		shape   ShapeConfig
		want    frustum.Options
		wantErr error
	}{
		{
			name:  "cone with tangents",
			shape: ShapeConfig{Height: 3, TopRadius: 0, BottomRadius: 1, Slices: 12, VertexFormat: []string{"position", "tangent"}, OffsetAttribute: "top"},
			want:  frustum.Options{Height: 3, TopRadius: 0, BottomRadius: 1, Slices: 12, VertexFormat: frustum.Position | frustum.Tangent, OffsetAttribute: frustum.OffsetTop},
		},
		{
			name:    "unknown attribute",
			shape:   ShapeConfig{Height: 1, TopRadius: 1, VertexFormat: []string{"color"}},
			wantErr: frustum.ErrUnknownAttribute,
		},
		{
			name:    "unknown offset",
			shape:   ShapeConfig{Height: 1, TopRadius: 1, OffsetAttribute: "sideways"},
			wantErr: frustum.ErrUnknownOffset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.shape.Options()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Options() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
shape:
  height: 10
  top_radius: 5
  bottom_radius: 0
  slices: 6
  vertex_format: [position, normal, tangent, bitangent]
  offset_attribute: all

viewer:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  wireframe: true
  show_bounds: false

logging:
  level: "debug"
  log_file: "frustum.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Shape.Height != 10 || cfg.Shape.TopRadius != 5 || cfg.Shape.BottomRadius != 0 {
		t.Errorf("unexpected shape %+v", cfg.Shape)
	}
	if cfg.Shape.Slices != 6 {
		t.Errorf("expected 6 slices, got %d", cfg.Shape.Slices)
	}
	if len(cfg.Shape.VertexFormat) != 4 || cfg.Shape.VertexFormat[3] != "bitangent" {
		t.Errorf("unexpected vertex format %v", cfg.Shape.VertexFormat)
	}
	if cfg.Shape.OffsetAttribute != "all" {
		t.Errorf("expected offset 'all', got %q", cfg.Shape.OffsetAttribute)
	}

	if cfg.Viewer.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Viewer.Width)
	}
	if !cfg.Viewer.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Viewer.VSync {
		t.Error("expected vsync to be false")
	}
	if !cfg.Viewer.Wireframe {
		t.Error("expected wireframe to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "frustum.log" {
		t.Errorf("expected log file 'frustum.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := map[string]string{
		"bad syntax": `
shape:
  height: not a number
  invalid syntax here
`,
		"unknown key": `
shape:
  hieght: 4
`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should keep defaults, got %v", err)
	}
	if cfg.Shape.Slices != frustum.DefaultSlices {
		t.Errorf("expected default slices, got %d", cfg.Shape.Slices)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/frustum.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Keep the user config dir out of the search.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create frustum.yaml in current directory
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("shape:\n  slices: 8\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find frustum.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "explicit zero radius makes a cone",
			setup: func() {
				*flagTopRadius = 0
			},
			verify: func(cfg *Config) {
				if cfg.Shape.TopRadius != 0 {
					t.Errorf("expected top radius 0, got %v", cfg.Shape.TopRadius)
				}
				if cfg.Shape.BottomRadius != 1 {
					t.Errorf("bottom radius should keep its default, got %v", cfg.Shape.BottomRadius)
				}
			},
			teardown: func() {
				*flagTopRadius = -1
			},
		},
		{
			name: "height and slices flags",
			setup: func() {
				*flagHeight = 7.5
				*flagSlices = 24
			},
			verify: func(cfg *Config) {
				if cfg.Shape.Height != 7.5 {
					t.Errorf("expected height 7.5, got %v", cfg.Shape.Height)
				}
				if cfg.Shape.Slices != 24 {
					t.Errorf("expected 24 slices, got %d", cfg.Shape.Slices)
				}
			},
			teardown: func() {
				*flagHeight = 0
				*flagSlices = 0
			},
		},
		{
			name: "format and offset flags",
			setup: func() {
				*flagFormat = "position,bitangent"
				*flagOffset = "top"
			},
			verify: func(cfg *Config) {
				if len(cfg.Shape.VertexFormat) != 2 || cfg.Shape.VertexFormat[1] != "bitangent" {
					t.Errorf("unexpected vertex format %v", cfg.Shape.VertexFormat)
				}
				if cfg.Shape.OffsetAttribute != "top" {
					t.Errorf("expected offset 'top', got %q", cfg.Shape.OffsetAttribute)
				}
			},
			teardown: func() {
				*flagFormat = ""
				*flagOffset = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
shape:
  height: 4
  slices: 16
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagSlices = 32
	defer func() {
		*flagConfig = ""
		*flagSlices = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Slices should be from flag (32), not file (16)
	if cfg.Shape.Slices != 32 {
		t.Errorf("expected 32 slices from flag, got %d", cfg.Shape.Slices)
	}

	// Height should be from file (4) since no flag override
	if cfg.Shape.Height != 4 {
		t.Errorf("expected height 4 from file, got %v", cfg.Shape.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Shape.TopRadius = 0
	cfg.Shape.OffsetAttribute = "top"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Shape.TopRadius != 0 || loaded.Shape.OffsetAttribute != "top" {
		t.Errorf("saved shape not restored: %+v", loaded.Shape)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("bottom_radius: 1")) {
		t.Errorf("encoded config missing shape section:\n%s", buf.String())
	}
}

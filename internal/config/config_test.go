package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	if cfg.LayoutName != DefaultLayoutName {
		t.Errorf("LayoutName = %q, want %q", cfg.LayoutName, DefaultLayoutName)
	}
	if cfg.Zoom != DefaultZoom {
		t.Errorf("Zoom = %v, want %v", cfg.Zoom, DefaultZoom)
	}
	if cfg.Left.Min <= 0 || cfg.Preview.Min <= 0 || cfg.Right.Min <= 0 {
		t.Error("default pane minima should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero zoom", func(c *Config) { c.Zoom = 0 }, true},
		{"negative zoom", func(c *Config) { c.Zoom = -1 }, true},
		{"negative chrome", func(c *Config) { c.FrameChrome = -5 }, true},
		{"negative left min", func(c *Config) { c.Left.Min = -10 }, true},
		{"negative preview min", func(c *Config) { c.Preview.Min = -10 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GITBUTLER_CONFIG_DIR", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	cfg.SetTheme("dark")
	cfg.SetFoldedLeft(true)
	cfg.SetPane("left", PaneWidths{Default: 260, Min: 200})
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("reload returned error: %v", err)
	}
	if reloaded.GetTheme() != "dark" {
		t.Errorf("Theme = %q, want %q", reloaded.GetTheme(), "dark")
	}
	if !reloaded.GetFoldedLeft() {
		t.Error("FoldedLeft should persist")
	}
	if got := reloaded.GetPane("left"); got.Default != 260 || got.Min != 200 {
		t.Errorf("left pane = %+v, want {260 200}", got)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GITBUTLER_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GetLayoutName() != DefaultLayoutName {
		t.Errorf("LayoutName = %q, want default", cfg.GetLayoutName())
	}
}

func TestLoad_PartialFileBackfillsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GITBUTLER_CONFIG_DIR", dir)

	// An older config file that only sets the theme.
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"theme":"light"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.GetTheme() != "light" {
		t.Errorf("Theme = %q, want %q", cfg.GetTheme(), "light")
	}
	if cfg.GetZoom() != DefaultZoom {
		t.Errorf("Zoom = %v, want backfilled default", cfg.GetZoom())
	}
	if cfg.GetPane("preview").Min == 0 {
		t.Error("preview pane config should be backfilled")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GITBUTLER_CONFIG_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{bad"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load should fail on a corrupt file")
	}
}

func TestWidthStorePath_BesideConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GITBUTLER_CONFIG_DIR", dir)

	path, err := WidthStorePath()
	if err != nil {
		t.Fatalf("WidthStorePath returned error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("store path %q should live in %q", path, dir)
	}
}

func TestDebugFromEnv(t *testing.T) {
	t.Setenv("GITBUTLER_DEBUG", "true")
	if !DebugFromEnv() {
		t.Error("DebugFromEnv should report true")
	}

	t.Setenv("GITBUTLER_DEBUG", "false")
	if DebugFromEnv() {
		t.Error("DebugFromEnv should report false")
	}
}

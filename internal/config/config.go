package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"

	"github.com/xq773939719/gitbutler/internal/errors"
)

// PaneWidths is the caller-supplied width configuration for one pane, in
// device pixels.
type PaneWidths struct {
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
}

// Config holds the application configuration
type Config struct {
	Theme      string `json:"theme,omitempty"`       // UI theme name
	LayoutName string `json:"layout_name,omitempty"` // Persistence namespace for pane widths

	Zoom          float64 `json:"zoom,omitempty"`           // Global zoom factor
	FrameChrome   float64 `json:"frame_chrome,omitempty"`   // Window decoration allowance in pixels
	FallbackWidth float64 `json:"fallback_width,omitempty"` // Container width before first measurement

	Left    PaneWidths `json:"left"`
	Preview PaneWidths `json:"preview"`
	Right   PaneWidths `json:"right"`

	FoldedLeft     bool `json:"folded_left,omitempty"`     // Left panel folded to its fixed width
	PreviewVisible bool `json:"preview_visible,omitempty"` // Preview panel shown
	RightVisible   bool `json:"right_visible,omitempty"`   // Right panel shown

	mu       sync.RWMutex
	filePath string
}

// envOverrides are settings that may be supplied through the environment,
// taking precedence over the config file.
type envOverrides struct {
	ConfigDir string `env:"GITBUTLER_CONFIG_DIR"`
	Debug     bool   `env:"GITBUTLER_DEBUG"`
}

// Defaults for a fresh install.
const (
	DefaultLayoutName    = "workspace"
	DefaultZoom          = 1.0
	DefaultFallbackWidth = 1280.0
)

// DefaultPanes returns the stock pane width configuration in device pixels.
func DefaultPanes() (left, preview, right PaneWidths) {
	left = PaneWidths{Default: 280, Min: 220}
	preview = PaneWidths{Default: 480, Min: 240}
	right = PaneWidths{Default: 320, Min: 220}
	return left, preview, right
}

// configDir returns the path to the config directory, honoring the
// GITBUTLER_CONFIG_DIR override.
func configDir() (string, error) {
	var overrides envOverrides
	if err := env.Parse(&overrides); err == nil && overrides.ConfigDir != "" {
		return overrides.ConfigDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gitbutler-tui"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// WidthStorePath returns the path of the persisted pane-width store, which
// lives beside the config file.
func WidthStorePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "widths.json"), nil
}

// DebugFromEnv reports whether GITBUTLER_DEBUG requests debug logging.
func DebugFromEnv() bool {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return false
	}
	return overrides.Debug
}

// New returns a config populated with defaults, not bound to any file.
func New() *Config {
	left, preview, right := DefaultPanes()
	return &Config{
		LayoutName:    DefaultLayoutName,
		Zoom:          DefaultZoom,
		FallbackWidth: DefaultFallbackWidth,
		Left:          left,
		Preview:       preview,
		Right:         right,
	}
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg := New()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Fill in zero values left by older config files
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized backfills defaults for fields absent from the file.
// Only called during single-threaded initialization.
func (c *Config) ensureInitialized() {
	left, preview, right := DefaultPanes()
	if c.LayoutName == "" {
		c.LayoutName = DefaultLayoutName
	}
	if c.Zoom == 0 {
		c.Zoom = DefaultZoom
	}
	if c.FallbackWidth == 0 {
		c.FallbackWidth = DefaultFallbackWidth
	}
	if c.Left == (PaneWidths{}) {
		c.Left = left
	}
	if c.Preview == (PaneWidths{}) {
		c.Preview = preview
	}
	if c.Right == (PaneWidths{}) {
		c.Right = right
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Zoom <= 0 {
		return errors.ConfigInvalid("zoom must be positive")
	}
	if c.FrameChrome < 0 {
		return errors.ConfigInvalid("frame chrome must not be negative")
	}
	for _, pane := range []struct {
		name   string
		widths PaneWidths
	}{
		{"left", c.Left},
		{"preview", c.Preview},
		{"right", c.Right},
	} {
		if pane.widths.Min < 0 {
			return errors.ConfigInvalid(pane.name + " minimum width must not be negative")
		}
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetTheme returns the configured theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetLayoutName returns the persistence namespace for pane widths
func (c *Config) GetLayoutName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LayoutName
}

// GetZoom returns the global zoom factor
func (c *Config) GetZoom() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Zoom
}

// SetZoom sets the global zoom factor
func (c *Config) SetZoom(zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Zoom = zoom
}

// GetFoldedLeft returns whether the left panel is folded
func (c *Config) GetFoldedLeft() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.FoldedLeft
}

// SetFoldedLeft records the left panel's folded state
func (c *Config) SetFoldedLeft(folded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.FoldedLeft = folded
}

// GetPreviewVisible returns whether the preview panel is shown
func (c *Config) GetPreviewVisible() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.PreviewVisible
}

// SetPreviewVisible records the preview panel's visibility
func (c *Config) SetPreviewVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.PreviewVisible = visible
}

// GetRightVisible returns whether the right panel is shown
func (c *Config) GetRightVisible() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.RightVisible
}

// SetRightVisible records the right panel's visibility
func (c *Config) SetRightVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RightVisible = visible
}

// GetPane returns the width configuration for a pane role name.
func (c *Config) GetPane(role string) PaneWidths {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch role {
	case "left":
		return c.Left
	case "preview":
		return c.Preview
	case "right":
		return c.Right
	default:
		return PaneWidths{}
	}
}

// SetPane updates the width configuration for a pane role name.
func (c *Config) SetPane(role string, widths PaneWidths) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch role {
	case "left":
		c.Left = widths
	case "preview":
		c.Preview = widths
	case "right":
		c.Right = widths
	}
}

// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI.
package ui

// Theme defines the color palette as hex strings.
type Theme struct {
	Name        string
	Primary     string
	Secondary   string
	Bg          string
	Text        string
	TextMuted   string
	TextInverse string
	Border      string
	BorderFocus string
	Warning     string
	Error       string
	Success     string
}

// DefaultTheme is the theme used before any configuration is loaded.
const DefaultTheme = "dark"

// BuiltinThemes are the themes that ship with the application, keyed by name.
var BuiltinThemes = map[string]Theme{
	"dark": {
		Name:        "dark",
		Primary:     "#7C3AED", // Purple
		Secondary:   "#06B6D4", // Cyan
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#B0B8C4",
		TextInverse: "#1F2937",
		Border:      "#374151",
		BorderFocus: "#7C3AED",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Success:     "#10B981",
	},
	"light": {
		Name:        "light",
		Primary:     "#6D28D9",
		Secondary:   "#0891B2",
		Bg:          "#F9FAFB",
		Text:        "#111827",
		TextMuted:   "#4B5563",
		TextInverse: "#F9FAFB",
		Border:      "#D1D5DB",
		BorderFocus: "#6D28D9",
		Warning:     "#B45309",
		Error:       "#B91C1C",
		Success:     "#047857",
	},
}

var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme activates a builtin theme by name and regenerates all styles.
// Unknown names are ignored and the active theme is kept.
func SetTheme(name string) bool {
	theme, ok := BuiltinThemes[name]
	if !ok {
		return false
	}
	currentTheme = theme
	regenerateStyles()
	return true
}

// ThemeNames returns the builtin theme names in a stable order.
func ThemeNames() []string {
	return []string{"dark", "light"}
}

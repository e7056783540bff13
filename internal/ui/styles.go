package ui

import "charm.land/lipgloss/v2"

// Color palette, regenerated from the active theme by regenerateStyles.
var (
	ColorPrimary     = lipgloss.Color(currentTheme.Primary)
	ColorSecondary   = lipgloss.Color(currentTheme.Secondary)
	ColorBg          = lipgloss.Color(currentTheme.Bg)
	ColorText        = lipgloss.Color(currentTheme.Text)
	ColorTextMuted   = lipgloss.Color(currentTheme.TextMuted)
	ColorTextInverse = lipgloss.Color(currentTheme.TextInverse)
	ColorBorder      = lipgloss.Color(currentTheme.Border)
	ColorBorderFocus = lipgloss.Color(currentTheme.BorderFocus)
	ColorWarning     = lipgloss.Color(currentTheme.Warning)
	ColorError       = lipgloss.Color(currentTheme.Error)
	ColorSuccess     = lipgloss.Color(currentTheme.Success)
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	HeaderStatusStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	PanelResizingStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorSecondary)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	PanelContentStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError)
)

// regenerateStyles rebuilds every package-level style from the active theme.
// Called by SetTheme; the initial values above use the default theme.
func regenerateStyles() {
	ColorPrimary = lipgloss.Color(currentTheme.Primary)
	ColorSecondary = lipgloss.Color(currentTheme.Secondary)
	ColorBg = lipgloss.Color(currentTheme.Bg)
	ColorText = lipgloss.Color(currentTheme.Text)
	ColorTextMuted = lipgloss.Color(currentTheme.TextMuted)
	ColorTextInverse = lipgloss.Color(currentTheme.TextInverse)
	ColorBorder = lipgloss.Color(currentTheme.Border)
	ColorBorderFocus = lipgloss.Color(currentTheme.BorderFocus)
	ColorWarning = lipgloss.Color(currentTheme.Warning)
	ColorError = lipgloss.Color(currentTheme.Error)
	ColorSuccess = lipgloss.Color(currentTheme.Success)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)
	HeaderStatusStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)
	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)
	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)
	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)
	PanelResizingStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(ColorSecondary)
	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)
	PanelContentStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
}

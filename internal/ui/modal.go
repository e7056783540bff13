package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/xq773939719/gitbutler/internal/keys"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered over the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// huhFormUpdate is the common Update logic for huh-based modals.
// It intercepts Enter and Escape (handled by the app-layer modal handlers)
// and delegates everything else to the huh form.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	form = m.(*huh.Form)
	return form, cmd
}

// ModalTheme returns a huh theme that matches the current modal color palette.
// Called each time a huh form is created to pick up the current theme colors.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorWarning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorWarning)

		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.NextIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginLeft(1).SetString("→")
		t.Focused.PrevIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginRight(1).SetString("←")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ColorText)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base

		return t
	})
}

// =============================================================================
// SettingsState - State for the layout settings modal
// =============================================================================

// PaneWidthsInput is the parsed width configuration for one pane, in device
// pixels.
type PaneWidthsInput struct {
	Default float64
	Min     float64
}

// SettingsResult is the parsed outcome of a submitted settings modal.
type SettingsResult struct {
	Theme   string
	Zoom    float64
	Left    PaneWidthsInput
	Preview PaneWidthsInput
	Right   PaneWidthsInput
}

// SettingsState edits zoom and per-pane width configuration.
type SettingsState struct {
	form *huh.Form

	theme       string
	zoom        string
	leftDefault string
	leftMin     string
	prevDefault string
	prevMin     string
	rightDef    string
	rightMin    string
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Layout Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: apply  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Result parses the form fields. Widths are device pixels; zoom must be
// positive and minimums must not exceed defaults.
func (s *SettingsState) Result() (SettingsResult, error) {
	zoom, err := parsePositive("zoom", s.zoom)
	if err != nil {
		return SettingsResult{}, err
	}

	res := SettingsResult{Theme: s.theme, Zoom: zoom}
	for _, p := range []struct {
		name     string
		def, min string
		out      *PaneWidthsInput
	}{
		{"left", s.leftDefault, s.leftMin, &res.Left},
		{"preview", s.prevDefault, s.prevMin, &res.Preview},
		{"right", s.rightDef, s.rightMin, &res.Right},
	} {
		def, err := parsePositive(p.name+" default", p.def)
		if err != nil {
			return SettingsResult{}, err
		}
		min, err := parsePositive(p.name+" minimum", p.min)
		if err != nil {
			return SettingsResult{}, err
		}
		if min > def {
			return SettingsResult{}, fmt.Errorf("%s minimum %.0f exceeds default %.0f", p.name, min, def)
		}
		*p.out = PaneWidthsInput{Default: def, Min: min}
	}

	return res, nil
}

func parsePositive(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return f, nil
}

// validateNumber is the per-field form validation, kept permissive so typing
// intermediate values never blocks. Full validation happens in Result.
func validateNumber(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("required")
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
		return fmt.Errorf("not a number")
	}
	return nil
}

// NewSettingsState creates a settings modal pre-filled with current values.
func NewSettingsState(theme string, zoom float64, left, preview, right PaneWidthsInput) *SettingsState {
	s := &SettingsState{
		theme:       theme,
		zoom:        strconv.FormatFloat(zoom, 'g', -1, 64),
		leftDefault: strconv.FormatFloat(left.Default, 'f', 0, 64),
		leftMin:     strconv.FormatFloat(left.Min, 'f', 0, 64),
		prevDefault: strconv.FormatFloat(preview.Default, 'f', 0, 64),
		prevMin:     strconv.FormatFloat(preview.Min, 'f', 0, 64),
		rightDef:    strconv.FormatFloat(right.Default, 'f', 0, 64),
		rightMin:    strconv.FormatFloat(right.Min, 'f', 0, 64),
	}

	themeOptions := make([]huh.Option[string], 0, len(ThemeNames()))
	for _, name := range ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&s.theme),
			huh.NewInput().
				Title("Zoom").
				CharLimit(ModalInputCharLimit).
				Validate(validateNumber).
				Value(&s.zoom),
			huh.NewInput().
				Title("Left width (px)").
				CharLimit(ModalInputCharLimit).
				Validate(validateNumber).
				Value(&s.leftDefault),
			huh.NewInput().
				Title("Left minimum (px)").
				CharLimit(ModalInputCharLimit).
				Validate(validateNumber).
				Value(&s.leftMin),
			huh.NewInput().
				Title("Preview width (px)").
				CharLimit(ModalInputCharLimit).
				Validate(validateNumber).
				Value(&s.prevDefault),
			huh.NewInput().
				Title("Preview minimum (px)").
				CharLimit(ModalInputCharLimit).
				Validate(validateNumber).
				Value(&s.prevMin),
			huh.NewInput().
				Title("Right width (px)").
				CharLimit(ModalInputCharLimit).
				Validate(validateNumber).
				Value(&s.rightDef),
			huh.NewInput().
				Title("Right minimum (px)").
				CharLimit(ModalInputCharLimit).
				Validate(validateNumber).
				Value(&s.rightMin),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	s.form.Init()
	return s
}

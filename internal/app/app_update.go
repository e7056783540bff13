package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xq773939719/gitbutler/internal/config"
	"github.com/xq773939719/gitbutler/internal/keys"
	"github.com/xq773939719/gitbutler/internal/layout"
	"github.com/xq773939719/gitbutler/internal/logger"
	"github.com/xq773939719/gitbutler/internal/ui"
	"github.com/xq773939719/gitbutler/internal/unit"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case ui.FlashTickMsg:
		m.footer.ClearFlash()

	case WidthsReloadedMsg:
		m.vp.ReloadPreferred()

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress routes a key press based on the current mode: modal input,
// resize session, or normal navigation.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}
	if m.resizing {
		return m.handleResizeKey(key)
	}

	switch key {
	case "q":
		return m, tea.Quit

	case keys.Tab:
		m.cycleFocus(1)

	case keys.ShiftTab:
		m.cycleFocus(-1)

	case keys.Enter:
		return m.beginResize()

	case "f":
		return m.toggleFold()

	case "p":
		return m.togglePreview()

	case "o":
		return m.toggleRight()

	case "s":
		m.openSettings()

	case keys.CtrlR:
		m.vp.ReloadPreferred()
		return m, m.ShowFlashInfo("widths reloaded")

	case "+", "=":
		return m.adjustZoom(ZoomStep)

	case "-":
		return m.adjustZoom(-ZoomStep)

	default:
		// Unclaimed keys scroll the focused pane's content
		return m, m.panes[m.focused].Update(msg)
	}

	return m, nil
}

// handleResizeKey drives an active resize session on the focused pane.
func (m *Model) handleResizeKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Left:
		return m.adjustResize(-ui.ResizeStepPx)

	case keys.Right:
		return m.adjustResize(ui.ResizeStepPx)

	case keys.ShiftLeft:
		return m.adjustResize(-ui.ResizeBigStepPx)

	case keys.ShiftRight:
		return m.adjustResize(ui.ResizeBigStepPx)

	case keys.Enter:
		m.resizing = false
		if err := m.resizer.End(m.focused); err != nil {
			logger.WithComponent("app").Error("resize commit failed", "error", err)
			return m, m.ShowFlashError("width not saved: " + err.Error())
		}
		return m, m.ShowFlashSuccess("width saved")

	case keys.Escape:
		m.resizing = false
		m.resizer.Cancel(m.focused)
		return m, m.ShowFlashInfo("resize cancelled")
	}

	return m, nil
}

// beginResize starts a resize session on the focused pane from its currently
// displayed width.
func (m *Model) beginResize() (tea.Model, tea.Cmd) {
	startPx := m.vp.Widths().Width(m.focused).Pixels(m.vp.Zoom())
	if err := m.resizer.Begin(m.focused, startPx); err != nil {
		return m, m.ShowFlashError(err.Error())
	}
	m.resizing = true
	return m, nil
}

// adjustResize moves the in-flight drag candidate by deltaPx device pixels.
func (m *Model) adjustResize(deltaPx float64) (tea.Model, tea.Cmd) {
	sess := m.resizer.Active(m.focused)
	if sess == nil {
		m.resizing = false
		return m, nil
	}
	if err := m.resizer.Update(m.focused, sess.Current+deltaPx); err != nil {
		return m, m.ShowFlashError(err.Error())
	}
	return m, nil
}

func (m *Model) toggleFold() (tea.Model, tea.Cmd) {
	folded := !m.vp.Folded()
	m.vp.SetFolded(folded)
	m.config.SetFoldedLeft(folded)
	return m, m.saveConfig()
}

func (m *Model) togglePreview() (tea.Model, tea.Cmd) {
	visible := !m.vp.PreviewVisible()
	m.vp.SetPreviewVisible(visible)
	m.config.SetPreviewVisible(visible)
	m.syncFocusRegions()
	return m, m.saveConfig()
}

func (m *Model) toggleRight() (tea.Model, tea.Cmd) {
	visible := !m.vp.RightVisible()
	m.vp.SetRightVisible(visible)
	m.config.SetRightVisible(visible)
	m.syncFocusRegions()
	return m, m.saveConfig()
}

func (m *Model) adjustZoom(delta float64) (tea.Model, tea.Cmd) {
	zoom := m.config.GetZoom() + delta
	if zoom < ZoomMin {
		zoom = ZoomMin
	}
	if zoom > ZoomMax {
		zoom = ZoomMax
	}
	m.vp.SetZoom(unit.Zoom(zoom))
	m.config.SetZoom(zoom)
	return m, m.saveConfig()
}

// openSettings shows the settings modal pre-filled from config.
func (m *Model) openSettings() {
	theme := m.config.GetTheme()
	if theme == "" {
		theme = ui.DefaultTheme
	}
	m.modal.Show(ui.NewSettingsState(
		theme,
		m.config.GetZoom(),
		widthsInput(m.config.GetPane("left")),
		widthsInput(m.config.GetPane("preview")),
		widthsInput(m.config.GetPane("right")),
	))
}

func widthsInput(w config.PaneWidths) ui.PaneWidthsInput {
	return ui.PaneWidthsInput{Default: w.Default, Min: w.Min}
}

// handleModalKey routes keys while a modal is open. Enter applies, Escape
// cancels, everything else goes to the form.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		state, ok := m.modal.State.(*ui.SettingsState)
		if !ok {
			m.modal.Hide()
			return m, nil
		}
		result, err := state.Result()
		if err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		return m.applySettings(result)
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// applySettings pushes a submitted settings form into config, theme and
// viewport, then persists the config.
func (m *Model) applySettings(result ui.SettingsResult) (tea.Model, tea.Cmd) {
	ui.SetTheme(result.Theme)
	m.config.SetTheme(result.Theme)
	m.config.SetZoom(result.Zoom)

	for _, p := range []struct {
		name  string
		input ui.PaneWidthsInput
	}{
		{"left", result.Left},
		{"preview", result.Preview},
		{"right", result.Right},
	} {
		widths := config.PaneWidths{Default: p.input.Default, Min: p.input.Min}
		m.config.SetPane(p.name, widths)
	}

	m.vp.SetZoom(unit.Zoom(result.Zoom))
	m.vp.SetPaneConfig(layout.Left, paneConfig(m.config.GetPane("left")))
	m.vp.SetPaneConfig(layout.Preview, paneConfig(m.config.GetPane("preview")))
	m.vp.SetPaneConfig(layout.Right, paneConfig(m.config.GetPane("right")))

	m.modal.Hide()
	return m, tea.Batch(m.saveConfig(), m.ShowFlashSuccess("settings applied"))
}

// saveConfig persists the config off the update loop.
func (m *Model) saveConfig() tea.Cmd {
	cfg := m.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			logger.WithComponent("app").Error("config save failed", "error", err)
		}
		return nil
	}
}

// Package app wires the layout engine, viewport, resize controller and UI
// components into the Bubble Tea shell.
package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xq773939719/gitbutler/internal/config"
	"github.com/xq773939719/gitbutler/internal/focus"
	"github.com/xq773939719/gitbutler/internal/layout"
	"github.com/xq773939719/gitbutler/internal/logger"
	"github.com/xq773939719/gitbutler/internal/resize"
	"github.com/xq773939719/gitbutler/internal/store"
	"github.com/xq773939719/gitbutler/internal/ui"
	"github.com/xq773939719/gitbutler/internal/unit"
	"github.com/xq773939719/gitbutler/internal/viewport"
)

// Zoom bounds and step for keyboard zoom adjustment
const (
	ZoomStep = 0.25
	ZoomMin  = 0.5
	ZoomMax  = 3.0
)

// WidthsReloadedMsg is sent when another process rewrote the width store on
// disk and the viewport should pick up the new committed widths.
type WidthsReloadedMsg struct{}

// Model is the main Bubble Tea model
type Model struct {
	config *config.Config

	header *ui.Header
	footer *ui.Footer
	modal  *ui.Modal
	panes  map[layout.Role]*ui.Pane

	vp      *viewport.Viewport
	resizer *resize.Controller
	widths  store.Store

	focusReg  *focus.Registry
	regionIDs map[layout.Role]focus.RegionID
	roles     map[focus.RegionID]layout.Role

	width  int
	height int

	focused  layout.Role
	resizing bool
}

// New creates a new app model
func New(cfg *config.Config, widths store.Store) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetTheme(savedTheme)
	}

	vp := viewport.New(layout.DefaultEngine(), viewport.Config{
		LayoutName:    cfg.GetLayoutName(),
		FrameChrome:   cfg.FrameChrome,
		FallbackWidth: cfg.FallbackWidth,
		Left:          paneConfig(cfg.GetPane("left")),
		Preview:       paneConfig(cfg.GetPane("preview")),
		Right:         paneConfig(cfg.GetPane("right")),
	}, widths)
	vp.SetZoom(unit.Zoom(cfg.GetZoom()))
	vp.SetFolded(cfg.GetFoldedLeft())
	vp.SetPreviewVisible(cfg.GetPreviewVisible())
	vp.SetRightVisible(cfg.GetRightVisible())

	m := &Model{
		config:  cfg,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		modal:   ui.NewModal(),
		vp:      vp,
		resizer: resize.NewController(vp, widths),
		widths:  widths,
		focused: layout.Middle,
		panes: map[layout.Role]*ui.Pane{
			layout.Left:    ui.NewPane("Branches"),
			layout.Preview: ui.NewPane("Preview"),
			layout.Middle:  ui.NewPane("Workspace"),
			layout.Right:   ui.NewPane("Details"),
		},
	}
	m.syncFocusRegions()

	vp.Subscribe(func(res layout.Result) {
		logger.WithComponent("app").Debug("layout updated",
			"left", float64(res.Left),
			"preview", float64(res.Preview),
			"right", float64(res.Right),
		)
	})

	return m
}

func paneConfig(w config.PaneWidths) viewport.PaneConfig {
	return viewport.PaneConfig{Default: w.Default, Min: w.Min}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// paneVisible reports whether a role currently occupies screen space.
// Left and middle are always present; folding does not hide the left pane.
func (m *Model) paneVisible(role layout.Role) bool {
	switch role {
	case layout.Preview:
		return m.vp.PreviewVisible()
	case layout.Right:
		return m.vp.RightVisible()
	default:
		return true
	}
}

// syncFocusRegions rebuilds the focus tree to match pane visibility.
// Registration order is traversal order, so visible panes register
// left-to-right.
func (m *Model) syncFocusRegions() {
	m.focusReg = focus.NewRegistry("viewport")
	m.regionIDs = make(map[layout.Role]focus.RegionID)
	m.roles = make(map[focus.RegionID]layout.Role)

	for _, role := range []layout.Role{layout.Left, layout.Preview, layout.Middle, layout.Right} {
		if !m.paneVisible(role) {
			continue
		}
		id, err := m.focusReg.Register(role.String(), "")
		if err != nil {
			logger.WithComponent("app").Error("focus region registration failed",
				"role", role.String(), "error", err)
			continue
		}
		m.regionIDs[role] = id
		m.roles[id] = role
	}

	// A hidden pane cannot keep focus
	if _, ok := m.regionIDs[m.focused]; !ok {
		m.focused = layout.Middle
	}
}

// cycleFocus moves focus to the next or previous visible pane.
func (m *Model) cycleFocus(delta int) {
	id, ok := m.regionIDs[m.focused]
	if !ok {
		m.focused = layout.Middle
		return
	}

	var next focus.RegionID
	var err error
	if delta < 0 {
		next, err = m.focusReg.Prev(id)
	} else {
		next, err = m.focusReg.Next(id)
	}
	if err != nil {
		return
	}
	m.focused = m.roles[next]
}

// Focused returns the pane that currently has keyboard focus.
func (m *Model) Focused() layout.Role {
	return m.focused
}

// Viewport exposes the reactive layout state, used in tests.
func (m *Model) Viewport() *viewport.Viewport {
	return m.vp
}

package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/xq773939719/gitbutler/internal/layout"
	"github.com/xq773939719/gitbutler/internal/ui"
)

// updateSizes recalculates dimensions and feeds the new container
// measurement to the viewport
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.vp.SetContainerWidth(ctx.ContainerPixels())
}

// applyPaneSizes maps the latest solved frame onto pane cell sizes.
// The middle pane gets whatever the terminal has left, which is the cell
// rendering of its flex-grow behavior.
func (m *Model) applyPaneSizes() {
	ctx := ui.GetViewContext()
	res := m.vp.Widths()
	zoom := m.vp.Zoom()

	leftCells := ui.Cells(res.Left, zoom)
	var previewCells, rightCells int
	if m.vp.PreviewVisible() {
		previewCells = ui.Cells(res.Preview, zoom)
	}
	if m.vp.RightVisible() {
		rightCells = ui.Cells(res.Right, zoom)
	}

	middleCells := ctx.TerminalWidth - leftCells - previewCells - rightCells
	if middleCells < 0 {
		middleCells = 0
	}

	height := ctx.ContentHeight
	m.panes[layout.Preview].SetMergeLeft(res.PreviewBesideLeft)
	m.panes[layout.Left].SetSize(leftCells, height)
	m.panes[layout.Preview].SetSize(previewCells, height)
	m.panes[layout.Middle].SetSize(middleCells, height)
	m.panes[layout.Right].SetSize(rightCells, height)

	for role, pane := range m.panes {
		pane.SetFocused(role == m.focused)
		pane.SetResizing(m.resizing && role == m.focused)
	}

	m.panes[layout.Middle].SetContent(m.layoutSummary(res))
}

// layoutSummary describes the solved frame, shown in the middle pane.
func (m *Model) layoutSummary(res layout.Result) string {
	summary := fmt.Sprintf("left %.0f", float64(res.Left))
	if m.vp.PreviewVisible() {
		summary += fmt.Sprintf("  preview %.0f", float64(res.Preview))
	}
	if m.vp.RightVisible() {
		summary += fmt.Sprintf("  right %.0f", float64(res.Right))
	}
	summary += fmt.Sprintf("\nmiddle floor %.0f", float64(res.MiddleMin))
	if sess := m.resizer.Active(m.focused); sess != nil {
		summary += fmt.Sprintf("\nresizing %s: %.0fpx", m.focused, sess.Current)
	}
	return summary
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.applyPaneSizes()

	m.header.SetLayoutName(m.vp.LayoutName())
	m.header.SetZoom(float64(m.vp.Zoom()))
	m.header.SetFolded(m.vp.Folded())
	m.footer.SetContext(m.resizing, m.modal.IsVisible(), m.vp.Folded())

	var panes []string
	for _, role := range []layout.Role{layout.Left, layout.Preview, layout.Middle, layout.Right} {
		if view := m.panes[role].View(); view != "" {
			panes = append(panes, view)
		}
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		content,
		m.footer.View(),
	)

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	return view
}

package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Pane is one bordered panel of the workspace. Its width is whatever the
// layout engine solved for its role, mapped to cells; the pane never decides
// its own size.
type Pane struct {
	title    string
	width    int // total cells, border included
	height   int // total cells, border included
	focused  bool
	resizing bool
	content  string

	// mergeLeft drops the left border edge; the neighboring pane
	// already draws that line
	mergeLeft bool

	// body scrolls content taller than the pane
	body viewport.Model
}

// NewPane creates a pane with a fixed title
func NewPane(title string) *Pane {
	return &Pane{title: title, body: viewport.New()}
}

// Title returns the pane's title
func (p *Pane) Title() string {
	return p.title
}

// SetSize sets the pane's outer dimensions in cells
func (p *Pane) SetSize(width, height int) {
	p.width = width
	p.height = height

	inner := width - p.frameWidth()
	bodyHeight := height - BorderSize - TitleHeight
	if inner > 0 && bodyHeight > 0 {
		p.body.SetWidth(inner)
		p.body.SetHeight(bodyHeight)
	}
}

// SetMergeLeft controls whether the pane shares its left border with the
// pane beside it. Call before SetSize so the body width accounts for the
// missing edge.
func (p *Pane) SetMergeLeft(merge bool) {
	p.mergeLeft = merge
}

// frameWidth is the horizontal border allowance in cells.
func (p *Pane) frameWidth() int {
	if p.mergeLeft {
		return BorderSize - 1
	}
	return BorderSize
}

// Width returns the pane's outer width in cells
func (p *Pane) Width() int {
	return p.width
}

// SetFocused sets whether this pane has keyboard focus
func (p *Pane) SetFocused(focused bool) {
	p.focused = focused
}

// SetResizing sets whether a resize session targets this pane
func (p *Pane) SetResizing(resizing bool) {
	p.resizing = resizing
}

// SetContent sets the pane's body text
func (p *Pane) SetContent(content string) {
	p.content = content
	p.body.SetContent(PanelContentStyle.Render(content))
}

// Update forwards scroll keys to the body viewport
func (p *Pane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.body, cmd = p.body.Update(msg)
	return cmd
}

// View renders the pane. A pane too narrow for a border renders empty.
func (p *Pane) View() string {
	if p.width < BorderSize+1 || p.height < BorderSize+1 {
		return ""
	}

	style := PanelStyle
	if p.resizing {
		style = PanelResizingStyle
	} else if p.focused {
		style = PanelFocusedStyle
	}
	if p.mergeLeft {
		style = style.BorderLeft(false)
	}

	inner := p.width - p.frameWidth()
	innerHeight := p.height - BorderSize

	title := PanelTitleStyle.Render(truncate(p.title, inner-BorderSize))

	var body string
	if innerHeight > TitleHeight {
		body = p.body.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return style.
		Width(inner).
		Height(innerHeight).
		Render(content)
}

// truncate shortens s to at most max display cells, appending an ellipsis
// when anything was cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	return strings.TrimRight(runewidth.Truncate(s, max, "…"), " ")
}

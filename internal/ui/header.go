package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Header represents the top header bar
type Header struct {
	width      int
	layoutName string
	zoom       float64
	folded     bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{zoom: 1}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetLayoutName sets the layout name to display
func (h *Header) SetLayoutName(name string) {
	h.layoutName = name
}

// SetZoom sets the zoom factor to display
func (h *Header) SetZoom(zoom float64) {
	h.zoom = zoom
}

// SetFolded records the folded state of the left panel
func (h *Header) SetFolded(folded bool) {
	h.folded = folded
}

// View renders the header
func (h *Header) View() string {
	titleText := " gitbutler"

	var status []string
	if h.layoutName != "" {
		status = append(status, h.layoutName)
	}
	if h.zoom != 0 && h.zoom != 1 {
		status = append(status, fmt.Sprintf("zoom %.2g", h.zoom))
	}
	if h.folded {
		status = append(status, "folded")
	}
	rightText := strings.Join(status, " · ")
	if rightText != "" {
		rightText += " "
	}

	paddingLen := h.width - lipgloss.Width(titleText) - lipgloss.Width(rightText) - BorderSize
	if paddingLen < 0 {
		paddingLen = 0
	}

	content := titleText + strings.Repeat(" ", paddingLen) + rightText
	return HeaderStyle.Width(h.width).Render(content)
}

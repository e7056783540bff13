package ui

import (
	"math"
	"sync"

	"github.com/xq773939719/gitbutler/internal/logger"
	"github.com/xq773939719/gitbutler/internal/unit"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
//
// Horizontal sizing is not decided here. The layout engine solves pane widths
// in device pixels; ViewContext only maps the terminal onto that pixel space
// and back.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height

	// Header and footer each take exactly 1 line of content
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight

	// Content area is everything between header and footer
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
	)
}

// ContainerPixels returns the device-pixel width the terminal stands in for,
// which is what the viewport should be measured at.
func (v *ViewContext) ContainerPixels() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return float64(v.TerminalWidth) * PixelsPerCell
}

// Cells converts a solved width in layout units to terminal cells at the
// given zoom. Never negative.
func Cells(w unit.Length, zoom unit.Zoom) int {
	cells := int(math.Round(w.Pixels(zoom) / PixelsPerCell))
	if cells < 0 {
		return 0
	}
	return cells
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}

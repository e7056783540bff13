// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// MinTerminalWidth is the smallest terminal width the shell lays out for
	MinTerminalWidth = 40

	// MinTerminalHeight is the smallest terminal height the shell lays out for
	MinTerminalHeight = 10
)

// PixelsPerCell maps the layout engine's pixel arithmetic onto terminal
// cells. The engine solves in device pixels; one terminal cell stands in for
// this many pixels when rendering.
const PixelsPerCell = 10.0

// Resize step sizes in device pixels
const (
	// ResizeStepPx is the width change for one arrow key press
	ResizeStepPx = 10

	// ResizeBigStepPx is the width change for a shift-modified arrow key press
	ResizeBigStepPx = 50
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 16

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 40
)

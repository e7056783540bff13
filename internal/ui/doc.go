// Package ui provides the user interface components for the workspace TUI.
//
// # Overview
//
// The ui package implements the visual components of the workspace shell
// using the Bubble Tea framework and Lipgloss styling library. It follows the
// Model-Update-View pattern established by Bubble Tea.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├────────┬─────────┬───────────────────────┬──────────┤
//	│        │         │                       │          │
//	│  Left  │ Preview │        Middle         │  Right   │
//	│        │         │     (flex grows)      │          │
//	│        │         │                       │          │
//	├────────┴─────────┴───────────────────────┴──────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// Pane widths are not computed here. The layout engine solves them in device
// pixels; this package only maps solved pixel widths onto terminal cells and
// draws the result.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations and the
// pixel-to-cell mapping. All size calculations should go through ViewContext
// to ensure consistency.
//
// Header: Displays the application title and the current layout status
// (container width, zoom, folded state).
//
// Footer: Shows context-aware keyboard shortcuts. The displayed shortcuts
// change when a resize session is active or a modal is open.
//
// Pane: A bordered panel with a title, rendered at the width the layout
// engine solved for its role. The focused pane gets a highlighted border.
//
// Modal: Popup dialogs. ModalSettings edits zoom and per-pane width
// configuration through a huh form.
//
// # Styles
//
// All styles are defined in styles.go using Lipgloss and regenerate when the
// theme changes. Themes are defined in theme.go.
package ui

package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// FlashType classifies a transient footer message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashError
)

// FlashMessage is a transient message shown in the footer in place of the
// keybindings
type FlashMessage struct {
	Text string
	Type FlashType
}

// DefaultFlashDuration is how long a flash message stays visible
const DefaultFlashDuration = 3 * time.Second

// FlashTickMsg signals that the current flash message should be dismissed
type FlashTickMsg struct{}

// FlashTick returns a command that dismisses the flash after the default
// duration
func FlashTick() tea.Cmd {
	return tea.Tick(DefaultFlashDuration, func(time.Time) tea.Msg {
		return FlashTickMsg{}
	})
}

// SetFlash displays a flash message in the footer
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flashMessage = &FlashMessage{Text: text, Type: flashType}
}

// ClearFlash removes the current flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash returns whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// flashView renders the current flash message
func (f *Footer) flashView() string {
	style := FooterDescStyle
	switch f.flashMessage.Type {
	case FlashSuccess:
		style = style.Foreground(ColorSuccess)
	case FlashError:
		style = style.Foreground(ColorError)
	default:
		style = style.Foreground(ColorSecondary)
	}
	return FooterStyle.Width(f.width).Render(style.Render(f.flashMessage.Text))
}

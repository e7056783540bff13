package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width     int
	bindings  []KeyBinding
	resizing  bool // Whether a keyboard resize session is active
	modalOpen bool // Whether a modal is open
	folded    bool // Whether the left panel is folded

	flashMessage *FlashMessage // Transient message replacing the bindings
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "tab", Desc: "next pane"},
			{Key: "enter", Desc: "resize"},
			{Key: "f", Desc: "fold left"},
			{Key: "p", Desc: "preview"},
			{Key: "o", Desc: "right panel"},
			{Key: "s", Desc: "settings"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(resizing, modalOpen, folded bool) {
	f.resizing = resizing
	f.modalOpen = modalOpen
	f.folded = folded
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return f.flashView()
	}

	bindings := f.bindings

	// Show modal-specific shortcuts while a modal is open
	if f.modalOpen {
		bindings = []KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "cancel"},
		}
	} else if f.resizing {
		// Show resize-specific shortcuts during a resize session
		bindings = []KeyBinding{
			{Key: "←/→", Desc: "adjust"},
			{Key: "shift+←/→", Desc: "adjust more"},
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "cancel"},
		}
	} else if f.folded {
		bindings = append([]KeyBinding{}, bindings...)
		for i := range bindings {
			if bindings[i].Key == "f" {
				bindings[i].Desc = "unfold left"
			}
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	separator := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	content := strings.Join(parts, separator)
	return FooterStyle.Width(f.width).Render(content)
}

package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xq773939719/gitbutler/internal/config"
	"github.com/xq773939719/gitbutler/internal/keys"
	"github.com/xq773939719/gitbutler/internal/store"
)

// testModel creates a test Model backed by an in-memory width store.
func testModel() *Model {
	return New(config.New(), store.NewMemStore())
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(width, height int) *Model {
	m := testModel()
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "f", "enter", "tab", "esc", "ctrl+c", "left", "shift+right"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.ShiftLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift}
	case keys.ShiftRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlR:
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

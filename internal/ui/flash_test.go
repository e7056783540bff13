package ui

import (
	"strings"
	"testing"
)

func TestFooter_SetFlash(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)

	footer.SetFlash("width saved", FlashSuccess)

	if !footer.HasFlash() {
		t.Fatal("Expected HasFlash() to return true")
	}

	view := stripANSI(footer.View())
	if !strings.Contains(view, "width saved") {
		t.Errorf("Expected flash text in footer, got %q", view)
	}
	if strings.Contains(view, "quit") {
		t.Error("Flash should replace the keybindings")
	}
}

func TestFooter_ClearFlash(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)

	footer.SetFlash("oops", FlashError)
	footer.ClearFlash()

	if footer.HasFlash() {
		t.Error("Expected HasFlash() to return false after clear")
	}
	if !strings.Contains(stripANSI(footer.View()), "quit") {
		t.Error("Bindings should return after the flash clears")
	}
}

func TestFlashTick(t *testing.T) {
	if FlashTick() == nil {
		t.Error("FlashTick() should return a command")
	}
}

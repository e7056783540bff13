package ui

import (
	"strings"
	"testing"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if footer == nil {
		t.Fatal("NewFooter() returned nil")
	}
	if len(footer.bindings) == 0 {
		t.Error("Expected default bindings to be set")
	}
}

func TestFooter_SetWidth(t *testing.T) {
	footer := NewFooter()

	footer.SetWidth(120)

	if footer.width != 120 {
		t.Errorf("Expected width 120, got %d", footer.width)
	}
}

func TestFooter_View_DefaultBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)

	view := stripANSI(footer.View())

	for _, want := range []string{"next pane", "resize", "fold left", "settings", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected default footer to contain %q, got %q", want, view)
		}
	}
}

func TestFooter_View_ResizingBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(true, false, false)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "adjust") {
		t.Errorf("Expected resize bindings, got %q", view)
	}
	if !strings.Contains(view, "cancel") {
		t.Errorf("Expected cancel binding, got %q", view)
	}
	if strings.Contains(view, "quit") {
		t.Error("Default bindings should be hidden during a resize session")
	}
}

func TestFooter_View_ModalBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(false, true, false)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "next field") {
		t.Errorf("Expected modal bindings, got %q", view)
	}
}

func TestFooter_View_FoldedRelabelsFold(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(false, false, true)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "unfold left") {
		t.Errorf("Expected unfold binding when folded, got %q", view)
	}
}

func TestFooter_SetBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetBindings([]KeyBinding{{Key: "x", Desc: "custom"}})

	if !strings.Contains(stripANSI(footer.View()), "custom") {
		t.Error("Expected custom binding to render")
	}
}

package ui

import (
	"regexp"
	"strings"
	"testing"
)

// stripANSI removes ANSI escape codes from a string for testing
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}
	if header.layoutName != "" {
		t.Error("Expected empty layout name initially")
	}
	if header.zoom != 1 {
		t.Errorf("Expected zoom 1 initially, got %v", header.zoom)
	}
}

func TestHeader_SetWidth(t *testing.T) {
	header := NewHeader()

	header.SetWidth(120)

	if header.width != 120 {
		t.Errorf("Expected width 120, got %d", header.width)
	}
}

func TestHeader_View(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)
	header.SetLayoutName("workspace")

	view := stripANSI(header.View())

	if !strings.Contains(view, "gitbutler") {
		t.Error("Expected header to contain the application title")
	}
	if !strings.Contains(view, "workspace") {
		t.Error("Expected header to contain the layout name")
	}
}

func TestHeader_View_StatusFlags(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)
	header.SetZoom(1.5)
	header.SetFolded(true)

	view := stripANSI(header.View())

	if !strings.Contains(view, "zoom 1.5") {
		t.Errorf("Expected zoom in header, got %q", view)
	}
	if !strings.Contains(view, "folded") {
		t.Errorf("Expected folded flag in header, got %q", view)
	}
}

func TestHeader_View_DefaultZoomHidden(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)

	if strings.Contains(stripANSI(header.View()), "zoom") {
		t.Error("Zoom 1 should not be displayed")
	}
}

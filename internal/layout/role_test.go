package layout

import "testing"

func TestRole_String(t *testing.T) {
	tests := []struct {
		role     Role
		expected string
	}{
		{Left, "left"},
		{Preview, "preview"},
		{Middle, "middle"},
		{Right, "right"},
	}

	for _, tt := range tests {
		if got := tt.role.String(); got != tt.expected {
			t.Errorf("%d.String() = %q, want %q", tt.role, got, tt.expected)
		}
	}
}

func TestParseRole_RoundTrip(t *testing.T) {
	for _, role := range Roles() {
		parsed, err := ParseRole(role.String())
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", role.String(), err)
		}
		if parsed != role {
			t.Errorf("ParseRole(%q) = %v, want %v", role.String(), parsed, role)
		}
	}
}

func TestParseRole_Unknown(t *testing.T) {
	if _, err := ParseRole("bottom"); err == nil {
		t.Error("ParseRole should reject unknown role names")
	}
}

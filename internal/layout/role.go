package layout

import "fmt"

// Role identifies one of the four logical panes in the workspace viewport.
// Pane results are addressed by Role rather than by component ownership, so
// rendering code never holds engine state directly.
type Role int

const (
	// Left is the branch/stack panel. Always present, may be folded.
	Left Role = iota
	// Preview is the optional commit-preview panel beside the left panel.
	Preview
	// Middle is the growing content panel. Its width is implicit: it
	// receives whatever space the other panes leave behind.
	Middle
	// Right is the optional details panel.
	Right

	roleCount
)

// Roles returns all roles in dependency order (the order the engine
// resolves widths in).
func Roles() []Role {
	return []Role{Left, Preview, Middle, Right}
}

// String returns the stable lowercase name used in persistence keys.
func (r Role) String() string {
	switch r {
	case Left:
		return "left"
	case Preview:
		return "preview"
	case Middle:
		return "middle"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// ParseRole converts a stable name back into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "left":
		return Left, nil
	case "preview":
		return Preview, nil
	case "middle":
		return Middle, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown pane role %q", s)
	}
}

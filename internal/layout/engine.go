// Package layout computes authoritative pane widths for the workspace
// viewport.
//
// The engine is a pure constraint solver: given the measured container width
// and each active pane's width spec, one Solve call produces every pane width
// for the current frame. Panes give up space in a fixed shrink order (left,
// then preview, then right) because each step's budget is computed from the
// already-clamped widths of the steps before it. The middle pane is never
// sized explicitly; its floor is reserved up front and it grows into whatever
// remains.
package layout

import "github.com/xq773939719/gitbutler/internal/unit"

// Default engine constants, in layout units at zoom 1.
const (
	// DefaultContainerMin is the absolute floor for layout arithmetic.
	// Deliberately below the enforced minimum window size so transient
	// sub-minimum widths (mid-resize) still produce a usable layout.
	DefaultContainerMin unit.Length = 800

	// DefaultMargin is the gap consumed between adjacent panes.
	DefaultMargin unit.Length = 1

	// DefaultFoldedLeftWidth is the fixed width of the folded left panel.
	DefaultFoldedLeftWidth unit.Length = 48
)

// WidthSpec describes one pane's desired and minimum width. Immutable per
// solve pass. Preferred is the configured default or the last user-committed
// width restored from the store; Min is a per-role configuration constant.
type WidthSpec struct {
	Preferred unit.Length
	Min       unit.Length
}

// Inputs is everything one solve pass depends on. A nil Preview or Right
// means that pane is absent and contributes zero to every term.
type Inputs struct {
	ContainerWidth unit.Length
	Left           WidthSpec
	Preview        *WidthSpec
	Right          *WidthSpec
	LeftFolded     bool
}

// Result holds the computed widths for one frame.
type Result struct {
	Left    unit.Length
	Preview unit.Length // zero when the preview pane is absent
	Right   unit.Length // zero when the right pane is absent

	// MiddleMin is the reserved floor for the middle pane. The middle
	// pane's actual width is implicit: it grows into the remaining space.
	MiddleMin unit.Length

	// PreviewBesideLeft reports that the preview panel renders adjacent
	// to the left panel, so their adjoining borders merge.
	PreviewBesideLeft bool
}

// Width returns the computed width for a role. For Middle it returns the
// reserved floor, since the middle pane has no explicit width.
func (r Result) Width(role Role) unit.Length {
	switch role {
	case Left:
		return r.Left
	case Preview:
		return r.Preview
	case Right:
		return r.Right
	case Middle:
		return r.MiddleMin
	default:
		return 0
	}
}

// Engine holds the solver's configuration constants. The zero value is not
// useful; construct with DefaultEngine.
type Engine struct {
	ContainerMin    unit.Length
	Margin          unit.Length
	FoldedLeftWidth unit.Length
}

// DefaultEngine returns an engine with the standard workspace constants.
func DefaultEngine() Engine {
	return Engine{
		ContainerMin:    DefaultContainerMin,
		Margin:          DefaultMargin,
		FoldedLeftWidth: DefaultFoldedLeftWidth,
	}
}

// clampWidth resolves one pane's width against its remaining budget.
// The minimum wins over the budget: a pane squeezed below its minimum holds
// at the minimum (and the frame overflows) rather than collapsing further.
func clampWidth(spec WidthSpec, budget unit.Length) unit.Length {
	return spec.Preferred.Clamp(spec.Min, budget)
}

// floorZero clamps a final width to zero. Over-constrained configuration
// trades overlap for a width that can always be applied to a container.
func floorZero(l unit.Length) unit.Length {
	if l < 0 {
		return 0
	}
	return l
}

// Solve computes every pane width for the current frame. Pure: identical
// inputs always produce identical results, and no caller configuration is
// validated here (clamp, never fail).
func (e Engine) Solve(in Inputs) Result {
	if in.LeftFolded {
		return e.solveFolded(in)
	}

	previewMin := optionalMin(in.Preview)
	rightMin := optionalMin(in.Right)

	// The middle floor is reserved before any pane may grow toward its
	// preference; every later budget subtracts it.
	middleMin := e.ContainerMin - in.Left.Min - previewMin - rightMin - e.Margin

	// Left is first to shrink: its ceiling is whatever remains after
	// reserving every sibling's minimum.
	leftBudget := in.ContainerWidth - previewMin - middleMin - rightMin - e.Margin
	left := clampWidth(in.Left, leftBudget)

	// Preview and right consume the already-clamped upstream widths, so
	// left absorbs the squeeze before preview, and preview before right.
	var preview unit.Length
	if in.Preview != nil {
		previewBudget := in.ContainerWidth - left - middleMin - rightMin - e.Margin
		preview = clampWidth(*in.Preview, previewBudget)
	}

	var right unit.Length
	if in.Right != nil {
		rightBudget := in.ContainerWidth - left - preview - middleMin - e.Margin
		right = clampWidth(*in.Right, rightBudget)
	}

	return Result{
		Left:              floorZero(left),
		Preview:           floorZero(preview),
		Right:             floorZero(right),
		MiddleMin:         floorZero(middleMin),
		PreviewBesideLeft: in.Preview != nil,
	}
}

// solveFolded handles the folded-left display mode. This is a discrete
// branch, not an extreme point of the continuous formulas: the left panel
// renders at a fixed width and drops out of the constraint arithmetic, so
// preview and right budgets are computed against the full container width.
func (e Engine) solveFolded(in Inputs) Result {
	previewMin := optionalMin(in.Preview)
	rightMin := optionalMin(in.Right)

	middleMin := e.ContainerMin - previewMin - rightMin - e.Margin

	var preview unit.Length
	if in.Preview != nil {
		previewBudget := in.ContainerWidth - middleMin - rightMin - e.Margin
		preview = clampWidth(*in.Preview, previewBudget)
	}

	var right unit.Length
	if in.Right != nil {
		rightBudget := in.ContainerWidth - preview - middleMin - e.Margin
		right = clampWidth(*in.Right, rightBudget)
	}

	return Result{
		Left:      floorZero(e.FoldedLeftWidth),
		Preview:   floorZero(preview),
		Right:     floorZero(right),
		MiddleMin: floorZero(middleMin),
		// The folded rail does not share a merged border with the preview.
		PreviewBesideLeft: false,
	}
}

// Maximum returns the largest width a pane may be dragged to in the current
// frame: the budget that remains with every sibling held at its minimum,
// mirroring Solve's dependency order with minima substituted for preferred
// values. Used by the resize controller as the upper drag bound.
func (e Engine) Maximum(in Inputs, role Role) unit.Length {
	previewMin := optionalMin(in.Preview)
	rightMin := optionalMin(in.Right)

	if in.LeftFolded {
		middleMin := e.ContainerMin - previewMin - rightMin - e.Margin
		switch role {
		case Left:
			// The folded panel has a fixed width; it cannot be dragged.
			return e.FoldedLeftWidth
		case Preview:
			return floorZero(in.ContainerWidth - middleMin - rightMin - e.Margin)
		case Right:
			return floorZero(in.ContainerWidth - previewMin - middleMin - e.Margin)
		case Middle:
			return floorZero(in.ContainerWidth - previewMin - rightMin - e.Margin)
		default:
			return 0
		}
	}

	middleMin := e.ContainerMin - in.Left.Min - previewMin - rightMin - e.Margin
	switch role {
	case Left:
		return floorZero(in.ContainerWidth - previewMin - middleMin - rightMin - e.Margin)
	case Preview:
		return floorZero(in.ContainerWidth - in.Left.Min - middleMin - rightMin - e.Margin)
	case Right:
		return floorZero(in.ContainerWidth - in.Left.Min - previewMin - middleMin - e.Margin)
	case Middle:
		return floorZero(in.ContainerWidth - in.Left.Min - previewMin - rightMin - e.Margin)
	default:
		return 0
	}
}

func optionalMin(spec *WidthSpec) unit.Length {
	if spec == nil {
		return 0
	}
	return spec.Min
}

// Package viewport owns the live inputs of the layout engine and re-solves
// the frame whenever one of them changes.
//
// Reactivity is an explicit observer list: every setter re-runs the pure
// solver against the complete current input set and pushes the result to
// registered listeners. Because each recomputation starts from scratch,
// unrelated inputs changing in any order within a tick converge on the same
// result.
package viewport

import (
	"sync"

	"github.com/xq773939719/gitbutler/internal/layout"
	"github.com/xq773939719/gitbutler/internal/logger"
	"github.com/xq773939719/gitbutler/internal/store"
	"github.com/xq773939719/gitbutler/internal/unit"
)

// PaneConfig is the caller-supplied width configuration for one pane, in
// device pixels.
type PaneConfig struct {
	Default float64
	Min     float64
}

// Config describes a named layout instance. Two screens reusing the engine
// under different LayoutNames keep independent width memories.
type Config struct {
	LayoutName string

	// FrameChrome is subtracted from the raw window width before it is
	// usable as container width, accounting for window decorations.
	FrameChrome float64

	// FallbackWidth stands in for the container width until the first
	// real measurement arrives.
	FallbackWidth float64

	Left    PaneConfig
	Preview PaneConfig
	Right   PaneConfig
}

// Listener receives the solved frame after every recomputation.
type Listener func(layout.Result)

// Viewport holds the current engine inputs and the latest solved frame.
// All durable state lives elsewhere: preferred widths in the Store, the
// engine itself stateless.
type Viewport struct {
	mu        sync.Mutex
	engine    layout.Engine
	cfg       Config
	widths    store.Store
	listeners []Listener

	containerPx    float64 // raw measured width, 0 until first measurement
	zoom           unit.Zoom
	previewVisible bool
	rightVisible   bool
	folded         bool

	// Committed preferred widths in device pixels, by role. Restored from
	// the store at construction, updated only via CommitPreferred.
	preferred map[layout.Role]float64

	// Live drag candidates. Present only while a resize session is
	// active; they shadow the committed value without touching it.
	live map[layout.Role]float64

	result layout.Result
}

// New builds a viewport, restoring committed widths from widths. A pane with
// no remembered width starts at its configured default.
func New(engine layout.Engine, cfg Config, widths store.Store) *Viewport {
	v := &Viewport{
		engine:    engine,
		cfg:       cfg,
		widths:    widths,
		zoom:      1,
		preferred: make(map[layout.Role]float64),
		live:      make(map[layout.Role]float64),
	}
	v.restoreLocked()
	v.result = v.engine.Solve(v.inputsLocked())
	return v
}

// restoreLocked loads committed widths from the store. Caller holds the lock
// (or has exclusive access during construction).
func (v *Viewport) restoreLocked() {
	for _, role := range []layout.Role{layout.Left, layout.Preview, layout.Right} {
		cfg := v.paneConfig(role)
		px := cfg.Default
		if remembered, ok := v.widths.Get(store.Key{Layout: v.cfg.LayoutName, Role: role}); ok {
			px = remembered
		}
		v.preferred[role] = px
	}
}

func (v *Viewport) paneConfig(role layout.Role) PaneConfig {
	switch role {
	case layout.Left:
		return v.cfg.Left
	case layout.Preview:
		return v.cfg.Preview
	case layout.Right:
		return v.cfg.Right
	default:
		return PaneConfig{}
	}
}

// Subscribe registers a listener for future recomputations.
func (v *Viewport) Subscribe(l Listener) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, l)
}

// SetContainerWidth delivers a new container measurement in device pixels.
func (v *Viewport) SetContainerWidth(px float64) {
	v.mutate(func() { v.containerPx = px })
}

// SetZoom updates the zoom factor from global settings.
func (v *Viewport) SetZoom(z unit.Zoom) {
	v.mutate(func() { v.zoom = z.Normalize() })
}

// SetPreviewVisible toggles the preview pane's presence.
func (v *Viewport) SetPreviewVisible(visible bool) {
	v.mutate(func() { v.previewVisible = visible })
}

// SetRightVisible toggles the right pane's presence.
func (v *Viewport) SetRightVisible(visible bool) {
	v.mutate(func() { v.rightVisible = visible })
}

// SetFolded switches the left pane's folded display mode.
func (v *Viewport) SetFolded(folded bool) {
	v.mutate(func() { v.folded = folded })
}

// SetPaneConfig replaces a pane's width configuration. Committed preferred
// widths are untouched; only the default and minimum change.
func (v *Viewport) SetPaneConfig(role layout.Role, cfg PaneConfig) {
	v.mutate(func() {
		switch role {
		case layout.Left:
			v.cfg.Left = cfg
		case layout.Preview:
			v.cfg.Preview = cfg
		case layout.Right:
			v.cfg.Right = cfg
		}
	})
}

// SetLivePreferred shadows a pane's preferred width with an in-flight drag
// candidate, in device pixels. The committed value is untouched.
func (v *Viewport) SetLivePreferred(role layout.Role, px float64) {
	v.mutate(func() { v.live[role] = px })
}

// ClearLivePreferred drops the in-flight candidate, reverting the pane to
// its last committed preferred width.
func (v *Viewport) ClearLivePreferred(role layout.Role) {
	v.mutate(func() { delete(v.live, role) })
}

// CommitPreferred records a user-committed preferred width in device pixels
// and drops any live candidate for the pane. Persistence is the resize
// controller's job; the viewport only mirrors the committed value.
func (v *Viewport) CommitPreferred(role layout.Role, px float64) {
	v.mutate(func() {
		v.preferred[role] = px
		delete(v.live, role)
	})
}

// ReloadPreferred re-reads committed widths from the store, picking up
// writes made by another window. Live drag candidates survive the reload.
func (v *Viewport) ReloadPreferred() {
	v.mutate(func() { v.restoreLocked() })
}

// mutate applies a state change, re-solves the frame and notifies listeners.
func (v *Viewport) mutate(change func()) {
	v.mu.Lock()
	change()
	v.result = v.engine.Solve(v.inputsLocked())
	res := v.result
	listeners := make([]Listener, len(v.listeners))
	copy(listeners, v.listeners)
	v.mu.Unlock()

	logger.WithComponent("viewport").Debug("frame solved",
		"layout", v.cfg.LayoutName,
		"left", float64(res.Left),
		"preview", float64(res.Preview),
		"right", float64(res.Right),
		"middleMin", float64(res.MiddleMin),
	)

	for _, l := range listeners {
		l(res)
	}
}

// inputsLocked assembles the engine inputs from current state. Caller holds
// the lock.
func (v *Viewport) inputsLocked() layout.Inputs {
	containerPx := v.containerPx
	if containerPx <= 0 {
		containerPx = v.cfg.FallbackWidth
	}
	containerPx -= v.cfg.FrameChrome

	in := layout.Inputs{
		ContainerWidth: unit.FromPixels(containerPx, v.zoom),
		Left:           v.specLocked(layout.Left),
		LeftFolded:     v.folded,
	}
	if v.previewVisible {
		spec := v.specLocked(layout.Preview)
		in.Preview = &spec
	}
	if v.rightVisible {
		spec := v.specLocked(layout.Right)
		in.Right = &spec
	}
	return in
}

func (v *Viewport) specLocked(role layout.Role) layout.WidthSpec {
	cfg := v.paneConfig(role)
	px := v.preferred[role]
	if livePx, ok := v.live[role]; ok {
		px = livePx
	}
	return layout.WidthSpec{
		Preferred: unit.FromPixels(px, v.zoom),
		Min:       unit.FromPixels(cfg.Min, v.zoom),
	}
}

// Inputs returns a snapshot of the current engine inputs, as used by the
// resize controller to derive drag bounds for the current frame.
func (v *Viewport) Inputs() layout.Inputs {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inputsLocked()
}

// Engine returns the solver configuration this viewport runs.
func (v *Viewport) Engine() layout.Engine {
	return v.engine
}

// LayoutName returns the persistence namespace for this viewport.
func (v *Viewport) LayoutName() string {
	return v.cfg.LayoutName
}

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() unit.Zoom {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.zoom
}

// PreviewVisible reports whether the preview pane is present.
func (v *Viewport) PreviewVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.previewVisible
}

// RightVisible reports whether the right pane is present.
func (v *Viewport) RightVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rightVisible
}

// Folded reports the left pane's folded display mode.
func (v *Viewport) Folded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.folded
}

// Widths returns the latest solved frame.
func (v *Viewport) Widths() layout.Result {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.result
}

// MinWidth returns a pane's configured minimum in layout units.
func (v *Viewport) MinWidth(role layout.Role) unit.Length {
	v.mu.Lock()
	defer v.mu.Unlock()
	return unit.FromPixels(v.paneConfig(role).Min, v.zoom)
}

// Preferred returns a pane's committed preferred width in device pixels.
func (v *Viewport) Preferred(role layout.Role) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.preferred[role]
}

// Package resize manages border-drag interactions on the workspace panes.
//
// While a drag is active the candidate width shadows the pane's preferred
// width, so every frame re-solves with live feedback. Only an explicit End
// commits the width to the persisted store; an abandoned session reverts to
// the last committed preference.
package resize

import (
	"sync"

	"github.com/xq773939719/gitbutler/internal/errors"
	"github.com/xq773939719/gitbutler/internal/layout"
	"github.com/xq773939719/gitbutler/internal/logger"
	"github.com/xq773939719/gitbutler/internal/store"
	"github.com/xq773939719/gitbutler/internal/unit"
	"github.com/xq773939719/gitbutler/internal/viewport"
)

// Session is the transient state of one active drag. Widths are device
// pixels, matching what the pointer layer reports.
type Session struct {
	Role    layout.Role
	Start   float64
	Current float64
}

// Controller feeds drag candidates into a viewport and commits the final
// width on release. One session per pane; drags on different panes are
// independent.
type Controller struct {
	mu       sync.Mutex
	vp       *viewport.Viewport
	widths   store.Store
	sessions map[layout.Role]*Session
}

// NewController creates a controller for vp, committing into widths.
func NewController(vp *viewport.Viewport, widths store.Store) *Controller {
	return &Controller{
		vp:       vp,
		widths:   widths,
		sessions: make(map[layout.Role]*Session),
	}
}

// Begin starts a drag session on a pane at its current width in device
// pixels. The middle pane grows implicitly and cannot be dragged, and the
// folded left pane has a fixed width.
func (c *Controller) Begin(role layout.Role, startPx float64) error {
	if role == layout.Middle {
		return errors.E(errors.Op("resize.Begin"), errors.KindInvalid, "middle pane is not resizable")
	}
	if role == layout.Left && c.vp.Folded() {
		return errors.E(errors.Op("resize.Begin"), errors.KindInvalid, "folded left pane has a fixed width")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, active := c.sessions[role]; active {
		return errors.E(errors.Op("resize.Begin"), errors.KindInvalid, "resize session already active for "+role.String()+" pane")
	}
	c.sessions[role] = &Session{Role: role, Start: startPx, Current: startPx}
	logger.WithComponent("resize").Debug("drag started", "pane", role.String(), "start", startPx)
	return nil
}

// Update feeds a candidate width in device pixels into the active session.
// The candidate is clamped to the pane's [minimum, maximum] for the current
// frame before it becomes the live preferred width.
func (c *Controller) Update(role layout.Role, candidatePx float64) error {
	c.mu.Lock()
	sess, active := c.sessions[role]
	c.mu.Unlock()
	if !active {
		return errors.ResizeNoSession(role.String())
	}

	zoom := c.vp.Zoom()
	max := c.vp.Engine().Maximum(c.vp.Inputs(), role)
	min := c.vp.MinWidth(role)
	clamped := unit.FromPixels(candidatePx, zoom).Clamp(min, max)
	clampedPx := clamped.Pixels(zoom)

	c.mu.Lock()
	sess.Current = clampedPx
	c.mu.Unlock()

	c.vp.SetLivePreferred(role, clampedPx)
	return nil
}

// End commits the session's last candidate as the pane's preferred width,
// writing it through to the store keyed by layout name and pane role.
func (c *Controller) End(role layout.Role) error {
	c.mu.Lock()
	sess, active := c.sessions[role]
	delete(c.sessions, role)
	c.mu.Unlock()
	if !active {
		return errors.ResizeNoSession(role.String())
	}

	key := store.Key{Layout: c.vp.LayoutName(), Role: role}
	if err := c.widths.Set(key, sess.Current); err != nil {
		// The in-memory preference still updates; only persistence
		// failed. Report it so the caller can surface the problem.
		c.vp.CommitPreferred(role, sess.Current)
		return err
	}
	c.vp.CommitPreferred(role, sess.Current)
	logger.WithComponent("resize").Debug("drag committed", "pane", role.String(), "width", sess.Current)
	return nil
}

// Cancel abandons the session without committing. The last committed
// preferred width, not the in-flight candidate, remains authoritative.
func (c *Controller) Cancel(role layout.Role) {
	c.mu.Lock()
	_, active := c.sessions[role]
	delete(c.sessions, role)
	c.mu.Unlock()
	if !active {
		return
	}

	c.vp.ClearLivePreferred(role)
	logger.WithComponent("resize").Debug("drag cancelled", "pane", role.String())
}

// Active returns the session for a pane, or nil when no drag is running.
func (c *Controller) Active(role layout.Role) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if sess, ok := c.sessions[role]; ok {
		copied := *sess
		return &copied
	}
	return nil
}

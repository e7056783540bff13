// Package focus assigns panes a place in a hierarchical focus tree so
// keyboard and command focus can move between them.
//
// The registry is an external collaborator from the layout engine's point of
// view: the engine never reads focus state, and panes register themselves
// purely to become reachable by navigation.
package focus

import (
	"sync"

	"github.com/google/uuid"

	"github.com/xq773939719/gitbutler/internal/errors"
)

// RegionID is an opaque token identifying a registered focus region.
type RegionID string

// Registry tracks focus regions as a tree rooted at the viewport region.
// Children keep registration order, which is the traversal order for
// Next/Prev navigation.
type Registry struct {
	mu      sync.RWMutex
	regions map[RegionID]*region
	root    RegionID
}

type region struct {
	id       RegionID
	name     string
	parent   RegionID
	children []RegionID
}

// NewRegistry creates a registry with a root region covering the viewport.
func NewRegistry(rootName string) *Registry {
	r := &Registry{regions: make(map[RegionID]*region)}
	id := RegionID(uuid.NewString())
	r.regions[id] = &region{id: id, name: rootName}
	r.root = id
	return r
}

// Root returns the viewport's root region.
func (r *Registry) Root() RegionID {
	return r.root
}

// Register adds a region under parent and returns its token. An empty parent
// registers under the root.
func (r *Registry) Register(name string, parent RegionID) (RegionID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if parent == "" {
		parent = r.root
	}
	p, ok := r.regions[parent]
	if !ok {
		return "", errors.RegionNotFound(string(parent))
	}

	id := RegionID(uuid.NewString())
	r.regions[id] = &region{id: id, name: name, parent: parent}
	p.children = append(p.children, id)
	return id, nil
}

// Unregister removes a region and its subtree.
func (r *Registry) Unregister(id RegionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.regions[id]
	if !ok {
		return errors.RegionNotFound(string(id))
	}
	if id == r.root {
		return errors.E(errors.Op("focus.Unregister"), errors.KindInvalid, "cannot unregister the root region")
	}

	r.removeSubtree(id)

	p := r.regions[reg.parent]
	for i, c := range p.children {
		if c == id {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	return nil
}

// removeSubtree deletes a region and its descendants. Caller holds the lock.
func (r *Registry) removeSubtree(id RegionID) {
	reg := r.regions[id]
	for _, c := range reg.children {
		r.removeSubtree(c)
	}
	delete(r.regions, id)
}

// Name returns the registered name of a region.
func (r *Registry) Name(id RegionID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.regions[id]
	if !ok {
		return "", errors.RegionNotFound(string(id))
	}
	return reg.name, nil
}

// Path returns the region names from the root down to id.
func (r *Registry) Path(id RegionID) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.regions[id]
	if !ok {
		return nil, errors.RegionNotFound(string(id))
	}

	var names []string
	for {
		names = append([]string{reg.name}, names...)
		if reg.id == r.root {
			return names, nil
		}
		reg = r.regions[reg.parent]
	}
}

// Next returns the sibling registered after id, wrapping around. A region
// with no siblings returns itself.
func (r *Registry) Next(id RegionID) (RegionID, error) {
	return r.step(id, 1)
}

// Prev returns the sibling registered before id, wrapping around.
func (r *Registry) Prev(id RegionID) (RegionID, error) {
	return r.step(id, -1)
}

func (r *Registry) step(id RegionID, delta int) (RegionID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.regions[id]
	if !ok {
		return "", errors.RegionNotFound(string(id))
	}
	if reg.id == r.root {
		return id, nil
	}

	siblings := r.regions[reg.parent].children
	for i, c := range siblings {
		if c == id {
			n := len(siblings)
			return siblings[(i+delta+n)%n], nil
		}
	}
	return "", errors.RegionNotFound(string(id))
}

package store

import (
	"fmt"
	"strings"

	"github.com/xq773939719/gitbutler/internal/layout"
)

// keyNamespace prefixes every serialized key so stored widths never collide
// with other persisted values sharing the same backend.
const keyNamespace = "gitbutler"

// Key identifies one remembered pane width. Two screens reusing the layout
// engine under different layout names keep independent memories.
type Key struct {
	Layout string
	Role   layout.Role
}

// String returns the stable serialized form "<namespace>-<layout>-<role>".
func (k Key) String() string {
	return fmt.Sprintf("%s-%s-%s", keyNamespace, k.Layout, k.Role)
}

// ParseKey inverts String. Layout names containing '-' are supported because
// the role is always the final segment.
func ParseKey(s string) (Key, error) {
	rest, ok := strings.CutPrefix(s, keyNamespace+"-")
	if !ok {
		return Key{}, fmt.Errorf("key %q lacks the %q namespace", s, keyNamespace)
	}
	i := strings.LastIndex(rest, "-")
	if i <= 0 {
		return Key{}, fmt.Errorf("key %q lacks a layout name or role", s)
	}
	role, err := layout.ParseRole(rest[i+1:])
	if err != nil {
		return Key{}, fmt.Errorf("key %q: %w", s, err)
	}
	return Key{Layout: rest[:i], Role: role}, nil
}

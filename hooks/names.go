package hooks

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mindriot101/hookman/config"
	"github.com/mindriot101/hookman/util/sanitize"
)

// NameResolver assigns the name each hook's script block is labelled with.
//
// Named hooks use their sanitized name. Hooks without a name, or whose name
// is only whitespace, are anonymous. Anonymous hooks are numbered from a
// counter owned by the resolver, so one resolver must be shared by every
// hook in an install run and must not be reused across runs. Hooks whose
// names sanitize to the same string keep the same name.
type NameResolver struct {
	next   int
	random bool
}

// NewNameResolver returns a resolver that names anonymous hooks hook_0,
// hook_1, ... in the order they are resolved.
func NewNameResolver() *NameResolver {
	return &NameResolver{}
}

// NewRandomNameResolver returns a resolver that gives anonymous hooks a
// random name instead of a numbered one.
func NewRandomNameResolver() *NameResolver {
	return &NameResolver{random: true}
}

// Resolve returns the name for hook.
func (r *NameResolver) Resolve(hook config.Hook) string {
	if name := sanitize.ForHookName(hook.Name); name != "" {
		return name
	}
	if r.random {
		return "hook_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	name := fmt.Sprintf("hook_%d", r.next)
	r.next++
	return name
}

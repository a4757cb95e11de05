package hooks

import (
	"github.com/mindriot101/hookman/config"
)

// GitFilesExpr is the shell expression appended to commands of hooks that
// ask for the tracked files.
const GitFilesExpr = "$(git ls-files)"

// HookContext is a hook ready to be rendered: its name is resolved and its
// command line is final.
type HookContext struct {
	Name string
	// OriginalName is the name as configured, empty for anonymous hooks.
	// It only appears in comments.
	OriginalName string
	Command      string
	Stage        config.Stage
	Background   bool
}

// NewHookContext resolves the name and command line for one hook.
func NewHookContext(hook config.Hook, resolver *NameResolver) HookContext {
	command := hook.Command
	if hook.PassGitFiles {
		command += " " + GitFilesExpr
	}
	return HookContext{
		Name:         resolver.Resolve(hook),
		OriginalName: hook.Name,
		Command:      command,
		Stage:        hook.Stage,
		Background:   hook.Background,
	}
}

// ResolveContexts builds a HookContext for each hook in declaration order,
// drawing anonymous names from resolver.
func ResolveContexts(hooks []config.Hook, resolver *NameResolver) []HookContext {
	contexts := make([]HookContext, 0, len(hooks))
	for _, hook := range hooks {
		contexts = append(contexts, NewHookContext(hook, resolver))
	}
	return contexts
}

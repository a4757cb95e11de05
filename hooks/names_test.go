package hooks

import (
	"regexp"
	"testing"

	"github.com/mindriot101/hookman/config"
	"github.com/stretchr/testify/assert"
)

func TestNameResolverNumbersAnonymousHooks(t *testing.T) {
	resolver := NewNameResolver()

	names := []string{
		resolver.Resolve(config.Hook{Command: "a"}),
		resolver.Resolve(config.Hook{Name: "Lint Code", Command: "b"}),
		resolver.Resolve(config.Hook{Command: "c", Stage: config.PrePush}),
		resolver.Resolve(config.Hook{Name: "Test", Command: "d"}),
		resolver.Resolve(config.Hook{Command: "e", Stage: config.PostCommit}),
	}

	assert.Equal(t, []string{"hook_0", "lint_code", "hook_1", "test", "hook_2"}, names)
}

func TestNameResolverIsRunScoped(t *testing.T) {
	hooks := []config.Hook{{Command: "a"}, {Command: "b"}}

	first := ResolveContexts(hooks, NewNameResolver())
	second := ResolveContexts(hooks, NewNameResolver())

	assert.Equal(t, first, second)
	assert.Equal(t, "hook_0", second[0].Name)
	assert.Equal(t, "hook_1", second[1].Name)
}

func TestNameResolverKeepsDuplicateNames(t *testing.T) {
	resolver := NewNameResolver()

	assert.Equal(t, "run_tests", resolver.Resolve(config.Hook{Name: "Run Tests"}))
	assert.Equal(t, "run_tests", resolver.Resolve(config.Hook{Name: "run   tests"}))
}

func TestNameResolverTreatsBlankNamesAsAnonymous(t *testing.T) {
	resolver := NewNameResolver()

	assert.Equal(t, "hook_0", resolver.Resolve(config.Hook{Name: "   ", Command: "a"}))
	assert.Equal(t, "lint", resolver.Resolve(config.Hook{Name: " Lint\t", Command: "b"}))
	assert.Equal(t, "hook_1", resolver.Resolve(config.Hook{Name: "\u00a0", Command: "c"}))
}

func TestRandomNameResolver(t *testing.T) {
	resolver := NewRandomNameResolver()
	pattern := regexp.MustCompile(`^hook_[0-9a-f]{32}$`)

	first := resolver.Resolve(config.Hook{Command: "a"})
	second := resolver.Resolve(config.Hook{Command: "b"})

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
	assert.Equal(t, "lint", resolver.Resolve(config.Hook{Name: "Lint"}))
}

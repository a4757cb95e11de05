package hooks

import (
	"github.com/mindriot101/hookman/config"
)

// groupBy partitions items by stage, keeping their relative order. Stages
// without items have no entry.
func groupBy[T any](items []T, stageOf func(T) config.Stage) map[config.Stage][]T {
	groups := make(map[config.Stage][]T)
	for _, item := range items {
		stage := stageOf(item)
		groups[stage] = append(groups[stage], item)
	}
	return groups
}

// GroupByStage maps each stage used by cfg to its hooks in declaration order.
func GroupByStage(cfg config.Config) map[config.Stage][]config.Hook {
	return groupBy(cfg.Hooks, func(h config.Hook) config.Stage { return h.Stage })
}

// GroupContexts is GroupByStage for resolved hooks.
func GroupContexts(contexts []HookContext) map[config.Stage][]HookContext {
	return groupBy(contexts, func(c HookContext) config.Stage { return c.Stage })
}

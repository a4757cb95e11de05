package config

// Merge combines the local configuration with the user-global one.
//
// Local hooks keep their order and come first, followed by the global
// hooks in their own order. Neither input is modified; the result carries
// the local path. A nil global returns a copy of local.
func Merge(local, global *ConfigLocation) *ConfigLocation {
	merged := &ConfigLocation{}
	if local != nil {
		merged.Path = local.Path
	}

	var hooks []Hook
	if local != nil {
		hooks = append(hooks, local.Config.Hooks...)
	}
	if global != nil {
		hooks = append(hooks, global.Config.Hooks...)
	}
	if hooks == nil {
		hooks = []Hook{}
	}
	merged.Config.Hooks = hooks
	return merged
}

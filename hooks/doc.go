// Package hooks turns a hookman configuration into git hook scripts.
//
// An install run resolves a name for every hook, groups the hooks by stage,
// renders one shell script per stage and writes it into the repository's
// hook directory.
package hooks

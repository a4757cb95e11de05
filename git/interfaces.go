package git

import "context"

// RepositoryProvider locates the parts of a git repository hookman writes to.
type RepositoryProvider interface {
	// GitDir returns the absolute path of the repository's git directory.
	GitDir(ctx context.Context, dir string) (string, error)
	// HooksDir returns the absolute path of the directory git runs hooks from.
	HooksDir(ctx context.Context, dir string) (string, error)
}

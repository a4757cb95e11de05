package hooks

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mindriot101/hookman/config"
	"github.com/mindriot101/hookman/errors"
	"github.com/mindriot101/hookman/git"
)

// UninstallResult lists the stage scripts an uninstall removed and the ones
// it left alone because hookman did not write them.
type UninstallResult struct {
	HooksDir string
	Removed  []string
	Skipped  []string
	DryRun   bool
}

// Uninstall removes the stage scripts hookman generated. Scripts without
// the hookman marker are left in place.
func (i *Installer) Uninstall(ctx context.Context, opts Options) (*UninstallResult, error) {
	hooksDir, err := i.repo.HooksDir(ctx, opts.Dir)
	if err != nil {
		return nil, err
	}

	result := &UninstallResult{HooksDir: hooksDir, DryRun: opts.DryRun}
	for _, stage := range config.Stages() {
		hookPath := filepath.Join(hooksDir, stage.FileName())
		info, err := os.Lstat(hookPath)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return result, errors.ClearFailure(hookPath, err)
		}

		if !info.Mode().IsRegular() || !git.IsManagedHook(hookPath) {
			i.logger.WithField("path", hookPath).Debug("Leaving hook not written by hookman")
			result.Skipped = append(result.Skipped, hookPath)
			continue
		}

		if opts.DryRun {
			fmt.Fprintf(i.out, "would remove %s\n", hookPath)
		} else if err := os.Remove(hookPath); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return result, fmt.Errorf("remove %s hook: %w", stage, errors.ClearFailure(hookPath, err))
		}
		result.Removed = append(result.Removed, hookPath)
	}
	return result, nil
}

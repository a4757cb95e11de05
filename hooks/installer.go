package hooks

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mindriot101/hookman/config"
	"github.com/mindriot101/hookman/errors"
	"github.com/mindriot101/hookman/git"
	"github.com/moby/patternmatcher"
	"github.com/sirupsen/logrus"
)

// scriptMode lets everyone read and execute the script; only the owner may write it.
const scriptMode fs.FileMode = 0755

// Options control a single install or uninstall run.
type Options struct {
	// Dir is where the repository is looked up from. Empty means the
	// current working directory.
	Dir string
	// DryRun prints what would be written or removed instead of touching
	// the hook directory.
	DryRun bool
	// Force overwrites existing hook scripts.
	Force bool
	// NoRemove leaves existing files in the hook directory alone.
	NoRemove bool
	// Keep lists patterns of hook directory files that are never removed.
	Keep []string
	// RandomNames names anonymous hooks randomly instead of numbering them.
	RandomNames bool
}

// InstallResult describes what an install run did, or would have done in a
// dry run.
type InstallResult struct {
	HooksDir string
	Written  []string
	Removed  []string
	DryRun   bool
}

// Installer writes hook scripts for a configuration into a repository.
type Installer struct {
	repo   git.RepositoryProvider
	out    io.Writer
	logger logrus.FieldLogger
}

// NewInstaller creates an installer. Dry-run output goes to out.
func NewInstaller(repo git.RepositoryProvider, out io.Writer, logger logrus.FieldLogger) *Installer {
	if repo == nil {
		repo = git.NewCLIRepository()
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Installer{repo: repo, out: out, logger: logger}
}

// Install locates the hook directory, clears it unless told not to, and
// writes one script for every stage cfg uses.
//
// Runs are not transactional: if a later stage fails, scripts already
// written stay in place.
func (i *Installer) Install(ctx context.Context, cfg config.Config, opts Options) (*InstallResult, error) {
	keep, err := compileKeep(opts.Keep)
	if err != nil {
		return nil, err
	}

	hooksDir, err := i.repo.HooksDir(ctx, opts.Dir)
	if err != nil {
		return nil, err
	}
	i.logger.WithField("hooks_dir", hooksDir).Debug("Located hook directory")

	result := &InstallResult{HooksDir: hooksDir, DryRun: opts.DryRun}

	if !opts.NoRemove {
		removed, err := i.clearExisting(hooksDir, keep, opts.DryRun)
		if err != nil {
			return nil, err
		}
		result.Removed = removed
	}

	var resolver *NameResolver
	if opts.RandomNames {
		resolver = NewRandomNameResolver()
	} else {
		resolver = NewNameResolver()
	}
	groups := GroupContexts(ResolveContexts(cfg.Hooks, resolver))

	for _, stage := range config.Stages() {
		stageHooks, ok := groups[stage]
		if !ok {
			continue
		}
		path, err := i.installStage(hooksDir, stage, stageHooks, opts)
		if err != nil {
			return result, fmt.Errorf("generate hook for stage %s: %w", stage, err)
		}
		result.Written = append(result.Written, path)
	}

	return result, nil
}

func (i *Installer) installStage(hooksDir string, stage config.Stage, stageHooks []HookContext, opts Options) (string, error) {
	contents, err := Render(stage, stageHooks)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to render hook script")
	}

	path := filepath.Join(hooksDir, stage.FileName())
	if opts.DryRun {
		fmt.Fprintf(i.out, "would install %s script:\n%s", stage, contents)
		return path, nil
	}

	if err := writeScript(path, contents, opts.Force); err != nil {
		return "", err
	}
	i.logger.WithFields(logrus.Fields{
		"stage": stage.String(),
		"path":  path,
		"hooks": len(stageHooks),
	}).Debug("Wrote hook script")
	return path, nil
}

// clearExisting removes the regular files directly inside hooksDir, except
// those matching keep. A missing directory has nothing to clear. In a dry
// run the files are reported and left in place.
func (i *Installer) clearExisting(hooksDir string, keep *patternmatcher.PatternMatcher, dryRun bool) ([]string, error) {
	entries, err := os.ReadDir(hooksDir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			i.logger.WithField("hooks_dir", hooksDir).Debug("Hook directory does not exist, nothing to clear")
			return nil, nil
		}
		return nil, errors.ClearFailure(hooksDir, err)
	}

	var removed []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(hooksDir, entry.Name())
		if keep != nil {
			matched, err := keep.MatchesOrParentMatches(entry.Name())
			if err != nil {
				return removed, errors.ClearFailure(path, err)
			}
			if matched {
				i.logger.WithField("path", path).Debug("Keeping file")
				continue
			}
		}

		if dryRun {
			fmt.Fprintf(i.out, "would remove %s\n", path)
		} else {
			if err := os.Remove(path); err != nil {
				return removed, errors.ClearFailure(path, err)
			}
			i.logger.WithField("path", path).Debug("Removed file")
		}
		removed = append(removed, path)
	}
	return removed, nil
}

// writeScript creates or truncates path, refusing to replace an existing
// file unless force is set.
func writeScript(path, contents string, force bool) error {
	if _, err := os.Lstat(path); err == nil {
		if !force {
			return errors.DestinationExists(path)
		}
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return errors.WriteFailure(path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WriteFailure(path, err)
	}

	// #nosec G302 G304 - git hooks need to be executable
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, scriptMode)
	if err != nil {
		return errors.WriteFailure(path, err)
	}
	if _, err := io.WriteString(f, contents); err != nil {
		f.Close()
		return errors.WriteFailure(path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WriteFailure(path, err)
	}
	// OpenFile only applies the mode to new files, and then masked by umask.
	if err := os.Chmod(path, scriptMode); err != nil {
		return errors.WriteFailure(path, err)
	}
	return nil
}

func compileKeep(patterns []string) (*patternmatcher.PatternMatcher, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	for _, p := range patterns {
		if _, err := patternmatcher.New([]string{p}); err != nil {
			return nil, errors.InvalidArgument("--keep", p, err)
		}
	}
	pm, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, errors.InvalidArgument("--keep", fmt.Sprint(patterns), err)
	}
	return pm, nil
}

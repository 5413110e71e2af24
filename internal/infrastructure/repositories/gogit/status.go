package gogit

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

const gitDirName = ".git"

// Status snapshots the working copy: every changed path reported by go-git plus every
// ignored path found by walking the worktree.
func (r *GitRepository) Status() ([]entities.FileStatusEntry, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrIO, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrIO, err)
	}

	entries := make(map[string]*entities.FileStatusEntry, len(status))
	for file, fileStatus := range status {
		entries[file] = &entities.FileStatusEntry{Path: file, Flags: statusFlags(fileStatus)}
	}

	ignored, err := r.ignoredPaths(worktree)
	if err != nil {
		return nil, err
	}
	for _, file := range ignored {
		if entry, ok := entries[file]; ok {
			entry.Flags.Ignored = true
			continue
		}
		entries[file] = &entities.FileStatusEntry{Path: file, Flags: entities.FileStatusFlags{Ignored: true}}
	}

	snapshot := make([]entities.FileStatusEntry, 0, len(entries))
	for _, entry := range entries {
		snapshot = append(snapshot, *entry)
	}
	slices.SortFunc(snapshot, func(a, b entities.FileStatusEntry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return snapshot, nil
}

// statusFlags maps go-git status codes to the snapshot flags.
func statusFlags(fileStatus *git.FileStatus) entities.FileStatusFlags {
	staging, worktree := fileStatus.Staging, fileStatus.Worktree
	return entities.FileStatusFlags{
		NewInWorktree:      worktree == git.Untracked,
		ModifiedInWorktree: worktree == git.Modified || worktree == git.Deleted || worktree == git.Renamed || worktree == git.Copied,
		NewInIndex:         staging == git.Added || staging == git.Copied,
		ModifiedInIndex:    staging == git.Modified || staging == git.Deleted || staging == git.Renamed,
		Conflicted:         staging == git.UpdatedButUnmerged || worktree == git.UpdatedButUnmerged,
	}
}

// ignoredPaths walks the worktree and returns the paths matched by the ignore rules.
// A matched directory is reported once, with a trailing slash, unless it holds
// tracked files. Tracked files are never reported.
func (r *GitRepository) ignoredPaths(worktree *git.Worktree) ([]string, error) {
	matcher, err := r.ignoreMatcher(worktree)
	if err != nil {
		return nil, err
	}
	tracked, trackedDirs, err := r.trackedPaths()
	if err != nil {
		return nil, err
	}

	var ignored []string
	walkErr := filepath.WalkDir(r.path, func(current string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				logger.Debugf("[%s] skipping unreadable %s", r.path, current)
				return nil
			}
			return err
		}

		rel, relErr := filepath.Rel(r.path, current)
		if relErr != nil || rel == "." {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() && entry.Name() == gitDirName {
			return filepath.SkipDir
		}
		if tracked[rel] || (entry.IsDir() && trackedDirs[rel]) {
			return nil
		}
		if !matcher.Match(strings.Split(rel, "/"), entry.IsDir()) {
			return nil
		}

		if entry.IsDir() {
			ignored = append(ignored, rel+"/")
			return filepath.SkipDir
		}
		ignored = append(ignored, rel)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("%w: walking %s: %w", entities.ErrIO, r.path, walkErr)
	}
	return ignored, nil
}

// ignoreMatcher combines system, global and repository ignore rules. Later patterns
// take precedence, so the repository's own rules come last.
func (r *GitRepository) ignoreMatcher(worktree *git.Worktree) (gitignore.Matcher, error) {
	var patterns []gitignore.Pattern

	root := osfs.New("/")
	if system, err := gitignore.LoadSystemPatterns(root); err == nil {
		patterns = append(patterns, system...)
	}
	if global, err := gitignore.LoadGlobalPatterns(root); err == nil {
		patterns = append(patterns, global...)
	}

	local, err := gitignore.ReadPatterns(worktree.Filesystem, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: reading ignore rules: %w", entities.ErrIO, err)
	}
	patterns = append(patterns, local...)
	patterns = append(patterns, worktree.Excludes...)

	return gitignore.NewMatcher(patterns), nil
}

// trackedPaths returns the index entries and every folder containing one.
func (r *GitRepository) trackedPaths() (map[string]bool, map[string]bool, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading index: %w", entities.ErrIO, err)
	}

	files := make(map[string]bool, len(idx.Entries))
	dirs := make(map[string]bool)
	for _, entry := range idx.Entries {
		files[entry.Name] = true
		for dir := path.Dir(entry.Name); dir != "." && !dirs[dir]; dir = path.Dir(dir) {
			dirs[dir] = true
		}
	}
	return files, dirs, nil
}

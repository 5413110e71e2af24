package entities

import (
	"slices"
	"strings"
)

// FileStatusFlags are the raw per-file status bits of one snapshot entry.
type FileStatusFlags struct {
	NewInWorktree      bool
	ModifiedInWorktree bool
	NewInIndex         bool
	ModifiedInIndex    bool
	Conflicted         bool
	Ignored            bool
}

// FileStatusEntry is one path of a status snapshot.
type FileStatusEntry struct {
	Path  string
	Flags FileStatusFlags
}

// StatusCategory is the single category a FileStatusEntry falls into.
type StatusCategory int

const (
	CategoryClean StatusCategory = iota
	CategoryIgnored
	CategoryUnsafeTracked
)

func (c StatusCategory) String() string {
	switch c {
	case CategoryClean:
		return "clean"
	case CategoryIgnored:
		return "ignored"
	case CategoryUnsafeTracked:
		return "unsafe"
	default:
		return "unknown"
	}
}

// tracksChanges reports whether the entry carries a change that only exists for tracked content.
func (f FileStatusFlags) tracksChanges() bool {
	return f.ModifiedInWorktree || f.NewInIndex || f.ModifiedInIndex || f.Conflicted
}

// ClassifyFile returns the category of a single entry.
// An ignored path can still be tracked, so an ignored entry that also carries a
// tracked change (worktree modification, staged change or conflict) is unsafe.
func ClassifyFile(entry FileStatusEntry) StatusCategory {
	flags := entry.Flags
	if flags.Ignored {
		if flags.tracksChanges() {
			return CategoryUnsafeTracked
		}
		return CategoryIgnored
	}
	if flags.NewInWorktree || flags.tracksChanges() {
		return CategoryUnsafeTracked
	}
	return CategoryClean
}

// FileClassification partitions a snapshot into three disjoint sets of paths.
type FileClassification struct {
	Unsafe  []string
	Ignored []string
	Clean   []string
}

// FilesClean is true when no unsafe entry was found. Ignored files do not matter here.
func (c FileClassification) FilesClean() bool {
	return len(c.Unsafe) == 0
}

// ClassifyFiles partitions the whole snapshot. Every entry lands in exactly one set.
func ClassifyFiles(entries []FileStatusEntry) FileClassification {
	result := FileClassification{
		Unsafe:  []string{},
		Ignored: []string{},
		Clean:   []string{},
	}
	for _, entry := range entries {
		switch ClassifyFile(entry) {
		case CategoryUnsafeTracked:
			result.Unsafe = append(result.Unsafe, entry.Path)
		case CategoryIgnored:
			result.Ignored = append(result.Ignored, entry.Path)
		case CategoryClean:
			result.Clean = append(result.Clean, entry.Path)
		}
	}
	slices.SortFunc(result.Unsafe, strings.Compare)
	slices.SortFunc(result.Ignored, strings.Compare)
	slices.SortFunc(result.Clean, strings.Compare)
	return result
}

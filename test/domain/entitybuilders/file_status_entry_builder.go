//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repodrop/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// FileStatusEntryBuilder helps create file status entries with a fluent interface.
type FileStatusEntryBuilder struct {
	*testkit.BaseBuilder
	path  string
	flags entities.FileStatusFlags
}

// NewFileStatusEntryBuilder creates a builder for an unchanged file.
func NewFileStatusEntryBuilder() *FileStatusEntryBuilder {
	return &FileStatusEntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "README.md",
	}
}

// WithPath sets the path relative to the worktree root.
func (b *FileStatusEntryBuilder) WithPath(path string) *FileStatusEntryBuilder {
	b.path = path
	return b
}

// Untracked marks the file as new in the worktree.
func (b *FileStatusEntryBuilder) Untracked() *FileStatusEntryBuilder {
	b.flags.NewInWorktree = true
	return b
}

// Modified marks the file as modified in the worktree.
func (b *FileStatusEntryBuilder) Modified() *FileStatusEntryBuilder {
	b.flags.ModifiedInWorktree = true
	return b
}

// Staged marks the file as added to the index.
func (b *FileStatusEntryBuilder) Staged() *FileStatusEntryBuilder {
	b.flags.NewInIndex = true
	return b
}

// StagedModification marks the file as modified in the index.
func (b *FileStatusEntryBuilder) StagedModification() *FileStatusEntryBuilder {
	b.flags.ModifiedInIndex = true
	return b
}

// Conflicted marks the file as conflicted.
func (b *FileStatusEntryBuilder) Conflicted() *FileStatusEntryBuilder {
	b.flags.Conflicted = true
	return b
}

// Ignored marks the file as ignored.
func (b *FileStatusEntryBuilder) Ignored() *FileStatusEntryBuilder {
	b.flags.Ignored = true
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *FileStatusEntryBuilder) Build() interface{} {
	return b.BuildEntry()
}

// BuildEntry creates the entry with a concrete return type.
func (b *FileStatusEntryBuilder) BuildEntry() entities.FileStatusEntry {
	return entities.FileStatusEntry{Path: b.path, Flags: b.flags}
}

// Reset clears the builder state, allowing it to be reused.
func (b *FileStatusEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "README.md"
	b.flags = entities.FileStatusFlags{}
	return b
}

// Clone creates a deep copy of the FileStatusEntryBuilder.
func (b *FileStatusEntryBuilder) Clone() testkit.Builder {
	return &FileStatusEntryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		flags:       b.flags,
	}
}

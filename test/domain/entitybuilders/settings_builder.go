//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repodrop/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	concurrency     int
	previewLimit    int
	preferencesFile string
	offline         bool
	exclude         []string
	remediation     entities.RemediationConfig
}

// NewSettingsBuilder creates a settings builder with sensible test defaults.
func NewSettingsBuilder() *SettingsBuilder {
	b := &SettingsBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.Reset()
	return b
}

// WithConcurrency sets the evaluation pool size.
func (b *SettingsBuilder) WithConcurrency(concurrency int) *SettingsBuilder {
	b.concurrency = concurrency
	return b
}

// WithPreviewLimit sets the number of files listed per section.
func (b *SettingsBuilder) WithPreviewLimit(limit int) *SettingsBuilder {
	b.previewLimit = limit
	return b
}

// WithPreferencesFile sets the preference book location.
func (b *SettingsBuilder) WithPreferencesFile(path string) *SettingsBuilder {
	b.preferencesFile = path
	return b
}

// WithOffline disables network access.
func (b *SettingsBuilder) WithOffline() *SettingsBuilder {
	b.offline = true
	return b
}

// WithExclude sets the exclude globs.
func (b *SettingsBuilder) WithExclude(patterns ...string) *SettingsBuilder {
	b.exclude = patterns
	return b
}

// WithRemediation sets the remediation tool.
func (b *SettingsBuilder) WithRemediation(command string, required bool, args ...string) *SettingsBuilder {
	b.remediation = entities.RemediationConfig{Command: command, Args: args, Required: &required}
	return b
}

// WithoutRemediation disables the remediation tool.
func (b *SettingsBuilder) WithoutRemediation() *SettingsBuilder {
	notRequired := false
	b.remediation = entities.RemediationConfig{Args: []string{}, Required: &notRequired}
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		Concurrency:     b.concurrency,
		PreviewLimit:    b.previewLimit,
		PreferencesFile: b.preferencesFile,
		Offline:         b.offline,
		Exclude:         append([]string(nil), b.exclude...),
		Remediation:     b.remediation,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	required := true
	b.concurrency = 2
	b.previewLimit = entities.DefaultPreviewLimit
	b.preferencesFile = "/tmp/repodrop-test/preferences.yaml"
	b.offline = false
	b.exclude = nil
	b.remediation = entities.RemediationConfig{
		Command:  "lazygit",
		Args:     []string{"-p", "{path}"},
		Required: &required,
	}
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:     b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		concurrency:     b.concurrency,
		previewLimit:    b.previewLimit,
		preferencesFile: b.preferencesFile,
		offline:         b.offline,
		exclude:         append([]string(nil), b.exclude...),
		remediation:     b.remediation,
	}
}

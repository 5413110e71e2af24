//go:build unit

package reporter_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/infrastructure/repositories/reporter"
)

func TestLipglossReporterRepositoryReport(t *testing.T) {
	t.Parallel()

	t.Run("should print a clean verdict with the ignored files", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		repo := reporter.NewLipglossReporterRepositoryTo(&out)
		evaluation := entities.Evaluation{
			Path: "/src/app",
			Cleanliness: entities.RepoCleanliness{
				FilesClean:   true,
				RemotesClean: true,
				IgnoredFiles: []string{".env", "build/"},
			},
		}

		// when
		repo.Report(evaluation, entities.NewPreviewer(5, 1))

		// then
		assert.Equal(t, "✅ /src/app\n  Ignored files:\n    .env\n    build/\n", out.String())
	})

	t.Run("should cap long lists and count the hidden files", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		repo := reporter.NewLipglossReporterRepositoryTo(&out)
		unsafe := make([]string, 8)
		for i := range unsafe {
			unsafe[i] = fmt.Sprintf("file-%d.txt", i)
		}
		evaluation := entities.Evaluation{
			Path:        "/src/app",
			Cleanliness: entities.RepoCleanliness{RemotesClean: true, UnsafeFiles: unsafe},
		}

		// when
		repo.Report(evaluation, entities.NewPreviewer(3, 1))

		// then
		assert.Contains(t, out.String(), "❌ /src/app: Dirty local index\n  Unsafe files:\n")
		assert.Contains(t, out.String(), "    ... 5 more\n")
		assert.Equal(t, 1+1+3+1, bytes.Count(out.Bytes(), []byte("\n")))
	})

	t.Run("should print only the error for a failed evaluation", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		repo := reporter.NewLipglossReporterRepositoryTo(&out)
		evaluation := entities.Evaluation{Path: "/tmp/plain", Err: errors.New("not a git repository")}

		// when
		repo.Report(evaluation, entities.NewPreviewer(5, 1))

		// then
		assert.Equal(t, "❌ /tmp/plain: Error: not a git repository\n", out.String())
	})
}

func TestLipglossReporterRepositoryDecided(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		outcome  entities.Outcome
		dryRun   bool
		expected string
	}{
		{
			name:     "should print kept repositories",
			outcome:  entities.Outcome{Path: "/src/a", Decision: entities.DecisionSkip},
			expected: "Kept /src/a\n",
		},
		{
			name:     "should print trashed repositories",
			outcome:  entities.Outcome{Path: "/src/a", Decision: entities.DecisionDelete},
			expected: "Moved to trash /src/a\n",
		},
		{
			name:     "should print dry-run deletions",
			outcome:  entities.Outcome{Path: "/src/a", Decision: entities.DecisionDelete},
			dryRun:   true,
			expected: "Would delete /src/a\n",
		},
		{
			name:     "should print failed deletions",
			outcome:  entities.Outcome{Path: "/src/a", Decision: entities.DecisionDelete, Err: errors.New("busy")},
			expected: "Failed to delete /src/a\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			var out bytes.Buffer
			repo := reporter.NewLipglossReporterRepositoryTo(&out)

			// when
			repo.Decided(tt.outcome, tt.dryRun)

			// then
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

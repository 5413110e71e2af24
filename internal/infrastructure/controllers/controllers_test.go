//go:build unit

package controllers_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/infrastructure/controllers"
	"github.com/rios0rios0/repodrop/test/domain/commanddoubles"
)

// newCommand builds a cobra command the way main does, pointing --config at an empty file.
func newCommand(t *testing.T, controller entities.Controller, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "repodrop.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("{}\n"), 0o600))

	bind := controller.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Args:          bind.Args,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          controller.Execute,
	}
	controllers.AddGlobalFlags(cmd)
	if fc, ok := controller.(entities.FlagController); ok {
		fc.AddFlags(cmd)
	}

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	return cmd, &out
}

func TestSweepController(t *testing.T) {
	t.Parallel()

	t.Run("should refuse to run without an interactive terminal", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSweepCommand{}
		controller := controllers.NewSweepControllerWithTerminal(stub, func() bool { return false })
		cmd, _ := newCommand(t, controller, "/src/app")

		// when
		err := cmd.Execute()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "interactive terminal")
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should pass paths and flags to the sweep", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSweepCommand{}
		controller := controllers.NewSweepControllerWithTerminal(stub, func() bool { return true })
		cmd, _ := newCommand(t, controller,
			"--batch", "--dry-run", "--seed", "42", "--concurrency", "9", "--offline", "--no-remediation",
			"/src/a", "/src/b",
		)

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, []string{"/src/a", "/src/b"}, stub.LastOpts.Paths)
		assert.True(t, stub.LastOpts.Batch)
		assert.True(t, stub.LastOpts.DryRun)
		assert.Equal(t, uint64(42), stub.LastOpts.Seed)
		assert.Equal(t, 9, stub.LastSettings.Concurrency)
		assert.True(t, stub.LastSettings.Offline)
		assert.False(t, stub.LastSettings.RemediationTool().Enabled())
	})

	t.Run("should return a fatal sweep error", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSweepCommand{ExecuteErr: entities.ErrToolMissing}
		controller := controllers.NewSweepControllerWithTerminal(stub, func() bool { return true })
		cmd, _ := newCommand(t, controller)

		// when
		err := cmd.Execute()

		// then
		require.ErrorIs(t, err, entities.ErrToolMissing)
	})
}

func TestCheckController(t *testing.T) {
	t.Parallel()

	t.Run("should run without a terminal and pass the paths", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckCommand{}
		cmd, _ := newCommand(t, controllers.NewCheckController(stub), "--preview-limit", "2", "/src/a")

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/src/a"}, stub.LastOpts.Paths)
		assert.Equal(t, 2, stub.LastSettings.PreviewLimit)
	})
}

func TestPreferenceController(t *testing.T) {
	t.Parallel()

	t.Run("should print the stored preference", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPreferenceCommand{Current: entities.PreferenceReadOnly}
		cmd, out := newCommand(t, controllers.NewPreferenceController(stub), "/src/app")

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, "read-only\n", out.String())
		assert.Equal(t, []string{"/src/app"}, stub.GetPaths)
	})

	t.Run("should store a new preference", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPreferenceCommand{}
		cmd, _ := newCommand(t, controllers.NewPreferenceController(stub), "/src/app", "leave-alone-forever")

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.RepoPreference{entities.PreferenceLeaveAloneForever}, stub.SetPrefs)
	})

	t.Run("should reject an unknown preference", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPreferenceCommand{}
		cmd, _ := newCommand(t, controllers.NewPreferenceController(stub), "/src/app", "maybe")

		// when
		err := cmd.Execute()

		// then
		require.ErrorIs(t, err, entities.ErrPreferenceDecode)
		assert.Empty(t, stub.SetPaths)
	})

	t.Run("should require a path", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPreferenceCommand{}
		cmd, _ := newCommand(t, controllers.NewPreferenceController(stub))

		// when
		err := cmd.Execute()

		// then
		require.Error(t, err)
		assert.Empty(t, stub.GetPaths)
	})
}

package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register building blocks
	if err := container.Provide(NewRemoteSyncAnalyzer); err != nil {
		return err
	}
	if err := container.Provide(NewEvaluator); err != nil {
		return err
	}
	if err := container.Provide(NewConvergence); err != nil {
		return err
	}

	// Register command constructors
	if err := container.Provide(NewSweepCommand); err != nil {
		return err
	}
	if err := container.Provide(NewCheckCommand); err != nil {
		return err
	}
	if err := container.Provide(NewPreferenceCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *SweepCommand) Sweep {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *CheckCommand) Check {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *PreferenceCommand) Preference {
		return impl
	}); err != nil {
		return err
	}

	return nil
}

package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewSweepController); err != nil {
		return err
	}
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewPreferenceController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	sweepController *SweepController,
	checkController *CheckController,
	preferenceController *PreferenceController,
) *[]entities.Controller {
	return &[]entities.Controller{
		sweepController,
		checkController,
		preferenceController,
	}
}

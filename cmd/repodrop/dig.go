package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/repodrop/internal"
	"github.com/rios0rios0/repodrop/internal/infrastructure/controllers"
)

func newContainer() *dig.Container {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}
	return container
}

func injectAppContext(container *dig.Container) *internal.AppInternal {
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectSweepController(container *dig.Container) *controllers.SweepController {
	var sweepController *controllers.SweepController
	if err := container.Invoke(func(sc *controllers.SweepController) {
		sweepController = sc
	}); err != nil {
		panic(err)
	}

	return sweepController
}

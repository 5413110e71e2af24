package main

import (
	"context"
	"os"
	"os/signal"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repodrop/internal"
	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/infrastructure/controllers"
)

func buildRootCommand(sweepController *controllers.SweepController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "repodrop [paths...]",
		Short: "Safely delete local Git clones you no longer need",
		Long: `Walks through local Git clones and moves them to the trash once you confirm,
warning you when a clone holds work that exists nowhere else: uncommitted
changes, untracked files, or commits that no remote has.

Usage modes:
  repodrop                  Sweep the current folder
  repodrop ~/src/a ~/src/b  Sweep the given clones one by one
  repodrop sweep --batch .  Evaluate everything, then pick clean clones to delete
  repodrop check ~/src/*    Only report which clones are safe to delete
  repodrop pref . read-only Remember how a clone should be treated`,
		Args:          sweepController.GetBind().Args,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          sweepController.Execute,
	}

	// Global persistent flags
	controllers.AddGlobalFlags(cmd)
	sweepController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  bind.Args,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if fc, ok := ctrl.(entities.FlagController); ok {
			fc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	container := newContainer()
	cobraRoot := buildRootCommand(injectSweepController(container))

	// Add all subcommands
	addSubcommands(cobraRoot, injectAppContext(container))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cobraRoot.ExecuteContext(ctx); err != nil {
		stop()
		logger.Fatalf("Error executing 'repodrop': %s", err)
	}
}

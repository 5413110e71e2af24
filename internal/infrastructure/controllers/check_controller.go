package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repodrop/internal/domain/commands"
	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

// CheckController handles the "check" subcommand (report only).
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check [paths...]",
		Short: "Report which clones are safe to delete",
		Long: `Evaluate every given clone (default: the current folder) and print its
verdict without asking anything or deleting anything.`,
		Args: cobra.ArbitraryArgs,
	}
}

// Execute runs the check.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	seed, _ := cmd.Flags().GetUint64("seed")

	_, err = it.command.Execute(cmd.Context(), settings, commands.CheckOptions{Paths: args, Seed: seed})
	return err
}

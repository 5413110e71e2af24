package controllers

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rios0rios0/repodrop/internal/domain/commands"
	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

// SweepController handles the root command and the "sweep" subcommand.
type SweepController struct {
	command    commands.Sweep
	isTerminal func() bool
}

// NewSweepController creates a new SweepController.
func NewSweepController(command commands.Sweep) *SweepController {
	return NewSweepControllerWithTerminal(command, func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	})
}

// NewSweepControllerWithTerminal creates a SweepController with a custom terminal check.
func NewSweepControllerWithTerminal(command commands.Sweep, isTerminal func() bool) *SweepController {
	return &SweepController{command: command, isTerminal: isTerminal}
}

var _ entities.FlagController = (*SweepController)(nil)

// GetBind returns the Cobra command metadata for the sweep controller.
func (it *SweepController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sweep [paths...]",
		Short: "Interactively delete clones that are safe to discard",
		Long: `Evaluate every given clone (default: the current folder) and ask whether to
move it to the trash.

A clone is clean when it has no uncommitted or conflicted changes outside
ignored files, and every remote is in sync with it. Deleting a clone that is
not clean needs a second confirmation. When a remediation tool is configured
(lazygit by default) it is offered once per clone to fix what is dirty.

With --batch every clone is evaluated first, and a single selection lets you
pick which of the clean ones to delete.`,
		Args: cobra.ArbitraryArgs,
	}
}

// AddFlags adds the sweep-specific flags to the given Cobra command.
func (it *SweepController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("batch", false, "Evaluate everything first, then pick clean clones to delete in one go")
	cmd.Flags().Bool("dry-run", false, "Show what would be deleted without moving anything to the trash")
}

// Execute runs the interactive sweep. Only fatal preconditions are returned.
func (it *SweepController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if !it.isTerminal() {
		return errors.New("sweep needs an interactive terminal on stdin; use 'repodrop check' to only report")
	}

	batch, _ := cmd.Flags().GetBool("batch")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	seed, _ := cmd.Flags().GetUint64("seed")

	_, err = it.command.Execute(cmd.Context(), settings, commands.SweepOptions{
		Paths:  args,
		Batch:  batch,
		DryRun: dryRun,
		Seed:   seed,
	})
	return err
}

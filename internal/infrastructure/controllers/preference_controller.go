package controllers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/repodrop/internal/domain/commands"
	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

// PreferenceController handles the "pref" subcommand.
type PreferenceController struct {
	command commands.Preference
}

// NewPreferenceController creates a new PreferenceController.
func NewPreferenceController(command commands.Preference) *PreferenceController {
	return &PreferenceController{command: command}
}

// GetBind returns the Cobra command metadata for the preference controller.
func (it *PreferenceController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "pref <path> [value]",
		Short: "Show or store the preference of a clone",
		Long: fmt.Sprintf(`Show the stored preference of a clone, or store a new one.

Values: %s.

leave-alone-* clones are never evaluated, read-only clones tolerate being
behind their remotes, and *-for-now values are forgotten after the next sweep.`,
			strings.Join(entities.PreferenceNames(), ", ")),
		Args: cobra.RangeArgs(1, 2), //nolint:mnd // path and optional value
	}
}

// Execute prints or stores the preference.
func (it *PreferenceController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		pref, getErr := it.command.Get(settings, args[0])
		if getErr != nil {
			return getErr
		}
		fmt.Fprintln(cmd.OutOrStdout(), pref)
		return nil
	}

	pref, err := entities.ParsePreference(args[1])
	if err != nil {
		return err
	}
	return it.command.Set(settings, args[0], pref)
}

package repositories

// PrompterRepository asks the user questions. Implementations return
// entities.ErrAborted when the user interrupts a prompt.
type PrompterRepository interface {
	Confirm(title, description string) (bool, error)
	MultiSelect(title string, options []string) ([]string, error)
}

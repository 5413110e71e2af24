package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

const (
	sectionIndent = 2
	itemIndent    = 4
	checkmark     = "✅"
	crossmark     = "❌"
)

// LipglossReporterRepository prints verdicts as styled text.
type LipglossReporterRepository struct {
	out     io.Writer
	ok      lipgloss.Style
	bad     lipgloss.Style
	muted   lipgloss.Style
	heading lipgloss.Style
}

// NewLipglossReporterRepository prints to stdout.
func NewLipglossReporterRepository() *LipglossReporterRepository {
	return NewLipglossReporterRepositoryTo(os.Stdout)
}

// NewLipglossReporterRepositoryTo prints to out, with colors only when out is a terminal.
func NewLipglossReporterRepositoryTo(out io.Writer) *LipglossReporterRepository {
	renderer := lipgloss.NewRenderer(out)
	return &LipglossReporterRepository{
		out:     out,
		ok:      renderer.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		bad:     renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		muted:   renderer.NewStyle().Foreground(lipgloss.Color("8")),
		heading: renderer.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

var _ repositories.ReporterRepository = (*LipglossReporterRepository)(nil)

// Report prints "<mark> <path>: <reasons>" and the capped file previews.
func (r *LipglossReporterRepository) Report(evaluation entities.Evaluation, previewer *entities.Previewer) {
	mark, pathStyle := crossmark, r.bad
	if evaluation.IsClean() {
		mark, pathStyle = checkmark, r.ok
	}

	line := mark + " " + pathStyle.Render(evaluation.Path)
	if reasons := evaluation.Reasons(); len(reasons) > 0 {
		line += ": " + strings.Join(reasons, ", ")
	}
	fmt.Fprintln(r.out, line)

	if evaluation.Err != nil || evaluation.Skipped {
		return
	}
	r.section("Unsafe files:", evaluation.Cleanliness.UnsafeFiles, previewer)
	r.section("Ignored files:", evaluation.Cleanliness.IgnoredFiles, previewer)
}

// Decided prints the final decision for a path.
func (r *LipglossReporterRepository) Decided(outcome entities.Outcome, dryRun bool) {
	var verb string
	switch {
	case outcome.Decision == entities.DecisionSkip:
		verb = r.muted.Render("Kept")
	case outcome.Err != nil:
		verb = r.bad.Render("Failed to delete")
	case dryRun:
		verb = r.heading.Render("Would delete")
	default:
		verb = r.ok.Render("Moved to trash")
	}
	fmt.Fprintf(r.out, "%s %s\n", verb, outcome.Path)
}

func (r *LipglossReporterRepository) section(title string, findings []string, previewer *entities.Previewer) {
	if len(findings) == 0 {
		return
	}
	preview := previewer.Sample(findings)

	fmt.Fprintln(r.out, strings.Repeat(" ", sectionIndent)+r.heading.Render(title))
	for _, item := range preview.Items {
		fmt.Fprintln(r.out, strings.Repeat(" ", itemIndent)+item)
	}
	if preview.Hidden > 0 {
		fmt.Fprintln(r.out, strings.Repeat(" ", itemIndent)+r.muted.Render(fmt.Sprintf("... %d more", preview.Hidden)))
	}
}

package remediation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
	"github.com/rios0rios0/repodrop/internal/domain/repositories"
)

// ExecRemediationRepository runs the remediation tool as an interactive subprocess
// attached to the current terminal.
type ExecRemediationRepository struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecRemediationRepository creates a repository bound to the process' standard streams.
func NewExecRemediationRepository() *ExecRemediationRepository {
	return NewExecRemediationRepositoryWithIO(os.Stdin, os.Stdout, os.Stderr)
}

// NewExecRemediationRepositoryWithIO creates a repository bound to the given streams.
func NewExecRemediationRepositoryWithIO(stdin io.Reader, stdout, stderr io.Writer) *ExecRemediationRepository {
	return &ExecRemediationRepository{stdin: stdin, stdout: stdout, stderr: stderr}
}

var _ repositories.RemediationRepository = (*ExecRemediationRepository)(nil)

// Available reports whether the tool binary is in PATH.
func (r *ExecRemediationRepository) Available(tool entities.RemediationTool) bool {
	if !tool.Enabled() {
		return false
	}
	_, err := exec.LookPath(tool.Command)
	return err == nil
}

// Run starts the tool inside the repository and waits for it. A non-zero exit is
// an unsuccessful outcome, not an error.
func (r *ExecRemediationRepository) Run(
	ctx context.Context,
	tool entities.RemediationTool,
	repoPath string,
) (entities.ExitOutcome, error) {
	args := tool.ExpandArgs(repoPath)
	logger.Debugf("Running %s %v in %s", tool.Command, args, repoPath)

	cmd := exec.CommandContext(ctx, tool.Command, args...)
	cmd.Dir = repoPath
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return entities.ExitOutcome{Success: false, Code: exitErr.ExitCode()}, nil
		}
		return entities.ExitOutcome{Success: false, Code: -1}, fmt.Errorf("running %s: %w", tool.Command, err)
	}
	return entities.ExitOutcome{Success: true, Code: 0}, nil
}

package entities

// ConvergenceState is a state of the per-repository convergence loop.
type ConvergenceState int

const (
	StateEvaluating ConvergenceState = iota
	StateAwaitingRemediation
	StateAwaitingConfirmation
	StateAwaitingSecondConfirmation
	StateTerminalDelete
	StateTerminalSkip
)

func (s ConvergenceState) String() string {
	switch s {
	case StateEvaluating:
		return "evaluating"
	case StateAwaitingRemediation:
		return "awaiting-remediation"
	case StateAwaitingConfirmation:
		return "awaiting-confirmation"
	case StateAwaitingSecondConfirmation:
		return "awaiting-second-confirmation"
	case StateTerminalDelete:
		return "delete"
	case StateTerminalSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition is possible.
func (s ConvergenceState) IsTerminal() bool {
	return s == StateTerminalDelete || s == StateTerminalSkip
}

// Decision is the single outcome emitted per repository.
type Decision int

const (
	DecisionSkip Decision = iota
	DecisionDelete
)

func (d Decision) String() string {
	if d == DecisionDelete {
		return "delete"
	}
	return "skip"
}

// Outcome pairs a path with its decision. Err is set when a delete decision could
// not be carried out.
type Outcome struct {
	Path     string
	Decision Decision
	Err      error
}

// ProcessingSession is the mutable state of one repository's convergence loop.
// It is created per repository and never shared.
type ProcessingSession struct {
	Path                 string
	Preference           RepoPreference
	State                ConvergenceState
	IterationCount       int
	RemediationAttempted bool
	Verdict              *Evaluation
}

// NewProcessingSession starts a session in the evaluating state.
func NewProcessingSession(path string, pref RepoPreference) *ProcessingSession {
	return &ProcessingSession{
		Path:       path,
		Preference: pref,
		State:      StateEvaluating,
	}
}

// Decision maps a terminal state to its decision. Non-terminal states map to skip.
func (s *ProcessingSession) Decision() Decision {
	if s.State == StateTerminalDelete {
		return DecisionDelete
	}
	return DecisionSkip
}

// ExitOutcome is the result of running the external remediation tool.
type ExitOutcome struct {
	Success bool
	Code    int
}

// RemediationTool describes the external interactive merge/commit tool.
type RemediationTool struct {
	Command string
	// Args may contain the "{path}" placeholder, replaced by the repository path.
	Args     []string
	Required bool
}

// Enabled reports whether a tool is configured at all.
func (t RemediationTool) Enabled() bool {
	return t.Command != ""
}

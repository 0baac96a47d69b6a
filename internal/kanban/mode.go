package kanban

import "fmt"

// Mode is the interaction mode of a board view. Exactly one is active.
type Mode string

const (
	ModeIdle       Mode = "idle"
	ModeEdit       Mode = "edit"
	ModeDelete     Mode = "delete"
	ModeError      Mode = "error"
	ModeColumnEdit Mode = "column-edit"
)

// ParseMode accepts every mode a client may toggle. Idle is reached by
// toggling the active mode off or by cancelling, never directly.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeEdit, ModeDelete, ModeError, ModeColumnEdit:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// selects reports whether the mode collects a multi-selection.
func (m Mode) selects() bool {
	return m == ModeDelete || m == ModeError
}

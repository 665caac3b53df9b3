package domain

import "fmt"

// ConvertError is the base error type with conversion context.
type ConvertError struct {
	Phase      string // "config", "decode", "convert", "classify", "write"
	Checkpoint string
	StepIndex  int
	Message    string
	Cause      error
}

func (e *ConvertError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.Checkpoint != "" {
		s += fmt.Sprintf(" %s", e.Checkpoint)
	}
	if e.StepIndex > 0 {
		s += fmt.Sprintf(" step %d", e.StepIndex)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

func (e *ConvertError) Unwrap() error {
	return e.Cause
}

// NewError creates a new ConvertError.
func NewError(phase, checkpoint string, step int, message string, cause error) *ConvertError {
	return &ConvertError{
		Phase:      phase,
		Checkpoint: checkpoint,
		StepIndex:  step,
		Message:    message,
		Cause:      cause,
	}
}

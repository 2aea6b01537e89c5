package game

import "fmt"

// Stage names the initialisation step that failed.
type Stage string

// List of valid Stage values.
const (
	StageContext     Stage = "load context"
	StageVideo       Stage = "load video subsystem"
	StageFontContext Stage = "load font context"
	StageWindow      Stage = "build window"
	StageCanvas      Stage = "build canvas"
	StageFont        Stage = "load font"
)

// InitError is returned when a collaborator cannot be set up. These errors
// are always fatal.
type InitError struct {
	Stage Stage
	Err   error
}

func (e *InitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to %s", e.Stage)
	}
	return fmt.Sprintf("failed to %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// RenderError is returned when drawing or presenting a frame fails. The
// frame is abandoned along with the loop.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for the outcome of the program.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

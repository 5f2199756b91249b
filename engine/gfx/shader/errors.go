package shader

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStage = errors.New("shader: invalid stage")
	ErrNoProgram    = errors.New("shader: no program object")
	ErrCreateShader = errors.New("shader: create shader failed")
	ErrCompile      = errors.New("shader: compile failed")
	ErrLink         = errors.New("shader: link failed")
	ErrReadSource   = errors.New("shader: read source failed")
)

// CompileError reports a stage whose source the driver rejected.
// Log is only populated when verbose diagnostics are enabled.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("%s shader compile failed", e.Stage)
	}
	return fmt.Sprintf("%s shader compile failed: %s", e.Stage, e.Log)
}

func (e *CompileError) Unwrap() error { return ErrCompile }

package shader

import (
	"errors"
	"fmt"
)

// ErrFeatureNotAvailable is returned by operations this backend cannot provide.
var ErrFeatureNotAvailable = errors.New("shader: feature not available")

// CompileError reports a stage that failed to compile.
type CompileError struct {
	Path  string
	Stage Stage
	Log   string // compiler output, may be empty
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("compile %s shader %s", e.Stage, e.Path)
	}
	return fmt.Sprintf("compile %s shader %s: %s", e.Stage, e.Path, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Label string
	Log   string // linker output, may be empty
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("link program %s", e.Label)
	}
	return fmt.Sprintf("link program %s: %s", e.Label, e.Log)
}

// ErrorLogger receives diagnostics for failed compiles and links.
type ErrorLogger interface {
	LogError(msg string)
}

type discardLogger struct{}

func (discardLogger) LogError(string) {}

package triangle

import (
	"errors"
	"fmt"
)

// Process exit statuses.
const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitInitFail   = 2
	ExitWindowFail = 3
)

var (
	ErrWindowSystemInit = errors.New("windowing system failed to initialize")
	ErrWindowCreate     = errors.New("window or graphics context could not be created")
	ErrGPU              = errors.New("graphics driver reported an error")
	ErrUnknownVariant   = errors.New("unknown variant")
)

type ShaderFileErrorKind int

const (
	ShaderMissing ShaderFileErrorKind = iota
	ShaderTooLarge
	ShaderMalformed
)

// ShaderFileError is returned when a shader source file cannot be used.
// Path always names the offending file.
type ShaderFileError struct {
	Path  string
	Kind  ShaderFileErrorKind
	Limit int
	Err   error
}

func (e *ShaderFileError) Error() string {
	switch e.Kind {
	case ShaderMissing:
		return fmt.Sprintf("%s could not be opened: %v", e.Path, e.Err)
	case ShaderTooLarge:
		return fmt.Sprintf("too many characters in %s (limit %d bytes)", e.Path, e.Limit)
	case ShaderMalformed:
		return fmt.Sprintf("%s contains a NUL byte", e.Path)
	}
	return fmt.Sprintf("%s: shader file error", e.Path)
}

func (e *ShaderFileError) Unwrap() error { return e.Err }

// BuildError carries the driver's info log for a failed compile or link.
type BuildError struct {
	What string
	Log  string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("failed to build %s: %s", e.What, e.Log)
}

// ExitCode maps an error returned by the bootstrap to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrWindowSystemInit):
		return ExitInitFail
	case errors.Is(err, ErrWindowCreate):
		return ExitWindowFail
	}
	return ExitFailure
}

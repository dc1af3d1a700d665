package compiler

import (
	"errors"
	"fmt"
	"strings"
)

// CompileError reports a malformed rule shape.
type CompileError struct {
	// Path is the chain of keys leading to the offending declaration.
	Path []string
	// Message is a human-readable description.
	Message string
}

func (e *CompileError) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", formatPath(e.Path), e.Message)
}

// IsCompileError reports whether err wraps a *CompileError.
func IsCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}

func newError(path []string, format string, args ...any) *CompileError {
	return &CompileError{
		Path:    append([]string(nil), path...),
		Message: fmt.Sprintf(format, args...),
	}
}

func formatPath(path []string) string {
	quoted := make([]string, len(path))
	for i, p := range path {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return strings.Join(quoted, " > ")
}

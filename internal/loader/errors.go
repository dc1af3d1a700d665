package loader

import "fmt"

// Error codes reported by the loader.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E002" // Input path not found or unreadable
	ErrCodeUnsupported = "E003" // Unknown file extension
	ErrCodeParse       = "E004" // Syntax error in the input
	ErrCodeShape       = "E005" // Document does not have the expected shape
)

// LoadError reports a problem with one input document.
type LoadError struct {
	Code    string
	File    string
	Line    int // 1-based; 0 when unknown
	Column  int
	Message string
}

func (e *LoadError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Line, e.Column, e.Code, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s: %s", e.File, e.Code, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

func parseError(file string, err error) *LoadError {
	return &LoadError{Code: ErrCodeParse, File: file, Message: err.Error()}
}

func shapeError(file, path, format string, args ...any) *LoadError {
	msg := fmt.Sprintf(format, args...)
	if path != "" {
		msg = path + ": " + msg
	}
	return &LoadError{Code: ErrCodeShape, File: file, Message: msg}
}

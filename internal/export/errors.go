package export

import "fmt"

// RenderError represents a PDF generation failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

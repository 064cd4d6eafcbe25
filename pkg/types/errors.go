// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline error taxonomy.
var (
	// ErrStructuralParse indicates a raw batch document was not well-formed.
	// Caught at the batch level; the batch yields an empty extraction result
	// and the run continues with the remaining batches.
	ErrStructuralParse = errors.New("structural parse failure")

	// ErrRecordExtraction indicates a single article element was malformed.
	// Caught per article; the article is skipped and its siblings proceed.
	ErrRecordExtraction = errors.New("record extraction failure")
)

// ExternalAPIError reports a transport or HTTP failure talking to an external
// service. It is always propagated to the caller, never swallowed.
type ExternalAPIError struct {
	Source     string
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface.
func (e *ExternalAPIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error (status %d): %s", e.Source, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Source, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ExternalAPIError) Unwrap() error {
	return e.Cause
}

// NewExternalAPIError creates a new ExternalAPIError.
func NewExternalAPIError(source string, statusCode int, message string, cause error) *ExternalAPIError {
	return &ExternalAPIError{
		Source:     source,
		StatusCode: statusCode,
		Message:    message,
		Cause:      cause,
	}
}

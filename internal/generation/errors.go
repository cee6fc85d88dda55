// Package generation assembles campaign prompts, calls the LLM, and parses
// the returned ad copy payload.
package generation

import "fmt"

// APICallError represents a failure calling the LLM service
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation API error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation API error: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents a failure to parse the LLM response as ad copy
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// CardinalityError is returned when the payload does not carry exactly the
// expected number of headlines and descriptions. It is not repairable.
type CardinalityError struct {
	Headlines    int
	Descriptions int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("generation cardinality error: got %d headlines and %d descriptions, want 15 and 4",
		e.Headlines, e.Descriptions)
}

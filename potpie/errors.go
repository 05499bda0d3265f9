package potpie

import (
	"fmt"
	"time"
)

// RequestError reports a failed outbound call: either the transport failed
// outright or the API answered with a 4xx/5xx status.
type RequestError struct {
	Method     string
	Endpoint   string
	StatusCode int // 0 when the request never produced a response
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s returned %d: %v", e.Method, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Method, e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// TimeoutError reports that a parsing job did not become ready before the
// caller's deadline.
type TimeoutError struct {
	ProjectID string
	Elapsed   time.Duration
	Limit     time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("project %s did not become ready within %s (waited %s)",
		e.ProjectID, e.Limit, e.Elapsed.Round(time.Millisecond))
}

// ResponseError reports a response that could not be decoded or that lacked
// a field the caller depends on.
type ResponseError struct {
	Endpoint string
	Field    string
	Err      error
}

func (e *ResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("response from %s is missing %q", e.Endpoint, e.Field)
	}
	return fmt.Sprintf("could not decode response from %s: %v", e.Endpoint, e.Err)
}

func (e *ResponseError) Unwrap() error { return e.Err }

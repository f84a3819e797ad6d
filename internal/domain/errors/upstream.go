package errors

import (
	"fmt"
	"net/http"
)

// UpstreamKind discriminates the two ways an upstream call can fail. Callers
// switch on it explicitly instead of probing error types.
type UpstreamKind int

const (
	// UpstreamKindHTTP means the transport completed and the server answered
	// with a non-2xx status.
	UpstreamKindHTTP UpstreamKind = iota + 1

	// UpstreamKindTransport means the call itself could not complete
	// (connectivity, DNS, timeout). No status code exists.
	UpstreamKindTransport
)

// UpstreamError is the typed failure of the request pipeline. For the HTTP
// kind it carries the upstream status, the extracted message and the full
// parsed body for caller inspection; for the transport kind only the cause.
//
// It implements AppError so the delivery layer maps it without special cases:
// HTTP failures pass the upstream status through, transport failures surface
// as 502 with a generic network message.
type UpstreamError struct {
	Kind   UpstreamKind
	Status int    // HTTP kind only.
	Msg    string // HTTP kind only; extracted from the body's "message" field when present.
	Body   any    // HTTP kind only; the parsed response body.

	cause error // Transport kind only.
}

// NewUpstreamHTTPError builds the HTTP-kind failure for a non-2xx response.
func NewUpstreamHTTPError(status int, msg string, body any) *UpstreamError {
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}

	return &UpstreamError{
		Kind:   UpstreamKindHTTP,
		Status: status,
		Msg:    msg,
		Body:   body,
	}
}

// NewUpstreamTransportError builds the transport-kind failure.
func NewUpstreamTransportError(cause error) *UpstreamError {
	return &UpstreamError{
		Kind:  UpstreamKindTransport,
		cause: cause,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Kind == UpstreamKindTransport {
		return fmt.Sprintf("upstream unreachable: %v", e.cause)
	}

	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Msg)
}

// Unwrap exposes the transport cause for errors.Is/As chains.
func (e *UpstreamError) Unwrap() error {
	return e.cause
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	if e.Kind == UpstreamKindTransport {
		return http.StatusBadGateway
	}

	return e.Status
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	if e.Kind == UpstreamKindTransport {
		return "UPSTREAM_UNREACHABLE"
	}

	return "UPSTREAM_REJECTED"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	if e.Kind == UpstreamKindTransport {
		return "Network error, please try again"
	}

	return e.Msg
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	if e.Kind == UpstreamKindTransport {
		return e.cause.Error()
	}

	return fmt.Sprintf("upstream status %d", e.Status)
}

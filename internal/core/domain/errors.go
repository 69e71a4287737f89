package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies gateway failures independently of any transport.
// Each transport adapter owns its own mapping from kinds to wire codes.
type ErrorKind int

const (
	// KindInvalidRequest marks a request that failed construction or
	// validation and never reached a provider.
	KindInvalidRequest ErrorKind = iota
	// KindProviderNotFound marks a routing failure: the named provider
	// is not registered.
	KindProviderNotFound
	// KindModelNotSupported marks a routing failure: the named provider
	// does not accept the requested model.
	KindModelNotSupported
	// KindProviderUnavailable marks a failed liveness check.
	KindProviderUnavailable
	// KindProvider marks a backend call that failed after dispatch.
	KindProvider
	// KindProtocol marks a malformed wire envelope.
	KindProtocol
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindProviderNotFound:
		return "provider_not_found"
	case KindModelNotSupported:
		return "model_not_supported"
	case KindProviderUnavailable:
		return "provider_unavailable"
	case KindProvider:
		return "provider_error"
	case KindProtocol:
		return "protocol_error"
	}
	return "unknown"
}

// Error is the gateway's standard error shape.
type Error struct {
	Kind    ErrorKind
	Message string
	// Log carries the original cause for server-side logging only.
	Log error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Log
}

// KindOf extracts the ErrorKind from an error chain. Unclassified
// errors report KindProvider, the conservative default for anything
// that escaped a backend call.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindProvider
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

// InvalidRequestError creates a validation failure.
func InvalidRequestError(detail string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: detail}
}

// ProviderNotFoundError creates a routing failure for an unknown provider.
func ProviderNotFoundError(name string) *Error {
	return &Error{Kind: KindProviderNotFound, Message: fmt.Sprintf("provider '%s' not found", name)}
}

// ModelNotSupportedError creates a routing failure for a provider/model mismatch.
func ModelNotSupportedError(provider, model string) *Error {
	return &Error{
		Kind:    KindModelNotSupported,
		Message: fmt.Sprintf("provider '%s' does not support model '%s'", provider, model),
	}
}

// ProviderUnavailableError creates a failed liveness check error.
func ProviderUnavailableError(name string) *Error {
	return &Error{Kind: KindProviderUnavailable, Message: fmt.Sprintf("provider '%s' is not available", name)}
}

// ProviderError wraps a backend failure that occurred after dispatch.
func ProviderError(msg string, err error) *Error {
	return &Error{Kind: KindProvider, Message: msg, Log: err}
}

// ProtocolError creates a malformed-envelope error.
func ProtocolError(msg string) *Error {
	return &Error{Kind: KindProtocol, Message: msg}
}

// Package errors provides the structured error type shared by every layer.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown is the catch-all for I/O, serialization and broker
	// failures. Callers cannot distinguish between those causes.
	CodeUnknown Code = "UNKNOWN"

	// CodeNotFound indicates a record missing for the requesting creator.
	// A record owned by a different creator reports the same code so that
	// existence never leaks across users.
	CodeNotFound Code = "NOT_FOUND"

	// CodeAlreadyExists indicates a uniqueness conflict on create.
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeUnauthorized indicates the caller identity header is absent.
	CodeUnauthorized Code = "UNAUTHORIZED"

	// CodeInvalidHeader indicates the caller identity header is present
	// but unusable.
	CodeInvalidHeader Code = "INVALID_HEADER"

	// CodeInvalidFormat indicates a payload that could not be decoded.
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// CodeMissingFields indicates required input fields are empty.
	CodeMissingFields Code = "MISSING_FIELDS"
)

// GRPCCode maps the domain code to its gRPC status category.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeUnauthorized:
		return codes.PermissionDenied
	case CodeInvalidHeader, CodeInvalidFormat, CodeMissingFields:
		return codes.InvalidArgument
	default:
		return codes.Unknown
	}
}

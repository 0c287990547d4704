package services

import (
	"errors"
	"fmt"
)

// Kind classifies service failures so transports can map them to responses.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "notFound"
	KindConflict   Kind = "conflict"
	KindUpstream   Kind = "upstream"
)

// ServiceError is returned by the recommendation and booking services.
// Conflict errors carry either UnavailableSessions or Conflicts.
type ServiceError struct {
	Kind                Kind
	Message             string
	UnavailableSessions []string
	Conflicts           [][2]string
	Err                 error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

func NewValidationError(msg string) error {
	return &ServiceError{Kind: KindValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Kind: KindNotFound, Message: msg}
}

// NewUnavailableError reports sessions that are already full.
func NewUnavailableError(ids []string) error {
	return &ServiceError{
		Kind:                KindConflict,
		Message:             "Some sessions are no longer available",
		UnavailableSessions: ids,
	}
}

// NewTimeConflictError reports pairs of requested sessions that overlap.
func NewTimeConflictError(pairs [][2]string) error {
	return &ServiceError{
		Kind:      KindConflict,
		Message:   "Selected sessions have time conflicts",
		Conflicts: pairs,
	}
}

func NewUpstreamError(msg string, err error) error {
	return &ServiceError{Kind: KindUpstream, Message: msg, Err: err}
}

// AsServiceError unwraps err into a *ServiceError. Unclassified errors are treated as upstream failures.
func AsServiceError(err error) *ServiceError {
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	return &ServiceError{Kind: KindUpstream, Message: "Internal server error", Err: err}
}

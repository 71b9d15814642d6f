package ciba

import (
	"errors"
	"fmt"
)

type errorType string

const (
	InvalidRequest          errorType = "invalid_request"
	InvalidRequestID        errorType = "invalid_request_id"
	InvalidClient           errorType = "invalid_client"
	UnauthorizedClient      errorType = "unauthorized_client"
	InvalidSubject          errorType = "invalid_subject"
	SubjectMismatch         errorType = "subject_mismatch"
	MissingAuthTimeClaim    errorType = "missing_auth_time_claim"
	MissingIDPClaim         errorType = "missing_idp_claim"
	ConsentExceedsRequested errorType = "consent_exceeds_requested"
	AlreadyComplete         errorType = "already_complete"
	ConcurrentUpdate        errorType = "concurrent_update"
	AccessDenied            errorType = "access_denied"
	AuthorizationPending    errorType = "authorization_pending"
	SlowDown                errorType = "slow_down"
	ExpiredToken            errorType = "expired_token"
	ServerError             errorType = "server_error"
)

var (
	ErrInvalidRequest = func() *Error {
		return &Error{
			ErrorType: InvalidRequest,
		}
	}
	ErrInvalidRequestID = func() *Error {
		return &Error{
			ErrorType: InvalidRequestID,
		}
	}
	ErrInvalidClient = func() *Error {
		return &Error{
			ErrorType: InvalidClient,
		}
	}
	ErrUnauthorizedClient = func() *Error {
		return &Error{
			ErrorType: UnauthorizedClient,
		}
	}
	ErrInvalidSubject = func() *Error {
		return &Error{
			ErrorType: InvalidSubject,
		}
	}
	ErrSubjectMismatch = func() *Error {
		return &Error{
			ErrorType: SubjectMismatch,
		}
	}
	ErrMissingAuthTimeClaim = func() *Error {
		return &Error{
			ErrorType: MissingAuthTimeClaim,
		}
	}
	ErrMissingIDPClaim = func() *Error {
		return &Error{
			ErrorType: MissingIDPClaim,
		}
	}
	ErrConsentExceedsRequested = func() *Error {
		return &Error{
			ErrorType: ConsentExceedsRequested,
		}
	}
	ErrAlreadyComplete = func() *Error {
		return &Error{
			ErrorType: AlreadyComplete,
		}
	}
	ErrConcurrentUpdate = func() *Error {
		return &Error{
			ErrorType: ConcurrentUpdate,
		}
	}
	ErrAccessDenied = func() *Error {
		return &Error{
			ErrorType: AccessDenied,
		}
	}
	ErrAuthorizationPending = func() *Error {
		return &Error{
			ErrorType: AuthorizationPending,
		}
	}
	ErrSlowDown = func() *Error {
		return &Error{
			ErrorType: SlowDown,
		}
	}
	ErrExpiredToken = func() *Error {
		return &Error{
			ErrorType: ExpiredToken,
		}
	}
	ErrServerError = func() *Error {
		return &Error{
			ErrorType: ServerError,
		}
	}
)

// Error is the error type returned by the backchannel interaction engine.
// The ErrorType is stable and can be mapped onto a protocol-level error
// response by the transport layer; Description and Parent carry diagnostics.
type Error struct {
	Parent      error     `json:"-"`
	ErrorType   errorType `json:"error"`
	Description string    `json:"error_description,omitempty"`
}

func (e *Error) Error() string {
	message := "ErrorType=" + string(e.ErrorType)
	if e.Description != "" {
		message += " Description=" + e.Description
	}
	if e.Parent != nil {
		message += " Parent=" + e.Parent.Error()
	}
	return message
}

func (e *Error) Unwrap() error {
	return e.Parent
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.ErrorType == t.ErrorType &&
		(e.Description == t.Description || t.Description == "")
}

func (e *Error) WithParent(err error) *Error {
	e.Parent = err
	return e
}

func (e *Error) WithDescription(desc string, args ...any) *Error {
	e.Description = fmt.Sprintf(desc, args...)
	return e
}

// DefaultToServerError checks if the error is an Error,
// if not the provided error will be wrapped into a ServerError.
func DefaultToServerError(err error, description string) *Error {
	e := new(Error)
	if ok := errors.As(err, &e); !ok {
		e.ErrorType = ServerError
		e.Description = description
		e.Parent = err
	}
	return e
}

package domain

import "errors"

// Error kinds. Every error returned by the use cases unwraps to exactly one
// of these so callers can branch with errors.Is.
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrQuotaExceeded = errors.New("daily swipe limit reached")
	ErrConflict      = errors.New("conflict")
	ErrValidation    = errors.New("validation failed")
	ErrSelfReference = errors.New("cannot act on yourself")
)

var (
	ErrUserNotFound           = kindError(ErrNotFound, "user not found")
	ErrProfileNotFound        = kindError(ErrNotFound, "profile not found")
	ErrMatchNotFound          = kindError(ErrNotFound, "match not found")
	ErrMessageNotFound        = kindError(ErrNotFound, "message not found")
	ErrRequestNotFound        = kindError(ErrNotFound, "request not found")
	ErrInvalidToken           = kindError(ErrUnauthorized, "invalid token")
	ErrNotParticipant         = kindError(ErrForbidden, "not a participant of this match")
	ErrProRequired            = kindError(ErrForbidden, "pro subscription required")
	ErrNotMessageOwner        = kindError(ErrForbidden, "you can only delete your own messages")
	ErrRequestAlreadyAnswered = kindError(ErrConflict, "request already answered")
	ErrInvalidMessage         = kindError(ErrValidation, "invalid message")
)

// Kinds lists the error kinds in a stable order.
var Kinds = []error{
	ErrUnauthorized,
	ErrNotFound,
	ErrForbidden,
	ErrQuotaExceeded,
	ErrConflict,
	ErrValidation,
	ErrSelfReference,
}

type kindErr struct {
	kind error
	msg  string
}

func (e *kindErr) Error() string { return e.msg }

func (e *kindErr) Unwrap() error { return e.kind }

func kindError(kind error, msg string) error {
	return &kindErr{kind: kind, msg: msg}
}

// NewError builds an error of the given kind with a custom message.
func NewError(kind error, msg string) error {
	return kindError(kind, msg)
}

// KindOf returns the kind sentinel err unwraps to, or nil for unclassified
// (infrastructure) errors.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range Kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

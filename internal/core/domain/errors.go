package domain

import "strings"

// Internal error codes. These are part of the external contract and must
// stay stable across releases.
const (
	// internal server errors
	CodeUserRegistrationFailed     = 513
	CodeUnknownInternalServerError = 517

	// bad request internal errors
	CodeUserAlreadyExists   = 453
	CodeConstraintViolation = 457
	CodeUserDoesNotExist    = 459
	CodeUnderAge            = 461
	CodeUnknownBadRequest   = 463
	CodeInputDateFormat     = 465
)

type ErrorKind int

const (
	// KindBadRequest covers every invalid request received from the caller.
	KindBadRequest ErrorKind = iota
	// KindInternal covers failures that should be hidden from service users.
	KindInternal
)

// Error is a business rejection or internal failure with a stable internal
// code. Messages holds one entry per violated rule, in validation order.
type Error struct {
	Kind     ErrorKind
	Code     int
	Messages []string
	// Err carries the lower-level failure detail, surfaced as the
	// envelope's debug message when present.
	Err error
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewBadRequestError(code int, message string) *Error {
	return &Error{Kind: KindBadRequest, Code: code, Messages: []string{message}}
}

func NewInternalError(code int, message string) *Error {
	return &Error{Kind: KindInternal, Code: code, Messages: []string{message}}
}

// NewConstraintViolationError aggregates all field validation failures of a
// single submission into one rejection.
func NewConstraintViolationError(messages []string) *Error {
	return &Error{Kind: KindBadRequest, Code: CodeConstraintViolation, Messages: messages}
}

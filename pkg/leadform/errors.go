package leadform

import (
	"errors"
	"fmt"
)

// Messages surfaced when the intake endpoint gives nothing better
const (
	DefaultRejectedMessage = "Submission failed. Please try again."
	DefaultNetworkMessage  = "Failed to submit. Please try again later."
)

var (
	ErrUnknownField     = errors.New("unknown form field")
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrAlreadySubmitted = errors.New("form already submitted")
)

// Reason identifies which validation rule a form failed
type Reason string

const (
	ReasonRequired Reason = "required"
	ReasonEmail    Reason = "email"
	ReasonPhone    Reason = "phone"
)

// Message is the user-facing text for the reason
func (r Reason) Message() string {
	switch r {
	case ReasonRequired:
		return "All fields are required"
	case ReasonEmail:
		return "Please enter a valid email address"
	case ReasonPhone:
		return fmt.Sprintf("Please enter a valid phone number (at least %d digits)", MinPhoneDigits)
	default:
		return "Invalid form"
	}
}

// ValidationError is returned before any network call when the form is invalid
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	return e.Reason.Message()
}

// SubmissionError is returned after a network attempt failed.
// StatusCode is zero when no response was received.
type SubmissionError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is a validation failure with the given reason
func IsValidationError(err error, reason Reason) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr) && vErr.Reason == reason
}

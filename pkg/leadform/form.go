// Package leadform holds the lead capture form: its field values, validation rules and the
// Editing -> Submitting -> Submitted workflow around a single outbound submission.
package leadform

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"onboardly/pkg/models"
	"onboardly/pkg/utils"
)

// Field names a form input
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
)

// Fields lists the form inputs in display order
var Fields = []Field{FieldName, FieldEmail, FieldPhone}

// State is the submission state of the form
type State int

const (
	Editing State = iota
	Submitting
	Submitted
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Submitter delivers a validated lead to the intake endpoint.
// Implementations should return *SubmissionError so the endpoint's message reaches the user.
type Submitter interface {
	SubmitLead(ctx context.Context, lead models.LeadForm) error
}

// Snapshot is a point-in-time copy of the form
type Snapshot struct {
	Values models.LeadForm
	State  State
	Error  string
}

// Form is a single lead capture form instance. It is safe for concurrent use.
type Form struct {
	mu        sync.Mutex
	values    models.LeadForm
	state     State
	errMsg    string
	submitter Submitter
	logger    *zap.Logger
}

// New creates an empty form in the Editing state
func New(submitter Submitter, logger *zap.Logger) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Form{
		submitter: submitter,
		logger:    logger,
	}
}

// UpdateField sets one field and clears any error message. No validation happens here.
func (f *Form) UpdateField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.values.Name = value
	case FieldEmail:
		f.values.Email = value
	case FieldPhone:
		f.values.Phone = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	f.errMsg = ""
	return nil
}

// Submit validates the form and, when valid, sends it through the submitter.
// It returns *ValidationError, *SubmissionError, ErrSubmitInProgress or ErrAlreadySubmitted.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case Submitting:
		f.mu.Unlock()
		return ErrSubmitInProgress
	case Submitted:
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}

	f.errMsg = ""
	lead := f.values
	if err := Validate(lead); err != nil {
		f.errMsg = err.Error()
		f.mu.Unlock()
		f.logger.Debug("lead form rejected", zap.Error(err))
		return err
	}
	f.state = Submitting
	f.mu.Unlock()

	phoneHash := utils.HashString(lead.Phone)
	f.logger.Info("submitting lead", zap.String("name", lead.Name), zap.String("phone_hash", phoneHash))

	err := f.submitter.SubmitLead(ctx, lead)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		var subErr *SubmissionError
		if !errors.As(err, &subErr) {
			subErr = &SubmissionError{Message: DefaultNetworkMessage, Err: err}
		} else if subErr.Message == "" {
			// Copy so the submitter's error is left untouched
			subErr = &SubmissionError{
				Message:    DefaultRejectedMessage,
				StatusCode: subErr.StatusCode,
				Err:        subErr.Err,
			}
		}
		f.state = Editing
		f.errMsg = subErr.Message
		f.logger.Warn("lead submission failed",
			zap.String("phone_hash", phoneHash),
			zap.Int("status", subErr.StatusCode),
			zap.Error(err),
		)
		return subErr
	}

	f.state = Submitted
	f.values = models.LeadForm{}
	f.logger.Info("lead submitted", zap.String("phone_hash", phoneHash))
	return nil
}

// SubmitAnother returns a submitted form to editing. It is a no-op in any other state.
func (f *Form) SubmitAnother() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Submitted {
		f.state = Editing
		f.errMsg = ""
	}
}

// Snapshot returns the current values, state and error message
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return Snapshot{
		Values: f.values,
		State:  f.state,
		Error:  f.errMsg,
	}
}

package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ragecodemaster/landing/pkg/cardinput"
	"github.com/ragecodemaster/landing/pkg/models"
	"github.com/ragecodemaster/landing/pkg/utils"
	"github.com/ragecodemaster/landing/pkg/validation"
)

// State is where a form instance is in its submission lifecycle.
type State int

const (
	Idle State = iota
	Submitting
	Success
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// Outcome is the result of one submit attempt.
type Outcome struct {
	State State
	// Errors is set when validation failed and the form stays Idle.
	Errors validation.FieldErrors
	// Ref identifies the lead in the notification and in logs.
	Ref string
	// Delivered reports whether the notification went through. The
	// visitor sees the success view either way.
	Delivered bool
}

// LeadSubmissionService defines the interface for handling form submissions
type LeadSubmissionService interface {
	SubmitConsultation(ctx context.Context, form models.ConsultationForm) (Outcome, error)
	SubmitCardLink(ctx context.Context, form models.CardLinkForm) (Outcome, error)
}

type leadSubmissionServiceImpl struct {
	validator *validation.Validator
	notifier  Notifier
	inflight  *InFlight
	now       func() time.Time
}

// NewLeadSubmissionService creates a new submission service
func NewLeadSubmissionService(
	validator *validation.Validator,
	notifier Notifier,
	inflight *InFlight,
	now func() time.Time,
) LeadSubmissionService {
	return &leadSubmissionServiceImpl{
		validator: validator,
		notifier:  notifier,
		inflight:  inflight,
		now:       now,
	}
}

// SubmitConsultation validates and forwards a consultation request.
func (s *leadSubmissionServiceImpl) SubmitConsultation(ctx context.Context, form models.ConsultationForm) (Outcome, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)

	if errs := s.validator.ValidateConsultation(form); len(errs) > 0 {
		return Outcome{State: Idle, Errors: errs}, nil
	}

	return s.dispatch(ctx, "consultation", form.FormID, form.Email, func(ref string) string {
		return consultationMessage(form, ref, s.now())
	})
}

// SubmitCardLink formats, validates and forwards a card-linking request.
func (s *leadSubmissionServiceImpl) SubmitCardLink(ctx context.Context, form models.CardLinkForm) (Outcome, error) {
	form.CardNumber = cardinput.FormatCardNumber(form.CardNumber)
	form.Expiry = cardinput.FormatExpiry(form.Expiry)
	form.CVV = cardinput.FormatCVV(form.CVV)
	form.Zip = cardinput.FormatZip(form.Zip)
	form.FirstName = strings.TrimSpace(form.FirstName)
	form.LastName = strings.TrimSpace(form.LastName)
	form.Email = strings.TrimSpace(form.Email)
	form.Address = strings.TrimSpace(form.Address)
	form.City = strings.TrimSpace(form.City)
	form.State = strings.TrimSpace(form.State)

	if errs := s.validator.ValidateCardLink(ctx, form); len(errs) > 0 {
		return Outcome{State: Idle, Errors: errs}, nil
	}

	return s.dispatch(ctx, "card link", form.FormID, form.Email, func(ref string) string {
		return cardLinkMessage(form, ref, s.now())
	})
}

// dispatch runs the Submitting step: one notification, then Success no
// matter how the notification went.
func (s *leadSubmissionServiceImpl) dispatch(
	ctx context.Context,
	kind, formID, email string,
	message func(ref string) string,
) (Outcome, error) {
	if formID == "" {
		formID = uuid.NewString()
	}
	claim, err := s.inflight.Begin(formID)
	if err != nil {
		log.Printf("Rejecting duplicate %s submission for form %s", kind, formID)
		return Outcome{State: Submitting}, err
	}
	defer s.inflight.End(formID, claim)

	ref := uuid.NewString()
	leadKey := utils.LeadKey(email)
	log.Printf("Processing %s for %s (ref %s)", kind, leadKey, ref)

	// A submitted lead is not aborted when the visitor goes away.
	sendCtx := context.WithoutCancel(ctx)

	delivered := true
	if err := s.notifier.Notify(sendCtx, message(ref)); err != nil {
		delivered = false
		log.Printf("Error delivering %s for %s (ref %s): %v", kind, leadKey, ref, err)
	} else {
		log.Printf("Delivered %s for %s (ref %s)", kind, leadKey, ref)
	}

	return Outcome{State: Success, Ref: ref, Delivered: delivered}, nil
}

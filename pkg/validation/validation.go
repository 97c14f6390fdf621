// Package validation checks lead forms before anything leaves the server.
package validation

import (
	"context"
	"errors"
	"log"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ragecodemaster/landing/pkg/address"
	"github.com/ragecodemaster/landing/pkg/cardinput"
	"github.com/ragecodemaster/landing/pkg/models"
)

// emailPattern accepts anything shaped like name@host.tld without spaces or a second @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

// Messages shown for each failing card-linking field.
var cardLinkMessages = map[string]string{
	"card_number": "Please enter a valid card number",
	"expiry":      "Please enter a valid expiry date (MM/YY)",
	"cvv":         "Please enter a valid CVV",
	"first_name":  "First name is required",
	"last_name":   "Last name is required",
	"email":       "Please enter a valid email address",
	"address":     "Please enter a complete street address",
	"city":        "Please enter a valid city",
	"state":       "Please select a state",
	"zip":         "Please enter a valid ZIP code (12345 or 12345-6789)",
}

// Messages used when the address verifier rejects a field.
var addressMessages = map[string]string{
	"address": "Please enter a valid street address",
	"city":    "City not found. Please check spelling",
	"state":   "Please select a valid state",
	"zip":     "ZIP code doesn't match the selected city/state",
}

var consultationMessages = map[string]string{
	"name":    "Please enter your name",
	"email":   "Please enter a valid email address",
	"goal":    "Please choose one of the listed goals",
	"message": "Message is too long",
}

// Validator validates consultation and card-linking forms.
type Validator struct {
	validate *validator.Validate
	address  address.Verifier
	now      func() time.Time
}

// New builds a Validator. now is consulted for card expiry checks.
func New(verifier address.Verifier, now func() time.Time) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		address:  verifier,
		now:      now,
	}

	v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	mustRegister(v.validate, "luhn", func(fl validator.FieldLevel) bool {
		return cardinput.ValidLuhn(fl.Field().String())
	})
	mustRegister(v.validate, "expiry", func(fl validator.FieldLevel) bool {
		return cardinput.ValidExpiry(fl.Field().String(), v.now())
	})
	mustRegister(v.validate, "zip", func(fl validator.FieldLevel) bool {
		return cardinput.ValidZip(fl.Field().String())
	})
	mustRegister(v.validate, "leademail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v.validate, "goal", func(fl validator.FieldLevel) bool {
		return models.Goal(fl.Field().String()).Valid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validation: register " + tag + ": " + err.Error())
	}
}

// ValidateConsultation returns the field errors of a consultation form,
// or nil when it can be sent.
func (v *Validator) ValidateConsultation(form models.ConsultationForm) FieldErrors {
	return v.structErrors(form, consultationMessages)
}

// ValidateCardLink checks the card-linking form. The address verifier is
// consulted only when the address fields are individually well formed.
func (v *Validator) ValidateCardLink(ctx context.Context, form models.CardLinkForm) FieldErrors {
	errs := v.structErrors(form, cardLinkMessages)

	if errs.Has("address") || errs.Has("city") || errs.Has("state") || errs.Has("zip") {
		return errs
	}

	res, err := v.address.Verify(ctx, address.Fields{
		Street: form.Address,
		City:   form.City,
		State:  form.State,
		Zip:    form.Zip,
	})
	if err != nil {
		log.Printf("Error verifying address: %v", err)
		res = address.Result{}
	}

	if errs == nil && !res.OK() {
		errs = FieldErrors{}
	}
	if !res.Street {
		errs["address"] = addressMessages["address"]
	}
	if !res.City {
		errs["city"] = addressMessages["city"]
	}
	if !res.State {
		errs["state"] = addressMessages["state"]
	}
	if !res.Zip {
		errs["zip"] = addressMessages["zip"]
	}

	return errs
}

func (v *Validator) structErrors(s any, messages map[string]string) FieldErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		log.Printf("Error validating form: %v", err)
		return FieldErrors{"form": "Something went wrong, please try again"}
	}

	errs := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		msg, ok := messages[field]
		if !ok {
			msg = "Please check this field"
		}
		errs[field] = msg
	}
	return errs
}

// Has reports whether field has an error.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

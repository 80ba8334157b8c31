// Package apperror classifies client errors and maps validation failures to
// user-facing messages.
package apperror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Kind partitions errors by how the screens must react to them.
type Kind int

const (
	// KindValidation failed client-side, before any network call.
	KindValidation Kind = iota
	// KindUnauthorized is a 401; fatal to the session.
	KindUnauthorized
	// KindForbidden is a 403.
	KindForbidden
	// KindNotFound is a 404.
	KindNotFound
	// KindServer is any 5xx, or an unexpected 4xx.
	KindServer
	// KindNetwork means no response was received at all.
	KindNetwork
)

// Error is the error type every API call resolves to on failure. Message is
// safe to show to the user: the server-provided text when there was one, a
// generic fallback otherwise.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return e.Message
}

// FromStatus maps an HTTP status and server message to an Error, applying a
// generic fallback when the server sent no message.
func FromStatus(status int, message string) *Error {
	kind := KindServer
	switch status {
	case 401:
		kind = KindUnauthorized
	case 403:
		kind = KindForbidden
	case 404:
		kind = KindNotFound
	}
	if message == "" {
		message = "Something went wrong. Please try again."
	}
	return &Error{Kind: kind, Status: status, Message: message}
}

// Network wraps a transport failure where no response was received.
func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "Unable to reach the server. Check your connection and try again."}
}

// Validation builds a client-side validation error with an inline message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf extracts the Kind from err, defaulting to KindNetwork for anything
// that is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindNetwork
}

// UserMessage returns the renderable message for err.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}

var (
	errRequired          = errors.New("is required")
	errMustBePositive    = errors.New("must be zero or a positive number")
	errInvalidEmail      = errors.New("must be a valid email address")
	errPasswordTooShort  = errors.New("Password must be at least 6 characters long")
	errPasswordsMismatch = errors.New("Passwords do not match")
	errConsentRequired   = errors.New("You must agree to the terms and conditions")
	errInvalidRole       = errors.New("must be either patient or provider")
)

var customErrors = map[string]error{
	"Registration.Name.required":           errRequired,
	"Registration.Age.gte":                 errMustBePositive,
	"Registration.Email.required":          errRequired,
	"Registration.Email.email":             errInvalidEmail,
	"Registration.Phone.required":          errRequired,
	"Registration.AadharCard.required":     errRequired,
	"Registration.Password.required":       errRequired,
	"Registration.Password.min":            errPasswordTooShort,
	"Registration.ConfirmPassword.eqfield": errPasswordsMismatch,
	"Registration.Role.required":           errRequired,
	"Registration.Role.oneof":              errInvalidRole,
	"Registration.Consent.eq":              errConsentRequired,
	"Credentials.Email.required":           errRequired,
	"Credentials.Email.email":              errInvalidEmail,
	"Credentials.Password.required":        errRequired,
	"ProfileUpdate.Name.required":          errRequired,
	"ProfileUpdate.Phone.required":         errRequired,
	"ProfileUpdate.Age.gte":                errMustBePositive,
	"ProfileUpdate.StepsGoal.gte":          errMustBePositive,
	"ProfileUpdate.ActiveTimeGoal.gte":     errMustBePositive,
	"ProfileUpdate.SleepGoal.gte":          errMustBePositive,
	"ProfileUpdate.WaterGoal.gte":          errMustBePositive,
}

// CustomValidationError converts validator errors into per-field inline
// messages keyed by field name.
func CustomValidationError(err error) []map[string]string {
	errList := make([]map[string]string, 0)

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		for _, e := range validationErr {
			field := e.StructNamespace()
			key := field + "." + e.Tag()

			errMsg := fmt.Sprintf("%s is invalid", field)
			if v, ok := customErrors[key]; ok {
				errMsg = v.Error()
			}

			errList = append(errList, map[string]string{e.Field(): errMsg})
		}
	}
	return errList
}

// FirstMessage flattens the inline message list to the single banner message
// the screens show, matching the first failing field.
func FirstMessage(err error) string {
	list := CustomValidationError(err)
	for _, m := range list {
		for _, msg := range m {
			return msg
		}
	}
	return "Please fill in all required fields"
}

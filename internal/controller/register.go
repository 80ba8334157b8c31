package controller

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/letsdodifferent/HCLTech/internal/apperror"
	"github.com/letsdodifferent/HCLTech/internal/model"
	"github.com/letsdodifferent/HCLTech/internal/session"
	"github.com/letsdodifferent/HCLTech/internal/view"
)

// RegisterForm carries the registration screen's entries. ConfirmPassword
// and Consent are checked locally and never sent to the backend.
type RegisterForm struct {
	Name            string
	Age             string
	Email           string
	Phone           string
	Address         string
	AadharCard      string
	Password        string
	ConfirmPassword string
	Role            string
	Consent         bool
}

// Register is the registration screen. Invalid input is rejected inline
// before any network call is made.
type Register struct {
	sess     *session.Manager
	validate *validator.Validate

	Form   RegisterForm
	Submit view.Submission
	User   *model.User
}

// NewRegister builds the controller with the patient role preselected.
func NewRegister(sess *session.Manager, validate *validator.Validate) *Register {
	return &Register{
		sess:     sess,
		validate: validate,
		Form:     RegisterForm{Role: model.RolePatient},
	}
}

// Validate applies the client-side checks in the order the user sees them.
// It returns the inline message, or "" when the form may be submitted.
func (r *Register) Validate() string {
	f := r.Form
	if f.Name == "" || f.Email == "" || f.Password == "" || f.Phone == "" || f.AadharCard == "" {
		return "Please fill in all required fields"
	}
	if f.Password != f.ConfirmPassword {
		return "Passwords do not match"
	}
	if len(f.Password) < 6 {
		return "Password must be at least 6 characters long"
	}
	if !f.Consent {
		return "You must agree to the terms and conditions"
	}
	if err := r.validate.Struct(r.payload()); err != nil {
		return apperror.FirstMessage(err)
	}
	return ""
}

// SubmitForm validates, registers, and on success holds the identity so the
// caller can redirect by role. Failures keep every entered value.
func (r *Register) SubmitForm(ctx context.Context) {
	if msg := r.Validate(); msg != "" {
		r.Submit.Fail(msg)
		return
	}

	r.Submit.Begin()
	res := r.sess.Register(ctx, r.payload())
	if !res.OK {
		r.Submit.Fail(res.Message)
		return
	}
	r.User = &res.User
	r.Submit.Succeed(0)
}

func (r *Register) payload() model.Registration {
	return model.Registration{
		Name:            r.Form.Name,
		Age:             coerceInt(r.Form.Age),
		Email:           r.Form.Email,
		Phone:           r.Form.Phone,
		Address:         r.Form.Address,
		AadharCard:      r.Form.AadharCard,
		Password:        r.Form.Password,
		ConfirmPassword: r.Form.ConfirmPassword,
		Role:            r.Form.Role,
		Consent:         r.Form.Consent,
	}
}

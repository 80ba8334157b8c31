package apperror

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/letsdodifferent/HCLTech/internal/model"
)

func TestFromStatusKinds(t *testing.T) {
	tests := []struct {
		status int
		kind   Kind
	}{
		{401, KindUnauthorized},
		{403, KindForbidden},
		{404, KindNotFound},
		{500, KindServer},
		{502, KindServer},
		{422, KindServer},
	}

	for _, tc := range tests {
		e := FromStatus(tc.status, "msg")
		assert.Equal(t, tc.kind, e.Kind)
		assert.Equal(t, tc.status, e.Status)
		assert.Equal(t, "msg", e.Message)
	}
}

func TestFromStatusFallbackMessage(t *testing.T) {
	e := FromStatus(500, "")
	assert.Equal(t, "Something went wrong. Please try again.", e.Message)
}

func TestKindOfAndUserMessage(t *testing.T) {
	apiErr := FromStatus(403, "no access")
	assert.Equal(t, KindForbidden, KindOf(apiErr))
	assert.Equal(t, "no access", UserMessage(apiErr))

	plain := errors.New("dial tcp: connection refused")
	assert.Equal(t, KindNetwork, KindOf(plain))
	assert.Equal(t, "Something went wrong. Please try again.", UserMessage(plain))
}

func TestCustomValidationError(t *testing.T) {
	validate := validator.New()

	reg := model.Registration{
		Name: "Asha Rao", Email: "asha@example.com", Phone: "9876543210",
		AadharCard: "1234-5678-9012", Password: "abc", ConfirmPassword: "abc",
		Role: model.RolePatient, Consent: true,
	}

	err := validate.Struct(reg)
	assert.Error(t, err)

	list := CustomValidationError(err)
	assert.Equal(t, []map[string]string{
		{"Password": "Password must be at least 6 characters long"},
	}, list)
}

func TestFirstMessage(t *testing.T) {
	validate := validator.New()

	reg := model.Registration{
		Name: "Asha Rao", Email: "asha@example.com", Phone: "9876543210",
		AadharCard: "1234-5678-9012", Password: "secret123", ConfirmPassword: "secret123",
		Role: model.RolePatient, Consent: false,
	}

	err := validate.Struct(reg)
	assert.Error(t, err)
	assert.Equal(t, "You must agree to the terms and conditions", FirstMessage(err))
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentInput struct {
	ClientID        int     `json:"clientId" validate:"required,gt=0"`
	AppointmentDate string  `json:"appointmentdate" validate:"required,date"`
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled no-show"`
	Email           string  `json:"email" validate:"omitempty,email"`
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator()
	status := "no-show"

	err := v.Validate(&appointmentInput{ClientID: 1, AppointmentDate: "2024-03-01", Status: &status})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()
	status := "done"

	err := v.Validate(&appointmentInput{AppointmentDate: "01/03/2024", Status: &status, Email: "nope"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "clientId is required", errs["clientId"])
	assert.Equal(t, "appointmentdate must be a date in YYYY-MM-DD format", errs["appointmentdate"])
	assert.Equal(t, "status must be one of: scheduled, completed, cancelled, no-show", errs["status"])
	assert.Equal(t, "email must be a valid email address", errs["email"])
}

func TestValidate_RejectsImpossibleDate(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&appointmentInput{ClientID: 1, AppointmentDate: "2023-02-30"})
	assert.Error(t, err)
}

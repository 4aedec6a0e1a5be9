package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValidation(t *testing.T) {
	assert.True(t, RoleBoth.IsValid())
	assert.False(t, Role("Doctor").IsValid())

	assert.True(t, GenderUnspecified.IsValid())
	assert.False(t, Gender("other").IsValid())

	assert.True(t, EnrollmentStatusPending.IsValid())
	assert.False(t, EnrollmentStatus("cancelled").IsValid())

	assert.True(t, AppointmentStatusNoShow.IsValid())
	assert.False(t, AppointmentStatus("noshow").IsValid())
}

func TestRoleIsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleBoth.IsAdmin())
	assert.False(t, RoleDoctor.IsAdmin())
}

func TestUserActive(t *testing.T) {
	inactive := false
	assert.True(t, (&User{}).Active())
	assert.False(t, (&User{IsActive: &inactive}).Active())
}

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)

	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestJSONScan(t *testing.T) {
	var j JSON
	require.NoError(t, j.Scan([]byte(`{"entity":"client","entity_id":"7"}`)))
	assert.Equal(t, "client", j["entity"])

	require.NoError(t, j.Scan(nil))
	assert.Nil(t, j)

	assert.Error(t, j.Scan(42))
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"user_type" validate:"required,is-user-type"`
}

type statsPayload struct {
	Granularity string `json:"granularity" validate:"omitempty,is-granularity"`
}

func TestValidate_Success(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Email:    "student@test.com",
		Password: "super_password123",
		UserType: "student",
	})
	assert.NoError(t, err)
}

func TestValidate_RequiredAndEmail(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{Email: "not-an-email", UserType: "student"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	// Ключи ошибок - JSON-имена полей, не имена полей структуры
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "This field is required", vErr.Errors["password"])
}

func TestValidate_UserType(t *testing.T) {
	v := New()

	for _, userType := range []string{"student", "company", "university", "moderator"} {
		err := v.Validate(&registerPayload{
			Email:    "u@test.com",
			Password: "password123",
			UserType: userType,
		})
		assert.NoError(t, err, "user_type %q должен проходить валидацию", userType)
	}

	err := v.Validate(&registerPayload{
		Email:    "u@test.com",
		Password: "password123",
		UserType: "admin",
	})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors["user_type"], "student, company, university, moderator")
}

func TestValidate_VacancyStatus(t *testing.T) {
	v := New()

	type filterPayload struct {
		Status string `json:"status" validate:"omitempty,is-vacancy-status"`
	}

	assert.NoError(t, v.Validate(&filterPayload{}))
	for _, status := range []string{"pending", "active", "rejected", "archived"} {
		assert.NoError(t, v.Validate(&filterPayload{Status: status}),
			"статус %q должен проходить валидацию", status)
	}

	err := v.Validate(&filterPayload{Status: "draft"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors["status"], "pending, active, rejected, archived")
}

func TestValidate_Granularity(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&statsPayload{}))
	assert.NoError(t, v.Validate(&statsPayload{Granularity: "week"}))

	err := v.Validate(&statsPayload{Granularity: "year"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors["granularity"], "day, week, month")
}

func TestValidate_MinLengthMessage(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Email:    "u@test.com",
		Password: "123",
		UserType: "student",
	})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "Must be at least 6 items/characters long", vErr.Errors["password"])
}

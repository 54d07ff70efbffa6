package services

import (
	"errors"
	"testing"
	"time"

	"github.com/wimtiaz/user_registration_service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDateLayout = "02-01-2006"

func TestToUser_ParsesFieldsAndNormalizesSex(t *testing.T) {
	m := NewMapper(testDateLayout)

	user, err := m.ToUser(validSubmission())
	require.NoError(t, err)

	assert.Equal(t, "Waqas", user.FirstName)
	assert.Equal(t, "Imtiaz", user.LastName)
	assert.Equal(t, time.Date(1985, time.October, 10, 0, 0, 0, 0, time.UTC), user.DateOfBirth)
	assert.Equal(t, "waqas@gmail.com", user.Email)
	assert.Equal(t, "secret123", user.Password, "password passes through unmodified, hashing happens later")
	assert.Equal(t, domain.Male, user.Sex)
	assert.Equal(t, "france", user.Country)
	assert.Equal(t, "0981797848", user.PhoneNumber)
	assert.False(t, user.Enabled)
	assert.False(t, user.Locked)
	assert.Zero(t, user.ID)
}

func TestToUser_NonCalendarDateRejected(t *testing.T) {
	m := NewMapper(testDateLayout)

	submission := validSubmission()
	submission.DateOfBirth = "32-01-1980"

	_, err := m.ToUser(submission)
	require.Error(t, err)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeInputDateFormat, domainErr.Code)
	assert.Equal(t, domain.KindBadRequest, domainErr.Kind)
	assert.NotNil(t, domainErr.Err, "parse detail is kept for the debug message")
}

func TestToUser_UnknownSexRejected(t *testing.T) {
	m := NewMapper(testDateLayout)

	submission := validSubmission()
	submission.Sex = "robot"

	_, err := m.ToUser(submission)
	require.Error(t, err)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeUnknownBadRequest, domainErr.Code)
}

func TestToView_RedactsPassword(t *testing.T) {
	m := NewMapper(testDateLayout)

	user, err := m.ToUser(validSubmission())
	require.NoError(t, err)
	user.Password = "$2a$10$notarealhashbutclose"

	view := m.ToView(user)

	assert.Equal(t, RedactedPassword, view.Password)
	assert.Equal(t, "10-10-1985", view.DateOfBirth)
}

func TestToView_EmptyPasswordStaysEmpty(t *testing.T) {
	m := NewMapper(testDateLayout)

	view := m.ToView(&domain.User{})

	assert.Empty(t, view.Password)
}

func TestMapper_RoundTripPreservesEverythingButPassword(t *testing.T) {
	m := NewMapper(testDateLayout)

	submission := validSubmission()
	user, err := m.ToUser(submission)
	require.NoError(t, err)

	roundTripped, err := m.ToUser(m.ToView(user))
	require.NoError(t, err)

	assert.Equal(t, user.FirstName, roundTripped.FirstName)
	assert.Equal(t, user.LastName, roundTripped.LastName)
	assert.Equal(t, user.Email, roundTripped.Email)
	assert.Equal(t, user.Sex, roundTripped.Sex)
	assert.Equal(t, user.Country, roundTripped.Country)
	assert.Equal(t, user.PhoneNumber, roundTripped.PhoneNumber)
	assert.True(t, user.DateOfBirth.Equal(roundTripped.DateOfBirth))
	assert.NotEqual(t, user.Password, roundTripped.Password, "redaction is one-way")
}

package services

import (
	"time"

	"github.com/wimtiaz/user_registration_service/internal/core/domain"
)

// RedactedPassword is the fixed marker returned in place of a password on
// every outbound view. It reveals neither the hash nor its length.
const RedactedPassword = "*****"

// Mapper converts between the external submission shape and the internal
// user record. The date-of-birth layout is injected configuration.
type Mapper struct {
	dateLayout string
}

func NewMapper(dateLayout string) *Mapper {
	return &Mapper{dateLayout: dateLayout}
}

// ToUser builds an internal record from a validated submission. The
// password passes through unmodified; hashing happens in the registration
// pipeline right before persistence.
func (m *Mapper) ToUser(submission domain.Submission) (*domain.User, error) {
	dateOfBirth, err := m.ParseDateOfBirth(submission.DateOfBirth)
	if err != nil {
		return nil, err
	}

	// The field validator already excludes unknown values; checked again
	// here because the mapper can be invoked on its own.
	sex, err := domain.ParseSex(submission.Sex)
	if err != nil {
		return nil, domain.NewBadRequestError(domain.CodeUnknownBadRequest, err.Error())
	}

	return &domain.User{
		FirstName:   submission.FirstName,
		LastName:    submission.LastName,
		DateOfBirth: dateOfBirth,
		Email:       submission.Email,
		Password:    submission.Password,
		Sex:         sex,
		Country:     submission.Country,
		PhoneNumber: submission.PhoneNumber,
	}, nil
}

// ToView builds the outbound representation of a record. Total over any
// valid record: it never fails, and it never exposes the stored password.
func (m *Mapper) ToView(user *domain.User) domain.Submission {
	password := user.Password
	if password != "" {
		password = RedactedPassword
	}
	return domain.Submission{
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DateOfBirth: user.DateOfBirth.Format(m.dateLayout),
		Email:       user.Email,
		Password:    password,
		Sex:         string(user.Sex),
		Country:     user.Country,
		PhoneNumber: user.PhoneNumber,
	}
}

// ParseDateOfBirth parses a date that already matches the digit pattern.
// Values that are not real calendar dates, like 32-01-1980, are rejected
// with the input date format code.
func (m *Mapper) ParseDateOfBirth(value string) (time.Time, error) {
	dateOfBirth, err := time.Parse(m.dateLayout, value)
	if err != nil {
		parseErr := domain.NewBadRequestError(domain.CodeInputDateFormat, err.Error())
		parseErr.Err = err
		return time.Time{}, parseErr
	}
	return dateOfBirth, nil
}

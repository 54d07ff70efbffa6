package services

import (
	"regexp"

	"github.com/wimtiaz/user_registration_service/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

var (
	personNameRegexp = regexp.MustCompile(`^[A-Za-z ]+$`)
	dobRegexp        = regexp.MustCompile(`^[0-9]{2}-[0-9]{2}-[0-9]{4}$`)
	emailRegexp      = regexp.MustCompile(`^[^@]+@[^@]+$`)
	sexRegexp        = regexp.MustCompile(`^(?i)(male|female)$`)
	countryRegexp    = regexp.MustCompile(`^(?i)france$`)
	phoneRegexp      = regexp.MustCompile(`^[0-9]{10}$`)
)

// violationMessages maps field -> tag -> caller-facing message. These
// describe format rules only and are safe to expose verbatim.
var violationMessages = map[string]map[string]string{
	"FirstName": {
		"required":    "First name cannot be blank",
		"person_name": "Invalid first name. Only characters are acceptable",
		"max":         "First Name cannot be more than 30 characters",
	},
	"LastName": {
		"required":    "Last name cannot be blank",
		"person_name": "Invalid last name. Only characters are acceptable",
		"max":         "Last Name cannot be more than 30 characters",
	},
	"DateOfBirth": {
		"required":    "Date of birth cannot be blank",
		"dob_pattern": "Invalid date of birth. Allowed pattern is dd-MM-yyyy",
	},
	"Email": {
		"required":    "Email cannot be blank",
		"email_shape": "Invalid email address.",
		"max":         "Email cannot be more than 100 characters",
	},
	"Password": {
		"required": "Password cannot be blank",
		"max":      "Password cannot be more than 100 characters",
	},
	"Sex": {
		"required":   "Sex cannot be blank",
		"sex_option": "Invalid sex. Only male or female are acceptable",
	},
	"Country": {
		"required":       "Country cannot be blank",
		"country_france": "Invalid country. Only french residence can register",
	},
	"PhoneNumber": {
		"phone_digits": "Invalid phone number. Only numbers at maximum 10 digits are allowed",
		"max":          "Phone number cannot be more than 20 digits",
	},
}

// SubmissionValidator checks a candidate submission field by field. All
// violations are collected, not short-circuited, and reported in field
// declaration order.
type SubmissionValidator struct {
	validate *validator.Validate
}

func NewSubmissionValidator() *SubmissionValidator {
	validate := validator.New()

	rules := map[string]*regexp.Regexp{
		"person_name":    personNameRegexp,
		"dob_pattern":    dobRegexp,
		"email_shape":    emailRegexp,
		"sex_option":     sexRegexp,
		"country_france": countryRegexp,
		"phone_digits":   phoneRegexp,
	}
	for tag, re := range rules {
		re := re
		// registration only fails on a duplicate or empty tag
		_ = validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}

	return &SubmissionValidator{validate: validate}
}

// Validate returns nil for a valid submission, or a constraint violation
// error carrying one message per violated rule.
func (v *SubmissionValidator) Validate(submission domain.Submission) error {
	err := v.validate.Struct(submission)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.NewBadRequestError(domain.CodeUnknownBadRequest, err.Error())
	}

	messages := make([]string, 0, len(violations))
	for _, violation := range violations {
		messages = append(messages, violationMessage(violation))
	}
	return domain.NewConstraintViolationError(messages)
}

func violationMessage(violation validator.FieldError) string {
	if byTag, ok := violationMessages[violation.StructField()]; ok {
		if msg, ok := byTag[violation.Tag()]; ok {
			return msg
		}
	}
	return violation.Error()
}

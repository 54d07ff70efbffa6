package domain

// Submission is the untrusted registration payload as received from the
// outside. Validation tags drive the field validator; custom rules are
// registered in services.NewSubmissionValidator.
// swagger:model domain.Submission
type Submission struct {
	FirstName   string `json:"firstName" validate:"required,person_name,max=30" example:"Waqas"`
	LastName    string `json:"lastName" validate:"required,person_name,max=30" example:"Imtiaz"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,dob_pattern" example:"10-10-1985"`
	Email       string `json:"email" validate:"required,email_shape,max=100" example:"waqas@gmail.com"`
	Password    string `json:"password" validate:"required,max=100" example:"secret123"`
	Sex         string `json:"sex" validate:"required,sex_option" example:"male"`
	Country     string `json:"country" validate:"required,country_france" example:"france"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,phone_digits,max=20" example:"0981797848"`
}

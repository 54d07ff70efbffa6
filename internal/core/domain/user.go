package domain

import (
	"fmt"
	"strings"
	"time"
)

type Sex string

const (
	Male   Sex = "MALE"
	Female Sex = "FEMALE"
)

// ParseSex normalizes a submitted sex value to its canonical form.
// Case-insensitive, mirrors the field validation rule.
func ParseSex(s string) (Sex, error) {
	switch strings.ToUpper(s) {
	case string(Male):
		return Male, nil
	case string(Female):
		return Female, nil
	default:
		return "", fmt.Errorf("invalid sex [%s]", s)
	}
}

// swagger:model domain.User
type User struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	Sex         Sex       `json:"sex"`
	Country     string    `json:"country"`
	PhoneNumber string    `json:"phone_number"`
	Enabled     bool      `json:"enabled"`
	Locked      bool      `json:"locked"`
}

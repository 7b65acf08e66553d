package validators

import (
	"regexp"

	"hive/internal/errs"
	"hive/internal/models"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateRegistration(body *models.RegisterRequestBody) error {
	if body.Email == "" || body.Password == "" || body.FirstName == "" || body.LastName == "" {
		return errs.ErrAllFieldsRequired
	}
	if !ValidateEmail(body.Email) {
		return errs.ErrInvalidEmail
	}
	if !ValidatePassword(body.Password) {
		return errs.ErrInvalidPassword
	}
	if len(body.FirstName) < 2 {
		return errs.ErrFirstNameTooShort
	}
	if len(body.LastName) < 2 {
		return errs.ErrLastNameTooShort
	}
	return nil
}

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidatePassword(password string) bool {
	return len(password) >= 8
}

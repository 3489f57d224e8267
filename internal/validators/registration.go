package validators

import (
	"regexp"
	"unicode"

	"github.com/washpoint/carwash-api/internal/httperr"
)

var (
	phoneRe = regexp.MustCompile(`^0\d{9}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Phone numbers are national format: 10 digits starting with 0.
func ValidatePhone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return httperr.ErrBusiness("invalid_phone")
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return httperr.ErrBusiness("invalid_email")
	}
	return nil
}

func ValidateAge(age int) error {
	if age < 18 {
		return httperr.ErrBusiness("invalid_age")
	}
	return nil
}

// Passwords need at least 8 characters with at least one letter and one
// digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return httperr.ErrBusiness("weak_password")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return httperr.ErrBusiness("weak_password")
	}
	return nil
}

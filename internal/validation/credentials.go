package validation

import (
	"net/mail"
	"strings"
)

// MinPasswordLength is the minimum accepted password length on signup.
const MinPasswordLength = 6

// ParseCredentials validates a signup or login submission. Returns the
// normalized (lowercased) email address alongside any field errors.
func ParseCredentials(email, password string) (string, FieldErrors) {
	errs := FieldErrors{}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		errs.add(FieldEmail, "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.add(FieldEmail, "Please enter a valid email address")
	}

	if password == "" {
		errs.add(FieldPassword, "Password is required")
	} else if len(password) < MinPasswordLength {
		errs.add(FieldPassword, "Password must be at least 6 characters")
	}

	if len(errs) > 0 {
		return "", errs
	}
	return email, nil
}

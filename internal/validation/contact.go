package validation

import (
	"errors"
	"net/mail"
	"strings"
)

// ValidateEmail validates email format and length
// Uses Go's built-in net/mail parser which follows RFC 5322
func ValidateEmail(email string) error {
	// Check length (RFC 5321: local part max 64, domain max 255, total max 254 with @)
	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}

	if email == "" {
		return errors.New("email address is required")
	}

	// Parse using Go's RFC 5322 compliant parser
	_, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("invalid email address format")
	}

	return nil
}

// ValidateName validates the sender name of a contact submission
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("name is required")
	}

	if len(trimmed) > 100 {
		return errors.New("name is too long (max 100 characters)")
	}

	return nil
}

// ValidateSubject validates the optional subject line
func ValidateSubject(subject string) error {
	if len(strings.TrimSpace(subject)) > 200 {
		return errors.New("subject is too long (max 200 characters)")
	}

	return nil
}

// ValidateMessage validates the message body of a contact submission
func ValidateMessage(message string) error {
	trimmed := strings.TrimSpace(message)

	if trimmed == "" {
		return errors.New("message is required")
	}

	if len(trimmed) < 10 {
		return errors.New("message is too short (min 10 characters)")
	}

	if len(trimmed) > 5000 {
		return errors.New("message is too long (max 5000 characters)")
	}

	return nil
}

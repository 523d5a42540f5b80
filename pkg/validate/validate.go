// Package validate holds the field checks run by the profile editor when a
// section is submitted.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`)
	whitespace   = regexp.MustCompile(`\s`)
)

// Field names reported in ValidationError
const (
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldPassword = "password"
)

// ValidationError reports the first field that failed a section check
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidEmail reports whether s looks like an email address
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone reports whether s looks like a phone number. Whitespace is
// stripped before matching.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(whitespace.ReplaceAllString(s, ""))
}

// Contact checks the email and phone shared by the personal and address
// sections. Empty values are not checked; email is checked first.
func Contact(email, phone string) error {
	if email != "" && !IsValidEmail(email) {
		return &ValidationError{Field: FieldEmail, Message: "Please enter a valid email address"}
	}
	if phone != "" && !IsValidPhone(phone) {
		return &ValidationError{Field: FieldPhone, Message: "Please enter a valid phone number"}
	}
	return nil
}

// PasswordsMatch checks the credentials section
func PasswordsMatch(newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return &ValidationError{Field: FieldPassword, Message: "New passwords do not match"}
	}
	return nil
}

// Blank reports whether s is empty once trimmed
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

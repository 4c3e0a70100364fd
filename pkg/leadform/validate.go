package leadform

import (
	"regexp"
	"strings"
	"unicode"

	"onboardly/pkg/models"
)

// MinPhoneDigits is the smallest number of digits accepted in a phone number
const MinPhoneDigits = 10

// The class matches what browsers treat as whitespace: ASCII controls, every Unicode
// space separator, line and paragraph separators, and the byte order mark.
var emailPattern = regexp.MustCompile(`^[^\t\n\x{0B}\f\r\p{Z}\x{FEFF}@]+@[^\t\n\x{0B}\f\r\p{Z}\x{FEFF}@]+\.[^\t\n\x{0B}\f\r\p{Z}\x{FEFF}@]+$`)

// Validate checks a lead form in order: required fields, email shape, phone digits.
// The first failing rule is returned as a *ValidationError.
func Validate(form models.LeadForm) error {
	if blank(form.Name) || blank(form.Email) || blank(form.Phone) {
		return &ValidationError{Reason: ReasonRequired}
	}

	if !ValidEmail(form.Email) {
		return &ValidationError{Reason: ReasonEmail}
	}

	if len(PhoneDigits(form.Phone)) < MinPhoneDigits {
		return &ValidationError{Reason: ReasonPhone}
	}

	return nil
}

// ValidEmail reports whether email looks like local@domain.tld
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// PhoneDigits returns only the ASCII digits of phone
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsSpace reports whether r is whitespace for form input.
// U+0085 is not, U+FEFF is.
func IsSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}

// Trim removes leading and trailing whitespace as defined by IsSpace
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

func blank(s string) bool {
	return Trim(s) == ""
}

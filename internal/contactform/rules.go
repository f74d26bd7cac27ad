package contactform

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldCompany     Field = "company"
	FieldProjectType Field = "projectType"
	FieldMessage     Field = "message"
)

// Fields is every field the form renders, in display order.
var Fields = []Field{FieldName, FieldEmail, FieldCompany, FieldProjectType, FieldMessage}

// RequiredFields are the only fields that can carry an error.
var RequiredFields = []Field{FieldName, FieldEmail, FieldMessage}

const (
	MsgNameRequired    = "Name is required"
	MsgNameTooShort    = "Name must be at least 2 characters"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Please enter a valid email address"
	MsgMessageRequired = "Message is required"
	MsgMessageTooShort = "Message must be at least 10 characters"
)

const (
	nameMinLength    = 2
	messageMinLength = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateField returns the error for value in field, or "" when the value is
// acceptable. Optional and unknown fields are always acceptable.
func ValidateField(field Field, value string) string {
	trimmed := strings.TrimSpace(value)
	switch field {
	case FieldName:
		if trimmed == "" {
			return MsgNameRequired
		}
		if utf8.RuneCountInString(trimmed) < nameMinLength {
			return MsgNameTooShort
		}
	case FieldEmail:
		if trimmed == "" {
			return MsgEmailRequired
		}
		if !emailPattern.MatchString(trimmed) {
			return MsgEmailInvalid
		}
	case FieldMessage:
		if trimmed == "" {
			return MsgMessageRequired
		}
		if utf8.RuneCountInString(trimmed) < messageMinLength {
			return MsgMessageTooShort
		}
	}
	return ""
}

func isRequired(field Field) bool {
	for _, f := range RequiredFields {
		if f == field {
			return true
		}
	}
	return false
}

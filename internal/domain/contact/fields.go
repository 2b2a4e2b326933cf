// Package contact holds the contact-form fields and the validation rules
// shared by the submission flow and the API.
package contact

import "strings"

// Field names, in the order they appear on the form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// FieldNames lists every form field in display order.
var FieldNames = []string{FieldName, FieldEmail, FieldPhone, FieldSubject, FieldMessage}

// Fields are the raw values typed into the contact form.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Get returns the value of the named field.
func (f Fields) Get(name string) (string, bool) {
	switch name {
	case FieldName:
		return f.Name, true
	case FieldEmail:
		return f.Email, true
	case FieldPhone:
		return f.Phone, true
	case FieldSubject:
		return f.Subject, true
	case FieldMessage:
		return f.Message, true
	}
	return "", false
}

// Set assigns value to the named field and reports whether the name is known.
func (f *Fields) Set(name, value string) bool {
	switch name {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	default:
		return false
	}
	return true
}

// Normalized trims every field and lower-cases the email, the form in which
// submissions are stored.
func (f Fields) Normalized() Fields {
	return Fields{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.ToLower(strings.TrimSpace(f.Email)),
		Phone:   strings.TrimSpace(f.Phone),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// IsZero reports whether every field is empty.
func (f Fields) IsZero() bool {
	return f == Fields{}
}

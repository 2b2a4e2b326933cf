package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Default thresholds. These are business settings, overridable through
// configuration.
const (
	DefaultNameMinLength    = 2
	DefaultSubjectMinLength = 3
	DefaultMessageMinLength = 10
	DefaultMessageMaxLength = 1000
)

// Violation reasons.
const (
	ReasonRequired = "required"
	ReasonTooShort = "too_short"
	ReasonTooLong  = "too_long"
	ReasonInvalid  = "invalid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rules are the length thresholds applied to the form. Lengths are counted in
// runes after trimming surrounding whitespace.
type Rules struct {
	NameMinLength    int
	SubjectMinLength int
	MessageMinLength int
	MessageMaxLength int
}

// DefaultRules returns the stock thresholds.
func DefaultRules() Rules {
	return Rules{
		NameMinLength:    DefaultNameMinLength,
		SubjectMinLength: DefaultSubjectMinLength,
		MessageMinLength: DefaultMessageMinLength,
		MessageMaxLength: DefaultMessageMaxLength,
	}
}

// Violation is a single failed rule.
type Violation struct {
	Field  string
	Reason string
	Limit  int // threshold for too_short / too_long, else 0
}

// MessageKey is the translation key describing the violation, e.g.
// "contact.validation.name.too_short".
func (v Violation) MessageKey() string {
	return "contact.validation." + v.Field + "." + v.Reason
}

// Params are the interpolation parameters of the violation message.
func (v Violation) Params() map[string]any {
	if v.Limit == 0 {
		return nil
	}
	switch v.Reason {
	case ReasonTooShort:
		return map[string]any{"min": v.Limit}
	case ReasonTooLong:
		return map[string]any{"max": v.Limit}
	}
	return nil
}

// Check runs every rule against f and returns the violations in field order,
// at most one per field.
func (r Rules) Check(f Fields) []Violation {
	var out []Violation
	for _, name := range FieldNames {
		value, _ := f.Get(name)
		if v := r.CheckField(name, value); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// CheckField runs the rule of a single field.
func (r Rules) CheckField(name, value string) *Violation {
	switch name {
	case FieldName:
		return minLength(FieldName, value, r.NameMinLength)
	case FieldEmail:
		return checkEmail(value)
	case FieldPhone:
		return checkPhone(value)
	case FieldSubject:
		return minLength(FieldSubject, value, r.SubjectMinLength)
	case FieldMessage:
		return checkMessage(value, r.MessageMinLength, r.MessageMaxLength)
	}
	return nil
}

func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func minLength(field, value string, limit int) *Violation {
	n := trimmedLen(value)
	if n == 0 {
		return &Violation{Field: field, Reason: ReasonRequired}
	}
	if n < limit {
		return &Violation{Field: field, Reason: ReasonTooShort, Limit: limit}
	}
	return nil
}

func checkEmail(value string) *Violation {
	v := strings.TrimSpace(value)
	if v == "" {
		return &Violation{Field: FieldEmail, Reason: ReasonRequired}
	}
	if !emailPattern.MatchString(v) {
		return &Violation{Field: FieldEmail, Reason: ReasonInvalid}
	}
	return nil
}

func checkPhone(value string) *Violation {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	for _, r := range v {
		if !isPhoneRune(r) {
			return &Violation{Field: FieldPhone, Reason: ReasonInvalid}
		}
	}
	return nil
}

func isPhoneRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	switch r {
	case ' ', '+', '-', '(', ')':
		return true
	}
	return false
}

func checkMessage(value string, minLen, maxLen int) *Violation {
	if v := minLength(FieldMessage, value, minLen); v != nil {
		return v
	}
	if trimmedLen(value) > maxLen {
		return &Violation{Field: FieldMessage, Reason: ReasonTooLong, Limit: maxLen}
	}
	return nil
}

// Messages renders violations into a field -> message map using render,
// typically a translator bound to the caller's language.
func Messages(vs []Violation, render func(key string, params map[string]any) string) map[string]string {
	out := make(map[string]string, len(vs))
	for _, v := range vs {
		out[v.Field] = render(v.MessageKey(), v.Params())
	}
	return out
}

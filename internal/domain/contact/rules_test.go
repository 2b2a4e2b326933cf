package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() Fields {
	return Fields{
		Name:    "Jo",
		Email:   "a@b.com",
		Subject: "Hi!",
		Message: "This is a test message.",
	}
}

func TestCheckAcceptsMinimalValidInput(t *testing.T) {
	assert.Empty(t, DefaultRules().Check(validFields()))
}

func TestCheckRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Fields)
		want   Violation
	}{
		{"name empty", func(f *Fields) { f.Name = "" }, Violation{Field: FieldName, Reason: ReasonRequired}},
		{"name whitespace", func(f *Fields) { f.Name = "   " }, Violation{Field: FieldName, Reason: ReasonRequired}},
		{"name too short", func(f *Fields) { f.Name = "J" }, Violation{Field: FieldName, Reason: ReasonTooShort, Limit: 2}},
		{"name padded", func(f *Fields) { f.Name = "  J  " }, Violation{Field: FieldName, Reason: ReasonTooShort, Limit: 2}},
		{"email empty", func(f *Fields) { f.Email = "" }, Violation{Field: FieldEmail, Reason: ReasonRequired}},
		{"email no at", func(f *Fields) { f.Email = "ab.com" }, Violation{Field: FieldEmail, Reason: ReasonInvalid}},
		{"email no tld", func(f *Fields) { f.Email = "a@b" }, Violation{Field: FieldEmail, Reason: ReasonInvalid}},
		{"email spaces", func(f *Fields) { f.Email = "a b@c.com" }, Violation{Field: FieldEmail, Reason: ReasonInvalid}},
		{"phone letters", func(f *Fields) { f.Phone = "98x" }, Violation{Field: FieldPhone, Reason: ReasonInvalid}},
		{"phone devanagari digits", func(f *Fields) { f.Phone = "९८७" }, Violation{Field: FieldPhone, Reason: ReasonInvalid}},
		{"subject short", func(f *Fields) { f.Subject = "Hi" }, Violation{Field: FieldSubject, Reason: ReasonTooShort, Limit: 3}},
		{"message empty", func(f *Fields) { f.Message = "" }, Violation{Field: FieldMessage, Reason: ReasonRequired}},
		{"message short", func(f *Fields) { f.Message = "too short" }, Violation{Field: FieldMessage, Reason: ReasonTooShort, Limit: 10}},
		{"message long", func(f *Fields) { f.Message = strings.Repeat("a", 1001) }, Violation{Field: FieldMessage, Reason: ReasonTooLong, Limit: 1000}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validFields()
			tc.mutate(&f)
			got := DefaultRules().Check(f)
			require.Len(t, got, 1)
			assert.Equal(t, tc.want, got[0])
		})
	}
}

func TestCheckAcceptsBoundaries(t *testing.T) {
	f := validFields()
	f.Message = strings.Repeat("a", 1000)
	f.Phone = "+91 (98765) 43-210"
	assert.Empty(t, DefaultRules().Check(f))

	// Marathi text is counted in runes, not bytes.
	f.Name = "जो"
	f.Message = strings.Repeat("म", 1000)
	assert.Empty(t, DefaultRules().Check(f))
}

func TestCheckReportsEveryFailingField(t *testing.T) {
	got := DefaultRules().Check(Fields{Phone: "abc"})
	fields := make([]string, 0, len(got))
	for _, v := range got {
		fields = append(fields, v.Field)
	}
	assert.Equal(t, FieldNames, fields)
}

func TestCustomRules(t *testing.T) {
	rules := Rules{NameMinLength: 5, SubjectMinLength: 1, MessageMinLength: 1, MessageMaxLength: 20}
	got := rules.Check(validFields())
	require.Len(t, got, 2)
	assert.Equal(t, FieldName, got[0].Field)
	assert.Equal(t, Violation{Field: FieldMessage, Reason: ReasonTooLong, Limit: 20}, got[1])
}

func TestCheckField(t *testing.T) {
	rules := DefaultRules()
	assert.Nil(t, rules.CheckField(FieldPhone, ""))
	assert.Nil(t, rules.CheckField("unknown", ""))
	v := rules.CheckField(FieldSubject, "ab")
	require.NotNil(t, v)
	assert.Equal(t, ReasonTooShort, v.Reason)
}

func TestViolationMessage(t *testing.T) {
	v := Violation{Field: FieldMessage, Reason: ReasonTooLong, Limit: 1000}
	assert.Equal(t, "contact.validation.message.too_long", v.MessageKey())
	assert.Equal(t, map[string]any{"max": 1000}, v.Params())

	v = Violation{Field: FieldEmail, Reason: ReasonInvalid}
	assert.Nil(t, v.Params())

	msgs := Messages([]Violation{v}, func(key string, _ map[string]any) string { return "[" + key + "]" })
	assert.Equal(t, map[string]string{FieldEmail: "[contact.validation.email.invalid]"}, msgs)
}

func TestFieldsAccessors(t *testing.T) {
	var f Fields
	for _, name := range FieldNames {
		require.True(t, f.Set(name, name+"-value"))
		got, ok := f.Get(name)
		require.True(t, ok)
		assert.Equal(t, name+"-value", got)
	}
	assert.False(t, f.Set("age", "3"))
	_, ok := f.Get("age")
	assert.False(t, ok)

	n := Fields{Name: " Jo ", Email: " A@B.COM "}.Normalized()
	assert.Equal(t, "Jo", n.Name)
	assert.Equal(t, "a@b.com", n.Email)
	assert.True(t, Fields{}.IsZero())
}

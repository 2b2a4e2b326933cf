package contact

// Message keys of the form banner.
const (
	KeyFixErrors = "contact.form.fix_errors"
	KeyFailure   = "contact.form.error"
	KeySuccess   = "contact.form.success"
)

// DefaultMessages are the English texts used when no catalog is available.
var DefaultMessages = map[string]string{
	KeyFixErrors: "Please fix the errors above.",
	KeyFailure:   "Something went wrong. Please try again.",
	KeySuccess:   "Thank you for contacting us! We will get back to you soon.",

	"contact.validation.name.required":     "Name is required",
	"contact.validation.name.too_short":    "Name must be at least {{min}} characters",
	"contact.validation.email.required":    "Email is required",
	"contact.validation.email.invalid":     "Please enter a valid email address",
	"contact.validation.phone.invalid":     "Please enter a valid phone number",
	"contact.validation.subject.required":  "Subject is required",
	"contact.validation.subject.too_short": "Subject must be at least {{min}} characters",
	"contact.validation.message.required":  "Message is required",
	"contact.validation.message.too_short": "Message must be at least {{min}} characters",
	"contact.validation.message.too_long":  "Message must not exceed {{max}} characters",
}

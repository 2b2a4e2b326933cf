// Package contactform drives a single contact form: field edits, validation,
// one submission at a time, and the resulting banner and per-field errors.
package contactform

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"

	"krushi/internal/domain/contact"
	"krushi/internal/domain/translation"
	"krushi/internal/ports/output"
)

// Status is the position of the form in its lifecycle.
type Status string

const (
	Idle       Status = "idle"
	Validating Status = "validating"
	Submitting Status = "submitting"
	Success    Status = "success"
	Failed     Status = "error"
)

// ErrSubmitInProgress is reported by Submit while a submission is outstanding.
var ErrSubmitInProgress = errors.New("contactform: submission already in progress")

// Result is the outcome of validating the current values.
type Result struct {
	Valid  bool
	Errors map[string]string
}

// Outcome describes what a Submit call did.
type Outcome struct {
	Status      Status
	Message     string
	Errors      map[string]string
	ScrollToTop bool
	Err         error
}

// State is a snapshot of the form.
type State struct {
	Values  contact.Fields
	Errors  map[string]string
	Status  Status
	Message string
}

type Option func(*Form)

// WithRules overrides the validation thresholds.
func WithRules(r contact.Rules) Option {
	return func(f *Form) { f.rules = r }
}

// WithTranslator renders messages through t in the given language.
func WithTranslator(t output.T, language string) Option {
	return func(f *Form) {
		f.translator = t
		f.language = language
	}
}

// WithOnSuccess registers a hook run after each successful submission.
func WithOnSuccess(fn func(Outcome)) Option {
	return func(f *Form) { f.onSuccess = fn }
}

// Form is safe for concurrent use. Each instance carries its own state.
type Form struct {
	submitter  output.ContactSubmitter
	rules      contact.Rules
	translator output.T
	language   string
	onSuccess  func(Outcome)

	mu      sync.Mutex
	values  contact.Fields
	errors  map[string]string
	status  Status
	message string
}

func New(submitter output.ContactSubmitter, opts ...Option) *Form {
	f := &Form{
		submitter: submitter,
		rules:     contact.DefaultRules(),
		language:  translation.DefaultLanguage,
		errors:    map[string]string{},
		status:    Idle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// UpdateField sets a field and drops its error. Unknown names are ignored.
// A finished form (success or error) goes back to idle.
func (f *Form) UpdateField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.values.Set(name, value) {
		return
	}
	delete(f.errors, name)
	if f.status == Success || f.status == Failed {
		f.status = Idle
		f.message = ""
	}
}

// Validate checks the current values and replaces the error map with the
// result.
func (f *Form) Validate() Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *Form) validateLocked() Result {
	violations := f.rules.Check(f.values)
	f.errors = contact.Messages(violations, f.text)
	return Result{Valid: len(violations) == 0, Errors: maps.Clone(f.errors)}
}

// Submit validates the form and, when valid, calls the submitter once. It
// never retries and never panics on submitter failure.
func (f *Form) Submit(ctx context.Context) Outcome {
	f.mu.Lock()
	if f.status == Submitting {
		f.mu.Unlock()
		return Outcome{Status: Submitting, Err: ErrSubmitInProgress}
	}
	f.status = Validating
	f.message = ""
	if res := f.validateLocked(); !res.Valid {
		f.status = Failed
		f.message = f.text(contact.KeyFixErrors, nil)
		out := Outcome{Status: f.status, Message: f.message, Errors: res.Errors}
		f.mu.Unlock()
		return out
	}
	f.status = Submitting
	values := f.values
	f.mu.Unlock()

	result, err := f.send(ctx, values)

	f.mu.Lock()
	if err != nil {
		f.status = Failed
		f.message = f.failureMessage(err)
		f.errors = serverFieldErrors(err)
		out := Outcome{Status: f.status, Message: f.message, Errors: maps.Clone(f.errors)}
		f.mu.Unlock()
		return out
	}
	f.values = contact.Fields{}
	f.errors = map[string]string{}
	f.status = Success
	f.message = result.Message
	if f.message == "" {
		f.message = f.text(contact.KeySuccess, nil)
	}
	out := Outcome{Status: f.status, Message: f.message, Errors: map[string]string{}, ScrollToTop: true}
	hook := f.onSuccess
	f.mu.Unlock()

	if hook != nil {
		hook(out)
	}
	return out
}

// send calls the submitter, turning a panic into an error so the form never
// stays in Submitting.
func (f *Form) send(ctx context.Context, values contact.Fields) (result output.SubmissionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("contactform: submitter panicked: %v", r)
		}
	}()
	return f.submitter.SubmitContact(ctx, values)
}

// serverFieldErrors keeps the per-field errors the server reported for known
// fields.
func serverFieldErrors(err error) map[string]string {
	out := map[string]string{}
	var serr *output.SubmissionError
	if !errors.As(err, &serr) {
		return out
	}
	for name, msg := range serr.Fields {
		if _, known := (contact.Fields{}).Get(name); known && msg != "" {
			out[name] = msg
		}
	}
	return out
}

func (f *Form) failureMessage(err error) string {
	var serr *output.SubmissionError
	if errors.As(err, &serr) && serr.Message != "" {
		return serr.Message
	}
	return f.text(contact.KeyFailure, nil)
}

// text resolves key through the translator, or the English defaults when the
// translator is absent or has no entry.
func (f *Form) text(key string, params map[string]any) string {
	if f.translator != nil {
		if s := f.translator.T(f.language, key, params); s != key {
			return s
		}
	}
	if s, ok := contact.DefaultMessages[key]; ok {
		return translation.Interpolate(s, params)
	}
	return key
}

// State returns a snapshot of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Values:  f.values,
		Errors:  maps.Clone(f.errors),
		Status:  f.status,
		Message: f.message,
	}
}

func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *Form) Values() contact.Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}
